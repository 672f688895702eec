package handlers

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"

	"daftar/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeStore implements Store through optional function fields so each
// test stubs only the calls it expects. Unstubbed calls fail loudly.
type fakeStore struct {
	listProjects  func(ctx context.Context) ([]models.Project, error)
	createProject func(ctx context.Context, name string, description *string) (*models.Project, error)
	getProject    func(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
	updateProject func(ctx context.Context, projectID uuid.UUID, update models.ProjectUpdate) (*models.Project, error)
	deleteProject func(ctx context.Context, projectID uuid.UUID) error

	listNotesByProject func(ctx context.Context, projectID uuid.UUID) ([]models.Note, error)
	createNote         func(ctx context.Context, create models.NoteCreate) (*models.Note, error)
	updateNote         func(ctx context.Context, noteID uuid.UUID, update models.NoteUpdate) (*models.Note, error)
	deleteNote         func(ctx context.Context, noteID uuid.UUID) error
	reorderNotes       func(ctx context.Context, orders []models.NoteOrder) (int, error)
}

var errNotStubbed = errors.New("store call not stubbed")

func (f *fakeStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	if f.listProjects == nil {
		return nil, errNotStubbed
	}
	return f.listProjects(ctx)
}

func (f *fakeStore) CreateProject(ctx context.Context, name string, description *string) (*models.Project, error) {
	if f.createProject == nil {
		return nil, errNotStubbed
	}
	return f.createProject(ctx, name, description)
}

func (f *fakeStore) GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	if f.getProject == nil {
		return nil, errNotStubbed
	}
	return f.getProject(ctx, projectID)
}

func (f *fakeStore) UpdateProject(ctx context.Context, projectID uuid.UUID, update models.ProjectUpdate) (*models.Project, error) {
	if f.updateProject == nil {
		return nil, errNotStubbed
	}
	return f.updateProject(ctx, projectID, update)
}

func (f *fakeStore) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	if f.deleteProject == nil {
		return errNotStubbed
	}
	return f.deleteProject(ctx, projectID)
}

func (f *fakeStore) ListNotesByProject(ctx context.Context, projectID uuid.UUID) ([]models.Note, error) {
	if f.listNotesByProject == nil {
		return nil, errNotStubbed
	}
	return f.listNotesByProject(ctx, projectID)
}

func (f *fakeStore) CreateNote(ctx context.Context, create models.NoteCreate) (*models.Note, error) {
	if f.createNote == nil {
		return nil, errNotStubbed
	}
	return f.createNote(ctx, create)
}

func (f *fakeStore) UpdateNote(ctx context.Context, noteID uuid.UUID, update models.NoteUpdate) (*models.Note, error) {
	if f.updateNote == nil {
		return nil, errNotStubbed
	}
	return f.updateNote(ctx, noteID, update)
}

func (f *fakeStore) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	if f.deleteNote == nil {
		return errNotStubbed
	}
	return f.deleteNote(ctx, noteID)
}

func (f *fakeStore) ReorderNotes(ctx context.Context, orders []models.NoteOrder) (int, error) {
	if f.reorderNotes == nil {
		return 0, errNotStubbed
	}
	return f.reorderNotes(ctx, orders)
}

// newTestRouter registers the same routes as main over the fake store.
func newTestRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/health", HealthCheck)

	r.GET("/projects", ListProjects(store))
	r.POST("/projects", CreateProject(store))
	r.GET("/projects/:id", GetProject(store))
	r.PUT("/projects/:id", UpdateProject(store))
	r.DELETE("/projects/:id", DeleteProject(store))

	r.GET("/projects/:id/notes", ListNotes(store))
	r.POST("/projects/:id/notes", CreateNote(store))

	r.PUT("/notes/reorder", ReorderNotes(store))
	r.PUT("/notes/:id", UpdateNote(store))
	r.DELETE("/notes/:id", DeleteNote(store))

	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
