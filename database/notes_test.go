package database

import (
	"context"
	"testing"
	"time"

	"daftar/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProject(t *testing.T, db *DB) *models.Project {
	t.Helper()

	project, err := db.CreateProject(context.Background(), "Test Project", nil)
	require.NoError(t, err)
	return project
}

func TestCreateNote_DisplayOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	project := createTestProject(t, db)

	first, err := db.CreateNote(ctx, models.NoteCreate{
		ProjectID: project.ID,
		Title:     "First note",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, first.DisplayOrder)

	second, err := db.CreateNote(ctx, models.NoteCreate{
		ProjectID: project.ID,
		Title:     "Second note",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, second.DisplayOrder)
}

func TestCreateNote_OrderPerProject(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	projectA := createTestProject(t, db)
	projectB := createTestProject(t, db)

	_, err := db.CreateNote(ctx, models.NoteCreate{ProjectID: projectA.ID, Title: "A1"})
	require.NoError(t, err)
	_, err = db.CreateNote(ctx, models.NoteCreate{ProjectID: projectA.ID, Title: "A2"})
	require.NoError(t, err)

	b1, err := db.CreateNote(ctx, models.NoteCreate{ProjectID: projectB.ID, Title: "B1"})
	require.NoError(t, err)
	assert.Equal(t, 0, b1.DisplayOrder)
}

func TestCreateNote_ProjectMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()

	_, err := db.CreateNote(ctx, models.NoteCreate{
		ProjectID: uuid.New(),
		Title:     "Orphan",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateNote_TabsRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	project := createTestProject(t, db)

	tabCreated := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	tabs := map[string]models.NoteTab{
		"finding":  {Content: "<p>key result</p>", Order: 1, CreatedAt: tabCreated},
		"evidence": {Content: "<p>table 4</p>", Order: 2, CreatedAt: tabCreated},
	}

	created, err := db.CreateNote(ctx, models.NoteCreate{
		ProjectID:   project.ID,
		Title:       "Lab results",
		Tabs:        tabs,
		ActiveTab:   strPtr("finding"),
		DefaultTabs: []string{"finding", "evidence", "details"},
	})
	require.NoError(t, err)

	notes, err := db.ListNotesByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)

	got := notes[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, tabs, got.Tabs)
	require.NotNil(t, got.ActiveTab)
	assert.Equal(t, "finding", *got.ActiveTab)
	assert.Equal(t, []string{"finding", "evidence", "details"}, got.DefaultTabs)
}

func TestCreateNote_NilOptionalFields(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	project := createTestProject(t, db)

	note, err := db.CreateNote(ctx, models.NoteCreate{
		ProjectID: project.ID,
		Title:     "Bare note",
	})
	require.NoError(t, err)

	assert.Nil(t, note.Content)
	assert.Nil(t, note.Tabs)
	assert.Nil(t, note.ActiveTab)
	assert.Nil(t, note.DefaultTabs)
}

func TestListNotesByProject_Ordering(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	project := createTestProject(t, db)

	for _, title := range []string{"first", "second", "third"} {
		_, err := db.CreateNote(ctx, models.NoteCreate{ProjectID: project.ID, Title: title})
		require.NoError(t, err)
	}

	notes, err := db.ListNotesByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, notes, 3)

	assert.Equal(t, "first", notes[0].Title)
	assert.Equal(t, "second", notes[1].Title)
	assert.Equal(t, "third", notes[2].Title)
}

func TestListNotesByProject_Empty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	project := createTestProject(t, db)

	notes, err := db.ListNotesByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestUpdateNote_TitleOnly(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	project := createTestProject(t, db)

	created, err := db.CreateNote(ctx, models.NoteCreate{
		ProjectID: project.ID,
		Title:     "Old title",
		Content:   strPtr("keep me"),
	})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	updated, err := db.UpdateNote(ctx, created.ID, models.NoteUpdate{
		Title: strPtr("New title"),
	})
	require.NoError(t, err)

	assert.Equal(t, "New title", updated.Title)
	require.NotNil(t, updated.Content)
	assert.Equal(t, "keep me", *updated.Content)
	assert.Equal(t, created.DisplayOrder, updated.DisplayOrder)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateNote_ClearContent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	project := createTestProject(t, db)

	created, err := db.CreateNote(ctx, models.NoteCreate{
		ProjectID: project.ID,
		Title:     "Note",
		Content:   strPtr("drop me"),
	})
	require.NoError(t, err)

	updated, err := db.UpdateNote(ctx, created.ID, models.NoteUpdate{
		Content:    nil,
		HasContent: true,
	})
	require.NoError(t, err)

	assert.Nil(t, updated.Content)
}

func TestUpdateNote_Tabs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	project := createTestProject(t, db)

	created, err := db.CreateNote(ctx, models.NoteCreate{
		ProjectID: project.ID,
		Title:     "Note",
	})
	require.NoError(t, err)

	tabs := map[string]models.NoteTab{
		"details": {Content: "methodology", Order: 3, CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	updated, err := db.UpdateNote(ctx, created.ID, models.NoteUpdate{
		Tabs:         tabs,
		HasTabs:      true,
		ActiveTab:    strPtr("details"),
		HasActiveTab: true,
	})
	require.NoError(t, err)

	assert.Equal(t, tabs, updated.Tabs)
	require.NotNil(t, updated.ActiveTab)
	assert.Equal(t, "details", *updated.ActiveTab)
}

func TestUpdateNote_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()

	_, err := db.UpdateNote(ctx, uuid.New(), models.NoteUpdate{Title: strPtr("ghost")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteNote(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	project := createTestProject(t, db)

	created, err := db.CreateNote(ctx, models.NoteCreate{ProjectID: project.ID, Title: "Note"})
	require.NoError(t, err)

	err = db.DeleteNote(ctx, created.ID)
	require.NoError(t, err)

	notes, err := db.ListNotesByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestDeleteNote_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	err := db.DeleteNote(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
