package handlers

import (
	"errors"
	"net/http"

	"daftar/database"
	"daftar/models"
	"daftar/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func ListNotes(db Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
			return
		}

		ctx := c.Request.Context()
		notes, err := db.ListNotesByProject(ctx, projectID)
		if err != nil {
			log.Error().Err(err).Msg("list notes")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notes"})
			return
		}

		c.JSON(http.StatusOK, models.NotesResponse{
			Notes: notes,
			Total: len(notes),
		})
	}
}

func CreateNote(db Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
			return
		}

		var req models.CreateNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
			return
		}

		create := models.NoteCreate{ProjectID: projectID}

		title, verr := validation.NoteTitle(req.Title)
		if verr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		create.Title = title

		content, verr := validation.NoteContent(req.Content)
		if verr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		create.Content = content

		if req.Tabs != nil {
			tabs, verr := validation.Tabs("tabs", *req.Tabs)
			if verr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
				return
			}
			create.Tabs = tabs
		}

		activeTab, verr := validation.OptionalString("active_tab", req.ActiveTab, 0)
		if verr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		create.ActiveTab = activeTab

		if req.DefaultTabs != nil {
			defaultTabs, verr := validation.StringList("default_tabs", *req.DefaultTabs)
			if verr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
				return
			}
			create.DefaultTabs = defaultTabs
		}

		ctx := c.Request.Context()
		note, err := db.CreateNote(ctx, create)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
				return
			}
			log.Error().Err(err).Msg("create note")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create note"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"note": note})
	}
}

func UpdateNote(db Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		noteID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note ID"})
			return
		}

		var req models.UpdateNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
			return
		}

		update := models.NoteUpdate{}

		if req.Title != nil {
			title, verr := validation.NoteTitle(*req.Title)
			if verr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
				return
			}
			update.Title = &title
		}

		if req.Content != nil {
			content, verr := validation.NoteContent(req.Content)
			if verr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
				return
			}
			update.Content = content
			update.HasContent = true
		}

		if req.Tabs != nil {
			tabs, verr := validation.Tabs("tabs", *req.Tabs)
			if verr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
				return
			}
			update.Tabs = tabs
			update.HasTabs = true
		}

		if req.ActiveTab != nil {
			activeTab, verr := validation.OptionalString("active_tab", req.ActiveTab, 0)
			if verr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
				return
			}
			update.ActiveTab = activeTab
			update.HasActiveTab = true
		}

		if req.DefaultTabs != nil {
			defaultTabs, verr := validation.StringList("default_tabs", *req.DefaultTabs)
			if verr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
				return
			}
			update.DefaultTabs = defaultTabs
			update.HasDefaultTabs = true
		}

		ctx := c.Request.Context()
		note, err := db.UpdateNote(ctx, noteID, update)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
				return
			}
			log.Error().Err(err).Msg("update note")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update note"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"note": note})
	}
}

func DeleteNote(db Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		noteID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note ID"})
			return
		}

		ctx := c.Request.Context()
		if err := db.DeleteNote(ctx, noteID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
				return
			}
			log.Error().Err(err).Msg("delete note")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete note"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "note deleted"})
	}
}

// ReorderNotes persists a caller-supplied ordering. The whole batch is
// validated before any write; per-row failures afterwards are reported
// without rolling back the rows that went through.
func ReorderNotes(db Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ReorderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
			return
		}

		if len(req.NoteOrders) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "noteOrders must be a non-empty array"})
			return
		}

		orders := make([]models.NoteOrder, 0, len(req.NoteOrders))
		for _, item := range req.NoteOrders {
			if item.ID == nil || *item.ID == uuid.Nil || item.Order == nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "each item must have id (uuid) and order (integer) properties",
				})
				return
			}
			orders = append(orders, models.NoteOrder{ID: *item.ID, Order: *item.Order})
		}

		ctx := c.Request.Context()
		updated, err := db.ReorderNotes(ctx, orders)
		if err != nil {
			var reorderErr *database.ReorderError
			if errors.As(err, &reorderErr) {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":      "failed to update some note orders",
					"failed_ids": reorderErr.FailedIDs,
					"updated":    updated,
				})
				return
			}
			log.Error().Err(err).Msg("reorder notes")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reorder notes"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "note orders updated",
			"updated": updated,
		})
	}
}
