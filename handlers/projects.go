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

func ListProjects(db Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		projects, err := db.ListProjects(ctx)
		if err != nil {
			log.Error().Err(err).Msg("list projects")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
			return
		}

		c.JSON(http.StatusOK, models.ProjectsResponse{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

func CreateProject(db Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
			return
		}

		name, verr := validation.ProjectName(req.Name)
		if verr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}

		description, verr := validation.ProjectDescription(req.Description)
		if verr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}

		ctx := c.Request.Context()
		project, err := db.CreateProject(ctx, name, description)
		if err != nil {
			log.Error().Err(err).Msg("create project")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"project": project})
	}
}

func GetProject(db Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
			return
		}

		ctx := c.Request.Context()
		project, err := db.GetProject(ctx, projectID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
				return
			}
			log.Error().Err(err).Msg("get project")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get project"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"project": project})
	}
}

func UpdateProject(db Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
			return
		}

		var req models.UpdateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
			return
		}

		update := models.ProjectUpdate{}

		if req.Name != nil {
			name, verr := validation.ProjectName(*req.Name)
			if verr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
				return
			}
			update.Name = &name
		}

		if req.Description != nil {
			description, verr := validation.ProjectDescription(req.Description)
			if verr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
				return
			}
			update.Description = description
			update.HasDescription = true
		}

		ctx := c.Request.Context()
		project, err := db.UpdateProject(ctx, projectID, update)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
				return
			}
			log.Error().Err(err).Msg("update project")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"project": project})
	}
}

func DeleteProject(db Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
			return
		}

		ctx := c.Request.Context()
		if err := db.DeleteProject(ctx, projectID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
				return
			}
			log.Error().Err(err).Msg("delete project")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
	}
}
