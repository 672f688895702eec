package main

import (
	"context"
	"os"
	"time"

	"daftar/database"
	"daftar/handlers"
	"daftar/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	godotenv.Load()
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal().Msg("DATABASE_URL not set")
	}

	// Create context with timeout for initial connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	r := gin.Default()
	r.Use(middleware.CORS())

	r.GET("/health", handlers.HealthCheck)

	r.GET("/projects", handlers.ListProjects(db))
	r.POST("/projects", handlers.CreateProject(db))
	r.GET("/projects/:id", handlers.GetProject(db))
	r.PUT("/projects/:id", handlers.UpdateProject(db))
	r.DELETE("/projects/:id", handlers.DeleteProject(db))

	r.GET("/projects/:id/notes", handlers.ListNotes(db))
	r.POST("/projects/:id/notes", handlers.CreateNote(db))

	r.PUT("/notes/reorder", handlers.ReorderNotes(db))
	r.PUT("/notes/:id", handlers.UpdateNote(db))
	r.DELETE("/notes/:id", handlers.DeleteNote(db))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("server starting")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
