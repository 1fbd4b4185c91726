package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"stories-backend/internal/config"
	"stories-backend/internal/domains/story"
	storyHandler "stories-backend/internal/domains/story/handler"
	storyRepo "stories-backend/internal/domains/story/repository"
	storyService "stories-backend/internal/domains/story/service"
	"stories-backend/internal/infrastructure/database"
)

// Container holds every long-lived dependency of the application.
// Wiring order matters: config, then infrastructure, then repository,
// service and handler layers on top.
type Container struct {
	Config *config.Config
	DB     *database.MongoDB

	StoryRepo    story.Repository
	StoryService story.Service
	StoryHandler *storyHandler.StoryHandler
}

// NewContainer builds the full dependency graph. Any failure here
// aborts boot; there is no degraded mode without the database.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db, err := database.NewMongoDB(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := db.EnsureStoryIndexes(ctx); err != nil {
		_ = db.Close(ctx)
		return nil, err
	}

	c.StoryRepo = storyRepo.NewMongoRepository(db.Database)
	c.StoryService = storyService.NewService(c.StoryRepo)
	c.StoryHandler = storyHandler.NewStoryHandler(c.StoryService)

	return c, nil
}

// Cleanup releases held resources. Called once during shutdown.
func (c *Container) Cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if c.DB != nil {
		if err := c.DB.Close(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to close database connection")
		}
	}
}
