package story

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is the story business logic: validation, slug resolution and
// the publish-timestamp side effect sit behind this interface.
type Service interface {
	List(ctx context.Context, filter ListFilter) (*StoryPage, error)
	GetBySlug(ctx context.Context, slug string) (*Story, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Story, error)
	Create(ctx context.Context, req CreateStoryRequest) (*Story, error)
	Update(ctx context.Context, id primitive.ObjectID, req UpdateStoryRequest) (*Story, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
