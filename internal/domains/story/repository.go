package story

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the persistence boundary for stories. Implementations
// own the storage timestamps (createdAt/updatedAt) and must translate
// storage-level signals into domain errors: a unique-index rejection
// becomes ErrSlugTaken, a missing document becomes ErrNotFound.
type Repository interface {
	Insert(ctx context.Context, s *Story) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Story, error)
	FindBySlug(ctx context.Context, slug string) (*Story, error)

	// List returns one page of stories (content excluded) plus the
	// total count for the filter, sorted publishedAt desc then
	// createdAt desc.
	List(ctx context.Context, filter ListFilter) ([]Story, int64, error)

	Update(ctx context.Context, s *Story) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
