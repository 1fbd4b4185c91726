package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stories-backend/internal/domains/story"
)

const collectionName = "stories"

type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository returns a story.Repository backed by the stories
// collection. Requires the unique slug index (created at boot) to be
// in place; duplicate-key rejections from it surface as ErrSlugTaken.
func NewMongoRepository(db *mongo.Database) story.Repository {
	return &mongoRepository{coll: db.Collection(collectionName)}
}

func (r *mongoRepository) Insert(ctx context.Context, s *story.Story) error {
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}

	_, err := r.coll.InsertOne(ctx, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return story.ErrSlugTaken
		}
		return fmt.Errorf("failed to insert story: %w", err)
	}

	return nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*story.Story, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) FindBySlug(ctx context.Context, slug string) (*story.Story, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *mongoRepository) findOne(ctx context.Context, filter bson.M) (*story.Story, error) {
	var s story.Story
	if err := r.coll.FindOne(ctx, filter).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, story.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find story: %w", err)
	}
	return &s, nil
}

func (r *mongoRepository) List(ctx context.Context, filter story.ListFilter) ([]story.Story, int64, error) {
	query := bson.M{}
	if filter.Status != "" && filter.Status != "all" {
		query["status"] = filter.Status
	}

	skip := int64(filter.Page-1) * int64(filter.Limit)

	opts := options.Find().
		SetProjection(bson.M{"content": 0}).
		SetSort(bson.D{
			{Key: "publishedAt", Value: -1},
			{Key: "createdAt", Value: -1},
		}).
		SetSkip(skip).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list stories: %w", err)
	}

	stories := make([]story.Story, 0, filter.Limit)
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, 0, fmt.Errorf("failed to decode stories: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count stories: %w", err)
	}

	return stories, total, nil
}

func (r *mongoRepository) Update(ctx context.Context, s *story.Story) error {
	s.UpdatedAt = time.Now().UTC()

	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return story.ErrSlugTaken
		}
		return fmt.Errorf("failed to update story: %w", err)
	}
	if result.MatchedCount == 0 {
		return story.ErrNotFound
	}

	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete story: %w", err)
	}
	if result.DeletedCount == 0 {
		return story.ErrNotFound
	}

	return nil
}
