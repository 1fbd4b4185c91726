package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"stories-backend/internal/domains/story"
	"stories-backend/internal/shared/utils"
)

const (
	// maxSlugAttempts bounds the resolver's candidate loop. The source
	// behavior is an unbounded retry; the cap trades exact fidelity for
	// not spinning forever when one title is created thousands of times.
	maxSlugAttempts = 100

	// fallbackSlugBase is used when a title strips down to nothing
	// (all punctuation/emoji), keeping slugs non-empty and hyphen-clean.
	fallbackSlugBase = "untitled"
)

type storyService struct {
	repo story.Repository
	now  func() time.Time
}

func NewService(repo story.Repository) story.Service {
	return &storyService{repo: repo, now: time.Now}
}

func (s *storyService) List(ctx context.Context, filter story.ListFilter) (*story.StoryPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	stories, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &story.StoryPage{
		Stories:     stories,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		CurrentPage: filter.Page,
		Total:       total,
	}, nil
}

func (s *storyService) GetBySlug(ctx context.Context, slug string) (*story.Story, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *storyService) GetByID(ctx context.Context, id primitive.ObjectID) (*story.Story, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *storyService) Create(ctx context.Context, req story.CreateStoryRequest) (*story.Story, error) {
	req = req.Trimmed()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.createOnce(ctx, req)
	if errors.Is(err, story.ErrSlugTaken) {
		// The resolver's pre-check lost a race against a concurrent
		// write; re-resolve against the now-current state and try once
		// more before giving up.
		created, err = s.createOnce(ctx, req)
	}
	return created, err
}

func (s *storyService) createOnce(ctx context.Context, req story.CreateStoryRequest) (*story.Story, error) {
	slug, err := s.resolveUniqueSlug(ctx, req.Title, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}

	status := story.StatusDraft
	if req.Status != "" {
		status = story.Status(req.Status)
	}

	st := &story.Story{
		Title:         req.Title,
		Slug:          slug,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		AuthorName:    req.AuthorName,
		FeaturedImage: req.FeaturedImage,
	}
	st.ChangeStatus(status, s.now().UTC())

	if err := s.repo.Insert(ctx, st); err != nil {
		return nil, err
	}

	return st, nil
}

func (s *storyService) Update(ctx context.Context, id primitive.ObjectID, req story.UpdateStoryRequest) (*story.Story, error) {
	req = req.Trimmed()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.updateOnce(ctx, id, req)
	if errors.Is(err, story.ErrSlugTaken) {
		updated, err = s.updateOnce(ctx, id, req)
	}
	return updated, err
}

func (s *storyService) updateOnce(ctx context.Context, id primitive.ObjectID, req story.UpdateStoryRequest) (*story.Story, error) {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		st.Title = *req.Title
		// A changed title regenerates the slug; the story's own slug
		// does not count as a collision.
		slug, err := s.resolveUniqueSlug(ctx, *req.Title, id)
		if err != nil {
			return nil, err
		}
		st.Slug = slug
	}
	if req.Content != nil {
		st.Content = *req.Content
	}
	if req.Excerpt != nil {
		st.Excerpt = *req.Excerpt
	}
	if req.AuthorName != nil {
		st.AuthorName = *req.AuthorName
	}
	if req.FeaturedImage != nil {
		st.FeaturedImage = *req.FeaturedImage
	}
	if req.Status != nil {
		st.ChangeStatus(story.Status(*req.Status), s.now().UTC())
	}

	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}

	return st, nil
}

func (s *storyService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}

// resolveUniqueSlug turns a title into a collision-free slug: try the
// base, then base-1, base-2, ... until no other story holds the
// candidate. excludeID skips the story being updated so an unchanged
// title resolves to its own existing slug.
//
// This is an optimistic pre-check, not a guarantee: two concurrent
// writers can both see a candidate as free. The unique index is the
// correctness backstop; callers retry on ErrSlugTaken.
func (s *storyService) resolveUniqueSlug(ctx context.Context, title string, excludeID primitive.ObjectID) (string, error) {
	base := utils.GenerateSlug(title)
	if base == "" {
		base = fallbackSlugBase
	}

	candidate := base
	for counter := 1; counter <= maxSlugAttempts; counter++ {
		existing, err := s.repo.FindBySlug(ctx, candidate)
		if errors.Is(err, story.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		if !excludeID.IsZero() && existing.ID == excludeID {
			return candidate, nil
		}

		candidate = fmt.Sprintf("%s-%d", base, counter)
	}

	return "", story.ErrSlugExhausted
}
