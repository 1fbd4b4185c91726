package story

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is the story lifecycle state. Two states, no automatic
// transitions; changes only happen via an explicit status field in a
// create/update payload.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// IsValid reports whether s is a known status value.
func (s Status) IsValid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Story is the sole entity of the system. Field names on the wire
// (json and bson) are camelCase, with the Mongo `_id` exposed as-is.
//
// Content carries omitempty so list projections (which exclude the
// body) serialize without an empty content field.
type Story struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title         string             `bson:"title" json:"title"`
	Slug          string             `bson:"slug" json:"slug"`
	Content       string             `bson:"content,omitempty" json:"content,omitempty"`
	Excerpt       string             `bson:"excerpt" json:"excerpt"`
	AuthorName    string             `bson:"authorName" json:"authorName"`
	FeaturedImage string             `bson:"featuredImage" json:"featuredImage"`
	Status        Status             `bson:"status" json:"status"`
	PublishedAt   *time.Time         `bson:"publishedAt" json:"publishedAt"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ChangeStatus sets the status and applies the publish-timestamp rule:
// the first transition into published while publishedAt is unset stamps
// it with now; re-publishing an already-stamped story keeps the
// original timestamp; any transition to draft clears it.
func (s *Story) ChangeStatus(status Status, now time.Time) {
	s.Status = status

	switch {
	case status == StatusPublished && s.PublishedAt == nil:
		s.PublishedAt = &now
	case status == StatusDraft:
		s.PublishedAt = nil
	}
}

// ListFilter narrows and pages the story listing. Status "" or "all"
// means no status filter.
type ListFilter struct {
	Status string
	Page   int
	Limit  int
}

// StoryPage is one page of listing results, in the wire shape the
// frontend consumes directly.
type StoryPage struct {
	Stories     []Story `json:"stories"`
	TotalPages  int     `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
	Total       int64   `json:"total"`
}
