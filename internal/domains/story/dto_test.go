package story

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateStoryRequest {
	return CreateStoryRequest{
		Title:         "A Valid Title",
		Content:       "This content is long enough.",
		Excerpt:       "A valid excerpt here.",
		AuthorName:    "Jane Doe",
		FeaturedImage: "https://example.com/cover.jpg",
		Status:        "draft",
	}
}

func TestCreateRequestValid(t *testing.T) {
	req := validCreateRequest().Trimmed()
	assert.NoError(t, req.Validate())

	// Status absent means default draft, not a violation.
	req.Status = ""
	assert.NoError(t, req.Validate())
}

func TestCreateRequestViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateStoryRequest)
		message string
	}{
		{
			"missing title",
			func(r *CreateStoryRequest) { r.Title = "" },
			"Title is required and must be at least 3 characters",
		},
		{
			"short title",
			func(r *CreateStoryRequest) { r.Title = "ab" },
			"Title is required and must be at least 3 characters",
		},
		{
			"whitespace-only title",
			func(r *CreateStoryRequest) { r.Title = "   " },
			"Title is required and must be at least 3 characters",
		},
		{
			"short content",
			func(r *CreateStoryRequest) { r.Content = "too short" },
			"Content is required and must be at least 10 characters",
		},
		{
			"short excerpt",
			func(r *CreateStoryRequest) { r.Excerpt = "tiny" },
			"Excerpt is required and must be between 10 and 300 characters",
		},
		{
			"long excerpt",
			func(r *CreateStoryRequest) { r.Excerpt = strings.Repeat("x", 301) },
			"Excerpt is required and must be between 10 and 300 characters",
		},
		{
			"short author name",
			func(r *CreateStoryRequest) { r.AuthorName = "J" },
			"Author name is required and must be at least 2 characters",
		},
		{
			"missing featured image",
			func(r *CreateStoryRequest) { r.FeaturedImage = "  " },
			"Featured image URL is required",
		},
		{
			"unknown status",
			func(r *CreateStoryRequest) { r.Status = "archived" },
			`Status must be either "published" or "draft"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			err := req.Trimmed().Validate()
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.message, validationErr.Message)
		})
	}
}

// The excerpt bounds are inclusive: exactly 10 and exactly 300 pass,
// 9 and 301 fail.
func TestExcerptBoundaries(t *testing.T) {
	for length, wantErr := range map[int]bool{9: true, 10: false, 300: false, 301: true} {
		req := validCreateRequest()
		req.Excerpt = strings.Repeat("x", length)

		err := req.Trimmed().Validate()
		if wantErr {
			assert.Error(t, err, "excerpt length %d should fail", length)
		} else {
			assert.NoError(t, err, "excerpt length %d should pass", length)
		}
	}
}

// Content is validated against its trimmed length.
func TestContentTrimmedLength(t *testing.T) {
	req := validCreateRequest()
	req.Content = "  12345678  " // 8 characters after trimming

	assert.Error(t, req.Trimmed().Validate())
}

func TestUpdateRequestPartialSemantics(t *testing.T) {
	// Nothing present means nothing to validate.
	assert.NoError(t, UpdateStoryRequest{}.Validate())

	// One valid present field.
	title := "New Title"
	assert.NoError(t, UpdateStoryRequest{Title: &title}.Trimmed().Validate())

	// Other absent fields never mask a present invalid one.
	short := "ab"
	err := UpdateStoryRequest{Title: &short}.Trimmed().Validate()
	require.Error(t, err)
	assert.EqualError(t, err, "Title must be at least 3 characters")
}

func TestUpdateRequestViolations(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name    string
		req     UpdateStoryRequest
		message string
	}{
		{"empty title", UpdateStoryRequest{Title: strPtr("  ")}, "Title must be at least 3 characters"},
		{"short content", UpdateStoryRequest{Content: strPtr("short")}, "Content must be at least 10 characters"},
		{"short excerpt", UpdateStoryRequest{Excerpt: strPtr("oops")}, "Excerpt must be between 10 and 300 characters"},
		{"long excerpt", UpdateStoryRequest{Excerpt: strPtr(strings.Repeat("y", 301))}, "Excerpt must be between 10 and 300 characters"},
		{"short author", UpdateStoryRequest{AuthorName: strPtr("x")}, "Author name must be at least 2 characters"},
		{"empty image", UpdateStoryRequest{FeaturedImage: strPtr("")}, "Featured image URL cannot be empty"},
		{"bad status", UpdateStoryRequest{Status: strPtr("pending")}, `Status must be either "published" or "draft"`},
		{"empty status", UpdateStoryRequest{Status: strPtr("")}, `Status must be either "published" or "draft"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Trimmed().Validate()
			require.Error(t, err)
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestTrimmedCopies(t *testing.T) {
	req := CreateStoryRequest{Title: "  Padded Title  "}
	trimmed := req.Trimmed()

	assert.Equal(t, "Padded Title", trimmed.Title)
	assert.Equal(t, "  Padded Title  ", req.Title, "Trimmed must not mutate the receiver")

	padded := "  padded  "
	update := UpdateStoryRequest{Title: &padded}
	assert.Equal(t, "padded", *update.Trimmed().Title)
	assert.Equal(t, "  padded  ", padded)
}
