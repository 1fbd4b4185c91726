package story

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateStoryRequest is the full write payload for story creation.
// Status is optional and defaults to draft.
type CreateStoryRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	AuthorName    string `json:"authorName"`
	FeaturedImage string `json:"featuredImage"`
	Status        string `json:"status"`
}

// UpdateStoryRequest is a partial payload: nil means "leave unchanged".
type UpdateStoryRequest struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	Excerpt       *string `json:"excerpt"`
	AuthorName    *string `json:"authorName"`
	FeaturedImage *string `json:"featuredImage"`
	Status        *string `json:"status"`
}

// Trimmed returns a copy with leading/trailing whitespace removed from
// every text field. Validation and storage both operate on the trimmed
// values.
func (r CreateStoryRequest) Trimmed() CreateStoryRequest {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
	r.Excerpt = strings.TrimSpace(r.Excerpt)
	r.AuthorName = strings.TrimSpace(r.AuthorName)
	r.FeaturedImage = strings.TrimSpace(r.FeaturedImage)
	r.Status = strings.TrimSpace(r.Status)
	return r
}

// Trimmed returns a copy with every present field trimmed.
func (r UpdateStoryRequest) Trimmed() UpdateStoryRequest {
	r.Title = trimPtr(r.Title)
	r.Content = trimPtr(r.Content)
	r.Excerpt = trimPtr(r.Excerpt)
	r.AuthorName = trimPtr(r.AuthorName)
	r.FeaturedImage = trimPtr(r.FeaturedImage)
	r.Status = trimPtr(r.Status)
	return r
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// Validate checks the create rules field by field, returning the first
// violation in a fixed order: title, content, excerpt, authorName,
// featuredImage, status. Call on a Trimmed() copy.
func (r CreateStoryRequest) Validate() error {
	checks := []struct {
		value string
		rules []validation.Rule
	}{
		{r.Title, []validation.Rule{
			validation.Required.Error("Title is required and must be at least 3 characters"),
			validation.RuneLength(3, 0).Error("Title is required and must be at least 3 characters"),
		}},
		{r.Content, []validation.Rule{
			validation.Required.Error("Content is required and must be at least 10 characters"),
			validation.RuneLength(10, 0).Error("Content is required and must be at least 10 characters"),
		}},
		{r.Excerpt, []validation.Rule{
			validation.Required.Error("Excerpt is required and must be between 10 and 300 characters"),
			validation.RuneLength(10, 300).Error("Excerpt is required and must be between 10 and 300 characters"),
		}},
		{r.AuthorName, []validation.Rule{
			validation.Required.Error("Author name is required and must be at least 2 characters"),
			validation.RuneLength(2, 0).Error("Author name is required and must be at least 2 characters"),
		}},
		{r.FeaturedImage, []validation.Rule{
			validation.Required.Error("Featured image URL is required"),
		}},
	}

	for _, check := range checks {
		if err := validation.Validate(check.value, check.rules...); err != nil {
			return NewValidationError(err.Error())
		}
	}

	return validateStatus(r.Status)
}

// Validate checks the update rules: every field is optional, but a
// present field must satisfy the same constraint as on create.
// Call on a Trimmed() copy.
func (r UpdateStoryRequest) Validate() error {
	checks := []struct {
		value *string
		rules []validation.Rule
	}{
		{r.Title, []validation.Rule{
			validation.Required.Error("Title must be at least 3 characters"),
			validation.RuneLength(3, 0).Error("Title must be at least 3 characters"),
		}},
		{r.Content, []validation.Rule{
			validation.Required.Error("Content must be at least 10 characters"),
			validation.RuneLength(10, 0).Error("Content must be at least 10 characters"),
		}},
		{r.Excerpt, []validation.Rule{
			validation.Required.Error("Excerpt must be between 10 and 300 characters"),
			validation.RuneLength(10, 300).Error("Excerpt must be between 10 and 300 characters"),
		}},
		{r.AuthorName, []validation.Rule{
			validation.Required.Error("Author name must be at least 2 characters"),
			validation.RuneLength(2, 0).Error("Author name must be at least 2 characters"),
		}},
		{r.FeaturedImage, []validation.Rule{
			validation.Required.Error("Featured image URL cannot be empty"),
		}},
	}

	for _, check := range checks {
		if check.value == nil {
			continue
		}
		if err := validation.Validate(*check.value, check.rules...); err != nil {
			return NewValidationError(err.Error())
		}
	}

	if r.Status == nil {
		return nil
	}
	// A present status must be a valid enum value; unlike create there
	// is no empty-means-default here.
	err := validation.Validate(*r.Status,
		validation.Required.Error(`Status must be either "published" or "draft"`),
		validation.In(string(StatusPublished), string(StatusDraft)).
			Error(`Status must be either "published" or "draft"`),
	)
	if err != nil {
		return NewValidationError(err.Error())
	}
	return nil
}

func validateStatus(status string) error {
	if status == "" {
		return nil
	}
	err := validation.Validate(status,
		validation.In(string(StatusPublished), string(StatusDraft)).
			Error(`Status must be either "published" or "draft"`),
	)
	if err != nil {
		return NewValidationError(err.Error())
	}
	return nil
}
