package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"stories-backend/internal/domains/story"
	"stories-backend/internal/shared/response"
)

type StoryHandler struct {
	svc story.Service
}

func NewStoryHandler(svc story.Service) *StoryHandler {
	return &StoryHandler{svc: svc}
}

// GetStories lists stories without their content.
// GET /api/stories?page=&limit=&status=
func (h *StoryHandler) GetStories(c *gin.Context) {
	filter := story.ListFilter{
		Status: c.Query("status"),
		Page:   intQuery(c, "page", 1),
		Limit:  intQuery(c, "limit", 10),
	}

	page, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetStoryBySlug returns one full story.
// GET /api/stories/:slug
func (h *StoryHandler) GetStoryBySlug(c *gin.Context) {
	st, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"story": st})
}

// GetStoryByID returns one full story.
// GET /api/stories/id/:id
func (h *StoryHandler) GetStoryByID(c *gin.Context) {
	id, ok := storyID(c)
	if !ok {
		return
	}

	st, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"story": st})
}

// CreateStory creates a story from a full payload.
// POST /api/stories
func (h *StoryHandler) CreateStory(c *gin.Context) {
	var req story.CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	st, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "story": st})
}

// UpdateStory applies a partial payload to an existing story.
// PUT /api/stories/:id
func (h *StoryHandler) UpdateStory(c *gin.Context) {
	id, ok := storyID(c)
	if !ok {
		return
	}

	var req story.UpdateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	st, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "story": st})
}

// DeleteStory hard-deletes a story.
// DELETE /api/stories/:id
func (h *StoryHandler) DeleteStory(c *gin.Context) {
	id, ok := storyID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Story deleted successfully"})
}

// respondError maps domain errors to the uniform error body.
func (h *StoryHandler) respondError(c *gin.Context, err error) {
	var validationErr *story.ValidationError

	switch {
	case errors.As(err, &validationErr):
		response.BadRequest(c, validationErr.Message)
	case errors.Is(err, story.ErrSlugTaken):
		response.BadRequest(c, "Slug already exists")
	case errors.Is(err, story.ErrNotFound):
		response.NotFound(c, "Story not found")
	default:
		response.InternalError(c, err)
	}
}

func storyID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid story ID")
		return primitive.NilObjectID, false
	}
	return id, true
}

func intQuery(c *gin.Context, key string, defaultValue int) int {
	if value := c.Query(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
