package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"stories-backend/internal/shared/middleware"
	"stories-backend/internal/shared/response"
	"stories-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupStoryRoutes(api, c)
	}

	// Unknown routes get the uniform error body, not gin's default 404.
	router.NoRoute(func(ctx *gin.Context) {
		response.Fail(ctx, http.StatusNotFound, fmt.Sprintf("Not found - %s", ctx.Request.URL.Path))
	})

	return router
}

func setupStoryRoutes(api *gin.RouterGroup, c *container.Container) {
	stories := api.Group("/stories")
	{
		stories.GET("", c.StoryHandler.GetStories)
		// The static /id segment must coexist with the :slug param;
		// gin prefers the static match.
		stories.GET("/id/:id", c.StoryHandler.GetStoryByID)
		stories.GET("/:slug", c.StoryHandler.GetStoryBySlug)
		stories.POST("", c.StoryHandler.CreateStory)
		stories.PUT("/:id", c.StoryHandler.UpdateStory)
		stories.DELETE("/:id", c.StoryHandler.DeleteStory)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": fmt.Sprintf("%s is running", c.Config.App.Name),
		})
	}
}
