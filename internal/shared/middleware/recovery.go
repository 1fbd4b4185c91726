package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"stories-backend/internal/shared/response"
)

// Recovery converts panics into 500 responses with the standard
// error body instead of killing the connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("error", r).
					Msg("Panic recovered")

				response.InternalError(c, fmt.Errorf("panic: %v", r))
				c.Abort()
			}
		}()

		c.Next()
	}
}
