package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LeonSoftLab/SupportAPI/internal/auth"
	"github.com/LeonSoftLab/SupportAPI/internal/model"
)

const principalKey = "principal"

// AuthMiddleware resolves the bearer token and enforces the active gate on
// every request behind it. Internal rejection kinds are collapsed into an
// opaque 401 so callers cannot probe which step failed.
func AuthMiddleware(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		user, err := authService.Resolve(c.Request.Context(), token)
		if err == nil {
			err = auth.RequireActive(user)
		}
		if err != nil {
			writeRejection(c, err)
			c.Abort()
			return
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

// RequireAdmin gates admin-only routes. Must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.RequireRole(GetPrincipal(c), model.RoleAdmin); err != nil {
			writeRejection(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetPrincipal(c *gin.Context) *model.User {
	if value, ok := c.Get(principalKey); ok {
		if user, ok := value.(*model.User); ok {
			return user
		}
	}
	return nil
}

func writeRejection(c *gin.Context, err error) {
	switch {
	case auth.KindOf(err) == auth.KindForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case auth.KindOf(err) != "":
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, auth.ErrDirectoryUnavailable):
		// An outage is not a bad login.
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}

func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := originMap[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
