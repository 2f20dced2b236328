package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"order-assembly/internal/domain/credential"
	"order-assembly/internal/handler/httperr"
	"order-assembly/internal/pkg/clock"

	"github.com/gin-gonic/gin"
)

// Header name lookup is case-insensitive per net/http; the key value itself
// is compared case-sensitively by the registry.
const apiKeyHeader = "x-api-key"

const ctxClientNameKey = "client_name"

type AuthMiddleware struct {
	registry *credential.Registry
	clock    clock.Clock
}

func NewAuthMiddleware(registry *credential.Registry, clock clock.Clock) *AuthMiddleware {
	return &AuthMiddleware{
		registry: registry,
		clock:    clock,
	}
}

// RequireAPIKey authenticates the caller before any payload validation runs.
// A missing, unknown, or expired key aborts with 401 so validation errors can
// never mask an auth failure.
func (m *AuthMiddleware) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(apiKeyHeader)

		cred, err := m.registry.Authenticate(key, m.clock.Now())
		if err != nil {
			slog.Warn("API key authentication failed in auth middleware",
				"path", c.Request.URL.Path,
				"reason", err.Error(),
			)
			httperr.AbortWithError(c, http.StatusUnauthorized, err, authErrorMessage(err), nil)
			return
		}

		c.Set(ctxClientNameKey, cred.Name())
		c.Next()
	}
}

func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, credential.ErrMissingKey):
		return "API key required"
	case errors.Is(err, credential.ErrExpiredKey):
		return "API key expired"
	default:
		return "Invalid API key"
	}
}

func GetClientName(c *gin.Context) (string, bool) {
	name, exists := c.Get(ctxClientNameKey)
	if !exists {
		return "", false
	}
	s, ok := name.(string)
	return s, ok
}
