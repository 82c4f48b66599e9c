package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sapateam/roombooker/internal/auth"
	"github.com/sapateam/roombooker/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	ctxTelegramIDKey = "telegram_id"
	ctxAdminLevelKey = "admin_level"
)

// AdminLevels resolves the admin tier of a telegram id, 0 for regular users.
type AdminLevels interface {
	Level(ctx context.Context, telegramID int64) (int, error)
}

type AuthMiddleware struct {
	tokens *auth.Service
	admins AdminLevels
}

func NewAuthMiddleware(tokens *auth.Service, admins AdminLevels) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, admins: admins}
}

// RequireAuth validates the bearer token and resolves the caller's admin
// level. The level is looked up per request so demotions take effect without
// waiting for the token to expire.
func (m *AuthMiddleware) RequireAuth() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "access token required"})
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimSpace(header[len("Bearer "):]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			return
		}

		level, err := m.admins.Level(c.Request.Context(), claims.TelegramID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": "internal server error"})
			return
		}

		c.Set(ctxTelegramIDKey, claims.TelegramID)
		c.Set(ctxAdminLevelKey, level)
		c.Next()
	}
}

// RequireAdmin rejects callers below minLevel. Use after RequireAuth.
func (m *AuthMiddleware) RequireAdmin(minLevel int) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		level, ok := AdminLevel(c)
		if !ok || level < minLevel {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": domain.ErrForbidden.Error()})
			return
		}
		c.Next()
	}
}

func TelegramID(c *ginext.Context) (int64, bool) {
	v, exists := c.Get(ctxTelegramIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func AdminLevel(c *ginext.Context) (int, bool) {
	v, exists := c.Get(ctxAdminLevelKey)
	if !exists {
		return 0, false
	}
	level, ok := v.(int)
	return level, ok
}
