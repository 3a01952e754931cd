package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/legal-case-service/internal/domain"
	"github.com/spec-kit/legal-case-service/internal/repository"
	apperrors "github.com/spec-kit/legal-case-service/pkg/util"
)

const principalKey = "auth_principal"

// Middleware validates bearer tokens and loads the current user. The user is
// reloaded on every request so deactivating an account revokes outstanding
// tokens immediately, without a revocation list.
type Middleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewMiddleware constructs the gateway middleware.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// Authenticate enforces authentication for protected routes.
func (m *Middleware) Authenticate(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized(apperrors.CodeMissingToken, "access token required")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized(apperrors.CodeMissingToken, "access token required")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		if err == ErrTokenExpired {
			return apperrors.NewUnauthorized(apperrors.CodeExpiredToken, "token expired")
		}
		return apperrors.NewUnauthorized(apperrors.CodeInvalidToken, "invalid token")
	}

	user, err := m.users.GetActiveByID(c.Context(), claims.UserID)
	if err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NewUnauthorized(apperrors.CodeInvalidUser, "user invalid or inactive")
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, user)
	return c.Next()
}

// RequireRoles ensures the authenticated user holds one of the allowed roles.
// An empty allow-list admits any authenticated user.
func RequireRoles(allowed ...domain.UserRole) fiber.Handler {
	allowedSet := make(map[domain.UserRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return apperrors.NewUnauthorized(apperrors.CodeMissingToken, "not authenticated")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[user.Role]; !exists {
			return apperrors.NewForbidden("access denied, insufficient permissions")
		}
		return c.Next()
	}
}

// CurrentUser retrieves the authenticated user from the request context.
func CurrentUser(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}
