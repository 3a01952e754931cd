package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/legal-case-service/internal/domain"
	apperrors "github.com/spec-kit/legal-case-service/pkg/util"
)

type stubUserRepo struct {
	active map[string]*domain.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }

func (s *stubUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.GetActiveByID(ctx, id)
}

func (s *stubUserRepo) GetActiveByID(ctx context.Context, id string) (*domain.User, error) {
	if user, ok := s.active[id]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range s.active {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubUserRepo) ListActive(ctx context.Context) ([]domain.User, error) {
	return nil, nil
}

func newTestApp(m *Middleware) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
				"success": false,
				"error":   fiber.Map{"code": domainErr.Code, "message": domainErr.Message},
			})
		},
	})

	ok := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	}
	app.Get("/me", m.Authenticate, ok)
	app.Get("/admin", m.Authenticate, RequireRoles(domain.RoleAdmin), ok)
	app.Get("/write", m.Authenticate, RequireRoles(domain.RoleAdmin, domain.RoleAdvogado), ok)
	return app
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error.Code
}

func TestAuthenticateMissingToken(t *testing.T) {
	m := NewMiddleware(NewTokenManager("test-secret", time.Hour), &stubUserRepo{})
	app := newTestApp(m)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, apperrors.CodeMissingToken, errorCode(t, resp))
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	m := NewMiddleware(NewTokenManager("test-secret", time.Hour), &stubUserRepo{})
	app := newTestApp(m)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, apperrors.CodeMissingToken, errorCode(t, resp))
}

func TestAuthenticateInvalidToken(t *testing.T) {
	m := NewMiddleware(NewTokenManager("test-secret", time.Hour), &stubUserRepo{})
	app := newTestApp(m)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, apperrors.CodeInvalidToken, errorCode(t, resp))
}

func TestAuthenticateExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Millisecond)
	m := NewMiddleware(tm, &stubUserRepo{})
	app := newTestApp(m)

	token, _, err := tm.GenerateToken(testUser())
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, apperrors.CodeExpiredToken, errorCode(t, resp))
}

func TestAuthenticateDeactivatedUser(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	// The repo holds no active users, so a structurally valid token for a
	// deactivated account is rejected.
	m := NewMiddleware(tm, &stubUserRepo{})
	app := newTestApp(m)

	token, _, err := tm.GenerateToken(testUser())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, apperrors.CodeInvalidUser, errorCode(t, resp))
}

func TestRequireRoles(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	assistente := &domain.User{ID: "assistente-id", Email: "ana@escritorio.com", Role: domain.RoleAssistente, Active: true}
	advogado := &domain.User{ID: "advogado-id", Email: "joao@escritorio.com", Role: domain.RoleAdvogado, Active: true}
	admin := &domain.User{ID: "admin-id", Email: "admin@escritorio.com", Role: domain.RoleAdmin, Active: true}

	repo := &stubUserRepo{active: map[string]*domain.User{
		assistente.ID: assistente,
		advogado.ID:   advogado,
		admin.ID:      admin,
	}}
	app := newTestApp(NewMiddleware(tm, repo))

	tests := []struct {
		name       string
		user       *domain.User
		path       string
		wantStatus int
	}{
		{"assistente denied admin route", assistente, "/admin", http.StatusForbidden},
		{"advogado denied admin route", advogado, "/admin", http.StatusForbidden},
		{"admin allowed admin route", admin, "/admin", http.StatusOK},
		{"assistente denied write route", assistente, "/write", http.StatusForbidden},
		{"advogado allowed write route", advogado, "/write", http.StatusOK},
		{"assistente allowed open route", assistente, "/me", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _, err := tm.GenerateToken(tt.user)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus == http.StatusForbidden {
				assert.Equal(t, apperrors.CodeInsufficientRole, errorCode(t, resp))
			}
		})
	}
}
