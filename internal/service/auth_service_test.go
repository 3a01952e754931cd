package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/legal-case-service/internal/auth"
	"github.com/spec-kit/legal-case-service/internal/config"
	"github.com/spec-kit/legal-case-service/internal/domain"
	apperrors "github.com/spec-kit/legal-case-service/pkg/util"
)

type stubUserRepo struct {
	byID      map[string]*domain.User
	byEmail   map[string]*domain.User
	created   []*domain.User
	newHashes map[string]string
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	repo := &stubUserRepo{
		byID:      map[string]*domain.User{},
		byEmail:   map[string]*domain.User{},
		newHashes: map[string]string{},
	}
	for _, user := range users {
		repo.byID[user.ID] = user
		repo.byEmail[user.Email] = user
	}
	return repo
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = "generated-id"
	user.Active = true
	s.created = append(s.created, user)
	return nil
}

func (s *stubUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	s.newHashes[id] = passwordHash
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubUserRepo) GetActiveByID(ctx context.Context, id string) (*domain.User, error) {
	if user, ok := s.byID[id]; ok && user.Active {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubUserRepo) ListActive(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	for _, user := range s.byID {
		if user.Active {
			users = append(users, *user)
		}
	}
	return users, nil
}

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret",
			TokenTTL:   time.Hour,
			BcryptCost: bcrypt.MinCost,
		},
	}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	return domainErr.Code
}

func TestLoginSuccess(t *testing.T) {
	repo := newStubUserRepo(&domain.User{
		ID:           "user-1",
		Name:         "Dr. João Silva",
		Email:        "joao.silva@escritorio.com",
		PasswordHash: mustHash(t, "Advogado123!"),
		Role:         domain.RoleAdvogado,
		Active:       true,
	})
	svc := NewAuthService(testAuthConfig(), repo)

	user, token, expiresAt, err := svc.Login(context.Background(), "joao.silva@escritorio.com", "Advogado123!")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, domain.RoleAdvogado, claims.Role)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newStubUserRepo(
		&domain.User{
			ID:           "active-user",
			Email:        "active@escritorio.com",
			PasswordHash: mustHash(t, "Correct123!"),
			Role:         domain.RoleAdvogado,
			Active:       true,
		},
		&domain.User{
			ID:           "inactive-user",
			Email:        "inactive@escritorio.com",
			PasswordHash: mustHash(t, "Correct123!"),
			Role:         domain.RoleAdvogado,
			Active:       false,
		},
	)
	svc := NewAuthService(testAuthConfig(), repo)

	_, _, _, errUnknown := svc.Login(context.Background(), "nobody@escritorio.com", "Correct123!")
	_, _, _, errWrongPwd := svc.Login(context.Background(), "active@escritorio.com", "Wrong123!")
	_, _, _, errInactive := svc.Login(context.Background(), "inactive@escritorio.com", "Correct123!")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPwd)
	require.Error(t, errInactive)

	assert.Equal(t, apperrors.CodeInvalidCredentials, domainCode(t, errUnknown))
	assert.Equal(t, apperrors.CodeInvalidCredentials, domainCode(t, errWrongPwd))
	assert.Equal(t, apperrors.CodeInvalidCredentials, domainCode(t, errInactive))
	assert.Equal(t, errUnknown.Error(), errWrongPwd.Error())
	assert.Equal(t, errWrongPwd.Error(), errInactive.Error())
}

func TestRegisterSuccess(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(testAuthConfig(), repo)

	user, err := svc.Register(context.Background(), "Ana Oliveira", "ana@escritorio.com", "Assistente123!", domain.RoleAssistente)
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	assert.Equal(t, "Ana Oliveira", user.Name)
	assert.Equal(t, domain.RoleAssistente, user.Role)
	assert.NotEqual(t, "Assistente123!", user.PasswordHash)
	assert.NoError(t, auth.ComparePassword(user.PasswordHash, "Assistente123!"))
}

func TestRegisterWeakPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(testAuthConfig(), repo)

	_, err := svc.Register(context.Background(), "Ana Oliveira", "ana@escritorio.com", "weak", domain.RoleAssistente)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, domainCode(t, err))
	assert.Empty(t, repo.created)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	violations, ok := domainErr.Details.([]string)
	require.True(t, ok)
	assert.Len(t, violations, 4)
}

func TestRegisterEmailReservedBySoftDeletedAccount(t *testing.T) {
	repo := newStubUserRepo(&domain.User{
		ID:     "deleted-user",
		Email:  "ana@escritorio.com",
		Role:   domain.RoleAssistente,
		Active: false,
	})
	svc := NewAuthService(testAuthConfig(), repo)

	_, err := svc.Register(context.Background(), "Ana Oliveira", "ana@escritorio.com", "Assistente123!", domain.RoleAssistente)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeEmailExists, domainCode(t, err))
	assert.Empty(t, repo.created)
}

func TestUpdatePassword(t *testing.T) {
	user := &domain.User{
		ID:           "user-1",
		Email:        "joao.silva@escritorio.com",
		PasswordHash: mustHash(t, "Current123!"),
		Role:         domain.RoleAdvogado,
		Active:       true,
	}
	repo := newStubUserRepo(user)
	svc := NewAuthService(testAuthConfig(), repo)

	err := svc.UpdatePassword(context.Background(), "user-1", "Current123!", "Fresh456!!")
	require.NoError(t, err)

	newHash, ok := repo.newHashes["user-1"]
	require.True(t, ok)
	assert.NoError(t, auth.ComparePassword(newHash, "Fresh456!!"))
}

func TestUpdatePasswordWrongCurrent(t *testing.T) {
	repo := newStubUserRepo(&domain.User{
		ID:           "user-1",
		Email:        "joao.silva@escritorio.com",
		PasswordHash: mustHash(t, "Current123!"),
		Role:         domain.RoleAdvogado,
		Active:       true,
	})
	svc := NewAuthService(testAuthConfig(), repo)

	err := svc.UpdatePassword(context.Background(), "user-1", "Wrong123!", "Fresh456!!")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidCurrentPwd, domainCode(t, err))
	assert.Empty(t, repo.newHashes)
}

func TestUpdatePasswordUnknownUser(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newStubUserRepo())

	err := svc.UpdatePassword(context.Background(), "missing", "Current123!", "Fresh456!!")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, domainCode(t, err))
}
