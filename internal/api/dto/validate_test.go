package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/legal-case-service/pkg/util"
)

func validationDetails(t *testing.T, err error) []string {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, apperrors.CodeValidation, domainErr.Code)
	details, ok := domainErr.Details.([]string)
	require.True(t, ok)
	return details
}

func TestCheckValidRequest(t *testing.T) {
	err := Check(LoginRequest{Email: "joao.silva@escritorio.com", Password: "Advogado123!"})
	assert.NoError(t, err)
}

func TestCheckCollectsAllFieldViolations(t *testing.T) {
	err := Check(LoginRequest{Email: "not-an-email"})
	require.Error(t, err)

	details := validationDetails(t, err)
	assert.Contains(t, details, "email must be a valid email")
	assert.Contains(t, details, "password is required")
}

func TestCheckRegisterRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr string
	}{
		{
			"short name",
			RegisterRequest{Name: "A", Email: "a@b.com", Password: "Assistente123!"},
			"name must be at least 2 characters",
		},
		{
			"short password",
			RegisterRequest{Name: "Ana Oliveira", Email: "ana@escritorio.com", Password: "Ab1!"},
			"password must be at least 8 characters",
		},
		{
			"unknown role",
			RegisterRequest{Name: "Ana Oliveira", Email: "ana@escritorio.com", Password: "Assistente123!", Role: "ESTAGIARIO"},
			"role must be one of: ADMIN ADVOGADO ASSISTENTE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.req)
			require.Error(t, err)
			assert.Contains(t, validationDetails(t, err), tt.wantErr)
		})
	}
}

func TestCheckRegisterRoleOptional(t *testing.T) {
	err := Check(RegisterRequest{Name: "Ana Oliveira", Email: "ana@escritorio.com", Password: "Assistente123!"})
	assert.NoError(t, err)
}

func TestCheckProcessTypeEnum(t *testing.T) {
	req := CreateProcessRequest{
		Number:   "1001234-56.2023.8.26.0100",
		Title:    "Ação Trabalhista",
		Type:     "MARITIMO",
		ClientID: "3c9f7d30-0000-0000-0000-000000000000",
	}
	err := Check(req)
	require.Error(t, err)
	assert.Contains(t, validationDetails(t, err), "type must be one of: CIVEL TRABALHISTA CRIMINAL TRIBUTARIO PREVIDENCIARIO FAMILIA")
}
