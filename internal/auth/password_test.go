package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Secr3t!pass", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "Secr3t!pass", hash)

	assert.NoError(t, ComparePassword(hash, "Secr3t!pass"))
	assert.Error(t, ComparePassword(hash, "wrong-password"))
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	first, err := HashPassword("Secr3t!pass", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("Secr3t!pass", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidateStrength(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		valid      bool
		violations int
	}{
		{"strong password", `Valid123!`, true, 0},
		{"missing everything upper", "short1", false, 3},
		{"no digit or symbol", "Onlyletters", false, 2},
		{"empty", "", false, 5},
		{"long but lowercase only", "abcdefghij", false, 3},
		{"symbol from accepted set", `Pass1:word`, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateStrength(tt.password)
			assert.Equal(t, tt.valid, result.IsValid)
			assert.Len(t, result.Errors, tt.violations)
		})
	}
}

func TestValidateStrengthAccumulatesAllViolations(t *testing.T) {
	result := ValidateStrength("abc")

	require.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "password must be at least 8 characters")
	assert.Contains(t, result.Errors, "password must contain at least one uppercase letter")
	assert.Contains(t, result.Errors, "password must contain at least one digit")
	assert.Contains(t, result.Errors, "password must contain at least one special character")
}
