package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("u1", "rosa@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "rosa@example.com", claims.Email)
	assert.Equal(t, "bella-rosa-storefront", claims.Issuer)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateToken_RejectsTamperedToken(t *testing.T) {
	token, err := GenerateToken("u1", "rosa@example.com")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)
}
