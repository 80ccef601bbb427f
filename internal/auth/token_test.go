package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	Init("test-secret")

	token, err := GenerateToken(30, 1, true)
	require.NoError(t, err)

	claims, err := ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(30), claims.UserID)
	assert.Equal(t, uint(1), claims.TeamID)
	assert.True(t, claims.IsAdmin)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	Init("test-secret")

	token, err := GenerateToken(30, 1, false)
	require.NoError(t, err)

	_, err = ParseAndValidate(token + "x")
	assert.Error(t, err)

	Init("other-secret")
	_, err = ParseAndValidate(token)
	assert.Error(t, err)
}
