package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Str0ng@Pass")
	require.NoError(t, err)
	require.NotEqual(t, "Str0ng@Pass", hash)

	assert.True(t, CheckPassword(hash, "Str0ng@Pass"))
	assert.False(t, CheckPassword(hash, "Wr0ng@Pass"))
}

func TestHashPasswordUsesDefaultCost(t *testing.T) {
	hash, err := HashPassword("Str0ng@Pass")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultHashCost, cost)
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("Str0ng@Pass")
	require.NoError(t, err)
	second, err := HashPassword("Str0ng@Pass")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestIsHashed(t *testing.T) {
	hash, err := HashPassword("Str0ng@Pass")
	require.NoError(t, err)

	assert.True(t, IsHashed(hash))
	assert.False(t, IsHashed("Str0ng@Pass"))
	assert.False(t, IsHashed(""))
}
