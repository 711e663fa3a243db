package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hashed)
	assert.True(t, CheckPasswordHash("secret", hashed))
	assert.False(t, CheckPasswordHash("wrong", hashed))
}

func TestHashEmptyPassword(t *testing.T) {
	hashed, err := HashPassword("")
	require.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.True(t, CheckPasswordHash("", hashed))
}
