package pwd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndCompare(t *testing.T) {
	hash, err := GenerateFromPassword("Admin@12345")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Admin@12345", hash)

	assert.True(t, CompareHashAndPassword(hash, "Admin@12345"))
	assert.False(t, CompareHashAndPassword(hash, "admin@12345"))
	assert.False(t, CompareHashAndPassword(hash, ""))
}

func TestCompareWithInvalidHash(t *testing.T) {
	assert.False(t, CompareHashAndPassword("not-a-bcrypt-hash", "whatever"))
}
