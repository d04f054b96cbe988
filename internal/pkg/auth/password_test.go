package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	digest, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", digest)

	assert.True(t, CheckPassword(digest, "secret1"))
	assert.False(t, CheckPassword(digest, "wrong"))
}

func TestCheckPasswordLegacyDigest(t *testing.T) {
	sum := sha256.Sum256([]byte("oldpass"))
	legacy := hex.EncodeToString(sum[:])

	assert.True(t, CheckPassword(legacy, "oldpass"))
	assert.False(t, CheckPassword(legacy, "other"))
}

func TestCheckPasswordGarbageDigest(t *testing.T) {
	assert.False(t, CheckPassword("not-a-digest", "anything"))
}
