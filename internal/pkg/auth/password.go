package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the hashing cost for newly written digests
const BcryptCost = 12

// HashPassword produces a one-way digest for storage
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a password against a stored digest.
// Records migrated from the legacy portal carry hex-encoded SHA-256
// digests; everything written by this service uses bcrypt. Both are
// accepted so existing students can still log in.
func CheckPassword(storedDigest, password string) bool {
	if isLegacyDigest(storedDigest) {
		sum := sha256.Sum256([]byte(password))
		candidate := hex.EncodeToString(sum[:])
		return subtle.ConstantTimeCompare([]byte(candidate), []byte(strings.ToLower(storedDigest))) == 1
	}

	err := bcrypt.CompareHashAndPassword([]byte(storedDigest), []byte(password))
	return err == nil
}

// isLegacyDigest reports whether the stored digest is a hex SHA-256 string
func isLegacyDigest(digest string) bool {
	if len(digest) != 64 {
		return false
	}
	_, err := hex.DecodeString(digest)
	return err == nil
}
