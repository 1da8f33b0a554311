package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// keyService implements KeyService using SHA-256 for key hashing.
type keyService struct{}

// GenerateKey creates a new random API key of the form "ak_" followed by a
// 32-character hex UUID, 35 characters total.
func (k *keyService) GenerateKey() string {
	return "ak_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// HashKey hashes a plaintext API key using SHA-256.
// Returns the digest as a lowercase hexadecimal string.
func (k *keyService) HashKey(plainKey string) string {
	hash := sha256.Sum256([]byte(plainKey))
	return hex.EncodeToString(hash[:])
}

// NewKeyService creates a new KeyService instance using SHA-256 for key hashing.
func NewKeyService() KeyService {
	return &keyService{}
}
