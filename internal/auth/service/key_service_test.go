package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKeyService(t *testing.T) {
	service := NewKeyService()
	assert.NotNil(t, service)
	assert.IsType(t, &keyService{}, service)
}

func TestKeyService_GenerateKey(t *testing.T) {
	service := NewKeyService()

	t.Run("Success_GenerateKeyFormat", func(t *testing.T) {
		key := service.GenerateKey()

		assert.True(t, strings.HasPrefix(key, "ak_"))
		assert.Len(t, key, 35)
	})

	t.Run("Success_GenerateUniqueKeys", func(t *testing.T) {
		key1 := service.GenerateKey()
		key2 := service.GenerateKey()

		assert.NotEqual(t, key1, key2, "generated keys should be unique")
	})
}

func TestKeyService_HashKey(t *testing.T) {
	service := NewKeyService()

	t.Run("Success_HashKey", func(t *testing.T) {
		plainKey := "test_key_123"

		keyHash := service.HashKey(plainKey)

		// Assert hash is valid SHA-256 hex string (64 characters)
		assert.Len(t, keyHash, 64, "SHA-256 hash should be 64 hex characters")
		assert.Equal(t, strings.ToLower(keyHash), keyHash, "hash should be lowercase hex")

		// Assert hash matches expected SHA-256 hash
		expectedHash := sha256.Sum256([]byte(plainKey))
		expectedHashHex := hex.EncodeToString(expectedHash[:])
		assert.Equal(t, expectedHashHex, keyHash)
	})

	t.Run("Success_ConsistentHashing", func(t *testing.T) {
		plainKey := "test_key_123"

		hash1 := service.HashKey(plainKey)
		hash2 := service.HashKey(plainKey)

		// Assert same input produces same hash
		assert.Equal(t, hash1, hash2, "hashing should be deterministic")
	})

	t.Run("Success_DifferentKeysProduceDifferentHashes", func(t *testing.T) {
		hash1 := service.HashKey("test_key_123")
		hash2 := service.HashKey("test_key_456")

		assert.NotEqual(t, hash1, hash2, "different keys should have different hashes")
	})

	t.Run("Success_EmptyStringProducesValidHash", func(t *testing.T) {
		keyHash := service.HashKey("")

		assert.Len(t, keyHash, 64)

		expectedHash := sha256.Sum256([]byte(""))
		expectedHashHex := hex.EncodeToString(expectedHash[:])
		assert.Equal(t, expectedHashHex, keyHash)
	})
}

func TestKeyService_GeneratedKeyHashes(t *testing.T) {
	service := NewKeyService()

	key := service.GenerateKey()
	hash := service.HashKey(key)

	assert.Len(t, hash, 64)
	assert.Equal(t, service.HashKey(key), hash)
}
