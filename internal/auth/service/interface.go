// Package service provides technical services for API key handling.
//
// This package implements key generation and digest computation. Keys are
// looked up by digest, so hashing must be fast and deterministic; SHA-256 is
// used rather than a password KDF.
package service

// KeyService defines operations for API key generation and hashing.
type KeyService interface {
	// GenerateKey creates a new random API key in the "ak_" prefixed format.
	// The plaintext is only shown once, at creation time.
	GenerateKey() string

	// HashKey computes the digest of a plaintext key as 64 lowercase hex
	// characters. Equal inputs always produce equal digests.
	HashKey(plainKey string) string
}
