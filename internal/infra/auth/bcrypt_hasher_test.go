package auth

import (
	"testing"

	"sharefit/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be compared
	assert.NoError(t, hasher.Compare(hash, password))
}

func TestBcryptHasher_Compare(t *testing.T) {
	hasher := NewBcryptHasher(nil)
	password := "StrongPass123!"

	// Generate hash
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.NoError(t, hasher.Compare(hash, password))

	// Test incorrect password
	assert.Error(t, hasher.Compare(hash, "WrongPassword123!"))

	// Test empty password
	assert.Error(t, hasher.Compare(hash, ""))

	// Test with invalid hash
	assert.Error(t, hasher.Compare("invalid_hash", password))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: customCost},
	}
	hasher := NewBcryptHasher(cfg)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)

	// Verify the hash can be compared
	assert.NoError(t, hasher.Compare(hash, password))
}
