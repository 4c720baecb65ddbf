package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("password123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$"))
	assert.NotContains(t, hash, "password123")
}

func TestBcryptHasher_HashUniquePerCall(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash1, err := h.Hash("password123")
	require.NoError(t, err)
	hash2, err := h.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
	assert.True(t, h.Verify("password123", hash1))
	assert.True(t, h.Verify("password123", hash2))
}

func TestBcryptHasher_Verify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("password123")
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		want   bool
	}{
		{"correct secret", "password123", true},
		{"wrong secret", "wrongpassword", false},
		{"empty secret", "", false},
		{"similar secret", "password124", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Verify(tt.secret, hash))
		})
	}
}

func TestBcryptHasher_VerifyMalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	assert.False(t, h.Verify("password123", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("password123", ""))
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, defaultBcryptCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(1).cost)
	assert.Equal(t, bcrypt.MaxCost, NewBcryptHasher(99).cost)
}
