package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("admin")
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	assert.True(t, h.Verify("admin", digest))
	assert.False(t, h.Verify("wrong", digest))
}

func TestVerifyMalformedDigest(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	assert.False(t, h.Verify("admin", "not-a-bcrypt-digest"))
	assert.False(t, h.Verify("admin", ""))
}

func TestHashIsSalted(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, err := h.Hash("admin")
	require.NoError(t, err)
	b, err := h.Hash("admin")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestNewHasherClampsCost(t *testing.T) {
	h := NewHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewHasher(1000)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
