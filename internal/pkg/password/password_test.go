//go:build unit

package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := &BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := h.Hash("password123")
	require.NoError(t, err)

	assert.NoError(t, h.Compare(hash, "password123"))
	assert.ErrorIs(t, h.Compare(hash, "wrong-password"), ErrComparisonFailed)
	assert.ErrorIs(t, h.Compare("", "password123"), ErrInvalidPassword)

	_, err = h.Hash("")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}
