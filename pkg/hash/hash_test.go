package hash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-portfolio-backend/pkg/hash"
)

func TestBcrypt(t *testing.T) {
	// Minimum cost keeps the test fast
	hasher := &hash.Bcrypt{Cost: 4}

	t.Run("Should verify the password it hashed", func(t *testing.T) {
		hashed, err := hasher.Generate("123456")
		assert.NoError(t, err)
		assert.NotEqual(t, "123456", hashed)
		assert.True(t, hasher.Compare("123456", hashed))
	})

	t.Run("Should reject a different password", func(t *testing.T) {
		hashed, err := hasher.Generate("123456")
		assert.NoError(t, err)
		assert.False(t, hasher.Compare("654321", hashed))
	})

	t.Run("Should reject a malformed hash", func(t *testing.T) {
		assert.False(t, hasher.Compare("123456", "not-a-bcrypt-hash"))
	})
}
