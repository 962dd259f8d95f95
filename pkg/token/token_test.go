package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-portfolio-backend/pkg/token"
)

func TestGenerateAndVerify(t *testing.T) {
	manager := token.NewManager("test-secret", time.Hour)

	t.Run("Should round-trip the subject", func(t *testing.T) {
		signed, expiresAt, err := manager.Generate("user-42")
		assert.NoError(t, err)
		assert.NotEmpty(t, signed)
		assert.True(t, expiresAt.After(time.Now()))

		subject, err := manager.Verify(signed)
		assert.NoError(t, err)
		assert.Equal(t, "user-42", subject)
	})

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		other := token.NewManager("other-secret", time.Hour)
		signed, _, err := other.Generate("user-42")
		assert.NoError(t, err)

		_, err = manager.Verify(signed)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid or expired token")
	})

	t.Run("Should reject an expired token", func(t *testing.T) {
		expired := token.NewManager("test-secret", -time.Minute)
		signed, _, err := expired.Generate("user-42")
		assert.NoError(t, err)

		_, err = manager.Verify(signed)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid or expired token")
	})

	t.Run("Should reject garbage input", func(t *testing.T) {
		_, err := manager.Verify("not-a-token")
		assert.Error(t, err)
	})
}
