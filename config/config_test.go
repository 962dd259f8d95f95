package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-portfolio-backend/config"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Should refuse to start without a JWT secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := config.LoadConfig()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("Should load with defaults when the secret is set", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		cfg, err := config.LoadConfig()

		assert.NoError(t, err)
		assert.Equal(t, "test-secret", cfg.JWTSecret)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 24, cfg.TokenTTLHours)
		assert.Equal(t, 5, cfg.RateLimitLoginThreshold)
	})
}
