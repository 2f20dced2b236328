//go:build unit

package credential_test

import (
	"testing"
	"time"

	"order-assembly/internal/domain/credential"
	"order-assembly/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestRegistryAuthenticate(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		registry := builder.NewCredentialBuilder().BuildRegistry()

		cred, err := registry.Authenticate("test-key-123", now)
		require.NoError(t, err)
		assert.Equal(t, "test-key-123", cred.Key())
		assert.Equal(t, "test client", cred.Name())
	})

	t.Run("missing key", func(t *testing.T) {
		registry := builder.NewCredentialBuilder().BuildRegistry()

		_, err := registry.Authenticate("", now)
		assert.ErrorIs(t, err, credential.ErrMissingKey)
	})

	t.Run("unknown key", func(t *testing.T) {
		registry := builder.NewCredentialBuilder().BuildRegistry()

		_, err := registry.Authenticate("some-other-key", now)
		assert.ErrorIs(t, err, credential.ErrUnknownKey)
	})

	t.Run("comparison is case-sensitive, no normalization", func(t *testing.T) {
		registry := builder.NewCredentialBuilder().BuildRegistry()

		_, err := registry.Authenticate("TEST-KEY-123", now)
		assert.ErrorIs(t, err, credential.ErrUnknownKey)

		_, err = registry.Authenticate(" test-key-123", now)
		assert.ErrorIs(t, err, credential.ErrUnknownKey)
	})

	t.Run("expired key", func(t *testing.T) {
		registry := builder.NewCredentialBuilder().
			WithExpiry(now.Add(-time.Hour)).
			BuildRegistry()

		_, err := registry.Authenticate("test-key-123", now)
		assert.ErrorIs(t, err, credential.ErrExpiredKey)
	})

	t.Run("expiry is strict: key valid at the exact expiry instant", func(t *testing.T) {
		registry := builder.NewCredentialBuilder().
			WithExpiry(now).
			BuildRegistry()

		_, err := registry.Authenticate("test-key-123", now)
		assert.NoError(t, err)

		_, err = registry.Authenticate("test-key-123", now.Add(time.Nanosecond))
		assert.ErrorIs(t, err, credential.ErrExpiredKey)
	})

	t.Run("nil expiry never expires", func(t *testing.T) {
		registry := builder.NewCredentialBuilder().BuildRegistry()

		_, err := registry.Authenticate("test-key-123", now.AddDate(100, 0, 0))
		assert.NoError(t, err)
	})
}

func TestParseTable(t *testing.T) {
	t.Run("parses a full credential table", func(t *testing.T) {
		raw := `[
			{"key":"k1","name":"client one","created_at":"2025-01-01T00:00:00Z","expires_at":null},
			{"key":"k2","name":"client two","created_at":"2025-01-01T00:00:00Z","expires_at":"2025-12-31T23:59:59Z"}
		]`

		creds, err := credential.ParseTable([]byte(raw))
		require.NoError(t, err)
		require.Len(t, creds, 2)
		assert.Equal(t, "k1", creds[0].Key())
		assert.Nil(t, creds[0].ExpiresAt())
		require.NotNil(t, creds[1].ExpiresAt())
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		_, err := credential.ParseTable([]byte(`not json`))
		assert.Error(t, err)
	})

	t.Run("rejects records with an empty key", func(t *testing.T) {
		_, err := credential.ParseTable([]byte(`[{"key":"","name":"x","created_at":"2025-01-01T00:00:00Z"}]`))
		assert.ErrorIs(t, err, credential.ErrEmptyKey)
	})

	t.Run("rejects records with an empty name", func(t *testing.T) {
		_, err := credential.ParseTable([]byte(`[{"key":"k","name":"","created_at":"2025-01-01T00:00:00Z"}]`))
		assert.ErrorIs(t, err, credential.ErrEmptyName)
	})
}
