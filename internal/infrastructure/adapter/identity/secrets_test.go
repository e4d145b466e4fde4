package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSecretsFromEnv(t *testing.T) {
	t.Run("should require the session key", func(t *testing.T) {
		t.Setenv("RP_SESSION_SIGNING_KEY", "")

		_, err := LoadSecretsFromEnv()

		assert.Error(t, err)
	})

	t.Run("should reject short keys", func(t *testing.T) {
		t.Setenv("RP_SESSION_SIGNING_KEY", "short")

		_, err := LoadSecretsFromEnv()

		assert.Error(t, err)
	})

	t.Run("should load both keys", func(t *testing.T) {
		t.Setenv("RP_SESSION_SIGNING_KEY", " session-signing-key-0123456789-abcdef ")
		t.Setenv("RP_FEDERATED_SIGNING_KEY", "federated-signing-key-0123456789-abcd")

		secrets, err := LoadSecretsFromEnv()

		require.NoError(t, err)
		assert.Equal(t, "session-signing-key-0123456789-abcdef", secrets.SessionSigningKey)
		assert.Equal(t, "federated-signing-key-0123456789-abcd", secrets.FederatedSigningKey)
	})

	t.Run("should refuse reusing the session key for assertions", func(t *testing.T) {
		key := "session-signing-key-0123456789-abcdef"
		assert.Error(t, Secrets{SessionSigningKey: key, FederatedSigningKey: key}.Validate())
	})
}
