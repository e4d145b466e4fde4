package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
)

// minSigningKeyLength keeps HS256 keys at least as long as the hash output
const minSigningKeyLength = 32

// Secrets holds the signing keys. They are never read from config files.
type Secrets struct {
	SessionSigningKey   string `env:"RP_SESSION_SIGNING_KEY,required"`
	FederatedSigningKey string `env:"RP_FEDERATED_SIGNING_KEY"`
}

// LoadSecretsFromEnv reads and validates the signing keys
func LoadSecretsFromEnv() (Secrets, error) {
	var secrets Secrets
	if err := env.Parse(&secrets); err != nil {
		return Secrets{}, fmt.Errorf("parse identity secrets: %w", err)
	}
	secrets.SessionSigningKey = strings.TrimSpace(secrets.SessionSigningKey)
	secrets.FederatedSigningKey = strings.TrimSpace(secrets.FederatedSigningKey)

	if err := secrets.Validate(); err != nil {
		return Secrets{}, err
	}
	return secrets, nil
}

// Validate checks key lengths. An empty federated key disables federated sign-in.
func (s Secrets) Validate() error {
	if len(s.SessionSigningKey) < minSigningKeyLength {
		return fmt.Errorf("RP_SESSION_SIGNING_KEY must be at least %d characters", minSigningKeyLength)
	}
	if s.FederatedSigningKey != "" && len(s.FederatedSigningKey) < minSigningKeyLength {
		return fmt.Errorf("RP_FEDERATED_SIGNING_KEY must be at least %d characters", minSigningKeyLength)
	}
	if s.FederatedSigningKey != "" && s.FederatedSigningKey == s.SessionSigningKey {
		return errors.New("RP_FEDERATED_SIGNING_KEY must differ from RP_SESSION_SIGNING_KEY")
	}
	return nil
}
