package identity

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/amirhossein-jamali/rewards-pool/internal/domain/error"
)

// sessionClaims is the payload of a session token
type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// federatedClaims is the payload of an assertion issued by the federated identity provider
type federatedClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

func signSession(claims sessionClaims, key []byte) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// parseSession verifies signature, issuer and expiry of a session token
func parseSession(token string, key []byte, issuer string, now func() time.Time) (*sessionClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errs.ErrUnauthenticated
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return nil, errors.Join(errs.ErrUnauthenticated, err)
	}
	if claims.Subject == "" || claims.ID == "" {
		return nil, errs.ErrUnauthenticated
	}
	return &claims, nil
}

// parseAssertion verifies a federated assertion against the configured issuer and audience
func parseAssertion(assertion string, key []byte, issuer, audience string, now func() time.Time) (*federatedClaims, error) {
	assertion = strings.TrimSpace(assertion)
	if assertion == "" || len(key) == 0 {
		return nil, errs.ErrInvalidAssertion
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	var claims federatedClaims
	if _, err := jwt.ParseWithClaims(assertion, &claims, func(*jwt.Token) (any, error) {
		return key, nil
	}, opts...); err != nil {
		return nil, errors.Join(errs.ErrInvalidAssertion, err)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, errs.ErrInvalidAssertion
	}
	return &claims, nil
}
