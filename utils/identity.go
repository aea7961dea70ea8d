package utils

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MicahParks/keyfunc"
	"github.com/golang-jwt/jwt/v4"
)

// Identity is the verified caller yielded by the external identity provider.
type Identity struct {
	UID   string
	Email string
	Name  string
}

const firebaseJWKSURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

// ErrIdentityUnconfigured means the verifier has no project configured. The
// guard surfaces it as 503, distinct from a bad token.
var ErrIdentityUnconfigured = errors.New("identity provider not configured")

var (
	jwksMu     sync.Mutex
	jwksShared *keyfunc.JWKS
)

func identityJWKS() (*keyfunc.JWKS, error) {
	jwksMu.Lock()
	defer jwksMu.Unlock()
	if jwksShared != nil {
		return jwksShared, nil
	}
	jwks, err := keyfunc.Get(firebaseJWKSURL, keyfunc.Options{
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  5 * time.Minute,
		RefreshUnknownKID: true,
	})
	if err != nil {
		return nil, err
	}
	jwksShared = jwks
	return jwksShared, nil
}

// VerifyIDToken validates a bearer credential against the provider's JWKS and
// returns the caller identity. A "Bearer " prefix is stripped if present.
func VerifyIDToken(raw string) (*Identity, error) {
	if Conf == nil || Conf.FirebaseProjectID == "" {
		return nil, ErrIdentityUnconfigured
	}

	raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
	if raw == "" {
		return nil, errors.New("empty token")
	}

	jwks, err := identityJWKS()
	if err != nil {
		return nil, fmt.Errorf("jwks fetch failed: %w", err)
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, jwks.Keyfunc,
		jwt.WithValidMethods([]string{"RS256"}),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if err := validateProviderClaims(claims); err != nil {
		return nil, err
	}

	uid, _ := claims["sub"].(string)
	if uid == "" {
		return nil, errors.New("token has no subject")
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	return &Identity{UID: uid, Email: email, Name: name}, nil
}

// validateProviderClaims pins the audience and issuer to the configured
// project after signature verification.
func validateProviderClaims(claims jwt.MapClaims) error {
	if !claims.VerifyAudience(Conf.FirebaseProjectID, true) {
		return errors.New("token audience mismatch")
	}
	issuer := "https://securetoken.google.com/" + Conf.FirebaseProjectID
	if !claims.VerifyIssuer(issuer, true) {
		return errors.New("token issuer mismatch")
	}
	return nil
}
