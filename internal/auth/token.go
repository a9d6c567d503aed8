package auth // package auth implements token issuance, verification and access decisions

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer is the fixed issuer claim stamped on every token. Verification
// rejects tokens carrying any other issuer even when the signature is valid.
const Issuer = "atelie-api"

// tokenTTL is the exact lifetime of an issued token. There is no refresh or
// revocation mechanism; tokens stay valid until natural expiry.
const tokenTTL = 4 * time.Hour

// ErrTokenCreation is returned when a token cannot be signed, e.g. because
// the configured secret is empty.
var ErrTokenCreation = errors.New("token creation failed")

// ErrTokenVerification is returned when a token's signature is invalid, its
// issuer mismatches, or it has expired.
var ErrTokenVerification = errors.New("invalid or expired token")

// TokenService issues and verifies HS256 bearer tokens. It is stateless
// apart from the signing secret.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time // injectable clock for expiry tests
}

// NewTokenService builds a TokenService keyed by the given symmetric secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		issuer: Issuer,
		ttl:    tokenTTL,
		now:    time.Now,
	}
}

// Issue builds and signs a token for the given subject (user email).
// The token expires exactly four hours after issuance.
func (s *TokenService) Issue(subject string) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("%w: empty signing secret", ErrTokenCreation)
	}
	now := s.now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenCreation, err)
	}
	return signed, nil
}

// VerifySubject validates signature, issuer and expiry, then returns the
// subject claim. Expiry is exact: no grace period is applied.
func (s *TokenService) VerifySubject(token string) (string, error) {
	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now().UTC() }),
	)
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("%w: %v", ErrTokenVerification, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: subject missing", ErrTokenVerification)
	}
	return claims.Subject, nil
}
