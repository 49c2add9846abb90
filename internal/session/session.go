// Package session persists the signed-in user across application restarts.
//
// The current user is serialized into a signed HMAC-SHA256 JWT and stored
// under the session storage key. On startup the token is validated and the
// embedded user snapshot restored. Any failure (bad signature, expiry,
// malformed payload) yields an anonymous session rather than an error
// surfaced to the user.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-shop-front/internal/config"
	"github.com/MKhiriev/go-shop-front/models"
)

// ErrInvalidSessionToken is returned when a stored session token fails
// signature, issuer or expiry validation. Callers treat it as "no session".
var ErrInvalidSessionToken = errors.New("invalid session token")

// Claims carries the full user snapshot inside the token so that the
// session can be restored without consulting the users collection first.
type Claims struct {
	jwt.RegisteredClaims
	User models.User `json:"user"`
}

// Codec signs and verifies session tokens.
type Codec struct {
	signKey  []byte
	issuer   string
	duration time.Duration
}

// Argon2id tuning parameters for deriving the signing key from the
// configured secret. OWASP (2024) recommended values.
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
)

// NewCodec derives a 256-bit HMAC signing key from the configured secret
// using Argon2id. The issuer doubles as the derivation salt so two
// deployments with the same secret but different issuers produce
// incompatible tokens.
func NewCodec(cfg config.App) *Codec {
	key := argon2.IDKey(
		[]byte(cfg.SessionSignKey),
		[]byte(cfg.SessionIssuer),
		argonTime,
		argonMemory,
		argonThreads,
		argonKeyLen,
	)

	return &Codec{
		signKey:  key,
		issuer:   cfg.SessionIssuer,
		duration: cfg.SessionDuration,
	}
}

// Encode creates a signed session token carrying the given user snapshot.
func (c *Codec) Encode(user models.User) (string, error) {
	if c.issuer == "" || c.duration == 0 {
		return "", errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		User: user,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(c.signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return tokenString, nil
}

// Decode validates the token signature, issuer and expiry, then returns the
// embedded user snapshot. Any validation failure yields
// [ErrInvalidSessionToken].
func (c *Codec) Decode(tokenString string) (models.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return c.signKey, nil
	}, jwt.WithIssuer(c.issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidSessionToken, err)
	}
	if !token.Valid {
		return models.User{}, ErrInvalidSessionToken
	}

	return claims.User, nil
}
