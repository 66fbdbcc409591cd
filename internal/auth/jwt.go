package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken covers every access token that cannot be trusted:
	// malformed, badly signed, foreign issuer or unparsable subject.
	ErrInvalidToken = errors.New("invalid access token")
	// ErrExpiredToken is returned for a well-formed token past its expiry.
	ErrExpiredToken = errors.New("access token expired")
)

// opaqueTokenBytes is the entropy of refresh and confirmation tokens.
const opaqueTokenBytes = 32

// Identity is what a valid access token proves. Generation is the session
// generation of the identity at issue time; signing out bumps the stored
// generation and makes every earlier token stale. The role is resolved
// server-side per request and is not part of the token.
type Identity struct {
	UserID     uuid.UUID
	Generation int64
}

type accessClaims struct {
	jwt.RegisteredClaims
	Generation int64 `json:"gen"`
}

// JWTManager signs and verifies HS256 access tokens.
type JWTManager struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTManager creates a manager. The secret length is enforced by config
// validation.
func NewJWTManager(secret, issuer string, accessTTL time.Duration) *JWTManager {
	m := &JWTManager{
		key:    []byte(secret),
		issuer: issuer,
		ttl:    accessTTL,
		now:    time.Now,
	}
	m.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	return m
}

// GenerateAccessToken issues a token for userID at the given session
// generation.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID, generation int64) (string, error) {
	issued := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(m.ttl)),
		},
		Generation: generation,
	})

	signed, err := token.SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken verifies signature, issuer and expiry and returns the
// identity the token was issued for.
func (m *JWTManager) ValidateAccessToken(raw string) (Identity, error) {
	if raw == "" {
		return Identity{}, fmt.Errorf("%w: empty", ErrInvalidToken)
	}

	var claims accessClaims
	if _, err := m.parser.ParseWithClaims(raw, &claims, m.keyFunc); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrExpiredToken
		}
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: subject: %w", ErrInvalidToken, err)
	}
	return Identity{UserID: userID, Generation: claims.Generation}, nil
}

func (m *JWTManager) keyFunc(*jwt.Token) (any, error) {
	return m.key, nil
}

// GenerateRefreshToken returns a new refresh token and the hash to persist.
func (m *JWTManager) GenerateRefreshToken() (raw, hash string, err error) {
	return GenerateOpaqueToken()
}

// GenerateOpaqueToken returns a random URL-safe token and its hash. Refresh
// tokens and email confirmation links both use it; only the hash is stored.
func GenerateOpaqueToken() (raw, hash string, err error) {
	buf := make([]byte, opaqueTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("read random: %w", err)
	}
	raw = base64.RawURLEncoding.EncodeToString(buf)
	return raw, HashToken(raw), nil
}

// HashToken is the hex SHA-256 of raw.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
