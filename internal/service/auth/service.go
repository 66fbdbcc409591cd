// Package auth implements the identity lifecycle: sign-up with email
// confirmation, password sign-in, refresh rotation, sign-out and the admin
// operations over identities.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/realty-crm/internal/auth"
	"github.com/heartmarshall/realty-crm/internal/config"
	"github.com/heartmarshall/realty-crm/internal/domain"
)

// userRepo defines the identity storage needed by the auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Confirm(ctx context.Context, id uuid.UUID, at time.Time) error
	BumpGeneration(ctx context.Context, id uuid.UUID) (int64, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, int, error)
}

// tokenRepo defines the refresh token storage needed by the auth service.
type tokenRepo interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

type confirmationRepo interface {
	Create(ctx context.Context, userID uuid.UUID, hash string, expiresAt time.Time) error
	Consume(ctx context.Context, hash string) (uuid.UUID, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, generation int64) (string, error)
	ValidateAccessToken(token string) (auth.Identity, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// mailer delivers the sign-up confirmation link.
type mailer interface {
	SendConfirmation(ctx context.Context, to, fullName, token string) error
}

// Service owns the identity lifecycle. Every write that spans more than
// one table runs in a transaction from tx.
type Service struct {
	log           *slog.Logger
	users         userRepo
	tokens        tokenRepo
	confirmations confirmationRepo
	tx            txManager
	jwt           jwtManager
	mail          mailer
	cfg           config.AuthConfig
	now           func() time.Time
}

func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	confirmations confirmationRepo,
	tx txManager,
	jwt jwtManager,
	mail mailer,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "auth"),
		users:         users,
		tokens:        tokens,
		confirmations: confirmations,
		tx:            tx,
		jwt:           jwt,
		mail:          mail,
		cfg:           cfg,
		now:           time.Now,
	}
}

// issueTokens pairs an access token at the identity's current generation
// with a fresh refresh token. Only the refresh token hash is persisted.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	access, err := s.jwt.GenerateAccessToken(user.ID, user.SessionGeneration)
	if err != nil {
		return nil, fmt.Errorf("access token: %w", err)
	}

	raw, hash, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("refresh token: %w", err)
	}

	if err := s.tokens.Create(ctx, &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: s.now().Add(s.cfg.RefreshTokenTTL),
	}); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  access,
		RefreshToken: raw,
		ExpiresIn:    s.cfg.AccessTokenTTL,
		User:         user,
	}, nil
}
