package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/realty-crm/internal/auth"
	"github.com/heartmarshall/realty-crm/internal/domain"
)

// SignUp creates an identity with the configured default role. When
// confirmation is required the identity stays pending until the emailed
// link is used, and the confirmation mail is part of the transaction: if it
// cannot be sent nothing is stored.
// Returns ErrAlreadyExists if the email is taken.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*SignUpResult, error) {
	input.normalize()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.SignUp hash password: %w", err)
	}

	pending := s.cfg.RequireConfirmation
	var created *domain.User

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now()
		newUser := &domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			FullName:     input.FullName,
			Role:         s.cfg.SignUpRole(),
			PasswordHash: string(hash),
		}
		if !pending {
			newUser.ConfirmedAt = &now
		}

		user, err := s.users.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		created = user

		if !pending {
			return nil
		}

		raw, tokenHash, err := auth.GenerateOpaqueToken()
		if err != nil {
			return fmt.Errorf("generate confirmation token: %w", err)
		}
		if err := s.confirmations.Create(txCtx, user.ID, tokenHash, now.Add(s.cfg.ConfirmationTTL)); err != nil {
			return fmt.Errorf("store confirmation token: %w", err)
		}
		if err := s.mail.SendConfirmation(txCtx, user.Email, user.FullName, raw); err != nil {
			return fmt.Errorf("send confirmation: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.SignUp: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.SignUp: %w", err)
	}

	s.log.InfoContext(ctx, "identity signed up",
		slog.String("user_id", created.ID.String()),
		slog.String("role", created.Role.String()),
		slog.Bool("pending_confirmation", pending))

	return &SignUpResult{User: created, PendingConfirmation: pending}, nil
}

// Confirm consumes a confirmation token and marks its identity confirmed.
// Unknown, used and expired tokens all yield ErrNotFound.
func (s *Service) Confirm(ctx context.Context, input ConfirmInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	var userID uuid.UUID
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		userID, err = s.confirmations.Consume(txCtx, auth.HashToken(input.Token))
		if err != nil {
			return err
		}
		return s.users.Confirm(txCtx, userID, s.now())
	})
	if err != nil {
		return fmt.Errorf("auth.Confirm: %w", err)
	}

	s.log.InfoContext(ctx, "identity confirmed", slog.String("user_id", userID.String()))
	return nil
}
