// Package services contains the request-scoped application logic composed by
// the HTTP handlers.
package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"freshtrack-backend/application/ports"
	"freshtrack-backend/domain/inventory"
	"freshtrack-backend/domain/user"
	"freshtrack-backend/pkg/auth"
	apperrors "freshtrack-backend/pkg/errors"
)

// AuthService handles registration and login.
type AuthService struct {
	profiles ports.ProfileRepository
	notifier ports.NotificationService
	tokens   *auth.TokenService
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	profiles ports.ProfileRepository,
	notifier ports.NotificationService,
	tokens *auth.TokenService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		profiles: profiles,
		notifier: notifier,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register validates the credentials, hashes the password and creates the
// profile. Registering an email that already has a profile is a conflict.
// The notification-topic subscription afterwards is best-effort: its failure
// is logged, never surfaced.
func (s *AuthService) Register(ctx context.Context, email, password string) error {
	email = inventory.Sanitize(email)
	if email == "" || !inventory.ValidEmail(email) {
		return apperrors.NewValidationError("Please provide a valid email address")
	}
	if password == "" {
		return apperrors.NewValidationError("Password is required")
	}
	if err := inventory.ValidatePassword(password); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return apperrors.NewInternalError("failed to process password").WithCause(err)
	}

	profile := user.Profile{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.profiles.CreateIfAbsent(ctx, profile); err != nil {
		if apperrors.IsConflict(err) {
			return apperrors.NewConflictError("User already exists")
		}
		return err
	}

	if err := s.notifier.SubscribeEmail(ctx, email); err != nil {
		s.logger.Warn("Failed to subscribe email to notification topic",
			zap.String("email", email),
			zap.Error(err),
		)
	}

	s.logger.Info("User registered", zap.String("email", email))
	return nil
}

// Login verifies the credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperrors.NewValidationError("Email and password are required")
	}

	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return "", apperrors.NewNotFoundError("User")
		}
		return "", err
	}

	if !auth.CheckPassword(password, profile.PasswordHash) {
		return "", apperrors.NewUnauthorizedError("Invalid credentials")
	}

	token, err := s.tokens.Issue(profile.Email)
	if err != nil {
		return "", apperrors.NewInternalError("failed to issue token").WithCause(err)
	}

	s.logger.Info("User logged in", zap.String("email", email))
	return token, nil
}
