// Package auth drives the two password endpoints. Validation happens
// before any network call; a validation failure means nothing was
// sent.
package auth

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/urepair/console/pkg/errors"
	"github.com/urepair/console/pkg/logger"
)

// Status is the request lifecycle of a password form: idle until
// submitted, loading while in flight, then success or failure.
// Failure is terminal for that attempt.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

type API interface {
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type Service struct {
	api      API
	validate *validator.Validate
	logger   *logger.Logger
}

func NewService(api API, log *logger.Logger) *Service {
	return &Service{
		api:      api,
		validate: validator.New(),
		logger:   log,
	}
}

// ForgotPassword requests a reset link for the given address.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return errors.Validation("enter a valid email address")
	}
	if err := s.api.ForgotPassword(ctx, email); err != nil {
		return err
	}
	s.logger.Info("reset link requested", "email", email)
	return nil
}

// ResetPassword redeems a token for a new password.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return errors.Validation("missing reset token")
	}
	if newPassword == "" {
		return errors.Validation("enter a new password")
	}
	return s.api.ResetPassword(ctx, token, newPassword)
}
