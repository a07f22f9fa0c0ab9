// Package user implements the mutation gateway for console accounts.
// Users are identified by email rather than a numeric id.
package user

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/urepair/console/internal/model"
	"github.com/urepair/console/internal/service/fanout"
	"github.com/urepair/console/pkg/errors"
	"github.com/urepair/console/pkg/logger"
)

type API interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, email string) error
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

type CreateRequest struct {
	FirstName string     `validate:"required"`
	LastName  string     `validate:"required"`
	Email     string     `validate:"required,email"`
	Role      model.Role `validate:"required,oneof=STAFF STUDENT"`
}

func (s *Service) Create(ctx context.Context, req CreateRequest) ([]model.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.Validation("invalid user: %v", err)
	}

	user := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      req.Role,
	}
	if err := s.api.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "email", req.Email)
	return s.api.ListUsers(ctx)
}

type EditRequest struct {
	FirstName string     `validate:"required"`
	LastName  string     `validate:"required"`
	Role      model.Role `validate:"required,oneof=STAFF STUDENT"`
}

// Edit fetches the current user, overlays the edited fields and
// posts the merged object back.
func (s *Service) Edit(ctx context.Context, email string, req EditRequest) ([]model.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.Validation("invalid edit: %v", err)
	}

	current, err := s.api.GetUser(ctx, email)
	if err != nil {
		return nil, err
	}

	current.FirstName = req.FirstName
	current.LastName = req.LastName
	current.Role = req.Role

	if err := s.api.UpdateUser(ctx, current); err != nil {
		return nil, err
	}
	return s.api.ListUsers(ctx)
}

// Delete removes the selected users concurrently, then reloads. The
// reload runs even when some deletes failed.
func (s *Service) Delete(ctx context.Context, emails []string) ([]model.User, error) {
	deleteErr := fanout.Each(ctx, emails, s.api.DeleteUser)
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return users, deleteErr
}

// List fetches the current user table.
func (s *Service) List(ctx context.Context) ([]model.User, error) {
	return s.api.ListUsers(ctx)
}
