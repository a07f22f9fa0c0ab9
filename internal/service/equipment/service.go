// Package equipment implements the mutation gateway for equipment
// records.
package equipment

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/urepair/console/internal/model"
	"github.com/urepair/console/internal/service/fanout"
	"github.com/urepair/console/pkg/errors"
	"github.com/urepair/console/pkg/logger"
)

type API interface {
	ListEquipment(ctx context.Context) ([]model.Equipment, error)
	GetEquipment(ctx context.Context, id int) (*model.Equipment, error)
	CreateEquipment(ctx context.Context, equipment *model.Equipment) error
	UpdateEquipment(ctx context.Context, equipment *model.Equipment) error
	DeleteEquipment(ctx context.Context, id int) error
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

// CreateRequest is a new equipment unit. The backend assigns the id.
type CreateRequest struct {
	Name                string `validate:"required"`
	EquipmentType       string
	Manufacturer        string
	Model               string
	SerialNumber        string
	Location            string `validate:"required"`
	DateInstalled       *model.Date
	LastMaintenanceDate *model.Date
}

func (s *Service) Create(ctx context.Context, req CreateRequest) ([]model.Equipment, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.Validation("invalid equipment: %v", err)
	}

	equipment := &model.Equipment{
		Name:                req.Name,
		EquipmentType:       req.EquipmentType,
		Manufacturer:        req.Manufacturer,
		Model:               req.Model,
		SerialNumber:        req.SerialNumber,
		Location:            req.Location,
		DateInstalled:       req.DateInstalled,
		LastMaintenanceDate: req.LastMaintenanceDate,
	}
	if err := s.api.CreateEquipment(ctx, equipment); err != nil {
		return nil, err
	}

	s.logger.Info("equipment created", "name", req.Name)
	return s.api.ListEquipment(ctx)
}

// EditRequest carries the three editable fields.
type EditRequest struct {
	Name                string `validate:"required"`
	Location            string `validate:"required"`
	LastMaintenanceDate *model.Date
}

// Edit fetches the current record, overlays the edited fields and
// posts the merged object back.
func (s *Service) Edit(ctx context.Context, id int, req EditRequest) ([]model.Equipment, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.Validation("invalid edit: %v", err)
	}

	current, err := s.api.GetEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Name = req.Name
	current.Location = req.Location
	current.LastMaintenanceDate = req.LastMaintenanceDate

	if err := s.api.UpdateEquipment(ctx, current); err != nil {
		return nil, err
	}
	return s.api.ListEquipment(ctx)
}

// Delete removes the selected units concurrently, then reloads. The
// reload runs even when some deletes failed.
func (s *Service) Delete(ctx context.Context, ids []int) ([]model.Equipment, error) {
	deleteErr := fanout.Each(ctx, ids, s.api.DeleteEquipment)
	equipment, err := s.api.ListEquipment(ctx)
	if err != nil {
		return nil, err
	}
	return equipment, deleteErr
}

// List fetches the current equipment table.
func (s *Service) List(ctx context.Context) ([]model.Equipment, error) {
	return s.api.ListEquipment(ctx)
}
