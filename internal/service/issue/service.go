// Package issue implements the mutation gateway for repair tickets:
// submit, edit, delete, bulk resolve and merge. Every mutation ends
// with a full list reload; callers feed the returned list into their
// table, which clears the selection. There are no optimistic local
// updates.
package issue

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/urepair/console/internal/model"
	"github.com/urepair/console/internal/service/fanout"
	"github.com/urepair/console/pkg/errors"
	"github.com/urepair/console/pkg/logger"
)

// API is the slice of the backend client the service needs.
type API interface {
	ListIssues(ctx context.Context) ([]model.Issue, error)
	GetIssue(ctx context.Context, id int) (*model.Issue, error)
	CreateIssue(ctx context.Context, issue *model.Issue) error
	UpdateIssue(ctx context.Context, issue *model.Issue) error
	DeleteIssue(ctx context.Context, id int) error
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

// SubmitRequest is an end user's new ticket.
type SubmitRequest struct {
	EquipmentID int            `validate:"required,gt=0"`
	Priority    model.Priority `validate:"required,oneof=LOW MEDIUM HIGH URGENT"`
	Description string         `validate:"required"`
}

// Submit files a new ticket and returns the reloaded issue list.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) ([]model.Issue, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.Validation("invalid ticket: %v", err)
	}

	issue := &model.Issue{
		ID:           model.PlaceholderID,
		EquipmentID:  req.EquipmentID,
		Status:       model.StatusNew,
		Priority:     req.Priority,
		Description:  req.Description,
		DateReported: model.Now(),
	}
	if err := s.api.CreateIssue(ctx, issue); err != nil {
		return nil, err
	}

	s.logger.Info("ticket submitted", "equipment_id", req.EquipmentID)
	return s.api.ListIssues(ctx)
}

// EditRequest carries the four editable fields. AssignedTo set to
// model.NullValue unassigns the issue.
type EditRequest struct {
	AssignedTo string
	Notes      string
	Status     model.Status   `validate:"required,oneof=NEW IN_PROGRESS RESOLVED CLOSED"`
	Priority   model.Priority `validate:"required,oneof=LOW MEDIUM HIGH URGENT"`
}

// Edit fetches the current issue, overlays only the edited fields,
// posts the merged object back and reloads.
func (s *Service) Edit(ctx context.Context, id int, req EditRequest) ([]model.Issue, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.Validation("invalid edit: %v", err)
	}

	current, err := s.api.GetIssue(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.AssignedTo == model.NullValue || req.AssignedTo == "" {
		current.AssignedTo = nil
	} else {
		current.AssignedTo = &req.AssignedTo
	}
	current.Notes = &req.Notes
	current.Status = req.Status
	current.Priority = req.Priority

	if err := s.api.UpdateIssue(ctx, current); err != nil {
		return nil, err
	}
	return s.api.ListIssues(ctx)
}

// Delete removes the selected issues with one concurrent request per
// id. The reload runs even when some deletes failed; the returned
// list is valid alongside a non-nil error in that case.
func (s *Service) Delete(ctx context.Context, ids []int) ([]model.Issue, error) {
	deleteErr := fanout.Each(ctx, ids, s.api.DeleteIssue)
	issues, err := s.api.ListIssues(ctx)
	if err != nil {
		return nil, err
	}
	return issues, deleteErr
}

// Resolve marks each selected issue RESOLVED, stamping resolution
// details and the current time, one concurrent fetch-and-update per
// id. Like Delete, the reload runs regardless of partial failures.
func (s *Service) Resolve(ctx context.Context, ids []int, details string) ([]model.Issue, error) {
	resolveErr := fanout.Each(ctx, ids, func(ctx context.Context, id int) error {
		issue, err := s.api.GetIssue(ctx, id)
		if err != nil {
			return err
		}
		issue.Status = model.StatusResolved
		issue.ResolutionDetails = &details
		issue.DateResolved = model.Now()
		return s.api.UpdateIssue(ctx, issue)
	})

	issues, err := s.api.ListIssues(ctx)
	if err != nil {
		return nil, err
	}
	return issues, resolveErr
}

// Merge folds two or more issues on the same equipment into one new
// issue: highest-ranked priority wins, descriptions and notes are
// newline-joined in selection order. The source issues are deleted
// after the new one is created. Creation and deletion are separate
// unguarded steps; a delete failure leaves both the merged issue and
// the surviving sources in place.
func (s *Service) Merge(ctx context.Context, ids []int) ([]model.Issue, error) {
	if len(ids) < 2 {
		return nil, errors.Validation("select at least 2 issues to merge")
	}

	sources, err := fanout.Collect(ctx, ids, s.api.GetIssue)
	if err != nil {
		return nil, err
	}

	equipmentID := sources[0].EquipmentID
	for _, source := range sources[1:] {
		if source.EquipmentID != equipmentID {
			return nil, errors.Validation("issues must reference the same equipment to merge")
		}
	}

	priorities := make([]model.Priority, len(sources))
	descriptions := make([]string, len(sources))
	notes := make([]string, len(sources))
	for i, source := range sources {
		priorities[i] = source.Priority
		descriptions[i] = source.Description
		if source.Notes != nil {
			notes[i] = *source.Notes
		}
	}

	mergedNotes := strings.Join(notes, "\n")
	merged := &model.Issue{
		ID:           model.PlaceholderID,
		EquipmentID:  equipmentID,
		Status:       model.StatusNew,
		Priority:     model.MaxPriority(priorities),
		Description:  strings.Join(descriptions, "\n"),
		DateReported: model.Now(),
		Notes:        &mergedNotes,
	}
	if err := s.api.CreateIssue(ctx, merged); err != nil {
		return nil, err
	}

	deleteErr := fanout.Each(ctx, ids, s.api.DeleteIssue)
	if deleteErr != nil {
		s.logger.Error(deleteErr, "merge left source issues behind", "ids", ids)
	}

	issues, err := s.api.ListIssues(ctx)
	if err != nil {
		return nil, err
	}
	return issues, deleteErr
}

// List fetches the current issue table.
func (s *Service) List(ctx context.Context) ([]model.Issue, error) {
	return s.api.ListIssues(ctx)
}
