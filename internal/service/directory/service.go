// Package directory serves the assignee dropdown: the user list
// mapped to email/display-name options with an "Unassigned" sentinel
// first. Options are cached with a TTL so opening a dialog does not
// refetch the whole user table every time.
package directory

import (
	"context"
	"fmt"

	"github.com/patrickmn/go-cache"

	"github.com/urepair/console/internal/config"
	"github.com/urepair/console/internal/model"
	"github.com/urepair/console/pkg/logger"
)

const optionsKey = "options"

// Option is one assignee choice. Email is the stored value; Name is
// what the UI shows.
type Option struct {
	Email string
	Name  string
}

// Unassigned is always the first option; choosing it stores a null
// assignee.
var Unassigned = Option{Email: model.NullValue, Name: "Unassigned"}

type UserLister interface {
	ListUsers(ctx context.Context) ([]model.User, error)
}

type Service struct {
	api    UserLister
	cache  *cache.Cache
	logger *logger.Logger
}

func NewService(api UserLister, cfg config.DirectoryConfig, log *logger.Logger) *Service {
	return &Service{
		api:    api,
		cache:  cache.New(cfg.CacheTTL, cfg.CleanupInterval),
		logger: log,
	}
}

// Options returns the assignee choices, from cache when fresh.
func (s *Service) Options(ctx context.Context) ([]Option, error) {
	if cached, ok := s.cache.Get(optionsKey); ok {
		return cached.([]Option), nil
	}

	users, err := s.api.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]Option, 0, len(users)+1)
	options = append(options, Unassigned)
	for _, user := range users {
		options = append(options, Option{
			Email: user.Email,
			Name:  fmt.Sprintf("%s %s", user.FirstName, user.LastName),
		})
	}

	s.cache.SetDefault(optionsKey, options)
	s.logger.Debug("directory refreshed", "users", len(users))
	return options, nil
}

// Invalidate drops the cached options; the next Options call
// refetches. Called after user mutations.
func (s *Service) Invalidate() {
	s.cache.Delete(optionsKey)
}
