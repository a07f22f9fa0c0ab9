package directory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urepair/console/internal/config"
	"github.com/urepair/console/internal/model"
	"github.com/urepair/console/internal/service/directory"
	"github.com/urepair/console/pkg/logger"
)

type countingLister struct {
	calls int
	users []model.User
}

func (l *countingLister) ListUsers(ctx context.Context) ([]model.User, error) {
	l.calls++
	return l.users, nil
}

func newService(lister *countingLister) *directory.Service {
	cfg := config.DirectoryConfig{CacheTTL: time.Minute, CleanupInterval: time.Minute}
	return directory.NewService(lister, cfg, logger.Discard())
}

func TestOptionsPrependUnassigned(t *testing.T) {
	lister := &countingLister{users: []model.User{
		{FirstName: "Dana", LastName: "Reyes", Email: "dana@x.edu", Role: model.RoleStaff},
	}}
	svc := newService(lister)

	options, err := svc.Options(context.Background())
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, directory.Unassigned, options[0])
	assert.Equal(t, "dana@x.edu", options[1].Email)
	assert.Equal(t, "Dana Reyes", options[1].Name)
}

func TestOptionsAreCached(t *testing.T) {
	lister := &countingLister{}
	svc := newService(lister)

	_, err := svc.Options(context.Background())
	require.NoError(t, err)
	_, err = svc.Options(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, lister.calls)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	lister := &countingLister{}
	svc := newService(lister)

	_, err := svc.Options(context.Background())
	require.NoError(t, err)
	svc.Invalidate()
	_, err = svc.Options(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, lister.calls)
}
