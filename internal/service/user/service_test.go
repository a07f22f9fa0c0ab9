package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urepair/console/internal/apitest"
	"github.com/urepair/console/internal/client"
	"github.com/urepair/console/internal/config"
	"github.com/urepair/console/internal/model"
	"github.com/urepair/console/internal/service/user"
	apperrors "github.com/urepair/console/pkg/errors"
	"github.com/urepair/console/pkg/logger"
	"github.com/urepair/console/pkg/metrics"
)

func newService(t *testing.T, server *apitest.Server) *user.Service {
	t.Helper()
	c, err := client.New(config.APIConfig{
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
		RateLimit:      1000,
		RateBurst:      100,
	}, logger.Discard(), metrics.New("test"))
	require.NoError(t, err)
	return user.NewService(c, logger.Discard())
}

func TestCreateKeyedByEmail(t *testing.T) {
	server := apitest.New()
	defer server.Close()
	svc := newService(t, server)

	users, err := svc.Create(context.Background(), user.CreateRequest{
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     "dana@x.edu",
		Role:      model.RoleStaff,
	})
	require.NoError(t, err)
	require.Len(t, users, 1)

	stored, ok := server.User("dana@x.edu")
	require.True(t, ok)
	assert.Equal(t, model.RoleStaff, stored.Role)
}

func TestCreateRejectsBadEmailAndRole(t *testing.T) {
	server := apitest.New()
	defer server.Close()
	svc := newService(t, server)

	_, err := svc.Create(context.Background(), user.CreateRequest{
		FirstName: "Dana", LastName: "Reyes", Email: "not-an-email", Role: model.RoleStaff,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(context.Background(), user.CreateRequest{
		FirstName: "Dana", LastName: "Reyes", Email: "dana@x.edu", Role: "ADMIN",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, server.Writes())
}

func TestEditOverlaysNameAndRole(t *testing.T) {
	server := apitest.New()
	defer server.Close()
	svc := newService(t, server)

	server.AddUser(model.User{
		FirstName: "Dana", LastName: "Reyes", Email: "dana@x.edu", Role: model.RoleStudent,
	})

	_, err := svc.Edit(context.Background(), "dana@x.edu", user.EditRequest{
		FirstName: "Dana", LastName: "Reyes-Ortiz", Role: model.RoleStaff,
	})
	require.NoError(t, err)

	stored, ok := server.User("dana@x.edu")
	require.True(t, ok)
	assert.Equal(t, "Reyes-Ortiz", stored.LastName)
	assert.Equal(t, model.RoleStaff, stored.Role)
}

func TestDeleteRemovesSelectedUsers(t *testing.T) {
	server := apitest.New()
	defer server.Close()
	svc := newService(t, server)

	server.AddUser(model.User{FirstName: "A", LastName: "A", Email: "a@x.edu", Role: model.RoleStaff})
	server.AddUser(model.User{FirstName: "B", LastName: "B", Email: "b@x.edu", Role: model.RoleStudent})
	server.AddUser(model.User{FirstName: "C", LastName: "C", Email: "c@x.edu", Role: model.RoleStudent})

	users, err := svc.Delete(context.Background(), []string{"a@x.edu", "b@x.edu"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "c@x.edu", users[0].Email)
}
