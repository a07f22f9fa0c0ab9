package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urepair/console/internal/apitest"
	"github.com/urepair/console/internal/client"
	"github.com/urepair/console/internal/config"
	"github.com/urepair/console/internal/model"
	"github.com/urepair/console/pkg/circuitbreaker"
	apperrors "github.com/urepair/console/pkg/errors"
	"github.com/urepair/console/pkg/logger"
	"github.com/urepair/console/pkg/metrics"
)

func newClient(t *testing.T, baseURL string) *client.Client {
	t.Helper()
	c, err := client.New(config.APIConfig{
		BaseURL:        baseURL,
		TimeoutSeconds: 5,
		RateLimit:      1000,
		RateBurst:      100,
	}, logger.Discard(), metrics.New("test"))
	require.NoError(t, err)
	return c
}

func TestListIssuesUnwrapsTable(t *testing.T) {
	server := apitest.New()
	defer server.Close()
	server.AddIssue(model.Issue{ID: 1, EquipmentID: 4, Status: model.StatusNew, Priority: model.PriorityLow})
	server.AddIssue(model.Issue{ID: 2, EquipmentID: 4, Status: model.StatusClosed, Priority: model.PriorityHigh})

	c := newClient(t, server.URL)
	issues, err := c.ListIssues(context.Background())
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, 1, issues[0].ID)
	assert.Equal(t, model.PriorityHigh, issues[1].Priority)
}

func TestCreateThenGetIssue(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	c := newClient(t, server.URL)
	ctx := context.Background()

	issue := &model.Issue{
		ID:           model.PlaceholderID,
		EquipmentID:  9,
		Status:       model.StatusNew,
		Priority:     model.PriorityUrgent,
		Description:  "screen cracked",
		DateReported: model.Now(),
	}
	require.NoError(t, c.CreateIssue(ctx, issue))

	issues, err := c.ListIssues(ctx)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	got, err := c.GetIssue(ctx, issues[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "screen cracked", got.Description)
	assert.Equal(t, 9, got.EquipmentID)
}

func TestNon2xxIsHTTPError(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	c := newClient(t, server.URL)
	_, err := c.GetIssue(context.Background(), 404)
	require.Error(t, err)

	var httpErr *apperrors.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestTransportFailureIsTransportError(t *testing.T) {
	// A server that is already closed refuses connections.
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	c := newClient(t, server.URL)
	_, err := c.ListIssues(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsTransport(err))
}

func TestRequestCarriesRequestID(t *testing.T) {
	var gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"issue_table":[]}`))
	}))
	defer server.Close()

	c := newClient(t, server.URL)
	_, err := c.ListIssues(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, gotRequestID)
}

func TestUserLifecycleKeyedByEmail(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	c := newClient(t, server.URL)
	ctx := context.Background()

	user := &model.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.edu", Role: model.RoleStaff}
	require.NoError(t, c.CreateUser(ctx, user))

	got, err := c.GetUser(ctx, "ada@x.edu")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)

	got.Role = model.RoleStudent
	require.NoError(t, c.UpdateUser(ctx, got))

	require.NoError(t, c.DeleteUser(ctx, "ada@x.edu"))
	users, err := c.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestPasswordEndpoints(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	c := newClient(t, server.URL)
	ctx := context.Background()

	require.NoError(t, c.ForgotPassword(ctx, "ada@x.edu"))
	require.NoError(t, c.ResetPassword(ctx, "token-123", "hunter2!"))

	err := c.ResetPassword(ctx, "expired", "hunter2!")
	var httpErr *apperrors.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBreakerShortCircuitsAfterTransportFailures(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	c, err := client.New(config.APIConfig{
		BaseURL:                server.URL,
		TimeoutSeconds:         5,
		RateLimit:              1000,
		RateBurst:              100,
		BreakerThreshold:       1,
		BreakerCooldownSeconds: 60,
	}, logger.Discard(), metrics.New("test"))
	require.NoError(t, err)

	_, err = c.ListIssues(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsTransport(err))

	// The circuit is open now; this call never reaches the network.
	_, err = c.ListIssues(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, circuitbreaker.ErrOpen))
}

func TestHTTPErrorStatusDoesNotTripBreaker(t *testing.T) {
	server := apitest.New()
	defer server.Close()

	c, err := client.New(config.APIConfig{
		BaseURL:                server.URL,
		TimeoutSeconds:         5,
		RateLimit:              1000,
		RateBurst:              100,
		BreakerThreshold:       1,
		BreakerCooldownSeconds: 60,
	}, logger.Discard(), metrics.New("test"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := c.GetIssue(context.Background(), 9999)
		var httpErr *apperrors.HTTPError
		require.ErrorAs(t, err, &httpErr)
	}
}
