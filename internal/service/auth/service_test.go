package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urepair/console/internal/apitest"
	"github.com/urepair/console/internal/client"
	"github.com/urepair/console/internal/config"
	"github.com/urepair/console/internal/service/auth"
	apperrors "github.com/urepair/console/pkg/errors"
	"github.com/urepair/console/pkg/logger"
	"github.com/urepair/console/pkg/metrics"
)

func newService(t *testing.T, server *apitest.Server) *auth.Service {
	t.Helper()
	c, err := client.New(config.APIConfig{
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
		RateLimit:      1000,
		RateBurst:      100,
	}, logger.Discard(), metrics.New("test"))
	require.NoError(t, err)
	return auth.NewService(c, logger.Discard())
}

func TestForgotPassword(t *testing.T) {
	server := apitest.New()
	defer server.Close()
	svc := newService(t, server)

	err := svc.ForgotPassword(context.Background(), "dana@x.edu")
	require.NoError(t, err)
	assert.Contains(t, server.Writes(), "POST /forgot-password")
}

func TestForgotPasswordRejectsBadEmailBeforeNetwork(t *testing.T) {
	server := apitest.New()
	defer server.Close()
	svc := newService(t, server)

	err := svc.ForgotPassword(context.Background(), "not-an-email")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, server.Writes())
}

func TestResetPassword(t *testing.T) {
	server := apitest.New()
	defer server.Close()
	svc := newService(t, server)

	require.NoError(t, svc.ResetPassword(context.Background(), "tok-123", "hunter2"))

	err := svc.ResetPassword(context.Background(), "expired", "hunter2")
	require.Error(t, err)
	var httpErr *apperrors.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
}

func TestResetPasswordValidatesInputs(t *testing.T) {
	server := apitest.New()
	defer server.Close()
	svc := newService(t, server)

	assert.True(t, apperrors.IsValidation(svc.ResetPassword(context.Background(), "", "hunter2")))
	assert.True(t, apperrors.IsValidation(svc.ResetPassword(context.Background(), "tok-123", "")))
	assert.Empty(t, server.Writes())
}
