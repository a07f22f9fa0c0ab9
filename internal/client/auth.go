package client

import (
	"context"
	"net/http"
)

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ForgotPassword asks the backend to mail a reset link.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, "forgot_password", http.MethodPost, "/forgot-password",
		forgotPasswordRequest{Email: email}, nil)
}

// ResetPassword redeems a reset token for a new password.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	return c.do(ctx, "reset_password", http.MethodPost, "/reset-password",
		resetPasswordRequest{Token: token, NewPassword: newPassword}, nil)
}
