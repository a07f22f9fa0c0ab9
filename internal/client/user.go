package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/urepair/console/internal/model"
)

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var table model.UserTable
	if err := c.do(ctx, "list_users", http.MethodGet, "/user", nil, &table); err != nil {
		return nil, err
	}
	return table.Users, nil
}

// GetUser fetches one user. Users are keyed by email, not id.
func (c *Client) GetUser(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, "get_user", http.MethodGet, "/user/"+url.PathEscape(email), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, user *model.User) error {
	return c.do(ctx, "create_user", http.MethodPost, "/user", user, nil)
}

func (c *Client) UpdateUser(ctx context.Context, user *model.User) error {
	return c.do(ctx, "update_user", http.MethodPost, "/user/"+url.PathEscape(user.Email), user, nil)
}

func (c *Client) DeleteUser(ctx context.Context, email string) error {
	return c.do(ctx, "delete_user", http.MethodDelete, "/user/"+url.PathEscape(email), nil, nil)
}
