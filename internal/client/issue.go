package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/urepair/console/internal/model"
)

func (c *Client) ListIssues(ctx context.Context) ([]model.Issue, error) {
	var table model.IssueTable
	if err := c.do(ctx, "list_issues", http.MethodGet, "/issue", nil, &table); err != nil {
		return nil, err
	}
	return table.Issues, nil
}

func (c *Client) GetIssue(ctx context.Context, id int) (*model.Issue, error) {
	var issue model.Issue
	if err := c.do(ctx, "get_issue", http.MethodGet, fmt.Sprintf("/issue/%d", id), nil, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// CreateIssue posts a fully formed issue. The backend assigns the
// real id and ignores the placeholder the client sends.
func (c *Client) CreateIssue(ctx context.Context, issue *model.Issue) error {
	return c.do(ctx, "create_issue", http.MethodPost, "/issue", issue, nil)
}

// UpdateIssue replaces the stored issue with the given full object.
func (c *Client) UpdateIssue(ctx context.Context, issue *model.Issue) error {
	return c.do(ctx, "update_issue", http.MethodPost, fmt.Sprintf("/issue/%d", issue.ID), issue, nil)
}

func (c *Client) DeleteIssue(ctx context.Context, id int) error {
	return c.do(ctx, "delete_issue", http.MethodDelete, fmt.Sprintf("/issue/%d", id), nil, nil)
}
