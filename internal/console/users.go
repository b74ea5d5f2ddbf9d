package console

import (
	"context"
	"net/http"
)

// GetUserByEmailArgs contains parameters for looking up a team member.
type GetUserByEmailArgs struct {
	Email string `json:"email" jsonschema:"required" jsonschema_description:"Team member email address"`
}

// GetUserResult is the result of a team-member lookup. These are Statsig
// project team members, not end users.
type GetUserResult struct {
	Email   string         `json:"email"`
	Found   bool           `json:"found"`
	User    map[string]any `json:"user,omitempty"`
	Message string         `json:"message,omitempty"`
}

// ListTeamUsersArgs contains parameters for listing team members.
type ListTeamUsersArgs struct{}

// GetUserByEmail retrieves a team member by email address.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*GetUserResult, error) {
	body, status, err := c.do(ctx, http.MethodGet, "/users/"+escapePath(email), nil, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return &GetUserResult{
			Email:   email,
			Found:   false,
			Message: "User with email '" + email + "' not found in Statsig team",
		}, nil
	}
	if status >= 400 {
		return nil, apiError(status, body)
	}

	return &GetUserResult{
		Email: email,
		Found: true,
		User:  dataObject(body),
	}, nil
}

// ListTeamUsers lists all project team members.
func (c *Client) ListTeamUsers(ctx context.Context) (*ListResult, error) {
	return c.getList(ctx, "/users", nil)
}

// GetUserByEmailMCP is the MCP wrapper for GetUserByEmail.
func (c *Client) GetUserByEmailMCP(ctx context.Context, args GetUserByEmailArgs) (GetUserResult, error) {
	if err := ValidateEmail(args.Email); err != nil {
		return GetUserResult{}, err
	}
	result, err := c.GetUserByEmail(ctx, args.Email)
	if err != nil {
		return GetUserResult{}, err
	}
	return *result, nil
}

// ListTeamUsersMCP is the MCP wrapper for ListTeamUsers.
func (c *Client) ListTeamUsersMCP(ctx context.Context, _ ListTeamUsersArgs) (ListResult, error) {
	result, err := c.ListTeamUsers(ctx)
	if err != nil {
		return ListResult{}, err
	}
	return *result, nil
}
