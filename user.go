package wattpad

import (
	"context"
	"net/http"
	"net/url"

	"github.com/broady/wattpad/field"
)

// UserService provides the user endpoints.
type UserService struct {
	client *Client
}

// Get fetches a user's public profile by username. An empty fields
// selection requests the default user fields.
func (u *UserService) Get(ctx context.Context, username string, fields []field.UserField) (*User, error) {
	req, err := resolveFields(
		u.client.newRequest(http.MethodGet, "/api/v3/users/"+url.PathEscape(username)),
		fields, field.DefaultUserFields)
	if err != nil {
		return nil, err
	}
	return execute[User](ctx, req)
}
