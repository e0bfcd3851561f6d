package wattpad

import (
	"errors"
	"fmt"
)

// Fixed-meaning errors, matched with errors.Is. The API reports the first
// four with dedicated numeric codes in its error envelope.
var (
	// ErrAuthenticationFailed is returned by Authenticate when the API does
	// not establish a session: the login response carried no cookie.
	ErrAuthenticationFailed = errors.New("wattpad: authentication failed: invalid credentials or missing cookies")

	// ErrUserNotFound corresponds to API error code 1014.
	ErrUserNotFound = errors.New("wattpad: user not found")

	// ErrStoryNotFound corresponds to API error code 1017.
	ErrStoryNotFound = errors.New("wattpad: story not found")

	// ErrPermissionDeniedNotLoggedIn corresponds to API error code 1018.
	ErrPermissionDeniedNotLoggedIn = errors.New("wattpad: permission denied: user not logged in")

	// ErrAccessDenied corresponds to API error code 1154.
	ErrAccessDenied = errors.New("wattpad: access denied")
)

// AuthenticationRequiredError is returned before any network I/O when a
// requested field, or a whole endpoint, needs an authenticated session and
// the client is not logged in.
type AuthenticationRequiredError struct {
	// Name is the wire token of the gated field, or the path of the gated
	// endpoint.
	Name string
	// Context describes the requirement.
	Context string
}

func (e *AuthenticationRequiredError) Error() string {
	return fmt.Sprintf("wattpad: authentication required for %q: %s", e.Name, e.Context)
}

// MissingRequiredFieldError is returned when an operation depends on a field
// the caller's value does not carry, such as fetching the full part behind a
// reference that has no id.
type MissingRequiredFieldError struct {
	// Field is the name of the absent field.
	Field string
	// Context describes where the field was expected.
	Context string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("wattpad: missing required field %q: %s", e.Field, e.Context)
}

// ParseError wraps a failure to decode a response body, whether it was a
// success payload or the API's error envelope.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("wattpad: failed to parse response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// APIError is an error envelope returned by the API whose code has no more
// specific mapping. Code, Type and Message carry the envelope contents
// verbatim.
type APIError struct {
	Code    int64
	Type    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wattpad: api error %d (%s): %s", e.Code, e.Type, e.Message)
}

// apiErrorResponse is the generic error envelope the API returns alongside
// non-success statuses.
type apiErrorResponse struct {
	Code    int64  `json:"code"`
	Type    string `json:"error"`
	Message string `json:"message"`
}

// toError maps the envelope onto the error taxonomy. Known codes map to
// fixed errors; unknown codes pass through as an APIError.
func (r apiErrorResponse) toError() error {
	switch r.Code {
	case 1014:
		return ErrUserNotFound
	case 1017:
		return ErrStoryNotFound
	case 1018:
		return ErrPermissionDeniedNotLoggedIn
	case 1154:
		return ErrAccessDenied
	default:
		return &APIError{
			Code:    r.Code,
			Type:    r.Type,
			Message: r.Message,
		}
	}
}
