package wattpad

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/broady/wattpad/field"
)

type queryParam struct {
	key   string
	value string
}

// apiRequest accumulates a single outbound API call: method, path, ordered
// query parameters and an endpoint-level auth requirement. One is built per
// call and never shared; nothing is sent until an execute function runs.
type apiRequest struct {
	client       *Client
	method       string
	path         string
	params       []queryParam
	authRequired bool
}

func (c *Client) newRequest(method, path string) *apiRequest {
	return &apiRequest{
		client: c,
		method: method,
		path:   path,
	}
}

// withParam appends a query parameter. Parameters keep their insertion
// order on the wire.
func (r *apiRequest) withParam(key, value string) *apiRequest {
	r.params = append(r.params, queryParam{key: key, value: value})
	return r
}

// withOptionalParam appends the parameter only when a value is present. An
// absent value contributes nothing, not an empty string.
func (r *apiRequest) withOptionalParam(key string, value *string) *apiRequest {
	if value == nil {
		return r
	}
	return r.withParam(key, *value)
}

// requireAuth marks the whole endpoint as needing an authenticated session.
// The check runs at execution time, not build time.
func (r *apiRequest) requireAuth() *apiRequest {
	r.authRequired = true
	return r
}

// resolveFields resolves the caller's selection (the kind's default when the
// selection is empty), runs the pre-flight auth gate against the client's
// current state, and appends the single fields parameter. A gated field
// fails the whole call here, before any network I/O.
func resolveFields[F field.Field](r *apiRequest, selection []F, defaults func() []F) (*apiRequest, error) {
	if len(selection) == 0 {
		selection = defaults()
	}
	if err := checkFieldAuth(selection, r.client.IsAuthenticated()); err != nil {
		return nil, err
	}
	return r.withParam("fields", field.Join(selection)), nil
}

// checkFieldAuth reports the first top-level entry of the selection that
// requires authentication when the client has none. Composite sub-selections
// belong to a different resource kind and are not walked; the API itself
// rejects gated sub-fields, just not as fast.
func checkFieldAuth[F field.Field](selection []F, authenticated bool) error {
	if authenticated {
		return nil
	}
	for _, f := range selection {
		if f.RequiresAuth() {
			return &AuthenticationRequiredError{
				Name:    f.String(),
				Context: fmt.Sprintf("the field %q requires authentication", f.String()),
			}
		}
	}
	return nil
}

func (r *apiRequest) checkEndpointAuth() error {
	if r.authRequired && !r.client.IsAuthenticated() {
		return &AuthenticationRequiredError{
			Name:    r.path,
			Context: fmt.Sprintf("the endpoint at %q requires authentication", r.path),
		}
	}
	return nil
}

// queryValueReplacer restores the punctuation field selections rely on.
// url.QueryEscape encodes commas and parentheses; the API expects them
// literal in the fields parameter.
var queryValueReplacer = strings.NewReplacer("%2C", ",", "%28", "(", "%29", ")")

func escapeQueryValue(v string) string {
	return queryValueReplacer.Replace(url.QueryEscape(v))
}

// requestURL renders the full URL for the call. The query string is
// assembled by hand because url.Values.Encode sorts keys and parameter
// order is part of the request contract.
func (r *apiRequest) requestURL() string {
	var b strings.Builder
	b.WriteString(r.client.baseURL)
	b.WriteString(r.path)
	for i, p := range r.params {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(escapeQueryValue(p.value))
	}
	return b.String()
}

// do runs the endpoint-level auth check and performs the one HTTP round trip
// for this request. Transport failures come back wrapped but otherwise
// verbatim; there are no retries and no timeouts beyond the HTTP client's
// own.
func (r *apiRequest) do(ctx context.Context) (*http.Response, error) {
	if err := r.checkEndpointAuth(); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, r.method, r.requestURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("wattpad: build request: %w", err)
	}
	resp, err := r.client.send(req)
	if err != nil {
		return nil, fmt.Errorf("wattpad: %s %s: %w", r.method, r.path, err)
	}
	return resp, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// decodeError reads the API error envelope from a non-success response and
// maps it onto the error taxonomy. An envelope that does not even decode
// surfaces as a ParseError rather than being swallowed.
func decodeError(resp *http.Response) error {
	var envelope apiErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return &ParseError{Err: err}
	}
	return envelope.toError()
}

// execute performs the call and decodes a JSON success body into T.
func execute[T any](ctx context.Context, r *apiRequest) (*T, error) {
	resp, err := r.do(ctx)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, decodeError(resp)
	}
	v := new(T)
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return nil, &ParseError{Err: err}
	}
	return v, nil
}

// executeText performs the call and returns the success body as a string.
func executeText(ctx context.Context, r *apiRequest) (string, error) {
	b, err := executeBytes(ctx, r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// executeBytes performs the call and returns the raw success body. Failure
// handling is identical to the typed variant.
func executeBytes(ctx context.Context, r *apiRequest) ([]byte, error) {
	resp, err := r.do(ctx)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, decodeError(resp)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("wattpad: read response body: %w", err)
	}
	return b, nil
}
