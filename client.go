package wattpad

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"golang.org/x/net/publicsuffix"
)

// defaultBaseURL is the production API host.
const defaultBaseURL = "https://www.wattpad.com"

// defaultUserAgent is sent when no custom agent is configured. The API
// serves browser agents more reliably than obvious bot agents.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"

const (
	loginPath = "/auth/login"
	// loginQuery is sent verbatim, including the leading empty parameter
	// the login route expects.
	loginQuery = "&_data=routes%2Fauth.login"
	logoutPath = "/logout"
)

var (
	validate    = validator.New()
	formEncoder = schema.NewEncoder()
)

// Client is the entry point for the API. It owns the HTTP client with its
// session cookie jar, tracks authentication state, and exposes the endpoint
// groups as services. Configure it with the WithX methods before first use;
// afterwards it is safe for concurrent use.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	headers   map[string]string

	// authenticated is the one flag every pre-flight auth check reads.
	// Authenticate and Deauthenticate are its only writers.
	authenticated atomic.Bool

	// User provides the user endpoints.
	User *UserService
	// Story provides the story and part endpoints.
	Story *StoryService
}

// NewClient returns a client with a cookie-jar HTTP client, the default
// browser user agent and the production base URL.
func NewClient() *Client {
	// cookiejar.New cannot fail with these options.
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	c := &Client{
		http:      &http.Client{Jar: jar},
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
	}
	c.User = &UserService{client: c}
	c.Story = &StoryService{client: c}
	return c
}

// WithHTTPClient replaces the underlying HTTP client. The provided client is
// used as-is: sessions only survive login if it carries a cookie jar.
// It returns the client for chaining.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// WithBaseURL points the client at a different host, such as a test server.
// It returns the client for chaining.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = strings.TrimSuffix(base, "/")
	return c
}

// WithUserAgent sets the User-Agent header sent with every request.
// It returns the client for chaining.
func (c *Client) WithUserAgent(ua string) *Client {
	c.userAgent = ua
	return c
}

// WithHeader adds a header sent with every request.
// It returns the client for chaining.
func (c *Client) WithHeader(key, value string) *Client {
	if c.headers == nil {
		c.headers = make(map[string]string)
	}
	c.headers[key] = value
	return c
}

// WithLogger enables request logging through logger by wrapping the HTTP
// client's transport. The library logs nothing unless this is set.
// It returns the client for chaining.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	c.http.Transport = &LoggingTransport{Base: c.http.Transport, Logger: logger}
	return c
}

// IsAuthenticated reports whether the most recent authentication attempt
// established a session.
func (c *Client) IsAuthenticated() bool {
	return c.authenticated.Load()
}

// credentials is the login form. It is validated before any I/O so an empty
// field never reaches the wire.
type credentials struct {
	Username string `schema:"username" validate:"required"`
	Password string `schema:"password" validate:"required"`
}

// Authenticate logs in with the given credentials. The API establishes a
// session through cookies on the login response: observing at least one
// cookie marks the client authenticated, and a cookieless response returns
// ErrAuthenticationFailed and clears the flag regardless of HTTP status.
func (c *Client) Authenticate(ctx context.Context, username, password string) error {
	creds := credentials{Username: username, Password: password}
	if err := validate.Struct(creds); err != nil {
		return credentialError(err)
	}

	form := url.Values{}
	if err := formEncoder.Encode(creds, form); err != nil {
		return fmt.Errorf("wattpad: encode login form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath+"?"+loginQuery, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("wattpad: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.send(req)
	if err != nil {
		return fmt.Errorf("wattpad: POST %s: %w", loginPath, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if len(resp.Cookies()) == 0 {
		c.authenticated.Store(false)
		return ErrAuthenticationFailed
	}
	c.authenticated.Store(true)
	return nil
}

// Deauthenticate logs out. The local flag is cleared unconditionally, even
// when the logout call itself fails.
func (c *Client) Deauthenticate(ctx context.Context) error {
	defer c.authenticated.Store(false)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+logoutPath, nil)
	if err != nil {
		return fmt.Errorf("wattpad: build request: %w", err)
	}
	resp, err := c.send(req)
	if err != nil {
		return fmt.Errorf("wattpad: GET %s: %w", logoutPath, err)
	}
	resp.Body.Close()
	return nil
}

// send applies the client-wide headers and performs the round trip.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	return c.http.Do(req)
}

// credentialError maps a validation failure onto the caller-input error,
// naming the first offending form field.
func credentialError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &MissingRequiredFieldError{
			Field:   strings.ToLower(verrs[0].Field()),
			Context: "login credentials must carry a username and a password",
		}
	}
	return err
}
