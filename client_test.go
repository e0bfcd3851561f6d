package wattpad

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func TestAuthenticate(t *testing.T) {
	var form struct {
		username string
		password string
	}
	var rawQuery, contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		contentType = r.Header.Get("Content-Type")
		r.ParseForm()
		form.username = r.PostForm.Get("username")
		form.password = r.PostForm.Get("password")
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "abc"})
	}))
	t.Cleanup(server.Close)

	c := testClient(server)
	if err := c.Authenticate(context.Background(), "alice", "hunter2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !c.IsAuthenticated() {
		t.Error("expected the client to be authenticated")
	}
	if rawQuery != "&_data=routes%2Fauth.login" {
		t.Errorf("expected the login query verbatim, got %q", rawQuery)
	}
	if contentType != "application/x-www-form-urlencoded" {
		t.Errorf("expected form content type, got %q", contentType)
	}
	if form.username != "alice" || form.password != "hunter2" {
		t.Errorf("expected credentials in the form, got %q %q", form.username, form.password)
	}
}

func TestAuthenticateNoCookie(t *testing.T) {
	server, _, _ := captureServer(t, http.StatusOK, "welcome")

	c := testClient(server)
	c.authenticated.Store(true)

	err := c.Authenticate(context.Background(), "alice", "wrong")
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
	if c.IsAuthenticated() {
		t.Error("expected a cookieless login to clear the session")
	}
}

func TestAuthenticateTransportError(t *testing.T) {
	server, _, _ := captureServer(t, http.StatusOK, "")
	c := testClient(server)
	c.authenticated.Store(true)
	server.Close()

	err := c.Authenticate(context.Background(), "alice", "hunter2")
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrAuthenticationFailed) {
		t.Fatal("expected a transport error, not an authentication failure")
	}
	if !c.IsAuthenticated() {
		t.Error("expected a transport failure to leave the session state untouched")
	}
}

func TestAuthenticateValidation(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		password  string
		wantField string
	}{
		{name: "missing username", username: "", password: "hunter2", wantField: "username"},
		{name: "missing password", username: "alice", password: "", wantField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _, count := captureServer(t, http.StatusOK, "")
			c := testClient(server)

			err := c.Authenticate(context.Background(), tt.username, tt.password)

			var missingErr *MissingRequiredFieldError
			if !errors.As(err, &missingErr) {
				t.Fatalf("expected *MissingRequiredFieldError, got %v", err)
			}
			if missingErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, missingErr.Field)
			}
			if got := count.Load(); got != 0 {
				t.Errorf("expected no requests to reach the server, got %d", got)
			}
		})
	}
}

func TestDeauthenticate(t *testing.T) {
	server, captured, _ := captureServer(t, http.StatusOK, "")

	c := authenticatedClient(server)
	if err := c.Deauthenticate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.IsAuthenticated() {
		t.Error("expected the client to be logged out")
	}
	if captured.Path != "/logout" {
		t.Errorf("expected a request to /logout, got %q", captured.Path)
	}
}

func TestDeauthenticateTransportError(t *testing.T) {
	server, _, _ := captureServer(t, http.StatusOK, "")
	c := authenticatedClient(server)
	server.Close()

	err := c.Deauthenticate(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if c.IsAuthenticated() {
		t.Error("expected the session state to clear even when logout fails")
	}
}

func TestSessionCookiePersists(t *testing.T) {
	var cookieSeen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "token", Value: "abc"})
		default:
			if cookie, err := r.Cookie("token"); err == nil {
				cookieSeen = cookie.Value
			}
			w.Write([]byte("text"))
		}
	}))
	t.Cleanup(server.Close)

	c := testClient(server)
	if err := c.Authenticate(context.Background(), "alice", "hunter2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Story.PartText(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cookieSeen != "abc" {
		t.Errorf("expected the session cookie on the follow-up request, got %q", cookieSeen)
	}
}

func TestClientHeaders(t *testing.T) {
	server, captured, _ := captureServer(t, http.StatusOK, "text")

	c := testClient(server).
		WithUserAgent("custom-agent/1.0").
		WithHeader("X-Trace", "42")

	if _, err := c.Story.PartText(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := captured.Header.Get("User-Agent"); got != "custom-agent/1.0" {
		t.Errorf("expected the custom user agent, got %q", got)
	}
	if got := captured.Header.Get("X-Trace"); got != "42" {
		t.Errorf("expected the custom header, got %q", got)
	}
}

func TestDefaultUserAgent(t *testing.T) {
	server, captured, _ := captureServer(t, http.StatusOK, "text")

	c := testClient(server)
	if _, err := c.Story.PartText(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := captured.Header.Get("User-Agent"); got != defaultUserAgent {
		t.Errorf("expected the default user agent, got %q", got)
	}
}

func TestWithBaseURLTrimsTrailingSlash(t *testing.T) {
	c := NewClient().WithBaseURL("https://example.com/")
	if c.baseURL != "https://example.com" {
		t.Errorf("expected the trailing slash to be trimmed, got %q", c.baseURL)
	}
}

func TestIsAuthenticatedConcurrent(t *testing.T) {
	server, _, _ := captureServer(t, http.StatusOK, "")
	c := testClient(server)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.IsAuthenticated()
			}
		}()
	}
	c.authenticated.Store(true)
	wg.Wait()

	if !c.IsAuthenticated() {
		t.Error("expected the client to be authenticated")
	}
}
