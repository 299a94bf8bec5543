// Package authclient wraps the three remote auth calls: login, fetch
// profile, and register. It performs no persistence; storing credentials is
// the session's responsibility.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/carebridge/carebridge-go/internal/model"
)

const defaultTimeout = 15 * time.Second

// Client talks to the CareBridge auth backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Login posts credentials and returns the user plus a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (model.AuthResponse, error) {
	var resp model.AuthResponse
	err := c.postJSON(ctx, "/api/auth/login", model.LoginRequest{Email: email, Password: password}, &resp, "Login failed")
	return resp, err
}

// Register posts a role-specific registration payload.
func (c *Client) Register(ctx context.Context, req model.RegistrationRequest) (model.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return model.RegisterResponse{}, err
	}
	var resp model.RegisterResponse
	err := c.postJSON(ctx, "/api/auth/register", req, &resp, "Registration failed")
	return resp, err
}

// FetchProfile retrieves the fresh profile for the given token. An empty
// token fails locally before any network call.
func (c *Client) FetchProfile(ctx context.Context, token string) (model.User, error) {
	if token == "" {
		return model.User{}, ErrUnauthenticated
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/me", nil)
	if err != nil {
		return model.User{}, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return model.User{}, &NetworkError{Op: "fetch profile", Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return model.User{}, readAuthError(res, "Failed to fetch profile")
	}

	var user model.User
	if err := json.NewDecoder(res.Body).Decode(&user); err != nil {
		return model.User{}, fmt.Errorf("decode profile response: %w", err)
	}
	return user, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any, fallback string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: "post " + path, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return readAuthError(res, fallback)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readAuthError extracts the server's {message} body, falling back to a
// generic message when absent.
func readAuthError(res *http.Response, fallback string) error {
	var body struct {
		Message string `json:"message"`
	}
	msg := fallback
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil && body.Message != "" {
		msg = body.Message
	}
	return &AuthError{StatusCode: res.StatusCode, Message: msg}
}
