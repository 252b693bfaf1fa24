// Package api is the client for the mock backend the demo flows lean on.
// The backend is an external collaborator with its own failure modes
// (network unavailable, unexpected schema, error statuses); nothing here
// assumes it is reliable.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/devicelab-dev/appiumqa/pkg/core"
)

// Client calls the login-shaped endpoints of the backend.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a client for the backend base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpc: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// LoginResponse is the success payload.
type LoginResponse struct {
	Token string `json:"token"`
}

// User is one entry of the users listing.
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

// UsersResponse is the users listing payload.
type UsersResponse struct {
	Page  int    `json:"page"`
	Total int    `json:"total"`
	Data  []User `json:"data"`
}

// StatusError is a non-2xx response with the backend's error message.
type StatusError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// Login posts credentials. A 2xx response must carry a token; a non-2xx
// response surfaces as *StatusError with the backend's error message.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, core.ErrBackendUnreachable.WithCause(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, core.ErrBackendUnreachable.WithCause(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody),
		}
	}

	var out LoginResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, core.ErrUnexpectedResponse.WithCause(err)
	}
	if out.Token == "" {
		return nil, core.ErrUnexpectedResponse.WithMessage("login response missing token")
	}
	return &out, nil
}

// Users fetches a page of the users listing and validates its shape.
func (c *Client) Users(ctx context.Context, page int) (*UsersResponse, error) {
	url := fmt.Sprintf("%s/api/users?page=%d", c.baseURL, page)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, core.ErrBackendUnreachable.WithCause(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, core.ErrBackendUnreachable.WithCause(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody),
		}
	}

	var out UsersResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, core.ErrUnexpectedResponse.WithCause(err)
	}
	if out.Data == nil {
		return nil, core.ErrUnexpectedResponse.WithMessage("users response missing data array")
	}
	return &out, nil
}

// errorMessage extracts {"error": "..."} from an error body, tolerating
// bodies that are not JSON at all.
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error
}
