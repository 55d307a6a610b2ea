// Package api is the HTTP client for the VeriCheck service. All
// endpoints are request/response JSON; the service is the only producer
// of audit records.
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

	"github.com/google/uuid"

	"github.com/sadopc/vericheck/internal/core/record"
)

// Error is a failure reported by the service itself, carrying the
// human-readable message from the response body.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string { return e.Message }

// Account is the identity the service returns on a successful login.
type Account struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Breakdown is the per-factor scoring detail of an analysis.
type Breakdown struct {
	Language int `json:"language"`
	Source   int `json:"source"`
	Risk     int `json:"risk"`
}

// Analysis is the scoring result for a submitted piece of content. The
// service also appends the scan to the account's history.
type Analysis struct {
	Verdict     string    `json:"verdict"`
	Score       int       `json:"score"`
	Breakdown   Breakdown `json:"breakdown"`
	Flags       []string  `json:"flags"`
	SourceType  string    `json:"source_type"`
	Explanation string    `json:"explanation"`
}

// Client talks to the VeriCheck service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetTimeout sets the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}

// Login authenticates with email and password. Bad credentials come
// back as an *Error with the service's message.
func (c *Client) Login(ctx context.Context, email, password string) (Account, error) {
	var acct Account
	err := c.post(ctx, "/api/login", map[string]string{
		"email":    email,
		"password": password,
	}, &acct)
	if err != nil {
		return Account{}, err
	}
	return acct, nil
}

// Register creates an account. A duplicate email comes back as an
// *Error with the service's message.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	return c.post(ctx, "/api/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, nil)
}

// ForgotPassword asks the service to reset the account's password and
// returns the service's notice.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/api/forgot-password", map[string]string{"email": email}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// History fetches the full audit history for an email, in the order the
// service returns it.
func (c *Client) History(ctx context.Context, email string) ([]record.Record, error) {
	var records []record.Record
	if err := c.post(ctx, "/api/history", map[string]string{"email": email}, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Analyze submits content for scoring. kind is "url", "text", or "job".
// The service records the scan under the account, so callers should
// refresh the history afterwards.
func (c *Client) Analyze(ctx context.Context, email, kind, content string) (Analysis, error) {
	var out Analysis
	err := c.post(ctx, "/api/analyze", map[string]string{
		"type":  kind,
		"data":  content,
		"email": email,
	}, &out)
	if err != nil {
		return Analysis{}, err
	}
	return out, nil
}

// post sends a JSON request and decodes the JSON response into out (if
// non-nil). Error bodies of the form {"error": "..."} become *Error.
func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var svc struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &svc) == nil && svc.Error != "" {
			return &Error{StatusCode: resp.StatusCode, Message: svc.Error}
		}
		return &Error{StatusCode: resp.StatusCode, Message: resp.Status}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
