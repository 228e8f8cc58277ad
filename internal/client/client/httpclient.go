package client

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

	"github.com/recruitai/cli/internal/client/models"
	"github.com/recruitai/cli/internal/logging"
)

const genericErrorDetail = "An error occurred"

// HTTPClient is the concrete Client talking JSON over HTTP to the RecruitAI
// backend. Every call gets an X-Request-Id for log correlation and, when the
// token source yields one, an Authorization bearer header.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient builds an HTTPClient for the given base URL (including the
// /api prefix). A nil tokens source means all requests go out unauthenticated.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "httpclient"),
	}
}

func (c *HTTPClient) Close() error { c.http.CloseIdleConnections(); return nil }

// request executes one JSON round-trip. A nil body sends no payload, a nil
// out discards the response body. Non-2xx responses come back as *HTTPError
// with the body's detail field; transport failures wrap ErrUnavailable.
func (c *HTTPClient) request(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if c.tokens != nil {
		if token := c.tokens(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{Status: resp.StatusCode, Detail: extractDetail(resp.Body)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// extractDetail pulls the "detail" field out of an error body, falling back
// to a generic message on empty or malformed bodies.
func extractDetail(r io.Reader) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil || body.Detail == "" {
		return genericErrorDetail
	}
	return body.Detail
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`

	RequiresTwoFactor bool   `json:"requires_2fa"`
	SessionToken      string `json:"session_token"`
	Email             string `json:"email"`
	Message           string `json:"message"`
}

type authResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

type codeRequest struct {
	Code string `json:"code"`
}

type verifyRequest struct {
	SessionToken string `json:"session_token"`
	Code         string `json:"code"`
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*LoginReply, error) {
	var resp loginResponse
	if err := c.request(ctx, http.MethodPost, "/auth/login", creds, &resp); err != nil {
		return nil, err
	}

	if resp.RequiresTwoFactor {
		return &LoginReply{
			RequiresTwoFactor: true,
			SessionToken:      resp.SessionToken,
			Email:             resp.Email,
			Message:           resp.Message,
		}, nil
	}
	if resp.AccessToken == "" || resp.User == nil {
		return nil, fmt.Errorf("login response missing token or user")
	}
	return &LoginReply{Grant: &models.AuthGrant{AccessToken: resp.AccessToken, User: *resp.User}}, nil
}

func (c *HTTPClient) Register(ctx context.Context, data models.RegisterData) (*models.AuthGrant, error) {
	var resp authResponse
	if err := c.request(ctx, http.MethodPost, "/auth/register", data, &resp); err != nil {
		return nil, err
	}
	return &models.AuthGrant{AccessToken: resp.AccessToken, User: resp.User}, nil
}

func (c *HTTPClient) Verify2FA(ctx context.Context, sessionToken, code string) (*models.AuthGrant, error) {
	var resp authResponse
	req := verifyRequest{SessionToken: sessionToken, Code: code}
	if err := c.request(ctx, http.MethodPost, "/auth/2fa/verify", req, &resp); err != nil {
		return nil, err
	}
	return &models.AuthGrant{AccessToken: resp.AccessToken, User: resp.User}, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.request(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, user models.User) (*models.User, error) {
	var updated models.User
	if err := c.request(ctx, http.MethodPut, "/candidate/profile", user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) SetupTOTP(ctx context.Context) (*models.TOTPSetup, error) {
	var setup models.TOTPSetup
	if err := c.request(ctx, http.MethodPost, "/auth/2fa/setup", nil, &setup); err != nil {
		return nil, err
	}
	return &setup, nil
}

func (c *HTTPClient) ConfirmTOTP(ctx context.Context, code string) error {
	return c.request(ctx, http.MethodPost, "/auth/2fa/confirm", codeRequest{Code: code}, nil)
}

func (c *HTTPClient) DisableTOTP(ctx context.Context, code string) error {
	return c.request(ctx, http.MethodPost, "/auth/2fa/disable", codeRequest{Code: code}, nil)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.request(ctx, http.MethodGet, "/health", nil, nil)
}
