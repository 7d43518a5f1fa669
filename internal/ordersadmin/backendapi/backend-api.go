package backendapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/Shajeel/bnw-orders-admin/internal/common/backendprotocol"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
)

var (
	ErrSessionExpired     = errors.New("upstream session expired")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// CredentialProvider supplies the bearer token for outbound calls. It is a
// request-scoped dependency, not a mutable global: every call asks for the
// current token.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is the service-account credential the gateway normally runs
// with.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) {
	return string(t), nil
}

// SessionExpiredFunc is invoked whenever the upstream answers 401, so the
// owner of the credential can react. The failed call still returns
// ErrSessionExpired.
type SessionExpiredFunc func(ctx context.Context)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	http           *resty.Client
	credentials    CredentialProvider
	sessionExpired SessionExpiredFunc
	logger         *logging.ZapLogger
}

func New(cfg Config, credentials CredentialProvider, sessionExpired SessionExpiredFunc, logger *logging.ZapLogger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}
	return &Client{
		http:           httpClient,
		credentials:    credentials,
		sessionExpired: sessionExpired,
		logger:         logger,
	}
}

func (c *Client) newRequest(ctx context.Context) (*resty.Request, error) {
	token, err := c.credentials.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving credentials failed: %w", err)
	}
	req := c.http.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req, nil
}

// checkStatus turns a non-2xx response into an error carrying the upstream
// message when one is present.
func (c *Client) checkStatus(ctx context.Context, resp *resty.Response) error {
	statusCode := resp.StatusCode()
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}
	switch statusCode {
	case 401:
		if c.sessionExpired != nil {
			c.sessionExpired(ctx)
		}
		return ErrSessionExpired
	case 404:
		return ErrNotFound
	}
	message := upstreamMessage(resp.Body())
	if message == "" {
		return fmt.Errorf("unexpected status code %v", statusCode)
	}
	return fmt.Errorf("upstream rejected request (%v): %s", statusCode, message)
}

func upstreamMessage(body []byte) string {
	var apiErr backendprotocol.APIError
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return ""
	}
	return apiErr.Message
}

// Ping probes the upstream health endpoint. Used once at startup; request
// paths never retry.
func (c *Client) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.Get("/health")
	if err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	return c.checkStatus(ctx, resp)
}

// Login verifies operator credentials against the upstream auth endpoint.
func (c *Client) Login(ctx context.Context, email, password string) (backendprotocol.LoginData, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(backendprotocol.LoginRequest{Email: email, Password: password}).
		Post("/auth/login")
	if err != nil {
		return backendprotocol.LoginData{}, fmt.Errorf("login request failed: %w", err)
	}
	if resp.StatusCode() == 401 {
		// Operator typo, not a dead service credential.
		return backendprotocol.LoginData{}, ErrInvalidCredentials
	}
	if err := c.checkStatus(ctx, resp); err != nil {
		return backendprotocol.LoginData{}, err
	}
	var envelope backendprotocol.Response[backendprotocol.LoginData]
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		c.logger.ErrorCtx(ctx, "error unmarshalling login response", zap.Error(err))
		return backendprotocol.LoginData{}, fmt.Errorf("error unmarshalling login response: %w", err)
	}
	return envelope.Data, nil
}

func (c *Client) DashboardStats(ctx context.Context) (backendprotocol.DashboardStats, error) {
	return getRecord[backendprotocol.DashboardStats](ctx, c, "/dashboard/stats")
}

func getRecord[T any](ctx context.Context, c *Client, path string) (T, error) {
	var zero T
	req, err := c.newRequest(ctx)
	if err != nil {
		return zero, err
	}
	resp, err := req.Get(path)
	if err != nil {
		return zero, fmt.Errorf("get request failed: %w", err)
	}
	if err := c.checkStatus(ctx, resp); err != nil {
		return zero, err
	}
	return decodeRecord[T](ctx, c, resp.Body())
}

func postRecord[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var zero T
	req, err := c.newRequest(ctx)
	if err != nil {
		return zero, err
	}
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Post(path)
	if err != nil {
		return zero, fmt.Errorf("post request failed: %w", err)
	}
	if err := c.checkStatus(ctx, resp); err != nil {
		return zero, err
	}
	return decodeRecord[T](ctx, c, resp.Body())
}

func patchRecord[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var zero T
	req, err := c.newRequest(ctx)
	if err != nil {
		return zero, err
	}
	resp, err := req.SetBody(body).Patch(path)
	if err != nil {
		return zero, fmt.Errorf("patch request failed: %w", err)
	}
	if err := c.checkStatus(ctx, resp); err != nil {
		return zero, err
	}
	return decodeRecord[T](ctx, c, resp.Body())
}

func deleteRecord(ctx context.Context, c *Client, path string) error {
	req, err := c.newRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.Delete(path)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	return c.checkStatus(ctx, resp)
}

func decodeRecord[T any](ctx context.Context, c *Client, body []byte) (T, error) {
	var envelope backendprotocol.Response[T]
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.logger.ErrorCtx(ctx, "error unmarshalling upstream response", zap.Error(err))
		var zero T
		return zero, fmt.Errorf("error unmarshalling upstream response: %w", err)
	}
	return envelope.Data, nil
}
