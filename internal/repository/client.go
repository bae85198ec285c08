package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/campus-portal/pkg/util"
)

// Messages surfaced to users when a remote call fails without a server message.
const (
	msgNoResponse = "No response from server. Please check your network connection."
	msgBadPayload = "Unexpected response from server."
)

// TokenSource yields the credential currently held in the caller's slot.
type TokenSource interface {
	Read(ctx context.Context) (string, bool, error)
}

// Request describes one call against a remote CampusConnect service.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	// Token is read right before sending. Nil sends an anonymous request.
	Token TokenSource
}

// Client performs JSON calls against one service base URL.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *fiber.Client
	logger  *zap.Logger
}

// NewClient builds a client. timeout applies when the context carries no deadline.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http:    &fiber.Client{UserAgent: "campus-portal"},
		logger:  logger,
	}
}

// Do sends req and decodes a successful response into out (which may be nil).
// A *string out receives the raw body.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := c.buildURL(req.Path, req.Query)
	if err != nil {
		return setupError(err)
	}

	var payload []byte
	if req.Body != nil {
		if payload, err = json.Marshal(req.Body); err != nil {
			return setupError(err)
		}
	}

	token := ""
	if req.Token != nil {
		value, ok, err := req.Token.Read(ctx)
		if err != nil {
			return setupError(fmt.Errorf("read credential: %w", err))
		}
		if ok {
			token = value
		}
	}

	agent, err := c.agent(req.Method, target)
	if err != nil {
		return setupError(err)
	}
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	if payload != nil {
		agent.ContentType(fiber.MIMEApplicationJSON)
		agent.Body(payload)
	}
	if timeout := c.timeoutFor(ctx); timeout > 0 {
		agent.Timeout(timeout)
	}
	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return setupError(err)
	}

	status, body, errs := agent.Bytes()

	// the caller went away while the call was outstanding; drop the result
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(errs) > 0 {
		joined := errors.Join(errs...)
		c.logger.Warn("remote call got no response",
			zap.String("method", req.Method), zap.String("url", target), zap.Error(joined))
		return apperrors.NewUpstreamError(http.StatusBadGateway, msgNoResponse, joined)
	}
	if status < 200 || status > 299 {
		message := serverMessage(status, body)
		c.logger.Warn("remote call failed",
			zap.String("method", req.Method), zap.String("url", target),
			zap.Int("status", status), zap.String("message", message))
		return apperrors.NewUpstreamError(status, message, nil)
	}

	return decodeBody(body, out)
}

func (c *Client) agent(method, target string) (*fiber.Agent, error) {
	switch method {
	case http.MethodGet:
		return c.http.Get(target), nil
	case http.MethodPost:
		return c.http.Post(target), nil
	case http.MethodPut:
		return c.http.Put(target), nil
	case http.MethodDelete:
		return c.http.Delete(target), nil
	default:
		return nil, fmt.Errorf("unsupported method %s", method)
	}
}

func (c *Client) buildURL(path string, query url.Values) (string, error) {
	target := c.baseURL + path
	parsed, err := url.Parse(target)
	if err != nil {
		return "", err
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid service url %q", target)
	}
	if len(query) > 0 {
		parsed.RawQuery = query.Encode()
	}
	return parsed.String(), nil
}

func (c *Client) timeoutFor(ctx context.Context) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 {
			return remaining
		}
		return time.Millisecond
	}
	return c.timeout
}

func serverMessage(status int, body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return fmt.Sprintf("Server responded with status %d", status)
}

func decodeBody(body []byte, out any) error {
	if out == nil {
		return nil
	}
	if raw, ok := out.(*string); ok {
		*raw = string(body)
		return nil
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.NewUpstreamError(http.StatusBadGateway, msgBadPayload, err)
	}
	return nil
}

func setupError(err error) error {
	return apperrors.NewUpstreamError(http.StatusInternalServerError,
		fmt.Sprintf("Error setting up the request: %v", err), err)
}
