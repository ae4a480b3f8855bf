package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/doeshing/hey-go/internal/domain"
	"github.com/doeshing/hey-go/internal/pkg/logger"
	"github.com/doeshing/hey-go/internal/ports"
)

// Client implements ports.LLMClient against an OpenAI-compatible chat-completion endpoint.
type Client struct {
	httpClient   *http.Client
	logger       ports.Logger
	queryTimeout time.Duration
	pingTimeout  time.Duration
}

// NewClient builds a client. Timeouts are applied per call through the request context.
func NewClient(log ports.Logger) *Client {
	if log == nil {
		log = logger.New(nil, false)
	}
	return &Client{
		httpClient:   &http.Client{},
		logger:       log,
		queryTimeout: domain.QueryTimeout,
		pingTimeout:  domain.PingTimeout,
	}
}

// Query asks the model for a command and returns the first choice's content.
func (c *Client) Query(ctx context.Context, req ports.ChatRequest) (string, error) {
	messages, err := renderMessages(req)
	if err != nil {
		return "", err
	}
	payload := chatCompletionRequest{
		Model:       valueOrDefault(req.Model, domain.DefaultModel),
		Messages:    messages,
		Temperature: domain.QueryTemperature,
		MaxTokens:   domain.QueryMaxTokens,
	}

	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	c.logger.Debug("calling endpoint", map[string]interface{}{
		"endpoint": req.Endpoint,
		"model":    payload.Model,
		"explain":  req.Explain,
	})

	status, body, err := c.post(ctx, req.Endpoint, payload)
	if err != nil {
		return "", errors.New(describeTransportError(err, req.Endpoint, c.queryTimeout))
	}
	if status < 200 || status > 299 {
		return "", fmt.Errorf("%s returned HTTP %d: %s", req.Endpoint, status, truncate(strings.TrimSpace(string(body)), domain.ErrorBodyLimit))
	}

	var decoded chatCompletionResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	content, ok := decoded.FirstMessage()
	if !ok {
		return "", errors.New("response contained no choices")
	}
	return content, nil
}

// Ping sends a one-token probe and reports latency and the server's model name.
func (c *Client) Ping(ctx context.Context, endpoint, model string) domain.PingResult {
	payload := chatCompletionRequest{
		Model:     valueOrDefault(model, domain.DefaultModel),
		Messages:  []chatMessage{{Role: "user", Content: "ping"}},
		MaxTokens: domain.PingMaxTokens,
	}

	ctx, cancel := context.WithTimeout(ctx, c.pingTimeout)
	defer cancel()

	start := time.Now()
	status, body, err := c.post(ctx, endpoint, payload)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		c.logger.Debug("ping failed", map[string]interface{}{"endpoint": endpoint, "error": err.Error()})
		return domain.PingResult{Error: describeTransportError(err, endpoint, c.pingTimeout)}
	}
	if status < 200 || status > 299 {
		return domain.PingResult{
			Error: fmt.Sprintf("HTTP %d: %s", status, truncate(strings.TrimSpace(string(body)), domain.ErrorBodyLimit)),
		}
	}

	var decoded chatCompletionResponse
	_ = json.Unmarshal(body, &decoded)
	return domain.PingResult{
		OK:        true,
		ElapsedMS: elapsed,
		Model:     valueOrDefault(decoded.Model, payload.Model),
	}
}

func (c *Client) post(ctx context.Context, endpoint string, payload chatCompletionRequest) (int, []byte, error) {
	requestBody, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return 0, nil, err
	}
	httpReq.Header.Set("content-type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	c.logger.Debug("endpoint replied", map[string]interface{}{"status": resp.StatusCode, "bytes": len(body)})
	return resp.StatusCode, body, nil
}

var _ ports.LLMClient = (*Client)(nil)
