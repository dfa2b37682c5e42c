package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/attendbot/slack-attendance-bot/internal/domain"
	"github.com/attendbot/slack-attendance-bot/internal/domain/contract"
)

// defaultRetryAfter is used when a 429 response carries no Retry-After header.
const defaultRetryAfter = 5 * time.Second

// Client posts payloads to the configured webhook URL. A 429 response is the
// only condition that triggers an automatic retry, bounded by maxRetries;
// every other failure is terminal for that attempt.
type Client struct {
	url        string
	maxRetries int
	httpClient *http.Client
	log        *zap.Logger

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

func New(url string, timeout time.Duration, maxRetries int, log *zap.Logger) *Client {
	return &Client{
		url:        url,
		maxRetries: maxRetries,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
		sleep:      time.Sleep,
	}
}

// Enabled reports whether a webhook endpoint is configured.
func (c *Client) Enabled() bool {
	return c.url != ""
}

// Send posts the payload, retrying once per 429 encountered up to maxRetries.
func (c *Client) Send(ctx context.Context, payload contract.WebhookPayload) error {
	if !c.Enabled() {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	for attempt := 0; ; attempt++ {
		status, retryAfter, err := c.post(ctx, body)
		if err != nil {
			c.log.Error("webhook request failed", zap.Error(err))
			return fmt.Errorf("%w: %v", domain.ErrWebhookUnavailable, err)
		}

		switch {
		case status == http.StatusOK:
			c.log.Info("webhook sent", zap.Int("status", status))
			return nil

		case status == http.StatusUnauthorized, status == http.StatusForbidden, status == http.StatusNotFound:
			c.log.Error("webhook rejected", zap.Int("status", status))
			return fmt.Errorf("%w: status %d", domain.ErrWebhookRejected, status)

		case status == http.StatusTooManyRequests:
			if attempt >= c.maxRetries {
				c.log.Error("webhook rate limited, retries exhausted", zap.Int("attempts", attempt+1))
				return fmt.Errorf("%w: rate limited after %d attempts", domain.ErrWebhookFailed, attempt+1)
			}
			c.log.Warn("webhook rate limited, retrying",
				zap.Duration("retry_after", retryAfter),
				zap.Int("attempt", attempt+1))
			c.sleep(retryAfter)

		default:
			c.log.Error("webhook failed", zap.Int("status", status))
			return fmt.Errorf("%w: status %d", domain.ErrWebhookFailed, status)
		}
	}
}

func (c *Client) post(ctx context.Context, body []byte) (status int, retryAfter time.Duration, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	retryAfter = defaultRetryAfter
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, parseErr := strconv.Atoi(v); parseErr == nil {
			retryAfter = time.Duration(secs) * time.Second
		}
	}

	return resp.StatusCode, retryAfter, nil
}
