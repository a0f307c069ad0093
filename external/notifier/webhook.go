// Package notifier delivers settlement events to a chat webhook (Discord,
// Slack, or anything that accepts a JSON POST). Delivery is best effort: the
// settlement engine never rolls back because a webhook was down.
package notifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/fifahub/liga-tracker/internal/platform/id"
	"github.com/fifahub/liga-tracker/internal/platform/logging"
	"github.com/fifahub/liga-tracker/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
)

var errWebhookTransient = crerr.New("webhook transient failure")

type WebhookConfig struct {
	URL            string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Webhook struct {
	client         *http.Client
	url            string
	logger         *logging.Logger
	idGen          id.Generator
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewWebhook(cfg WebhookConfig, logger *logging.Logger) *Webhook {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Webhook{
		client: &http.Client{
			Timeout: timeout,
		},
		url:            strings.TrimSpace(cfg.URL),
		logger:         logger,
		idGen:          id.NewRandomGenerator(),
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type webhookPayload struct {
	EventID string `json:"event_id"`
	Level   string `json:"level"`
	Event   string `json:"event"`
	Message string `json:"message"`
	SentAt  string `json:"sent_at"`
}

func (n *Webhook) Success(ctx context.Context, event, message string) {
	n.deliver(ctx, "success", event, message)
}

func (n *Webhook) Error(ctx context.Context, event, message string) {
	n.deliver(ctx, "error", event, message)
}

func (n *Webhook) deliver(ctx context.Context, level, event, message string) {
	if err := n.send(ctx, level, event, message); err != nil {
		n.logger.WarnContext(ctx, "webhook notification dropped",
			"level", level, "event", event, "error", err)
	}
}

func (n *Webhook) send(ctx context.Context, level, event, message string) error {
	if n.circuitEnabled {
		if err := n.breaker.Allow(); err != nil {
			return fmt.Errorf("webhook is temporarily unavailable: %w", err)
		}
	}

	webhookURL, err := validateHTTPURL(n.url)
	if err != nil {
		return crerr.Wrap(err, "invalid webhook URL")
	}

	eventID, err := n.idGen.NewID()
	if err != nil {
		return crerr.Wrap(err, "generate event id")
	}

	body, err := sonic.Marshal(webhookPayload{
		EventID: eventID,
		Level:   level,
		Event:   event,
		Message: message,
		SentAt:  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return crerr.Wrap(err, "marshal webhook payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, strings.NewReader(string(body)))
	if err != nil {
		return crerr.Wrap(err, "create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-Id", eventID)

	resp, err := n.client.Do(req)
	if err != nil {
		callErr := fmt.Errorf("%w: post webhook event=%s: %v", errWebhookTransient, event, err)
		n.recordCircuitResult(callErr)
		return callErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if isRetryableStatus(resp.StatusCode) {
			callErr := fmt.Errorf("%w: post webhook status=%d event=%s body=%s",
				errWebhookTransient, resp.StatusCode, event, strings.TrimSpace(string(raw)))
			n.recordCircuitResult(callErr)
			return callErr
		}
		callErr := fmt.Errorf("post webhook status=%d event=%s body=%s",
			resp.StatusCode, event, strings.TrimSpace(string(raw)))
		n.recordCircuitResult(callErr)
		return callErr
	}

	n.logger.DebugContext(ctx, "webhook notification sent",
		"event", event, "event_id", eventID, "preview", buildPayloadPreview(level, event, message))
	n.recordCircuitResult(nil)
	return nil
}

func (n *Webhook) recordCircuitResult(err error) {
	if !n.circuitEnabled {
		return
	}
	if err == nil {
		n.breaker.RecordSuccess()
		return
	}
	if crerr.Is(err, errWebhookTransient) {
		n.breaker.RecordFailure()
		return
	}
	n.breaker.RecordSuccess()
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	}
	return status >= 500
}

func validateHTTPURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return candidate, nil
}

func buildPayloadPreview(level, event, message string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(level)
	_, _ = buf.WriteString(": ")
	_, _ = buf.WriteString(event)
	_, _ = buf.WriteString(" ")
	if len(message) > 200 {
		_, _ = buf.WriteString(message[:200])
		_, _ = buf.WriteString("...")
	} else {
		_, _ = buf.WriteString(message)
	}

	return buf.String()
}
