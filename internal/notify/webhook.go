package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 5 * time.Second

var (
	// ErrNilConfig is returned when no config is provided
	ErrNilConfig = errors.New("config cannot be nil")

	// ErrMissingBaseURL is returned when no callback base URL is provided
	ErrMissingBaseURL = errors.New("base URL cannot be empty")
)

// WebhookConfig holds configuration for the webhook notifier
type WebhookConfig struct {
	// BaseURL is the dialogue layer's callback endpoint
	BaseURL string

	// Timeout bounds each delivery attempt
	Timeout time.Duration
}

// Webhook delivers events by POSTing JSON to the dialogue layer's signal
// endpoint
type Webhook struct {
	baseURL string
	client  *http.Client
}

// NewWebhook creates a webhook notifier
func NewWebhook(cfg *WebhookConfig) (*Webhook, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Webhook{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

type signalBody struct {
	SessionHandle string `json:"session_handle"`
	Kind          string `json:"kind"`
	RoomID        string `json:"room_id"`
}

// Deliver POSTs the event to <base URL>/signal
func (w *Webhook) Deliver(ctx context.Context, input *DeliverInput) error {
	body, err := json.Marshal(signalBody{
		SessionHandle: input.SessionHandle,
		Kind:          input.Kind,
		RoomID:        input.RoomID,
	})
	if err != nil {
		return fmt.Errorf("failed to encode signal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+"/signal", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build signal request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver signal: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("signal endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
