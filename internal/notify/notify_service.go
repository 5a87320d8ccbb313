package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go-hena-store/internal/pkg/apperror"
)

// Client submits an order to the external Order Notification Service.
// At-most-once: a single attempt per call, no retry and no idempotency
// key; duplicate-submission protection is the checkout session's job.
//
//go:generate mockgen -source=notify_service.go -destination=../mock/notify/notify_service_mock.go -package=mock
type Client interface {
	SendOrderNotification(ctx context.Context, details OrderDetails) error
}

type httpClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewClientFromEnv() (Client, error) {
	endpoint := strings.TrimSpace(os.Getenv("ORDER_NOTIFY_URL"))
	if endpoint == "" {
		return nil, fmt.Errorf("ORDER_NOTIFY_URL is not configured")
	}

	apiKey := strings.Trim(os.Getenv("ORDER_NOTIFY_KEY"), "\"")
	if apiKey == "" {
		return nil, fmt.Errorf("ORDER_NOTIFY_KEY is not configured")
	}

	return &httpClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func NewClient(endpoint, apiKey string, client *http.Client) Client {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &httpClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   client,
	}
}

func NewNoopClient() Client {
	return &noopClient{}
}

type orderEnvelope struct {
	OrderDetails OrderDetails `json:"orderDetails"`
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (c *httpClient) SendOrderNotification(ctx context.Context, details OrderDetails) error {
	body, err := json.Marshal(orderEnvelope{OrderDetails: details})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return ErrNotificationFailed.WithMessage(fmt.Sprintf("order notification request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.failure(resp)
	}

	return nil
}

// failure extracts the human-readable details message the service puts
// in its error body, falling back to the raw body or status code.
func (c *httpClient) failure(resp *http.Response) *apperror.AppError {
	raw, _ := io.ReadAll(resp.Body)

	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Details != "" {
		return ErrNotificationFailed.WithMessage(body.Details)
	}

	msg := strings.TrimSpace(string(raw))
	if len(msg) > 500 {
		msg = msg[:500]
	}
	if msg == "" {
		return ErrNotificationFailed.WithMessage(
			fmt.Sprintf("order notification service returned status %d", resp.StatusCode))
	}
	return ErrNotificationFailed.WithMessage(msg)
}

type noopClient struct{}

func (c *noopClient) SendOrderNotification(_ context.Context, _ OrderDetails) error {
	return nil
}
