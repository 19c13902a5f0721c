package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const transportFunction = "function"

// FunctionClient отправляет уведомление в HTTP-функцию send-booking-notification
type FunctionClient struct {
	url        string
	key        string
	httpClient *http.Client
}

// NewFunctionClient создает клиент функции уведомлений.
// key передаётся как Bearer-токен, пустой ключ не отправляется.
func NewFunctionClient(url, key string, timeout time.Duration, transport http.RoundTripper) *FunctionClient {
	return &FunctionClient{
		url: url,
		key: key,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Name имя транспорта для логов и метрик
func (c *FunctionClient) Name() string {
	return transportFunction
}

// Send отправляет уведомление POST-запросом
func (c *FunctionClient) Send(ctx context.Context, n BookingNotification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrNotificationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrNotificationFailed, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrNotificationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: %w: unexpected status code %d: %s", ErrNotificationFailed, ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	return nil
}
