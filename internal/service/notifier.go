package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avc/storefront-bot/internal/domain"
)

// HTTPNotifier реализует domain.Notifier поверх HTTP API шлюза чат-бота
type HTTPNotifier struct {
	baseURL    string
	adminID    int64
	httpClient *http.Client
}

// NewNotifier создает новый Notifier
func NewNotifier(baseURL string, adminID int64) domain.Notifier {
	return &HTTPNotifier{
		baseURL: baseURL,
		adminID: adminID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type gatewayMessage struct {
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

// NotifyAdmin отправляет текстовое сообщение админу
func (n *HTTPNotifier) NotifyAdmin(ctx context.Context, text string) error {
	return n.NotifyUser(ctx, n.adminID, text)
}

// NotifyUser отправляет текстовое сообщение пользователю
func (n *HTTPNotifier) NotifyUser(ctx context.Context, userID int64, text string) error {
	return n.post(ctx, "/api/messages", gatewayMessage{UserID: userID, Text: text})
}

// SendPayload пересылает покупателю данные заказа
func (n *HTTPNotifier) SendPayload(ctx context.Context, userID int64, payload string) error {
	return n.post(ctx, "/api/deliveries", gatewayMessage{UserID: userID, Text: payload})
}

func (n *HTTPNotifier) post(ctx context.Context, path string, msg gatewayMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("notifier: failed to marshal message: %w", err)
	}

	url := n.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notifier: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notifier: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notifier: unexpected status code: %d", resp.StatusCode)
	}

	return nil
}
