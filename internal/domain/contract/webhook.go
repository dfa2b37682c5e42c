package contract

import "context"

// WebhookPayload mirrors a proof or check outcome to the outbound endpoint.
type WebhookPayload struct {
	Author    string   `json:"author"`
	Content   string   `json:"content"`
	ImageURLs []string `json:"image_urls,omitempty"`
	SentAt    string   `json:"sent_at"`
}

// WebhookSender posts payloads to the configured endpoint. Send returns a
// domain webhook error on failure; callers treat every outcome as
// best-effort.
type WebhookSender interface {
	Send(ctx context.Context, payload WebhookPayload) error
	Enabled() bool
}
