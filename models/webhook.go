package models

// WebhookResponse is the upstream answer relayed by the webhook proxy.
type WebhookResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}
