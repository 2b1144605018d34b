package utils

import (
	"internhub/config"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

var webhookClient = resty.New().SetTimeout(10 * time.Second)

// PostWebhookEvent posts a JSON event to the configured webhook URL. A missing
// URL disables delivery; failures are logged and not retried.
func PostWebhookEvent(event string, payload interface{}) {
	if config.AppConfig == nil || config.AppConfig.WebhookURL == "" {
		return
	}

	resp, err := webhookClient.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":   event,
			"sentAt":  time.Now().Format(time.RFC3339),
			"payload": payload,
		}).
		Post(config.AppConfig.WebhookURL)
	if err != nil {
		log.Printf("Error posting webhook event %s: %v", event, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Webhook event %s rejected with status %d", event, resp.StatusCode())
	}
}
