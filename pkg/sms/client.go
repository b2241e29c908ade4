package sms

import (
	"context"
	"fmt"

	"github.com/arsmn/go-smsir/smsir"

	"github.com/medora-health/medora_backend/config"
)

// Client provides SMS sending functionality via sms.ir.
type Client struct {
	client  *smsir.Client
	enabled bool
}

// NewFromConfig creates a new SMS client from the application configuration.
// If SMS is disabled, returns a client that no-ops on all operations.
func NewFromConfig(cfg config.SMSConfig) (*Client, error) {
	if !cfg.Enabled {
		return &Client{enabled: false}, nil
	}

	if cfg.SMSIR.APIKey == "" {
		return nil, fmt.Errorf("sms.ir API key required when SMS enabled")
	}

	client := smsir.NewClient().WithAuthentication(cfg.SMSIR.APIKey, cfg.SMSIR.SecretKey)

	return &Client{
		client:  client,
		enabled: true,
	}, nil
}

// SendTemplate sends a templated SMS to the specified phone number.
// If SMS is disabled, this is a no-op and returns nil.
//
// Parameters:
//   - ctx: Context for the request
//   - phoneNumber: Recipient phone number (E.164 format recommended)
//   - templateID: sms.ir template ID to use
//   - params: template parameter key/value pairs
func (c *Client) SendTemplate(ctx context.Context, phoneNumber, templateID string, params map[string]string) error {
	if !c.enabled {
		// No-op when disabled (useful for development)
		return nil
	}

	if phoneNumber == "" {
		return fmt.Errorf("phone number is required")
	}
	if templateID == "" {
		return fmt.Errorf("template ID is required")
	}

	req := &smsir.UltraFastSendRequest{
		Mobile:     phoneNumber,
		TemplateID: templateID,
	}
	for k, v := range params {
		req.Parameters = append(req.Parameters, smsir.UltraFastParameter{Key: k, Value: v})
	}

	_, err := c.client.Verification.UltraFastSend(ctx, req)
	if err != nil {
		return fmt.Errorf("sms.ir send failed: %w", err)
	}

	return nil
}

// IsEnabled returns whether SMS sending is enabled.
func (c *Client) IsEnabled() bool {
	return c.enabled
}
