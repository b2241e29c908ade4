package email

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/medora-health/medora_backend/config"
)

type Client struct {
	cfg Config
	d   *gomail.Dialer
}

// NewFromCentral creates a new email client from central config
func NewFromCentral(cfg config.EmailConfig) (*Client, error) {
	return New(FromCentralConfig(cfg))
}

func New(cfg Config) (*Client, error) {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	return &Client{cfg: cfg, d: d}, nil
}

func (c *Client) Send(ctx context.Context, m Message) error {
	if !c.cfg.Enabled {
		return ErrDisabled{}
	}

	msg, err := buildMessage(c.cfg.From, m)
	if err != nil {
		return err
	}

	d := c.newDialer()

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(msg)
	}()

	// Respect ctx deadline if it's sooner than our config timeout.
	wait := c.cfg.SMTPTimeout()
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d > 0 && d < wait {
			wait = d
		}
	}

	select {
	case err := <-done:
		if err != nil {
			return ErrSend{Provider: "gomail/smtp", Err: err}
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return context.DeadlineExceeded
	}
}

func (c *Client) newDialer() *gomail.Dialer {
	d := gomail.NewDialer(c.cfg.SMTPHost, c.cfg.SMTPPort, c.cfg.SMTPUsername, c.cfg.SMTPPassword)

	d.SSL = c.cfg.SMTPUseTLS

	if c.cfg.SMTPUseTLS {
		d.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return d
}

func buildMessage(from string, m Message) (*gomail.Message, error) {
	msg := gomail.NewMessage()

	if len(m.To) == 0 {
		return nil, ErrInvalidMessage{Reason: "no recipients"}
	}
	if strings.TrimSpace(m.Subject) == "" {
		return nil, ErrInvalidMessage{Reason: "empty subject"}
	}
	if m.TextBody == "" && m.HTMLBody == "" {
		return nil, ErrInvalidMessage{Reason: "empty body"}
	}

	msg.SetHeader("From", from)
	msg.SetHeader("To", m.To...)
	if len(m.CC) > 0 {
		msg.SetHeader("Cc", m.CC...)
	}
	if len(m.BCC) > 0 {
		msg.SetHeader("Bcc", m.BCC...)
	}
	msg.SetHeader("Subject", m.Subject)

	for k, v := range m.Headers {
		msg.SetHeader(k, v)
	}

	if m.TextBody != "" {
		msg.SetBody("text/plain", m.TextBody)
		if m.HTMLBody != "" {
			msg.AddAlternative("text/html", m.HTMLBody)
		}
	} else {
		msg.SetBody("text/html", m.HTMLBody)
	}

	return msg, nil
}
