package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Client sends email through the Resend API.
type Client struct {
	client      *resend.Client
	fromName    string
	fromAddress string
}

// NewClient creates a Resend-backed mail client. The from identity is used as
// the sender of every message; Resend requires the address to belong to a
// verified domain (or the resend.dev sandbox sender).
func NewClient(apiKey, fromName, fromAddress string) *Client {
	return &Client{
		client:      resend.NewClient(apiKey),
		fromName:    fromName,
		fromAddress: fromAddress,
	}
}

// Send delivers the message via the Resend API and returns the provider's
// message ID.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromAddress),
		To:      []string{msg.ToAddress},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("mail.Client.Send: %w", err)
	}
	return sent.Id, nil
}
