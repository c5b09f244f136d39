package mailer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
)

// SMTPMailer implements Mailer over SMTP
type SMTPMailer struct {
	client      *mail.Client
	fromName    string
	fromAddress string
}

// NewSMTPMailer creates a new SMTP transport
func NewSMTPMailer(cfg Config) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &SMTPMailer{
		client:      client,
		fromName:    cfg.FromName,
		fromAddress: cfg.FromAddress,
	}, nil
}

// Send delivers a message over SMTP and returns its message id
func (m *SMTPMailer) Send(ctx context.Context, msg Message) (string, error) {
	mm := mail.NewMsg()
	if err := mm.FromFormat(m.fromName, m.fromAddress); err != nil {
		return "", fmt.Errorf("invalid sender address: %w", err)
	}
	if err := mm.AddToFormat(msg.ToName, msg.To); err != nil {
		return "", fmt.Errorf("invalid recipient address %q: %w", msg.To, err)
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)

	if len(msg.Attachment) > 0 {
		if err := mm.AttachReader(msg.AttachmentName, bytes.NewReader(msg.Attachment)); err != nil {
			return "", fmt.Errorf("failed to attach report: %w", err)
		}
	}

	messageID := fmt.Sprintf("%s@electronicparalegal.com", uuid.NewString())
	mm.SetMessageIDWithValue(messageID)

	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		return "", fmt.Errorf("failed to send to %s: %w", msg.To, err)
	}

	return messageID, nil
}
