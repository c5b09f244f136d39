// Package mailer provides the outbound notification transport used to
// send case reports to attorneys.
package mailer

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// Message is a single outbound notification
type Message struct {
	To             string
	ToName         string
	Subject        string
	HTMLBody       string
	AttachmentName string
	Attachment     []byte
}

// Mailer delivers a message and returns the transport-assigned
// message id. A non-nil error means the message was not delivered.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// MailerType represents the transport backend type
type MailerType string

const (
	MailerTypeLog  MailerType = "log"
	MailerTypeSMTP MailerType = "smtp"
)

// Config holds transport configuration
type Config struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromName    string
	FromAddress string
}

// NewMailerFromEnv creates a transport from environment variables.
// Defaults to the log transport so the server runs without SMTP
// credentials in development.
func NewMailerFromEnv() (Mailer, error) {
	mailerType := os.Getenv("MAILER_TYPE")
	if mailerType == "" {
		mailerType = "log"
	}

	switch MailerType(mailerType) {
	case MailerTypeLog:
		return NewLogMailer(), nil

	case MailerTypeSMTP:
		cfg := Config{
			Host:        os.Getenv("SMTP_HOST"),
			Username:    os.Getenv("SMTP_USERNAME"),
			Password:    os.Getenv("SMTP_PASSWORD"),
			FromName:    os.Getenv("MAIL_FROM_NAME"),
			FromAddress: os.Getenv("MAIL_FROM_ADDRESS"),
		}
		if cfg.Host == "" {
			return nil, fmt.Errorf("SMTP_HOST environment variable is required for SMTP transport")
		}
		cfg.Port = 587
		if v := os.Getenv("SMTP_PORT"); v != "" {
			port, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", v, err)
			}
			cfg.Port = port
		}
		if cfg.FromName == "" {
			cfg.FromName = "Electronic Paralegal"
		}
		if cfg.FromAddress == "" {
			cfg.FromAddress = "notifications@electronicparalegal.com"
		}
		return NewSMTPMailer(cfg)

	default:
		return nil, fmt.Errorf("unknown mailer type: %s", mailerType)
	}
}
