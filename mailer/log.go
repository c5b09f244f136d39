package mailer

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// LogMailer logs messages instead of delivering them. Used in
// development when no SMTP transport is configured.
type LogMailer struct{}

// NewLogMailer creates a new log transport
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// Send logs the message and returns a generated message id
func (m *LogMailer) Send(ctx context.Context, msg Message) (string, error) {
	messageID := fmt.Sprintf("%s@electronicparalegal.local", uuid.NewString())
	log.Printf("mailer: would send %q to %s <%s> (attachment: %s, %d bytes), message id %s",
		msg.Subject, msg.ToName, msg.To, msg.AttachmentName, len(msg.Attachment), messageID)
	return messageID, nil
}
