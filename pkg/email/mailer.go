package email

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
)

// Sender delivers a single, fully prepared message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is an outbound email. It lives only for the duration of a Send call.
type Message struct {
	From     string `json:"from"`
	To       string `json:"to"`
	ReplyTo  string `json:"reply_to,omitempty"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
}

// Validate checks the fields every transport needs.
// From and To are RFC 5322 addresses, so "GAV.DEV <me@gmail.com>" is accepted.
// ReplyTo is copied from user input and is left for the transport to judge.
func (m Message) Validate() error {
	if strings.TrimSpace(m.From) == "" {
		return fmt.Errorf("%w: From is required", ErrInvalidParams)
	}
	if !isAddress(m.From) {
		return fmt.Errorf("%w: From must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidParams)
	}
	if !isAddress(m.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(m.HTMLBody) == "" {
		return fmt.Errorf("%w: HTMLBody is required", ErrInvalidParams)
	}
	return nil
}

func isAddress(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}
