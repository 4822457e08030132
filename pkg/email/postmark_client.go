package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// PostmarkSender delivers messages through Postmark's transactional API.
type PostmarkSender struct {
	client      *postmark.Client
	serverToken string
}

// PostmarkOption configures a PostmarkSender.
type PostmarkOption func(*PostmarkSender)

// WithPostmarkBaseURL points the client at a different API host.
func WithPostmarkBaseURL(url string) PostmarkOption {
	return func(s *PostmarkSender) {
		if url != "" {
			s.client.BaseURL = url
		}
	}
}

// NewPostmarkSender creates a Postmark-backed sender.
// Only the server token is needed to send; the account token is passed
// through for account-level API calls. A missing server token is reported
// by Send, the same way the SMTP sender reports missing credentials.
func NewPostmarkSender(cfg Config, opts ...PostmarkOption) *PostmarkSender {
	s := &PostmarkSender{
		client:      postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		serverToken: cfg.PostmarkServerToken,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send implements Sender. Tracking stays off: the only recipient is the
// site owner.
func (s *PostmarkSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if s.serverToken == "" {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("%w: POSTMARK_SERVER_TOKEN must be set", ErrMissingCredentials),
		)
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:     msg.From,
		To:       msg.To,
		ReplyTo:  msg.ReplyTo,
		Subject:  msg.Subject,
		HTMLBody: msg.HTMLBody,
		Tag:      "contact",
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
