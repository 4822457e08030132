package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gavdev/portfolio/pkg/email"
	"github.com/gavdev/portfolio/pkg/email/templates"
	"github.com/gavdev/portfolio/pkg/logger"
)

const subjectPrefix = "Portfolio Message: New message from "

// Relay turns a submission into one email to the configured inbox.
type Relay struct {
	cfg    Config
	sender email.Sender
	log    *slog.Logger
}

// NewRelay creates a relay. A nil logger discards output.
func NewRelay(cfg Config, sender email.Sender, log *slog.Logger) *Relay {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Relay{
		cfg:    cfg,
		sender: sender,
		log:    log.With(logger.Component("contact")),
	}
}

// Submit validates s and, when valid, sends exactly one message and waits
// for the transport's answer. Validation failures wrap ErrMissingFields and
// never reach the transport. Transport failures wrap ErrDeliveryFailed.
func (r *Relay) Submit(ctx context.Context, s Submission) error {
	if err := s.Validate(); err != nil {
		return err
	}

	msg, err := r.message(ctx, s)
	if err != nil {
		return errors.Join(ErrDeliveryFailed, err)
	}

	if err := r.sender.Send(ctx, msg); err != nil {
		return errors.Join(ErrDeliveryFailed, err)
	}

	r.log.InfoContext(ctx, "contact message relayed", logger.Event("contact_relayed"))
	return nil
}

func (r *Relay) message(ctx context.Context, s Submission) (email.Message, error) {
	body, err := templates.Render(ctx, templates.ContactNotification(templates.ContactNotificationParams{
		SiteName: r.cfg.SiteName,
		Name:     s.Name,
		Email:    s.Email,
		Message:  s.Message,
	}))
	if err != nil {
		return email.Message{}, fmt.Errorf("render notification: %w", err)
	}

	return email.Message{
		From:     r.cfg.Sender,
		To:       r.cfg.Inbox,
		ReplyTo:  s.Email,
		Subject:  subjectPrefix + s.Name,
		HTMLBody: body,
	}, nil
}
