package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
)

const smtpsPort = 465

// SMTPSender delivers messages through an authenticated SMTP account,
// e.g. a Gmail address with an app password.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
}

// NewSMTPSender creates an SMTP-backed sender.
// Credentials are checked on every Send rather than here.
func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.Username,
		password: cfg.Password,
	}
}

// Send opens a connection, delivers msg and closes it. One attempt per call.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if s.username == "" || s.password == "" {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("%w: EMAIL_USER and EMAIL_PASS must both be set", ErrMissingCredentials),
		)
	}
	if s.host == "" {
		return fmt.Errorf("%w: SMTP host is required", ErrInvalidConfig)
	}

	m, err := buildMsg(msg)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}

	client, err := mail.NewClient(s.host, s.clientOptions()...)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}

func (s *SMTPSender) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.username),
		mail.WithPassword(s.password),
	}
	// Implicit TLS on 465, STARTTLS everywhere else.
	if s.port == smtpsPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	return opts
}

// buildMsg converts a Message into a go-mail message.
func buildMsg(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid to address: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to address: %w", err)
		}
	}
	m.Subject(msg.Subject)
	m.SetDate()
	m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
	return m, nil
}
