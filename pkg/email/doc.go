// Package email sends outbound mail through a pluggable transport.
//
// Every transport implements Sender, a single-operation interface:
//
//	type Sender interface {
//	    Send(ctx context.Context, msg Message) error
//	}
//
// Available implementations:
//   - SMTPSender delivers through an authenticated SMTP account (default).
//   - PostmarkSender delivers through the Postmark API.
//   - DevSender writes each message to disk as HTML plus a JSON envelope.
//
// New picks one from Config.Provider:
//
//	var cfg email.Config
//	config.MustLoad(&cfg)
//
//	sender, err := email.New(cfg)
//	if err != nil {
//	    return err
//	}
//
//	err = sender.Send(ctx, email.Message{
//	    From:     "me@example.com",
//	    To:       "inbox@example.com",
//	    ReplyTo:  "visitor@example.com",
//	    Subject:  "Hello",
//	    HTMLBody: "<p>Hi</p>",
//	})
//
// # Error Handling
//
// All implementations validate the message first and return ErrInvalidParams
// for incomplete messages. Transport failures are joined with
// ErrFailedToSendEmail; missing credentials additionally match
// ErrMissingCredentials. Check with errors.Is.
//
// Senders never retry: one call is one delivery attempt.
package email
