package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavdev/portfolio/pkg/email"
)

func validMessage() email.Message {
	return email.Message{
		From:     "sender@example.com",
		To:       "inbox@example.com",
		ReplyTo:  "visitor@example.com",
		Subject:  "Portfolio Message: New message from Jane Doe",
		HTMLBody: "<p>Hello!</p>",
	}
}

func TestMessage_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(m *email.Message)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid message",
			mutate: func(m *email.Message) {},
		},
		{
			name:   "reply-to is optional",
			mutate: func(m *email.Message) { m.ReplyTo = "" },
		},
		{
			name:   "reply-to is not format checked",
			mutate: func(m *email.Message) { m.ReplyTo = "not-an-address" },
		},
		{
			name:    "empty from",
			mutate:  func(m *email.Message) { m.From = "" },
			wantErr: true,
			errMsg:  "From is required",
		},
		{
			name:    "invalid from",
			mutate:  func(m *email.Message) { m.From = "sender@" },
			wantErr: true,
			errMsg:  "From must be a valid email address",
		},
		{
			name:    "whitespace only to",
			mutate:  func(m *email.Message) { m.To = "   " },
			wantErr: true,
			errMsg:  "To is required",
		},
		{
			name:    "invalid to",
			mutate:  func(m *email.Message) { m.To = "@example.com" },
			wantErr: true,
			errMsg:  "To must be a valid email address",
		},
		{
			name:    "empty subject",
			mutate:  func(m *email.Message) { m.Subject = "" },
			wantErr: true,
			errMsg:  "Subject is required",
		},
		{
			name:    "empty body",
			mutate:  func(m *email.Message) { m.HTMLBody = " " },
			wantErr: true,
			errMsg:  "HTMLBody is required",
		},
		{
			name:   "display name sender",
			mutate: func(m *email.Message) { m.From = "GAV.DEV <me@gmail.com>" },
		},
		{
			name:    "display name without address",
			mutate:  func(m *email.Message) { m.From = "GAV.DEV" },
			wantErr: true,
			errMsg:  "From must be a valid email address",
		},
		{
			name:   "plus addressing",
			mutate: func(m *email.Message) { m.To = "owner+portfolio@sub.example.com" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg := validMessage()
			tt.mutate(&msg)

			err := msg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, email.ErrInvalidParams)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}
