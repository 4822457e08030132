package email_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavdev/portfolio/pkg/email"
)

func postmarkConfig() email.Config {
	return email.Config{
		Provider:             email.ProviderPostmark,
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
	}
}

func TestPostmarkSender_Send(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("delivers message fields", func(t *testing.T) {
		t.Parallel()

		var (
			payload map[string]any
			token   string
			path    string
		)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			token = r.Header.Get("X-Postmark-Server-Token")
			_ = json.NewDecoder(r.Body).Decode(&payload)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"To":"inbox@example.com","SubmittedAt":"2024-01-01T00:00:00Z","MessageID":"abc","ErrorCode":0,"Message":"OK"}`))
		}))
		t.Cleanup(srv.Close)

		sender := email.NewPostmarkSender(postmarkConfig(), email.WithPostmarkBaseURL(srv.URL))
		require.NoError(t, sender.Send(ctx, validMessage()))

		assert.True(t, strings.HasSuffix(path, "email"))
		assert.Equal(t, "server-token", token)
		assert.Equal(t, "sender@example.com", payload["From"])
		assert.Equal(t, "inbox@example.com", payload["To"])
		assert.Equal(t, "visitor@example.com", payload["ReplyTo"])
		assert.Equal(t, "Portfolio Message: New message from Jane Doe", payload["Subject"])
	})

	t.Run("api error code is a failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ErrorCode":300,"Message":"Invalid email request"}`))
		}))
		t.Cleanup(srv.Close)

		sender := email.NewPostmarkSender(postmarkConfig(), email.WithPostmarkBaseURL(srv.URL))
		err := sender.Send(ctx, validMessage())
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	})

	t.Run("missing server token", func(t *testing.T) {
		t.Parallel()

		sender := email.NewPostmarkSender(email.Config{PostmarkAccountToken: "account-token"})
		err := sender.Send(ctx, validMessage())
		assert.ErrorIs(t, err, email.ErrMissingCredentials)
	})

	t.Run("account token is optional", func(t *testing.T) {
		t.Parallel()

		var token string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token = r.Header.Get("X-Postmark-Server-Token")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ErrorCode":0,"Message":"OK"}`))
		}))
		t.Cleanup(srv.Close)

		sender := email.NewPostmarkSender(
			email.Config{PostmarkServerToken: "server-token"},
			email.WithPostmarkBaseURL(srv.URL),
		)
		require.NoError(t, sender.Send(ctx, validMessage()))
		assert.Equal(t, "server-token", token)
	})

	t.Run("invalid message", func(t *testing.T) {
		t.Parallel()

		sender := email.NewPostmarkSender(postmarkConfig())
		msg := validMessage()
		msg.HTMLBody = ""
		assert.ErrorIs(t, sender.Send(ctx, msg), email.ErrInvalidParams)
	})
}
