package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavdev/portfolio/pkg/email"
)

func TestDevSender_Send(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("writes body and envelope", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		require.NoError(t, sender.Send(ctx, validMessage()))

		files, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, files, 2)

		var htmlFile, jsonFile string
		for _, f := range files {
			switch {
			case strings.HasSuffix(f.Name(), ".html"):
				htmlFile = filepath.Join(dir, f.Name())
			case strings.HasSuffix(f.Name(), ".json"):
				jsonFile = filepath.Join(dir, f.Name())
			}
		}
		require.NotEmpty(t, htmlFile)
		require.NotEmpty(t, jsonFile)

		body, err := os.ReadFile(htmlFile)
		require.NoError(t, err)
		assert.Equal(t, "<p>Hello!</p>", string(body))

		raw, err := os.ReadFile(jsonFile)
		require.NoError(t, err)
		var meta map[string]any
		require.NoError(t, json.Unmarshal(raw, &meta))
		assert.Equal(t, "sender@example.com", meta["from"])
		assert.Equal(t, "inbox@example.com", meta["to"])
		assert.Equal(t, "visitor@example.com", meta["reply_to"])
		assert.Equal(t, "Portfolio Message: New message from Jane Doe", meta["subject"])
		assert.NotEmpty(t, meta["timestamp"])
	})

	t.Run("filename derived from subject", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		msg := validMessage()
		msg.Subject = "Hello World!"
		require.NoError(t, sender.Send(ctx, msg))

		files, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, files, 2)
		for _, f := range files {
			assert.Contains(t, f.Name(), "hello_world")
		}
	})

	t.Run("invalid message writes nothing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		msg := validMessage()
		msg.To = ""
		err := sender.Send(ctx, msg)
		assert.ErrorIs(t, err, email.ErrInvalidParams)

		files, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("unwritable directory", func(t *testing.T) {
		t.Parallel()

		sender := email.NewDevSender("/dev/null/cannot-create-here")
		err := sender.Send(ctx, validMessage())
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.Contains(t, err.Error(), "failed to create directory")
	})

	t.Run("unicode body preserved", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		msg := validMessage()
		msg.HTMLBody = "<p>你好世界 🌍</p>"
		require.NoError(t, sender.Send(ctx, msg))

		files, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, f := range files {
			if strings.HasSuffix(f.Name(), ".html") {
				content, err := os.ReadFile(filepath.Join(dir, f.Name()))
				require.NoError(t, err)
				assert.Contains(t, string(content), "你好世界 🌍")
			}
		}
	})
}
