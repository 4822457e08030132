package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("submits flags", func(t *testing.T) {
		t.Parallel()

		var got map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&got)
			_, _ = w.Write([]byte(`{"success":true,"message":"Message successful."}`))
		}))
		t.Cleanup(srv.Close)

		var stdout, stderr bytes.Buffer
		code := run([]string{"-url", srv.URL, "-name", "Jane Doe", "-email", "jane@example.com", "-message", "-"},
			strings.NewReader("line one\nline two\n"), &stdout, &stderr)

		require.Equal(t, 0, code, stderr.String())
		assert.Equal(t, "line one\nline two", got["message"])
		assert.Equal(t, "Jane Doe", got["name"])
		assert.Contains(t, stdout.String(), "Message sent")
	})

	t.Run("rejects invalid input before sending", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		code := run([]string{"-url", "http://127.0.0.1:1", "-name", "Jane", "-email", "nope", "-message", "Hi"},
			strings.NewReader(""), &stdout, &stderr)

		assert.Equal(t, 2, code)
		assert.Contains(t, stderr.String(), "must be a valid email address")
	})

	t.Run("prints relay error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Internal Server Error. Message failed."}`))
		}))
		t.Cleanup(srv.Close)

		var stdout, stderr bytes.Buffer
		code := run([]string{"-url", srv.URL, "-name", "Jane", "-email", "jane@example.com", "-message", "Hi"},
			strings.NewReader(""), &stdout, &stderr)

		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "Internal Server Error. Message failed.")
	})
}
