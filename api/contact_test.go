package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gavdev/portfolio/api"
	"github.com/gavdev/portfolio/pkg/config"
)

// Not parallel: Handler initializes once from process environment.
func TestHandler_MisconfiguredDeployment(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)
	t.Setenv("CONTACT_INBOX", "")
	t.Setenv("EMAIL_PROVIDER", "carrier-pigeon")

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Jane","email":"jane@example.com","message":"Hi"}`))
	rec := httptest.NewRecorder()
	api.Handler(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error. Message failed."}`, rec.Body.String())
}
