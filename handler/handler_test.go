package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gavdev/portfolio/handler"
	"github.com/gavdev/portfolio/pkg/binder"
)

type greetRequest struct {
	Name string `json:"name"`
}

func greet(ctx handler.Context, req greetRequest) handler.Response {
	return handler.JSON(map[string]string{"hello": req.Name})
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(greet, handler.WithBinder[handler.Context, greetRequest](binder.JSON()))

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jane"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"hello":"Jane"}`, rec.Body.String())
	})

	t.Run("binder error goes to error handler", func(t *testing.T) {
		t.Parallel()

		var got error
		h := handler.Wrap(greet,
			handler.WithBinder[handler.Context, greetRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, greetRequest](func(ctx handler.Context, err error) {
				got = err
				ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
			}),
		)

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`)))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.ErrorIs(t, got, binder.ErrFailedToParseJSON)
	})

	t.Run("default error handler honours HTTPError", func(t *testing.T) {
		t.Parallel()

		tooLarge := handler.HTTPError{Code: http.StatusRequestEntityTooLarge, Message: "Request Entity Too Large"}
		bind := func(r *http.Request, v any) error { return fmt.Errorf("bind: %w", tooLarge) }
		h := handler.Wrap(greet, handler.WithBinder[handler.Context, greetRequest](bind))

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.JSONEq(t, `{"error":"Request Entity Too Large"}`, rec.Body.String())
	})

	t.Run("default error handler hides other errors", func(t *testing.T) {
		t.Parallel()

		bind := func(r *http.Request, v any) error { return errors.New("dial tcp: connection refused") }
		h := handler.Wrap(greet, handler.WithBinder[handler.Context, greetRequest](bind))

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	})

	t.Run("without binder the request is zero", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(greet)
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jane"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"hello":""}`, rec.Body.String())
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()

		var got error
		nilHandler := func(ctx handler.Context, req greetRequest) handler.Response { return nil }
		h := handler.Wrap(nilHandler,
			handler.WithErrorHandler[handler.Context, greetRequest](func(ctx handler.Context, err error) {
				got = err
			}),
		)

		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, got, handler.ErrNilResponse)
	})

	t.Run("context exposes request", func(t *testing.T) {
		t.Parallel()

		var path string
		h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
			path = ctx.Request().URL.Path
			return handler.JSON(nil)
		})

		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, "/ping", path)
	})
}
