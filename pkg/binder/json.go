package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxJSONSize caps JSON request bodies (1 MiB).
const MaxJSONSize = 1 << 20

var jsonNull = []byte("null")

// JSON returns a binder that decodes a JSON object body into v.
//
//	r.Post("/api/contact", handler.Wrap(h,
//		handler.WithBinder[handler.Context, Request](binder.JSON()),
//	))
//
// Unknown fields are ignored and the Content-Type header is not checked.
// A well-formed value that is not an object (array, string, number, bool)
// carries no fields and leaves v untouched. Empty bodies, malformed JSON,
// a top-level null, trailing data and type mismatches fail with
// ErrFailedToParseJSON.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Body == nil {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, MaxJSONSize+1))
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxErr.Limit)
			}
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if len(body) > MaxJSONSize {
			return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, MaxJSONSize)
		}

		dec := json.NewDecoder(bytes.NewReader(body))
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}
		if dec.More() {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
		}

		raw = bytes.TrimSpace(raw)
		switch {
		case bytes.Equal(raw, jsonNull):
			return fmt.Errorf("%w: body is null", ErrFailedToParseJSON)
		case raw[0] != '{':
			return nil
		}

		if err := json.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}
		return nil
	}
}
