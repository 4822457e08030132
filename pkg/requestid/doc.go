// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware accepts a client-supplied X-Request-ID when it is at most 128
// characters of [a-zA-Z0-9_-]; anything else is replaced by a fresh UUIDv4.
// The id is stored in the request context, echoed in the response header and
// exposed to slog through LoggerExtractor.
package requestid
