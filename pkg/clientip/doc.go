// Package clientip resolves the caller's IP address behind reverse proxies
// and makes it available to handlers and log records.
//
// Forwarding headers are trusted as-is; the value is used for diagnostics
// only and must never drive access control.
package clientip
