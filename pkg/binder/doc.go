// Package binder decodes HTTP request bodies into typed request structs for
// the handler package.
//
// Binding failures are reported with sentinel errors (ErrFailedToParseJSON,
// ErrBodyTooLarge) so that callers can map them to responses with errors.Is.
package binder
