package contact

import "errors"

var (
	ErrMissingFields  = errors.New("missing required fields")
	ErrDeliveryFailed = errors.New("failed to deliver contact message")
)
