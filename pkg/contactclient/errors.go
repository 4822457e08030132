package contactclient

import "errors"

var (
	ErrSubmitInProgress = errors.New("contactclient: submission already in progress")
	ErrTransport        = errors.New("contactclient: request failed")
	ErrInvalidResponse  = errors.New("contactclient: unreadable response")
	ErrRejected         = errors.New("contactclient: submission rejected")
	ErrNotReady         = errors.New("contactclient: form is not ready to submit")
)
