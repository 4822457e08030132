// Package contactclient submits contact form messages to the relay endpoint.
//
// Client is the HTTP layer: one JSON POST per Send. Form tracks the field
// values and the form state across submissions:
//
//	form := contactclient.NewForm(contactclient.New("https://gav.dev"))
//	form.SetName("Jane Doe")
//	form.SetEmail("jane@example.com")
//	form.SetMessage("Hello")
//	status, err := form.Submit(ctx)
//
// Errors from the relay are reported with the relay's own message, or
// MsgUnknownError when it gave none. Network failures and unreadable
// responses are reported as MsgConnectionError.
package contactclient
