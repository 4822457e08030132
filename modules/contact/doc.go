// Package contact relays portfolio contact form submissions to the site
// owner's inbox.
//
// Relay is the transport-independent core: it validates a Submission and
// sends exactly one email through an email.Sender, with the submitter's
// address as Reply-To. Service exposes it as POST /api/contact:
//
//	relay := contact.NewRelay(cfg, sender, log)
//	r.Mount(contact.Path, contact.NewService(cfg, relay, log).Handle())
//
// Responses:
//
//	200 {"success": true, "message": "Message successful."}
//	400 {"error": "Missing required fields."}
//	500 {"error": "Internal Server Error. Message failed."}
//
// Transport errors are logged and never returned to the client.
package contact
