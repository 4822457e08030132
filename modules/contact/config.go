package contact

// Config holds the contact relay settings.
type Config struct {
	// Inbox receives every submission.
	Inbox string `env:"CONTACT_INBOX,required,notEmpty"`
	// Sender is the From identity. Empty means the mail account identity
	// (EMAIL_USER) is used; see WithDefaultSender.
	Sender string `env:"CONTACT_SENDER"`
	// SiteName is shown in the notification heading.
	SiteName string `env:"CONTACT_SITE_NAME" envDefault:"GAV.DEV"`
	// MaxBodyBytes caps the request body. Larger bodies are treated as unreadable.
	MaxBodyBytes int64 `env:"CONTACT_MAX_BODY_BYTES" envDefault:"65536"`
}

// WithDefaultSender returns a copy of c whose Sender falls back to identity.
func (c Config) WithDefaultSender(identity string) Config {
	if c.Sender == "" {
		c.Sender = identity
	}
	return c
}
