package email

// Provider names a mail transport implementation.
type Provider string

const (
	ProviderSMTP     Provider = "smtp"
	ProviderPostmark Provider = "postmark"
	ProviderDev      Provider = "dev"
)

// Config holds mail transport configuration.
// Username and Password are the account identity and secret used to
// authenticate against the SMTP server. They are optional at startup:
// a sender without credentials fails on every Send, which keeps a
// misconfigured deployment observable through its responses and logs.
type Config struct {
	Provider Provider `env:"EMAIL_PROVIDER" envDefault:"smtp"`

	Username string `env:"EMAIL_USER"`
	Password string `env:"EMAIL_PASS"`
	SMTPHost string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	DevDir string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}
