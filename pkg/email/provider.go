package email

import "fmt"

// New returns the Sender selected by cfg.Provider.
func New(cfg Config) (Sender, error) {
	switch cfg.Provider {
	case ProviderSMTP, "":
		return NewSMTPSender(cfg), nil
	case ProviderPostmark:
		return NewPostmarkSender(cfg), nil
	case ProviderDev:
		if cfg.DevDir == "" {
			return nil, fmt.Errorf("%w: EMAIL_DEV_DIR is required for the dev provider", ErrInvalidConfig)
		}
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
