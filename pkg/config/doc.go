// Package config loads typed configuration from the process environment.
//
// It combines github.com/joho/godotenv, which reads dotenv files into the
// environment, with github.com/caarlos0/env/v11, which parses the environment
// into structs annotated with `env` tags.
//
// On first use the package loads ".env.<APP_ENV>" followed by ".env" from
// the working directory. Values already present in the environment always
// win. Each configuration type is parsed once and cached for the lifetime of
// the process; ResetCache clears the cache in tests.
//
// # Usage
//
//	var cfg email.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
//	// or, during startup:
//	config.MustLoad(&cfg)
//
// Explicit files can be loaded with LoadEnv:
//
//	config.MustLoadEnv("deploy/.env.production")
//
// # Errors
//
//   - ErrParsingConfig: a value is malformed or a required variable is missing
//   - ErrLoadingEnvFile: an explicitly requested file is missing or unreadable
//   - ErrNilPointer: Load was called with a nil pointer
package config
