package environment

import "strings"

// Environment names the deployment the process runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Normalize maps short aliases and casing variants to the canonical names.
// Unknown or empty values become Development.
func Normalize(env Environment) Environment {
	switch strings.ToLower(strings.TrimSpace(string(env))) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

// IsProduction reports whether env is production or its alias.
func (e Environment) IsProduction() bool {
	return Normalize(e) == Production
}

// IsDevelopment reports whether env normalizes to development.
func (e Environment) IsDevelopment() bool {
	return Normalize(e) == Development
}
