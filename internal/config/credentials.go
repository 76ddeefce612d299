package config

import (
	"errors"
	"os"
	"strings"
)

// Environment variables holding the provider credential. The key is required;
// the host falls back to the known provider host.
const (
	EnvAPIKey  = "KWSCOUT_API_KEY"
	EnvAPIHost = "KWSCOUT_API_HOST"
)

// DefaultAPIHost is used when KWSCOUT_API_HOST is not set
const DefaultAPIHost = "keyword-insight1.p.rapidapi.com"

// ErrMissingAPIKey reports the permanent configuration error that disables
// search entirely. It is distinct from per-query transport or provider errors.
var ErrMissingAPIKey = errors.New("missing API key: set " + EnvAPIKey)

// Credentials carries the provider credential pair. A zero APIKey means the
// credential is absent; callers check Missing rather than testing fields.
type Credentials struct {
	APIKey  string
	APIHost string
}

// CredentialsFromEnv reads the credential pair from the environment
func CredentialsFromEnv() Credentials {
	creds := Credentials{
		APIKey:  strings.TrimSpace(os.Getenv(EnvAPIKey)),
		APIHost: strings.TrimSpace(os.Getenv(EnvAPIHost)),
	}
	if creds.APIHost == "" {
		creds.APIHost = DefaultAPIHost
	}
	return creds
}

// Missing reports whether the required API key is absent
func (c Credentials) Missing() bool {
	return c.APIKey == ""
}

// Validate returns ErrMissingAPIKey when the credential is absent
func (c Credentials) Validate() error {
	if c.Missing() {
		return ErrMissingAPIKey
	}
	return nil
}
