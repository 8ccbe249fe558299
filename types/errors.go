package types

import "fmt"

// ConfigError reports an invalid client configuration. It is the only error
// the library ever returns directly; every failure inside a hash call is
// folded into the Result instead.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("hashrelay: missing required config field %q", e.Field)
}

// APIError represents a non-2xx response from the hashing service whose body
// could not be decoded into the standard envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError: %d: %s", e.StatusCode, e.Message)
}
