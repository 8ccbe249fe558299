package hashrelay

import (
	"strings"
	"time"

	"github.com/filehash-labs/hashrelay/types"
	"github.com/filehash-labs/hashrelay/vars"
)

// Config holds the settings for one client. APIKey and Endpoint are
// required; Timeout is optional and defaults to 5 seconds.
type Config struct {
	APIKey   string
	Endpoint string
	Timeout  time.Duration
}

// validate enforces required fields.
func (c Config) validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return &types.ConfigError{Field: "APIKey"}
	}
	if strings.TrimSpace(c.Endpoint) == "" {
		return &types.ConfigError{Field: "Endpoint"}
	}
	return nil
}

// withDefaults returns a copy of c with unset optional fields filled in.
// The receiver is never modified.
func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = vars.DEFAULT_TIMEOUT_MS * time.Millisecond
	}
	c.Endpoint = strings.TrimRight(c.Endpoint, "/")
	return c
}
