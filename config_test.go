package hashrelay

import (
	"errors"
	"testing"
	"time"

	"github.com/filehash-labs/hashrelay/types"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantField string
	}{
		{"missing api key", Config{Endpoint: "https://api.example.com"}, "APIKey"},
		{"blank api key", Config{APIKey: "   ", Endpoint: "https://api.example.com"}, "APIKey"},
		{"missing endpoint", Config{APIKey: "k1"}, "Endpoint"},
		{"blank endpoint", Config{APIKey: "k1", Endpoint: " "}, "Endpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.cfg)
			if client != nil {
				t.Fatal("expected no client for invalid config")
			}

			var cfgErr *types.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *types.ConfigError, got %T: %v", err, err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, cfgErr.Field)
			}
		})
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	client, err := New(Config{APIKey: "k1", Endpoint: "https://api.example.com/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.cfg.Timeout != 5*time.Second {
		t.Errorf("expected default timeout 5s, got %v", client.cfg.Timeout)
	}
	if client.cfg.Endpoint != "https://api.example.com" {
		t.Errorf("expected trailing slash trimmed, got %q", client.cfg.Endpoint)
	}
	if client.http.Timeout != 5*time.Second {
		t.Errorf("expected transport timeout 5s, got %v", client.http.Timeout)
	}
}

func TestNewKeepsExplicitTimeout(t *testing.T) {
	client, err := New(Config{APIKey: "k1", Endpoint: "https://api.example.com", Timeout: 250 * time.Millisecond})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.cfg.Timeout != 250*time.Millisecond {
		t.Errorf("expected 250ms timeout, got %v", client.cfg.Timeout)
	}
}
