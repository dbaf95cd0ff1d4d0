package httpclient

import (
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected %s, got %s", DefaultBaseURL, cfg.BaseURL)
	}

	cfg = Config{BaseURL: "https://api.example.com"}
	cfg.ApplyDefaults()
	if cfg.BaseURL != "https://api.example.com" {
		t.Errorf("expected configured base URL to survive, got %s", cfg.BaseURL)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", Config{BaseURL: DefaultBaseURL}, false},
		{"https", Config{BaseURL: "https://api.example.com/api"}, false},
		{"with timeout", Config{BaseURL: DefaultBaseURL, Timeout: 30 * time.Second}, false},
		{"bad scheme", Config{BaseURL: "ftp://example.com"}, true},
		{"no scheme", Config{BaseURL: "example.com/api"}, true},
		{"negative timeout", Config{BaseURL: DefaultBaseURL, Timeout: -time.Second}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
