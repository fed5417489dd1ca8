package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/kavia-common/simple-qa-assistant-34089-34098/internal/config"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name       string
		endpoint   config.Endpoint
		opts       []ClientOption
		wantBase   string
		wantAskURL string
	}{
		{
			name:       "defaults with empty endpoint",
			endpoint:   config.Endpoint{},
			wantBase:   "",
			wantAskURL: "/api/ask/",
		},
		{
			name:       "explicit base",
			endpoint:   config.Endpoint{Base: "http://api.example.com/"},
			wantBase:   "http://api.example.com",
			wantAskURL: "http://api.example.com/api/ask/",
		},
		{
			name:       "host and port",
			endpoint:   config.Endpoint{Host: "backend", Port: "8080"},
			wantBase:   "http://backend:8080",
			wantAskURL: "http://backend:8080/api/ask/",
		},
		{
			name:       "custom ask path",
			endpoint:   config.Endpoint{Base: "http://api.example.com"},
			opts:       []ClientOption{WithAskPath("/api/ask")},
			wantBase:   "http://api.example.com",
			wantAskURL: "http://api.example.com/api/ask",
		},
		{
			name:       "empty ask path override is ignored",
			endpoint:   config.Endpoint{Base: "http://api.example.com"},
			opts:       []ClientOption{WithAskPath("")},
			wantBase:   "http://api.example.com",
			wantAskURL: "http://api.example.com/api/ask/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.endpoint, tt.opts...)

			if got := client.BaseURL(); got != tt.wantBase {
				t.Errorf("BaseURL() = %q, want %q", got, tt.wantBase)
			}
			if got := client.AskURL(); got != tt.wantAskURL {
				t.Errorf("AskURL() = %q, want %q", got, tt.wantAskURL)
			}
		})
	}
}

func TestClientOptions(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		client := NewClient(config.Endpoint{}, WithTimeout(5*time.Second))
		if client.httpClient.Timeout != 5*time.Second {
			t.Errorf("timeout = %v, want 5s", client.httpClient.Timeout)
		}
	})

	t.Run("no timeout by default", func(t *testing.T) {
		client := NewClient(config.Endpoint{})
		if client.httpClient.Timeout != 0 {
			t.Errorf("timeout = %v, want 0", client.httpClient.Timeout)
		}
	})

	t.Run("with http client", func(t *testing.T) {
		hc := &http.Client{}
		client := NewClient(config.Endpoint{}, WithHTTPClient(hc))
		if client.httpClient != hc {
			t.Error("WithHTTPClient did not replace the underlying client")
		}
	})
}
