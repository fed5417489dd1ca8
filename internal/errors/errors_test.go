package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestStatusError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StatusError
		want string
	}{
		{
			name: "with body",
			err:  NewStatusError(500, "http://x/api/ask/", "boom"),
			want: "Request failed (500): boom",
		},
		{
			name: "empty body falls back to status text",
			err:  NewStatusError(404, "http://x/api/ask/", ""),
			want: "Request failed (404): Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError("http://localhost:3001/api/ask/", cause)

	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() = %q, should contain the underlying cause", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("NetworkError should unwrap to its cause")
	}
}

func TestParseError_Is(t *testing.T) {
	err := NewParseError("response is not valid JSON")

	if !errors.Is(err, ErrInvalidResponse) {
		t.Error("ParseError should match ErrInvalidResponse")
	}
}

func TestClassifiers(t *testing.T) {
	network := NewNetworkError("e", errors.New("x"))
	status := NewStatusError(502, "e", "bad gateway")
	parse := NewParseError("nope")
	plain := errors.New("plain")

	tests := []struct {
		name      string
		err       error
		isNetwork bool
		isStatus  bool
		isParse   bool
	}{
		{"network", network, true, false, false},
		{"status", status, false, true, false},
		{"parse", parse, false, false, true},
		{"plain", plain, false, false, false},
		{"wrapped status", fmt.Errorf("ask: %w", status), false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNetworkError(tt.err); got != tt.isNetwork {
				t.Errorf("IsNetworkError() = %v, want %v", got, tt.isNetwork)
			}
			if got := IsStatusError(tt.err); got != tt.isStatus {
				t.Errorf("IsStatusError() = %v, want %v", got, tt.isStatus)
			}
			if got := IsParseError(tt.err); got != tt.isParse {
				t.Errorf("IsParseError() = %v, want %v", got, tt.isParse)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	status := NewStatusError(429, "http://x/api/ask/", "slow down")

	if got := GetHTTPStatus(status); got != 429 {
		t.Errorf("GetHTTPStatus() = %d, want 429", got)
	}
	if got := GetResponseBody(status); got != "slow down" {
		t.Errorf("GetResponseBody() = %q, want %q", got, "slow down")
	}
	if got := GetEndpoint(status); got != "http://x/api/ask/" {
		t.Errorf("GetEndpoint() = %q", got)
	}

	network := NewNetworkError("http://y/api/ask/", errors.New("refused"))
	if got := GetEndpoint(network); got != "http://y/api/ask/" {
		t.Errorf("GetEndpoint() = %q", got)
	}

	if got := GetHTTPStatus(errors.New("plain")); got != 0 {
		t.Errorf("GetHTTPStatus(plain) = %d, want 0", got)
	}
}
