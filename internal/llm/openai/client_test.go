package openai

import (
	"testing"
	"time"
)

func TestNewClientValidation(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		model   string
		wantErr bool
	}{
		{name: "valid", apiKey: "sk-test", model: "gpt-4o-mini", wantErr: false},
		{name: "missing key", apiKey: "", model: "gpt-4o-mini", wantErr: true},
		{name: "blank key", apiKey: "   ", model: "gpt-4o-mini", wantErr: true},
		{name: "missing model", apiKey: "sk-test", model: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.apiKey, tt.model, 0)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if client.httpClient.Timeout != 120*time.Second {
				t.Fatalf("expected default timeout 120s, got %v", client.httpClient.Timeout)
			}
		})
	}
}
