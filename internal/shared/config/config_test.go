package config

import "testing"

func TestValidateRequiresProviderKey(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "gemini with key",
			cfg:     Config{LLMProvider: "gemini", GeminiAPIKey: "test-key", LLMModel: "gemini-1.5-flash"},
			wantErr: false,
		},
		{
			name:    "gemini missing key",
			cfg:     Config{LLMProvider: "gemini", LLMModel: "gemini-1.5-flash"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{LLMProvider: "openai", OpenAIAPIKey: "test-key", LLMModel: "gpt-4o-mini"},
			wantErr: false,
		},
		{
			name:    "openai missing key",
			cfg:     Config{LLMProvider: "openai", LLMModel: "gpt-4o-mini"},
			wantErr: true,
		},
		{
			name:    "missing model",
			cfg:     Config{LLMProvider: "gemini", GeminiAPIKey: "test-key"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			cfg:     Config{LLMProvider: "bedrock", LLMModel: "x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNormalizeProvider(t *testing.T) {
	if got := normalizeProvider(" OpenAI "); got != "openai" {
		t.Fatalf("normalizeProvider = %q, want openai", got)
	}
	if got := normalizeProvider("anything-else"); got != "gemini" {
		t.Fatalf("normalizeProvider = %q, want gemini", got)
	}
}
