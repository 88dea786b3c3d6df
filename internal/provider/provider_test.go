package provider

import "testing"

func TestOpenAIProviderName(t *testing.T) {
	tests := []struct {
		baseURL string
		want    string
	}{
		{"", "openai"},
		{"https://api.openai.com/v1", "openai"},
		{"https://models.inference.ai.azure.com", "github"},
		{"https://models.github.ai/inference", "github"},
		{"https://api.deepseek.com", "deepseek"},
	}
	for _, tt := range tests {
		p := NewOpenAIProvider("key", tt.baseURL, "gpt-4o")
		if got := p.Name(); got != tt.want {
			t.Errorf("baseURL %q: Name() = %q, want %q", tt.baseURL, got, tt.want)
		}
	}
}

func TestOpenAIDefaultModel(t *testing.T) {
	p := NewOpenAIProvider("key", "", "")
	if p.DefaultModel() != "gpt-4o" {
		t.Fatalf("empty model should default to gpt-4o, got %q", p.DefaultModel())
	}
	p = NewOpenAIProvider("key", "", "o3-mini")
	if p.DefaultModel() != "o3-mini" {
		t.Fatalf("DefaultModel = %q", p.DefaultModel())
	}
}

func TestContextWindows(t *testing.T) {
	if w := NewOpenAIProvider("k", "", "gpt-4o").ContextWindow(); w != 128000 {
		t.Errorf("gpt-4o window = %d", w)
	}
	if w := NewOpenAIProvider("k", "", "o3-mini").ContextWindow(); w != 200000 {
		t.Errorf("o3-mini window = %d", w)
	}
	if w := NewAnthropicProvider("k", "").ContextWindow(); w != 200000 {
		t.Errorf("anthropic window = %d", w)
	}
}

func TestAnthropicDefaultModel(t *testing.T) {
	p := NewAnthropicProvider("key", "")
	if p.DefaultModel() == "" {
		t.Fatal("anthropic provider should pick a default model")
	}
	if p.Name() != "anthropic" {
		t.Fatalf("Name = %q", p.Name())
	}
}
