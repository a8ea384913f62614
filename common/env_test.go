package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnv_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("GEMINI_API_KEY=from-file\n"), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	t.Setenv("GEMINI_API_KEY", "")
	os.Unsetenv("GEMINI_API_KEY")

	if err := LoadEnv(path); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if got := GetAPIKey(ProviderGemini); got != "from-file" {
		t.Errorf("Expected key from-file, got %q", got)
	}
}

func TestLoadEnv_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("ANTHROPIC_API_KEY=from-file\n"), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	t.Setenv("ANTHROPIC_API_KEY", "from-shell")

	if err := LoadEnv(path); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if got := GetAPIKey(ProviderAnthropic); got != "from-shell" {
		t.Errorf("Expected key from-shell, got %q", got)
	}
}

func TestLoadEnv_MissingFileIsSkipped(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.env")

	if err := LoadEnv(missing); err != nil {
		t.Errorf("Expected missing env file to be skipped, got %v", err)
	}
}

func TestGetAPIKey_EmptyIsReturned(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	if got := GetAPIKey(ProviderGemini); got != "" {
		t.Errorf("Expected empty key, got %q", got)
	}
}

func TestAPIKeyEnv(t *testing.T) {
	tests := map[string]string{
		ProviderGemini:    "GEMINI_API_KEY",
		ProviderAnthropic: "ANTHROPIC_API_KEY",
		"":                "GEMINI_API_KEY",
	}

	for provider, want := range tests {
		if got := APIKeyEnv(provider); got != want {
			t.Errorf("APIKeyEnv(%q) = %s, want %s", provider, got, want)
		}
	}
}
