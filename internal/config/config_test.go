package config

import (
	"testing"
)

// TestDefaultModel verifies gemma-3-27b-it is the default
func TestDefaultModel(t *testing.T) {
	cfg := DefaultConfig()
	expected := "gemma-3-27b-it"

	if cfg.Model != expected {
		t.Errorf("Default model = %q, want %q", cfg.Model, expected)
	}
}

// TestDefaultLoginAttempts verifies the lockout threshold
func TestDefaultLoginAttempts(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxLoginAttempts != 3 {
		t.Errorf("MaxLoginAttempts = %d, want 3", cfg.MaxLoginAttempts)
	}
}

func TestValidateFillsZeroValues(t *testing.T) {
	cfg := &Config{DBPath: "x.json", MaxLoginAttempts: 0, SuggestTimeout: 0}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if cfg.MaxLoginAttempts != 3 {
		t.Errorf("MaxLoginAttempts = %d, want 3", cfg.MaxLoginAttempts)
	}
	if cfg.SuggestTimeout <= 0 {
		t.Errorf("SuggestTimeout not filled")
	}
}

func TestValidateClearsUnexpandedKey(t *testing.T) {
	cfg := &Config{DBPath: "x.json", GeminiAPIKey: "$GEMINI_API_KEY"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if cfg.AIConfigured() {
		t.Error("unexpanded key should not count as configured")
	}
}

func TestValidateRequiresDBPath(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty db_path")
	}
}
