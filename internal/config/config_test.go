package config

import "testing"

func TestParseAPIKeys(t *testing.T) {
	t.Setenv("GOOGLE_API_KEYS", "key-a, key-b\nkey-c")
	t.Setenv("GOOGLE_API_KEY", "ignored")

	keys := parseAPIKeys()
	if len(keys) != 3 || keys[0] != "key-a" || keys[1] != "key-b" || keys[2] != "key-c" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestParseAPIKeysSingleFallback(t *testing.T) {
	t.Setenv("GOOGLE_API_KEYS", "")
	t.Setenv("GOOGLE_API_KEY", "solo-key")

	keys := parseAPIKeys()
	if len(keys) != 1 || keys[0] != "solo-key" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "  hello  ")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_FLOAT", "0.7")
	t.Setenv("TEST_BOOL", "yes")
	t.Setenv("TEST_BAD_INT", "not-a-number")

	if got := getEnvString("TEST_STRING", "def"); got != "hello" {
		t.Fatalf("unexpected string: %q", got)
	}
	if got := getEnvString("TEST_UNSET", "def"); got != "def" {
		t.Fatalf("expected default, got %q", got)
	}
	if got := getEnvInt("TEST_INT", 1); got != 42 {
		t.Fatalf("unexpected int: %d", got)
	}
	if got := getEnvInt("TEST_BAD_INT", 7); got != 7 {
		t.Fatalf("expected default for bad int, got %d", got)
	}
	if got := getEnvFloat("TEST_FLOAT", 0.1); got != 0.7 {
		t.Fatalf("unexpected float: %v", got)
	}
	if !getEnvBool("TEST_BOOL", false) {
		t.Fatalf("expected true for yes")
	}
}

func TestMaskSecret(t *testing.T) {
	if got := maskSecret(""); got != "<missing>" {
		t.Fatalf("unexpected mask: %q", got)
	}
	if got := maskSecret("abc"); got != "***" {
		t.Fatalf("unexpected mask: %q", got)
	}
	if got := maskSecret("AIzaSyExample"); got != "AI***le" {
		t.Fatalf("unexpected mask: %q", got)
	}
}

func TestValidate(t *testing.T) {
	valid := &Config{
		Gemini: GeminiConfig{APIKeys: []string{"k"}, Model: "gemini-test", TimeoutSeconds: 30},
		Image:  ImageConfig{MaxBytes: 1 << 20},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missingKey := &Config{
		Gemini: GeminiConfig{Model: "gemini-test", TimeoutSeconds: 30},
		Image:  ImageConfig{MaxBytes: 1 << 20},
	}
	if err := missingKey.Validate(); err == nil {
		t.Fatalf("expected error for missing api key")
	}

	badTimeout := &Config{
		Gemini: GeminiConfig{APIKeys: []string{"k"}, Model: "gemini-test"},
		Image:  ImageConfig{MaxBytes: 1 << 20},
	}
	if err := badTimeout.Validate(); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}

func TestPrimaryKey(t *testing.T) {
	if (GeminiConfig{}).PrimaryKey() != "" {
		t.Fatalf("expected empty primary key")
	}
	cfg := GeminiConfig{APIKeys: []string{"first", "second"}}
	if cfg.PrimaryKey() != "first" {
		t.Fatalf("unexpected primary key: %s", cfg.PrimaryKey())
	}
}
