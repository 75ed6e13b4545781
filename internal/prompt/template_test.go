package prompt

import "testing"

func TestFormatTemplate(t *testing.T) {
	out, err := FormatTemplate("Habit {name}: {criteria}", map[string]string{
		"name":     "Reading",
		"criteria": "show the open book",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Habit Reading: show the open book" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestFormatTemplateLiteralBraces(t *testing.T) {
	out, err := FormatTemplate("Reply with {{\"ok\": {flag}}}", map[string]string{"flag": "true"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `Reply with {"ok": true}` {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestFormatTemplateMissingValue(t *testing.T) {
	if _, err := FormatTemplate("hello {name}", nil); err == nil {
		t.Fatalf("expected error for missing value")
	}
}

func TestFormatTemplateUnbalancedBraces(t *testing.T) {
	if _, err := FormatTemplate("hello {name", map[string]string{"name": "x"}); err == nil {
		t.Fatalf("expected error for missing close brace")
	}
	if _, err := FormatTemplate("hello }", nil); err == nil {
		t.Fatalf("expected error for stray close brace")
	}
}

func TestFormatTemplateNoPlaceholders(t *testing.T) {
	out, err := FormatTemplate("plain text", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "plain text" {
		t.Fatalf("unexpected output: %s", out)
	}
}
