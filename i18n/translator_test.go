package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("unknown_subcolumn", nil); msg == "unknown_subcolumn" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("unknown_subcolumn", nil); msg == "unknown subcolumn" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
	if msg := T("out_of_range", nil); msg != "value out of range" {
		t.Fatalf("unexpected message: %q", msg)
	}

	// unknown codes echo back
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("unknown code should echo, got %q", msg)
	}
}
