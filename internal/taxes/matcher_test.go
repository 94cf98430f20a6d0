package taxes

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTaxCodeMatches_Get(t *testing.T) {
	matches := TaxCodeMatches{
		"standard": "P0000000",
		"books":    "81100",
	}

	if got := matches.Get("standard"); got != "P0000000" {
		t.Errorf("Get(standard) = %q, want %q", got, "P0000000")
	}

	// Unmatched classes resolve to empty and rely on provider defaults.
	if got := matches.Get("unknown-class"); got != "" {
		t.Errorf("Get(unknown-class) = %q, want empty", got)
	}

	var empty TaxCodeMatches
	if got := empty.Get("standard"); got != "" {
		t.Errorf("nil set Get = %q, want empty", got)
	}
}

func TestLoadTaxCodeMatches(t *testing.T) {
	t.Run("empty path yields empty set", func(t *testing.T) {
		matches, err := LoadTaxCodeMatches("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 0 {
			t.Errorf("expected empty set, got %d entries", len(matches))
		}
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "matches.json")
		if err := os.WriteFile(path, []byte(`{"standard":"P0000000"}`), 0o600); err != nil {
			t.Fatal(err)
		}

		matches, err := LoadTaxCodeMatches(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := matches.Get("standard"); got != "P0000000" {
			t.Errorf("Get(standard) = %q, want %q", got, "P0000000")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadTaxCodeMatches(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte(`{not json`), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadTaxCodeMatches(path); err == nil {
			t.Error("expected error for malformed json")
		}
	})
}
