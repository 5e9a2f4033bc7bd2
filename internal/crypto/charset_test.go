package crypto

import (
	"bytes"
	"strings"
	"testing"
)

func TestBuildCharsetDefault(t *testing.T) {
	cs, err := BuildCharset(DefaultOptions())
	if err != nil {
		t.Fatalf("BuildCharset() unexpected error: %v", err)
	}

	want := len(lowercaseChars) + len(uppercaseChars) + len(digitChars) + len(defaultSymbolChars)
	if len(cs.Pool) != want {
		t.Errorf("BuildCharset() pool size = %d, want %d", len(cs.Pool), want)
	}
	if len(cs.Categories) != 4 {
		t.Errorf("BuildCharset() categories = %d, want 4", len(cs.Categories))
	}
}

func TestBuildCharsetCaseModes(t *testing.T) {
	tests := []struct {
		name      string
		caseMode  CaseMode
		wantLower bool
		wantUpper bool
	}{
		{"mixed", CaseMixed, true, true},
		{"uppercase", CaseUppercase, false, true},
		{"lowercase", CaseLowercase, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := BuildCharset(GeneratorOptions{Length: 16, Case: tt.caseMode})
			if err != nil {
				t.Fatalf("BuildCharset() unexpected error: %v", err)
			}
			pool := string(cs.Pool)
			if got := strings.ContainsAny(pool, lowercaseChars); got != tt.wantLower {
				t.Errorf("pool contains lowercase = %v, want %v", got, tt.wantLower)
			}
			if got := strings.ContainsAny(pool, uppercaseChars); got != tt.wantUpper {
				t.Errorf("pool contains uppercase = %v, want %v", got, tt.wantUpper)
			}
		})
	}
}

func TestBuildCharsetInvalidCase(t *testing.T) {
	_, err := BuildCharset(GeneratorOptions{Length: 16, Case: "titlecase"})
	if err != ErrInvalidCaseMode {
		t.Errorf("BuildCharset() error = %v, want %v", err, ErrInvalidCaseMode)
	}
}

func TestBuildCharsetExcludeAmbiguous(t *testing.T) {
	opts := DefaultOptions()
	opts.ExcludeAmbiguous = true

	cs, err := BuildCharset(opts)
	if err != nil {
		t.Fatalf("BuildCharset() unexpected error: %v", err)
	}

	for i := 0; i < len(ambiguousChars); i++ {
		if bytes.IndexByte(cs.Pool, ambiguousChars[i]) >= 0 {
			t.Errorf("pool contains ambiguous character %q", string(ambiguousChars[i]))
		}
	}
}

func TestBuildCharsetCustomSymbols(t *testing.T) {
	opts := DefaultOptions()
	opts.CustomSymbols = "!?"

	cs, err := BuildCharset(opts)
	if err != nil {
		t.Fatalf("BuildCharset() unexpected error: %v", err)
	}

	pool := string(cs.Pool)
	if !strings.Contains(pool, "!") || !strings.Contains(pool, "?") {
		t.Error("pool missing custom symbols")
	}
	if strings.Contains(pool, "@") {
		t.Error("pool contains default symbol despite custom override")
	}
}

func TestBuildCharsetDeduplicatesOverlap(t *testing.T) {
	opts := GeneratorOptions{
		Length:         16,
		Case:           CaseLowercase,
		IncludeNumbers: true,
		IncludeSymbols: true,
		CustomSymbols:  "abc123",
	}

	cs, err := BuildCharset(opts)
	if err != nil {
		t.Fatalf("BuildCharset() unexpected error: %v", err)
	}

	// Custom symbols fully overlap letters and digits; the pool must not
	// repeat them.
	want := len(lowercaseChars) + len(digitChars)
	if len(cs.Pool) != want {
		t.Errorf("pool size = %d, want %d", len(cs.Pool), want)
	}
	seen := make(map[byte]bool)
	for _, ch := range cs.Pool {
		if seen[ch] {
			t.Errorf("pool contains duplicate character %q", string(ch))
		}
		seen[ch] = true
	}
	if len(cs.Categories) != 3 {
		t.Errorf("categories = %d, want 3", len(cs.Categories))
	}
}

func TestBuildCharsetEmptyCustomSymbols(t *testing.T) {
	opts := DefaultOptions()
	opts.CustomSymbols = "   "

	_, err := BuildCharset(opts)
	if err != ErrEmptyCustomSymbols {
		t.Errorf("BuildCharset() error = %v, want %v", err, ErrEmptyCustomSymbols)
	}
}

func TestBuildCharsetEmptiedCategoryNotCounted(t *testing.T) {
	// Ambiguous filtering empties the custom symbol set entirely; the
	// category drops out instead of failing the build.
	opts := GeneratorOptions{
		Length:           16,
		Case:             CaseLowercase,
		IncludeSymbols:   true,
		CustomSymbols:    "0O1",
		ExcludeAmbiguous: true,
	}

	cs, err := BuildCharset(opts)
	if err != nil {
		t.Fatalf("BuildCharset() unexpected error: %v", err)
	}
	if len(cs.Categories) != 1 {
		t.Errorf("categories = %d, want 1", len(cs.Categories))
	}
}
