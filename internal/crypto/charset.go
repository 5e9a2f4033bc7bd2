package crypto

import (
	"errors"
	"strings"
)

const (
	lowercaseChars     = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars         = "0123456789"
	defaultSymbolChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"

	// Characters easily confused when transcribed by hand.
	ambiguousChars = "0O1lI|"
)

// CaseMode controls which letter categories are enabled.
type CaseMode string

const (
	CaseMixed     CaseMode = "mixed"
	CaseUppercase CaseMode = "uppercase"
	CaseLowercase CaseMode = "lowercase"
)

var (
	ErrInvalidCaseMode    = errors.New("case must be one of mixed, uppercase, lowercase")
	ErrNoCharacterTypes   = errors.New("no characters available with the given options")
	ErrEmptyCustomSymbols = errors.New("custom symbols must not be empty")
)

// Charset is the deduplicated pool of characters eligible for password
// composition, plus the per-category sets the generator needs to enforce
// category coverage. Category sets reflect the ambiguous-character filter,
// so a character in a category is always in the pool.
type Charset struct {
	Pool       []byte
	Categories [][]byte
}

// BuildCharset assembles the character pool for the given options.
// Categories are added in a fixed order (lowercase, uppercase, digits,
// symbols); duplicates across categories (custom symbols may overlap
// letters or digits) appear once in the pool.
func BuildCharset(opts GeneratorOptions) (Charset, error) {
	if opts.Case != CaseMixed && opts.Case != CaseUppercase && opts.Case != CaseLowercase {
		return Charset{}, ErrInvalidCaseMode
	}

	symbols := defaultSymbolChars
	if opts.CustomSymbols != "" {
		symbols = strings.TrimSpace(opts.CustomSymbols)
		if opts.IncludeSymbols && symbols == "" {
			return Charset{}, ErrEmptyCustomSymbols
		}
	}

	var raw []string
	if opts.Case != CaseUppercase {
		raw = append(raw, lowercaseChars)
	}
	if opts.Case != CaseLowercase {
		raw = append(raw, uppercaseChars)
	}
	if opts.IncludeNumbers {
		raw = append(raw, digitChars)
	}
	if opts.IncludeSymbols {
		raw = append(raw, symbols)
	}

	var cs Charset
	seen := make(map[byte]bool)
	for _, category := range raw {
		var kept []byte
		for i := 0; i < len(category); i++ {
			ch := category[i]
			if opts.ExcludeAmbiguous && strings.IndexByte(ambiguousChars, ch) >= 0 {
				continue
			}
			kept = append(kept, ch)
			if !seen[ch] {
				seen[ch] = true
				cs.Pool = append(cs.Pool, ch)
			}
		}
		// A category emptied by the ambiguous filter contributes nothing
		// and is not counted toward the category guarantee.
		if len(kept) > 0 {
			cs.Categories = append(cs.Categories, kept)
		}
	}

	if len(cs.Pool) == 0 {
		return Charset{}, ErrNoCharacterTypes
	}

	return cs, nil
}
