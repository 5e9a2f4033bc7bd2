package crypto

import (
	"bytes"
	"errors"
)

const (
	MinLength = 8
	MaxLength = 128

	MinCount = 1
	MaxCount = 20
)

var (
	ErrLengthTooShort     = errors.New("password length must be at least 8")
	ErrLengthTooLong      = errors.New("password length must be at most 128")
	ErrLengthInsufficient = errors.New("password length must be at least equal to the number of enabled character categories")
	ErrCountOutOfRange    = errors.New("count must be between 1 and 20")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length           int
	IncludeSymbols   bool
	IncludeNumbers   bool
	Case             CaseMode
	ExcludeAmbiguous bool
	CustomSymbols    string
}

// DefaultOptions returns sensible defaults: 16 characters, mixed case,
// numbers and symbols enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:         16,
		IncludeSymbols: true,
		IncludeNumbers: true,
		Case:           CaseMixed,
	}
}

// Generator produces cryptographically secure random passwords.
type Generator struct {
	sampler *Sampler
}

// NewGenerator creates a Generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{sampler: NewSampler()}
}

// NewGeneratorWithSampler creates a Generator with a custom sampler.
// Intended for tests.
func NewGeneratorWithSampler(s *Sampler) *Generator {
	return &Generator{sampler: s}
}

// Generate creates one random password. Every character is drawn
// independently and uniformly from the composed charset; when more than
// one category is enabled the result is then patched so each enabled
// category appears at least once (see ensureCoverage). All validation
// happens before any randomness is drawn.
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	if opts.Length < MinLength {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	cs, err := BuildCharset(opts)
	if err != nil {
		return "", err
	}
	if opts.Length < len(cs.Categories) {
		return "", ErrLengthInsufficient
	}

	result := make([]byte, opts.Length)
	for i := range result {
		ch, err := g.sampler.Choice(cs.Pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := g.ensureCoverage(result, cs.Categories); err != nil {
		return "", err
	}

	return string(result), nil
}

// GenerateMultiple creates count independent passwords with the same
// options. count must be in [MinCount, MaxCount].
func (g *Generator) GenerateMultiple(opts GeneratorOptions, count int) ([]string, error) {
	if count < MinCount || count > MaxCount {
		return nil, ErrCountOutOfRange
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		password, err := g.Generate(opts)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, password)
	}

	return passwords, nil
}

// ensureCoverage guarantees at least one character from every category.
// For each missing category it replaces a single uniformly chosen
// position, never one whose character is the sole representative of a
// category that is already satisfied. With length >= 8 and at most four
// categories the fix touches so few positions that the character
// distribution stays effectively uniform.
func (g *Generator) ensureCoverage(buf []byte, categories [][]byte) error {
	if len(categories) < 2 {
		return nil
	}

	for k, category := range categories {
		counts := make([]int, len(categories))
		for _, ch := range buf {
			for j, other := range categories {
				if bytes.IndexByte(other, ch) >= 0 {
					counts[j]++
				}
			}
		}

		if counts[k] > 0 {
			continue
		}

		// A position is eligible unless its character is the only
		// occurrence of some already-satisfied category.
		var eligible []int
		for i, ch := range buf {
			sole := false
			for j, other := range categories {
				if counts[j] == 1 && bytes.IndexByte(other, ch) >= 0 {
					sole = true
					break
				}
			}
			if !sole {
				eligible = append(eligible, i)
			}
		}
		if len(eligible) == 0 {
			// Unreachable when length >= number of categories.
			for i := range buf {
				eligible = append(eligible, i)
			}
		}

		p, err := g.sampler.Intn(len(eligible))
		if err != nil {
			return err
		}
		ch, err := g.sampler.Choice(category)
		if err != nil {
			return err
		}
		buf[eligible[p]] = ch
	}

	return nil
}
