package crypto

import (
	"math"
	"unicode"
)

// Rating classifies password strength by entropy.
type Rating string

const (
	RatingVeryWeak   Rating = "very_weak"
	RatingWeak       Rating = "weak"
	RatingModerate   Rating = "moderate"
	RatingStrong     Rating = "strong"
	RatingVeryStrong Rating = "very_strong"
)

// Warning messages produced by Analyze.
const (
	WarnTooShort     = "too short"
	WarnRepeated     = "repeated characters"
	WarnSequential   = "sequential characters"
	WarnLowDiversity = "low character diversity"
)

// Estimated sizes of the character classes an attacker must search when a
// class is present. Symbols approximate the common printable set.
const (
	classSizeLower  = 26
	classSizeUpper  = 26
	classSizeDigit  = 10
	classSizeSymbol = 32
)

// StrengthReport is the result of analyzing a password.
type StrengthReport struct {
	EntropyBits float64  `json:"entropy_bits"`
	Rating      Rating   `json:"rating"`
	Length      int      `json:"length"`
	CharsetSize int      `json:"charset_size"`
	Warnings    []string `json:"warnings"`
}

// Analyze scores an arbitrary password string. It is a pure function: the
// charset size is inferred from the character classes actually present,
// not from any generation options, and it never returns an error. An
// empty string yields zero entropy and a "too short" warning.
func Analyze(password string) StrengthReport {
	runes := []rune(password)
	length := len(runes)

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	charsetSize := 0
	classes := 0
	if hasLower {
		charsetSize += classSizeLower
		classes++
	}
	if hasUpper {
		charsetSize += classSizeUpper
		classes++
	}
	if hasDigit {
		charsetSize += classSizeDigit
		classes++
	}
	if hasSymbol {
		charsetSize += classSizeSymbol
		classes++
	}

	var entropy float64
	if length > 0 && charsetSize > 0 {
		entropy = float64(length) * math.Log2(float64(charsetSize))
		entropy = math.Round(entropy*100) / 100
	}

	var warnings []string
	if length < MinLength {
		warnings = append(warnings, WarnTooShort)
	}
	if hasRepeatedRun(runes) {
		warnings = append(warnings, WarnRepeated)
	}
	if hasSequentialRun(runes) {
		warnings = append(warnings, WarnSequential)
	}
	if length > 0 && classes == 1 {
		warnings = append(warnings, WarnLowDiversity)
	}

	return StrengthReport{
		EntropyBits: entropy,
		Rating:      ratingFor(entropy),
		Length:      length,
		CharsetSize: charsetSize,
		Warnings:    warnings,
	}
}

func ratingFor(entropy float64) Rating {
	switch {
	case entropy < 28:
		return RatingVeryWeak
	case entropy < 36:
		return RatingWeak
	case entropy < 60:
		return RatingModerate
	case entropy < 128:
		return RatingStrong
	default:
		return RatingVeryStrong
	}
}

// hasRepeatedRun reports whether the password contains three or more
// identical consecutive characters.
func hasRepeatedRun(runes []rune) bool {
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// hasSequentialRun reports whether the password contains an ascending or
// descending code-point run of three or more characters, e.g. "abc" or
// "321".
func hasSequentialRun(runes []rune) bool {
	for i := 0; i+2 < len(runes); i++ {
		if runes[i+1] == runes[i]+1 && runes[i+2] == runes[i]+2 {
			return true
		}
		if runes[i+1] == runes[i]-1 && runes[i+2] == runes[i]-2 {
			return true
		}
	}
	return false
}
