package crypto

import (
	"errors"
	"strings"
)

const (
	MinWordCount = 1
	MaxWordCount = 50
)

var (
	ErrWordCountTooSmall    = errors.New("word count must be at least 1")
	ErrWordCountTooLarge    = errors.New("word count must be at most 50")
	ErrWordCountExceedsList = errors.New("word count exceeds word list size when unique words are required")
)

// PassphraseOptions configures passphrase generation. An empty Separator
// is legal and concatenates the words.
type PassphraseOptions struct {
	WordCount    int
	Separator    string
	Capitalize   bool
	AppendNumber bool
	UniqueWords  bool
}

// DefaultPassphraseOptions returns the defaults: four words joined by "-".
func DefaultPassphraseOptions() PassphraseOptions {
	return PassphraseOptions{
		WordCount: 4,
		Separator: "-",
	}
}

// GeneratePassphrase draws words uniformly from the fixed word list and
// joins them with the separator. With AppendNumber a random 2-4 digit
// group is added as a final segment. Words are drawn with replacement
// unless UniqueWords is set.
func (g *Generator) GeneratePassphrase(opts PassphraseOptions) (string, error) {
	if opts.WordCount < MinWordCount {
		return "", ErrWordCountTooSmall
	}
	if opts.WordCount > MaxWordCount {
		return "", ErrWordCountTooLarge
	}
	if opts.UniqueWords && opts.WordCount > len(wordList) {
		return "", ErrWordCountExceedsList
	}

	var words []string
	if opts.UniqueWords {
		picked, err := g.sampler.SampleWithoutReplacement(wordList, opts.WordCount)
		if err != nil {
			return "", err
		}
		words = picked
	} else {
		words = make([]string, 0, opts.WordCount)
		for i := 0; i < opts.WordCount; i++ {
			word, err := g.sampler.Word(wordList)
			if err != nil {
				return "", err
			}
			words = append(words, word)
		}
	}

	if opts.Capitalize {
		for i, word := range words {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}

	if opts.AppendNumber {
		group, err := g.randomDigitGroup()
		if err != nil {
			return "", err
		}
		words = append(words, group)
	}

	return strings.Join(words, opts.Separator), nil
}

// randomDigitGroup returns 2-4 random digits; the group length itself is
// drawn uniformly, and leading zeros are allowed.
func (g *Generator) randomDigitGroup() (string, error) {
	n, err := g.sampler.Intn(3)
	if err != nil {
		return "", err
	}
	digits := make([]byte, 2+n)
	for i := range digits {
		ch, err := g.sampler.Choice([]byte(digitChars))
		if err != nil {
			return "", err
		}
		digits[i] = ch
	}
	return string(digits), nil
}
