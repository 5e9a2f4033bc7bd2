package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

var (
	ErrEntropyUnavailable = errors.New("secure entropy source unavailable")
	ErrSampleTooLarge     = errors.New("cannot sample more elements than the sequence holds")
)

// Sampler draws uniformly distributed values from a cryptographically
// secure entropy source. rand.Int performs rejection sampling internally,
// so non-power-of-two ranges carry no modulo bias. A failing source is
// reported as ErrEntropyUnavailable; there is no fallback to a weaker
// generator.
type Sampler struct {
	src io.Reader
}

// NewSampler returns a Sampler backed by crypto/rand.
func NewSampler() *Sampler {
	return &Sampler{src: rand.Reader}
}

// NewSamplerWithSource returns a Sampler reading entropy from src.
// Intended for tests that need a deterministic or failing source.
func NewSamplerWithSource(src io.Reader) *Sampler {
	return &Sampler{src: src}
}

// Intn returns a uniform random integer in [0, n). n must be positive.
func (s *Sampler) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("sampler: invalid range %d", n)
	}
	v, err := rand.Int(s.src, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return int(v.Int64()), nil
}

// Choice returns one uniformly selected byte from set.
func (s *Sampler) Choice(set []byte) (byte, error) {
	i, err := s.Intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// Word returns one uniformly selected element of list.
func (s *Sampler) Word(list []string) (string, error) {
	i, err := s.Intn(len(list))
	if err != nil {
		return "", err
	}
	return list[i], nil
}

// SampleWithoutReplacement returns k distinct elements of list, each
// selection drawn uniformly from the elements not yet chosen.
func (s *Sampler) SampleWithoutReplacement(list []string, k int) ([]string, error) {
	if k > len(list) {
		return nil, ErrSampleTooLarge
	}

	remaining := make([]string, len(list))
	copy(remaining, list)

	picked := make([]string, 0, k)
	for len(picked) < k {
		i, err := s.Intn(len(remaining))
		if err != nil {
			return nil, err
		}
		picked = append(picked, remaining[i])
		remaining[i] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}

	return picked, nil
}
