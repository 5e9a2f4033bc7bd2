package service

import (
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

// GeneratorService handles password and passphrase generation business
// logic. It is stateless; a single instance is safe for concurrent use.
type GeneratorService struct {
	gen *crypto.Generator
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{gen: crypto.NewGenerator()}
}

// Generate produces one password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := optionsFromRequest(req)

	password, err := s.gen.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password:    password,
		Length:      len(password),
		EntropyBits: crypto.Analyze(password).EntropyBits,
	}, nil
}

// GenerateBatch produces count independent passwords sharing the same
// options. A missing count defaults to 5.
func (s *GeneratorService) GenerateBatch(req model.GenerateBatchRequest) (model.GenerateBatchResponse, error) {
	count := req.Count
	if count == 0 {
		count = 5
	}

	passwords, err := s.gen.GenerateMultiple(optionsFromRequest(req.GenerateRequest), count)
	if err != nil {
		return model.GenerateBatchResponse{}, err
	}

	return model.GenerateBatchResponse{
		Count:     len(passwords),
		Passwords: passwords,
	}, nil
}

// CheckStrength analyzes an arbitrary password string.
func (s *GeneratorService) CheckStrength(req model.StrengthRequest) model.StrengthResponse {
	report := crypto.Analyze(req.Password)

	return model.StrengthResponse{
		EntropyBits: report.EntropyBits,
		Rating:      string(report.Rating),
		Length:      report.Length,
		CharsetSize: report.CharsetSize,
		Warnings:    report.Warnings,
	}
}

// GeneratePassphrase produces a passphrase based on the given request.
// A missing word count defaults to 4 and a missing separator to "-".
func (s *GeneratorService) GeneratePassphrase(req model.PassphraseRequest) (model.PassphraseResponse, error) {
	opts := crypto.DefaultPassphraseOptions()
	if req.WordCount != 0 {
		opts.WordCount = req.WordCount
	}
	if req.Separator != nil {
		opts.Separator = *req.Separator
	}
	opts.Capitalize = boolOrDefault(req.Capitalize, false)
	opts.AppendNumber = boolOrDefault(req.AppendNumber, false)
	opts.UniqueWords = boolOrDefault(req.UniqueWords, false)

	passphrase, err := s.gen.GeneratePassphrase(opts)
	if err != nil {
		return model.PassphraseResponse{}, err
	}

	return model.PassphraseResponse{
		Passphrase: passphrase,
		WordCount:  opts.WordCount,
	}, nil
}

// optionsFromRequest applies the documented defaults: length 16, symbols
// and numbers on, mixed case, ambiguous characters kept.
func optionsFromRequest(req model.GenerateRequest) crypto.GeneratorOptions {
	opts := crypto.GeneratorOptions{
		Length:           req.Length,
		IncludeSymbols:   boolOrDefault(req.IncludeSymbols, true),
		IncludeNumbers:   boolOrDefault(req.IncludeNumbers, true),
		Case:             crypto.CaseMixed,
		ExcludeAmbiguous: boolOrDefault(req.ExcludeAmbiguous, false),
	}

	if req.Case != "" {
		opts.Case = crypto.CaseMode(req.Case)
	}
	if req.CustomSymbols != nil {
		opts.CustomSymbols = *req.CustomSymbols
	}
	if opts.Length == 0 {
		opts.Length = 16
	}

	return opts
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
