package model

// GenerateRequest represents a password generation request.
// Pointer fields allow distinguishing between missing (nil -> default)
// and explicit values.
type GenerateRequest struct {
	Length           int     `json:"length"`
	IncludeSymbols   *bool   `json:"include_symbols"`
	IncludeNumbers   *bool   `json:"include_numbers"`
	Case             string  `json:"case"`
	ExcludeAmbiguous *bool   `json:"exclude_ambiguous"`
	CustomSymbols    *string `json:"custom_symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password    string  `json:"password"`
	Length      int     `json:"length"`
	EntropyBits float64 `json:"entropy_bits"`
}

// GenerateBatchRequest represents a request for several passwords sharing
// the same options.
type GenerateBatchRequest struct {
	Count int `json:"count"`
	GenerateRequest
}

// GenerateBatchResponse represents a batch generation response.
type GenerateBatchResponse struct {
	Count     int      `json:"count"`
	Passwords []string `json:"passwords"`
}
