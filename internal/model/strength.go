package model

// StrengthRequest represents a password strength check request.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse represents a password strength report.
type StrengthResponse struct {
	EntropyBits float64  `json:"entropy_bits"`
	Rating      string   `json:"rating"`
	Length      int      `json:"length"`
	CharsetSize int      `json:"charset_size"`
	Warnings    []string `json:"warnings"`
}
