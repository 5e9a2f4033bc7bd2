package model

// PassphraseRequest represents a passphrase generation request. Separator
// is a pointer so an absent field defaults to "-" while an explicit empty
// string concatenates the words.
type PassphraseRequest struct {
	WordCount    int     `json:"word_count"`
	Separator    *string `json:"separator"`
	Capitalize   *bool   `json:"capitalize"`
	AppendNumber *bool   `json:"append_number"`
	UniqueWords  *bool   `json:"unique_words"`
}

// PassphraseResponse represents a passphrase generation response.
type PassphraseResponse struct {
	Passphrase string `json:"passphrase"`
	WordCount  int    `json:"word_count"`
}
