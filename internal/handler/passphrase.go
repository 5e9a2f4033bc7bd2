package handler

import (
	"net/http"

	"github.com/passforge/passforge-go/internal/model"
)

// HandleGeneratePassphrase handles POST /api/v1/passphrases requests.
func (h *GeneratorHandler) HandleGeneratePassphrase(w http.ResponseWriter, r *http.Request) {
	var req model.PassphraseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.GeneratePassphrase(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
