package handler

import (
	"net/http"

	"github.com/passforge/passforge-go/internal/model"
)

// HandleCheckStrength handles POST /api/v1/strength requests. Analysis
// never fails on well-formed input; an empty password yields a zero-
// entropy report with a "too short" warning.
func (h *GeneratorHandler) HandleCheckStrength(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if !decodeBody(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.CheckStrength(req))
}
