package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/passforge/passforge-go/internal/crypto"
)

// APIKeyAuth returns middleware that validates the X-API-Key header
// against an Argon2id PHC-encoded hash. Nothing is persisted; the hash
// comes from configuration and verification is stateless per request.
func APIKeyAuth(keyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-API-Key")
			if key == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing API key")
				return
			}

			ok, err := crypto.VerifyAPIKey(key, keyHash)
			if err != nil || !ok {
				writeJSONError(w, http.StatusUnauthorized, "invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
