package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

func newTestHandler() *GeneratorHandler {
	return NewGeneratorHandler(service.NewGeneratorService())
}

func postJSON(t *testing.T, fn http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	fn(rec, req)
	return rec
}

func TestHandleGenerate(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.HandleGenerate, `{"length": 12}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp model.GenerateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Password) != 12 || resp.Length != 12 {
		t.Errorf("password length = %d (reported %d), want 12", len(resp.Password), resp.Length)
	}
	if resp.EntropyBits <= 0 {
		t.Errorf("entropy = %f, want > 0", resp.EntropyBits)
	}
}

func TestHandleGenerateEmptyBody(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.HandleGenerate, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp model.GenerateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("default length = %d, want 16", resp.Length)
	}
}

func TestHandleGenerateValidationError(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name string
		body string
	}{
		{"length too short", `{"length": 7}`},
		{"length too long", `{"length": 129}`},
		{"invalid case", `{"case": "camel"}`},
		{"empty custom symbols", `{"custom_symbols": "  "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.HandleGenerate, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
			}
			var resp map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if resp["error"] == "" {
				t.Error("expected error message in response")
			}
		})
	}
}

func TestHandleGenerateMalformedBody(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.HandleGenerate, `{"length": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleGenerateBatch(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.HandleGenerateBatch, `{"count": 5, "length": 20}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp model.GenerateBatchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Passwords) != 5 {
		t.Fatalf("got %d passwords, want 5", len(resp.Passwords))
	}
	for _, p := range resp.Passwords {
		if len(p) != 20 {
			t.Errorf("password length = %d, want 20", len(p))
		}
	}
}

func TestHandleGenerateBatchCountOutOfRange(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.HandleGenerateBatch, `{"count": 25}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleCheckStrength(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.HandleCheckStrength, `{"password": "abc12345"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp model.StrengthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Length != 8 {
		t.Errorf("length = %d, want 8", resp.Length)
	}
	found := false
	for _, w := range resp.Warnings {
		if w == "sequential characters" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected sequential characters warning, got %v", resp.Warnings)
	}
}

func TestHandleGeneratePassphrase(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.HandleGeneratePassphrase, `{"word_count": 4, "separator": "-"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp model.PassphraseResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.WordCount != 4 {
		t.Errorf("word count = %d, want 4", resp.WordCount)
	}
	if got := strings.Count(resp.Passphrase, "-"); got != 3 {
		t.Errorf("passphrase %q has %d separators, want 3", resp.Passphrase, got)
	}
}

func TestHandleGeneratePassphraseInvalidWordCount(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.HandleGeneratePassphrase, `{"word_count": -1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
	}
}
