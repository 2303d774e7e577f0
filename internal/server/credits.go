package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// handleCreditUpload is the demo credit-registry endpoint: any payload
// gets a deterministic token and a status driven by the mode switch.
func (s *Service) handleCreditUpload(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = "success"
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	token := deterministicToken(payload)
	status := creditStatusForMode(mode)
	now := time.Now().UTC()

	s.mu.Lock()
	s.credits[token] = &CreditRecord{
		Token:      token,
		Status:     status,
		Payload:    payload,
		ReceivedAt: now,
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"status":      status,
		"abc_token":   token,
		"received_at": now.Format(time.RFC3339),
	})
}

func (s *Service) handleCreditStatus(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	s.mu.Lock()
	record, ok := s.credits[token]
	s.mu.Unlock()

	status := "UNKNOWN"
	if ok {
		status = record.Status
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"abc_token": token,
		"status":    status,
	})
}
