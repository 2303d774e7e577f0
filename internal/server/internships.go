package server

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func (s *Service) handleSubmitInternship(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading body failed")
		return
	}

	// schema first, struct decode second
	var generic any
	if err := json.Unmarshal(body, &generic); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := s.submissionSchema.Validate(generic); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var sub InternshipSubmission
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if sub.Level == "" {
		sub.Level = "UG"
	}

	intern := &Internship{
		InternshipID:    newInternshipID(),
		APAARID:         sub.APAARID,
		StudentName:     sub.StudentName,
		InstitutionCode: sub.InstitutionCode,
		Organization:    sub.Organization,
		Title:           sub.Title,
		StartDate:       sub.StartDate,
		EndDate:         sub.EndDate,
		TotalHours:      sub.TotalHours,
		InternshipText:  sub.InternshipText,
		Level:           sub.Level,
		Status:          "PENDING",
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.internships[intern.InternshipID] = intern
	s.mu.Unlock()

	s.logger.Info("internship submitted", "internship_id", intern.InternshipID, "org", intern.Organization)
	writeJSON(w, http.StatusOK, map[string]string{
		"internship_id": intern.InternshipID,
		"status":        intern.Status,
	})
}

// handleReconcile runs the mentor pass: score the internship text
// against every catalog descriptor, derive a credit value, and push a
// credit record with a deterministic token.
func (s *Service) handleReconcile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = "success"
	}

	s.mu.Lock()
	intern, ok := s.internships[id]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "internship not found")
		return
	}

	cleanText := s.normalizer.Clean(intern.InternshipText)
	matches := make([]CatalogMatch, 0, len(catalogRefs))
	for _, ref := range catalogRefs {
		score := s.scorer.Score(cleanText, s.normalizer.Clean(ref.DescriptorText))
		composite := round3(score*0.6 + 0.4)
		matches = append(matches, CatalogMatch{
			RefID:     ref.RefID,
			Title:     ref.Title,
			Score:     round3(score),
			Composite: composite,
			Decision:  decide(composite),
		})
	}

	run := &ReconcileRun{RunAt: time.Now().UTC(), Matches: matches}

	creditValue := int(math.Round(float64(intern.TotalHours) / creditHoursPerUnit))
	if creditValue > maxCreditValue {
		creditValue = maxCreditValue
	}
	durationWeeks := durationWeeksBetween(intern.StartDate, intern.EndDate)

	payload := map[string]any{
		"apaar_id":               intern.APAARID,
		"internship_course_code": "INT-2025-001",
		"total_hours":            intern.TotalHours,
		"credit_value":           creditValue,
		"duration_weeks":         durationWeeks,
		"learning_outcomes":      []string{matches[0].Title},
	}
	token := deterministicToken(payload)
	status := creditStatusForMode(mode)

	record := &CreditRecord{
		Token:      token,
		Status:     status,
		Payload:    payload,
		ReceivedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.runs[id] = run
	s.credits[token] = record
	intern.Status = status
	intern.CreditValue = creditValue
	if mode != "failure" {
		intern.ABCToken = token
	}
	s.mu.Unlock()

	s.logger.Info("internship reconciled",
		"internship_id", id,
		"credit_value", creditValue,
		"status", status,
	)

	abcToken := ""
	if mode != "failure" {
		abcToken = token
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"top_matches": matches,
		"abc_result": map[string]any{
			"status":    status,
			"abc_token": abcToken,
		},
		"credit_value": creditValue,
	})
}

func decide(composite float64) string {
	switch {
	case composite >= equivalentThreshold:
		return DecisionEquivalent
	case composite >= partialThreshold:
		return DecisionPartial
	default:
		return DecisionNotEquivalent
	}
}

func creditStatusForMode(mode string) string {
	switch mode {
	case "pending":
		return CreditStatusPending
	case "failure":
		return CreditStatusError
	default:
		return CreditStatusUploaded
	}
}

// durationWeeksBetween is best-effort: unparsable dates count as one week.
func durationWeeksBetween(start, end string) int {
	s, err1 := time.Parse("2006-01-02", start)
	e, err2 := time.Parse("2006-01-02", end)
	if err1 != nil || err2 != nil {
		return 1
	}
	weeks := int(e.Sub(s).Hours() / 24 / 7)
	if weeks < 1 {
		return 1
	}
	return weeks
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
