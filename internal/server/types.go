package server

import "time"

// Internship is one submitted internship record (demo store).
type Internship struct {
	InternshipID    string  `json:"internship_id"`
	APAARID         string  `json:"apaar_id"`
	StudentName     string  `json:"student_name"`
	InstitutionCode string  `json:"institution_code"`
	Organization    string  `json:"organization"`
	Title           string  `json:"title"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	TotalHours      int     `json:"total_hours"`
	InternshipText  string  `json:"internship_text"`
	Level           string  `json:"level"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	ABCToken        string  `json:"abc_token,omitempty"`
	CreditValue     int     `json:"credit_value,omitempty"`
}

// InternshipSubmission is the POST /internships payload (validated
// against schemas/internship.json before decoding).
type InternshipSubmission struct {
	APAARID         string `json:"apaar_id"`
	StudentName     string `json:"student_name"`
	InstitutionCode string `json:"institution_code"`
	Organization    string `json:"organization"`
	Title           string `json:"title"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	TotalHours      int    `json:"total_hours"`
	InternshipText  string `json:"internship_text"`
	Level           string `json:"level"`
}

// CatalogMatch scores an internship against one catalog descriptor.
type CatalogMatch struct {
	RefID     string  `json:"ref_id"`
	Title     string  `json:"title"`
	Score     float64 `json:"score"`
	Composite float64 `json:"composite"`
	Decision  string  `json:"decision"`
}

// ReconcileRun records a mentor reconciliation pass.
type ReconcileRun struct {
	RunAt   time.Time      `json:"run_at"`
	Matches []CatalogMatch `json:"matches"`
}

// CreditRecord is a pushed academic-credit record (demo registry).
type CreditRecord struct {
	Token      string         `json:"abc_token"`
	Status     string         `json:"status"`
	Payload    map[string]any `json:"payload"`
	ReceivedAt time.Time      `json:"received_at"`
}

// Credit upload modes (demo switch for exercising the workflow).
const (
	CreditStatusUploaded = "UPLOADED"
	CreditStatusPending  = "PENDING"
	CreditStatusError    = "ERROR"
)

// Reconciliation decisions.
const (
	DecisionEquivalent    = "Equivalent"
	DecisionPartial       = "Partially Equivalent"
	DecisionNotEquivalent = "Not Equivalent"
)
