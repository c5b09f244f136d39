package models

import (
	"time"

	"github.com/google/uuid"
)

// Severity represents the severity of an issue finding
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// EvaluationAnswers maps questionnaire question ids to answer values.
// Values may be answer strings, free text, or a nested "contact" object.
type EvaluationAnswers map[string]interface{}

// ClientInfo represents the contact details a client submits with
// their evaluation
type ClientInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	State    string `json:"state"`
	CaseType string `json:"caseType,omitempty"`
}

// IssueFinding represents a single procedural issue flagged by the
// evaluation rules
type IssueFinding struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Details     string   `json:"details"`
}

// Report represents a scored case evaluation. Generated whole and
// immutable after creation; issue order is rule evaluation order.
type Report struct {
	ID             uuid.UUID         `json:"id"`
	CreatedAt      time.Time         `json:"createdAt"`
	ClientInfo     ClientInfo        `json:"clientInfo"`
	EvaluationData EvaluationAnswers `json:"evaluationData"`
	Issues         []IssueFinding    `json:"issues"`
	Score          int               `json:"score"`
	Recommendation string            `json:"recommendation"`
	NextSteps      []string          `json:"nextSteps"`
}
