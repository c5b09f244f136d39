package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kleinjoris/electronic-paralegal-email-system/models"
	"github.com/kleinjoris/electronic-paralegal-email-system/repository"
	"github.com/kleinjoris/electronic-paralegal-email-system/storage"

	"github.com/google/uuid"
)

// baselineScore is the starting score before any rule fires.
const baselineScore = 75

// ArtifactFilename is the logical filename of the rendered case
// report stored alongside each generated report.
const ArtifactFilename = "case_report.html"

const (
	recommendationSevere   = "Significant procedural issues identified. Immediate legal consultation strongly recommended."
	recommendationModerate = "Potential procedural issues identified. Legal consultation recommended."
	recommendationMild     = "Minor or no procedural issues identified. Legal consultation may still be beneficial."
)

// scoringRule is one fixed evaluation rule. Rules are evaluated in
// order; each firing rule appends its finding and subtracts its
// penalty from the score.
type scoringRule struct {
	fires   func(answers models.EvaluationAnswers) bool
	penalty int
	finding models.IssueFinding
}

// scoringRules is the fixed, ordered rule set. The score is
// deliberately not clamped: several high-severity rules firing
// together can drive it below zero, matching the questionnaire's
// published scoring.
var scoringRules = []scoringRule{
	{
		fires: func(a models.EvaluationAnswers) bool {
			return answerIs(a, "miranda_rights", "no")
		},
		penalty: 15,
		finding: models.IssueFinding{
			ID:          1,
			Title:       "Miranda Rights Violation",
			Description: "You indicated that you were not read your Miranda rights.",
			Severity:    models.SeverityHigh,
			Details:     "Law enforcement is required to inform you of your rights before custodial interrogation. Failure to do so may make statements inadmissible.",
		},
	},
	{
		fires: func(a models.EvaluationAnswers) bool {
			return answerIs(a, "search_warrant", "no") && answerIs(a, "consent_to_search", "no")
		},
		penalty: 15,
		finding: models.IssueFinding{
			ID:          2,
			Title:       "Potential Illegal Search",
			Description: "You indicated that there was no search warrant and you did not consent to a search.",
			Severity:    models.SeverityHigh,
			Details:     "Searches conducted without a warrant or consent are generally illegal unless they fall under specific exceptions.",
		},
	},
	{
		fires: func(a models.EvaluationAnswers) bool {
			return answerIs(a, "requested_lawyer", "yes") && answerIs(a, "questioning_continued", "yes")
		},
		penalty: 20,
		finding: models.IssueFinding{
			ID:          3,
			Title:       "Continued Questioning After Lawyer Request",
			Description: "You indicated questioning continued after you requested a lawyer.",
			Severity:    models.SeverityHigh,
			Details:     "Once you request a lawyer, all questioning must cease until your lawyer is present. Any statements obtained after your request may be inadmissible.",
		},
	},
}

// answerIs reports whether the answer under key equals want. Missing
// keys and non-string values never match, so absent fields simply
// leave the rule unfired.
func answerIs(answers models.EvaluationAnswers, key, want string) bool {
	v, ok := answers[key].(string)
	return ok && v == want
}

// nextSteps is independent of the answers
var nextSteps = []string{
	"Consult with a criminal defense attorney to discuss these potential issues",
	"Gather any documentation related to your arrest and charges",
	"Do not discuss your case with anyone except your attorney",
	"Keep track of all court dates and deadlines",
}

// ReportService generates and stores scored case evaluations
type ReportService struct {
	reports   repository.ReportStore
	artifacts storage.Storage
	now       func() time.Time
}

// ReportServiceOption is a functional option for ReportService
type ReportServiceOption func(*ReportService)

// WithReportStore sets the report store
func WithReportStore(store repository.ReportStore) ReportServiceOption {
	return func(s *ReportService) {
		s.reports = store
	}
}

// WithArtifactStorage sets the storage backend for rendered reports
func WithArtifactStorage(st storage.Storage) ReportServiceOption {
	return func(s *ReportService) {
		s.artifacts = st
	}
}

// WithClock sets the time source, used by tests
func WithClock(now func() time.Time) ReportServiceOption {
	return func(s *ReportService) {
		s.now = now
	}
}

// NewReportService creates a new report service
func NewReportService(opts ...ReportServiceOption) *ReportService {
	s := &ReportService{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateReportRequest represents a request to generate a report
type GenerateReportRequest struct {
	Answers models.EvaluationAnswers
}

// GenerateReportResult represents the result of generating a report
type GenerateReportResult struct {
	Report *models.Report
}

// GenerateReport evaluates the fixed rule set against the answers and
// produces a scored report. Generation never fails for missing or
// malformed answer fields; only store or storage I/O can error.
func (s *ReportService) GenerateReport(ctx context.Context, req GenerateReportRequest) (*GenerateReportResult, error) {
	if s.reports == nil {
		return nil, errors.New("report store not set")
	}

	score := baselineScore
	var issues []models.IssueFinding
	for _, rule := range scoringRules {
		if rule.fires(req.Answers) {
			issues = append(issues, rule.finding)
			score -= rule.penalty
		}
	}

	report := &models.Report{
		ID:             uuid.New(),
		CreatedAt:      s.now().UTC(),
		ClientInfo:     clientInfoFromAnswers(req.Answers),
		EvaluationData: req.Answers,
		Issues:         issues,
		Score:          score,
		Recommendation: recommendationForScore(score),
		NextSteps:      nextSteps,
	}

	if err := s.reports.Save(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	if s.artifacts != nil {
		doc, err := renderReportDocument(report)
		if err != nil {
			return nil, fmt.Errorf("failed to render report artifact: %w", err)
		}
		if _, err := s.artifacts.Upload(ctx, report.ID, ArtifactFilename, strings.NewReader(doc)); err != nil {
			return nil, fmt.Errorf("failed to store report artifact: %w", err)
		}
	}

	return &GenerateReportResult{Report: report}, nil
}

// recommendationForScore selects the recommendation tier. The upper
// boundary is strict: a score of exactly 75 falls in the mild tier.
func recommendationForScore(score int) string {
	switch {
	case score < 50:
		return recommendationSevere
	case score < baselineScore:
		return recommendationModerate
	default:
		return recommendationMild
	}
}

// clientInfoFromAnswers copies the nested contact object, when
// present, into structured client info
func clientInfoFromAnswers(answers models.EvaluationAnswers) models.ClientInfo {
	contact, ok := answers["contact"].(map[string]interface{})
	if !ok {
		return models.ClientInfo{}
	}

	str := func(key string) string {
		v, _ := contact[key].(string)
		return v
	}

	return models.ClientInfo{
		Name:     str("name"),
		Email:    str("email"),
		Phone:    str("phone"),
		City:     str("city"),
		State:    str("state"),
		CaseType: str("caseType"),
	}
}

// GetReportRequest represents a request to fetch a stored report
type GetReportRequest struct {
	ID uuid.UUID
}

// GetReportResult represents the result of fetching a report
type GetReportResult struct {
	Report *models.Report
}

// GetReport retrieves a previously generated report
func (s *ReportService) GetReport(ctx context.Context, req GetReportRequest) (*GetReportResult, error) {
	if s.reports == nil {
		return nil, errors.New("report store not set")
	}

	report, err := s.reports.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &GetReportResult{Report: report}, nil
}
