package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/kleinjoris/electronic-paralegal-email-system/models"

	"github.com/google/uuid"
)

// ErrReportNotFound is returned when a report id resolves to nothing
var ErrReportNotFound = errors.New("report not found")

// ReportStore holds generated reports so they can be resolved later
// by the distribution flow and the results page.
type ReportStore interface {
	// Save stores a report. Reports are immutable once saved.
	Save(ctx context.Context, report *models.Report) error

	// GetByID retrieves a report, or ErrReportNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
}

// MemoryReportStore keeps reports in process memory
type MemoryReportStore struct {
	mu      sync.RWMutex
	reports map[uuid.UUID]*models.Report
}

// NewMemoryReportStore creates an empty in-memory report store
func NewMemoryReportStore() *MemoryReportStore {
	return &MemoryReportStore{
		reports: make(map[uuid.UUID]*models.Report),
	}
}

// Save stores a report keyed by its id
func (s *MemoryReportStore) Save(ctx context.Context, report *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[report.ID] = report
	return nil
}

// GetByID retrieves a report by id
func (s *MemoryReportStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.reports[id]
	if !ok {
		return nil, ErrReportNotFound
	}
	return report, nil
}
