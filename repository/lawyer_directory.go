package repository

import (
	"context"

	"github.com/kleinjoris/electronic-paralegal-email-system/models"
)

// LawyerDirectory provides read-only access to attorney records.
// Implementations must return consistent snapshots: a match call must
// never observe a partially updated directory.
type LawyerDirectory interface {
	// GetAll returns every record in the directory.
	GetAll(ctx context.Context) ([]models.Lawyer, error)

	// ListByPracticeArea returns records whose practice-area set
	// contains the given area. Matching is case-insensitive and exact
	// (set membership, not substring).
	ListByPracticeArea(ctx context.Context, area string) ([]models.Lawyer, error)
}
