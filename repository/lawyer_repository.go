package repository

import (
	"context"
	"strings"

	"github.com/kleinjoris/electronic-paralegal-email-system/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LawyerRepository implements LawyerDirectory against Postgres
type LawyerRepository struct {
	db *pgxpool.Pool
}

// NewLawyerRepository creates a new lawyer repository
func NewLawyerRepository(db *pgxpool.Pool) *LawyerRepository {
	return &LawyerRepository{db: db}
}

const lawyerColumns = `
	id, name, email, phone, practice_areas, is_public_defender, rating,
	address, city, state, zip, latitude, longitude`

// GetAll retrieves every attorney record in directory order
func (r *LawyerRepository) GetAll(ctx context.Context) ([]models.Lawyer, error) {
	query := `SELECT` + lawyerColumns + `
		FROM lawyers
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLawyers(rows)
}

// ListByPracticeArea retrieves attorneys practicing the given area.
// Practice areas are stored lowercase, so the argument is lowercased
// before matching.
func (r *LawyerRepository) ListByPracticeArea(ctx context.Context, area string) ([]models.Lawyer, error) {
	query := `SELECT` + lawyerColumns + `
		FROM lawyers
		WHERE $1 = ANY(practice_areas)
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, strings.ToLower(strings.TrimSpace(area)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLawyers(rows)
}

func scanLawyers(rows pgx.Rows) ([]models.Lawyer, error) {
	var lawyers []models.Lawyer
	for rows.Next() {
		var lawyer models.Lawyer
		err := rows.Scan(
			&lawyer.ID,
			&lawyer.Name,
			&lawyer.Email,
			&lawyer.Phone,
			&lawyer.PracticeAreas,
			&lawyer.IsPublicDefender,
			&lawyer.Rating,
			&lawyer.Location.Address,
			&lawyer.Location.City,
			&lawyer.Location.State,
			&lawyer.Location.Zip,
			&lawyer.Location.Coordinates.Latitude,
			&lawyer.Location.Coordinates.Longitude,
		)
		if err != nil {
			return nil, err
		}
		lawyers = append(lawyers, lawyer)
	}

	return lawyers, rows.Err()
}
