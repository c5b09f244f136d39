package repository

import (
	"context"
	"strings"

	"github.com/kleinjoris/electronic-paralegal-email-system/models"
)

// MemoryLawyerDirectory holds the directory in process memory.
// Records are copied in at construction time and read-only afterwards,
// so lookups need no locking.
type MemoryLawyerDirectory struct {
	lawyers []models.Lawyer
}

// NewMemoryLawyerDirectory creates an in-memory directory from the
// given records, preserving their order.
func NewMemoryLawyerDirectory(lawyers []models.Lawyer) *MemoryLawyerDirectory {
	records := make([]models.Lawyer, len(lawyers))
	copy(records, lawyers)
	return &MemoryLawyerDirectory{lawyers: records}
}

// GetAll returns every record in directory order.
func (d *MemoryLawyerDirectory) GetAll(ctx context.Context) ([]models.Lawyer, error) {
	out := make([]models.Lawyer, len(d.lawyers))
	copy(out, d.lawyers)
	return out, nil
}

// ListByPracticeArea returns records practicing the given area.
func (d *MemoryLawyerDirectory) ListByPracticeArea(ctx context.Context, area string) ([]models.Lawyer, error) {
	want := strings.ToLower(strings.TrimSpace(area))
	var out []models.Lawyer
	for _, lawyer := range d.lawyers {
		for _, a := range lawyer.PracticeAreas {
			if strings.ToLower(a) == want {
				out = append(out, lawyer)
				break
			}
		}
	}
	return out, nil
}

// SeedLawyers returns the bundled attorney records used when no
// external directory backend is configured.
func SeedLawyers() []models.Lawyer {
	return []models.Lawyer{
		{
			ID:               "1",
			Name:             "Jane Smith",
			Email:            "jane.smith@lawfirm.com",
			Phone:            "555-123-4567",
			PracticeAreas:    []string{"criminal", "dui"},
			IsPublicDefender: false,
			Rating:           4.8,
			Location: models.LawyerLocation{
				Address:     "123 Legal St",
				City:        "New York",
				State:       "NY",
				Zip:         "10001",
				Coordinates: models.Coordinate{Latitude: 40.7128, Longitude: -74.006},
			},
		},
		{
			ID:               "2",
			Name:             "John Doe",
			Email:            "john.doe@legalpractice.com",
			Phone:            "555-987-6543",
			PracticeAreas:    []string{"criminal", "civil"},
			IsPublicDefender: false,
			Rating:           4.5,
			Location: models.LawyerLocation{
				Address:     "456 Justice Ave",
				City:        "New York",
				State:       "NY",
				Zip:         "10002",
				Coordinates: models.Coordinate{Latitude: 40.73, Longitude: -73.995},
			},
		},
		{
			ID:               "3",
			Name:             "Maria Rodriguez",
			Email:            "maria@criminaldefense.com",
			Phone:            "555-456-7890",
			PracticeAreas:    []string{"criminal"},
			IsPublicDefender: false,
			Rating:           4.9,
			Location: models.LawyerLocation{
				Address:     "789 Defense Blvd",
				City:        "Jersey City",
				State:       "NJ",
				Zip:         "07302",
				Coordinates: models.Coordinate{Latitude: 40.6892, Longitude: -74.0445},
			},
		},
		{
			ID:               "4",
			Name:             "Robert Johnson",
			Email:            "rjohnson@legalaid.org",
			Phone:            "555-789-0123",
			PracticeAreas:    []string{"criminal", "family"},
			IsPublicDefender: true,
			Rating:           4.2,
			Location: models.LawyerLocation{
				Address:     "101 Public Defender Ln",
				City:        "New York",
				State:       "NY",
				Zip:         "10003",
				Coordinates: models.Coordinate{Latitude: 40.7831, Longitude: -73.9712},
			},
		},
		{
			ID:               "5",
			Name:             "Sarah Williams",
			Email:            "swilliams@defenselaw.com",
			Phone:            "555-234-5678",
			PracticeAreas:    []string{"criminal"},
			IsPublicDefender: false,
			Rating:           4.6,
			Location: models.LawyerLocation{
				Address:     "202 Attorney St",
				City:        "Brooklyn",
				State:       "NY",
				Zip:         "11201",
				Coordinates: models.Coordinate{Latitude: 40.8448, Longitude: -73.8648},
			},
		},
	}
}
