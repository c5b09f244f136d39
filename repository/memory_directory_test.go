package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLawyerDirectory_GetAllPreservesOrder(t *testing.T) {
	dir := NewMemoryLawyerDirectory(SeedLawyers())

	all, err := dir.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, lawyer := range all {
		assert.Equal(t, SeedLawyers()[i].ID, lawyer.ID)
	}
}

func TestMemoryLawyerDirectory_ListByPracticeArea(t *testing.T) {
	dir := NewMemoryLawyerDirectory(SeedLawyers())

	tests := []struct {
		area    string
		wantIDs []string
	}{
		{"criminal", []string{"1", "2", "3", "4", "5"}},
		{"CRIMINAL", []string{"1", "2", "3", "4", "5"}},
		{"dui", []string{"1"}},
		{"family", []string{"4"}},
		{"crim", nil},       // substring, not a member
		{"immigration", nil},
	}

	for _, tt := range tests {
		t.Run(tt.area, func(t *testing.T) {
			got, err := dir.ListByPracticeArea(context.Background(), tt.area)
			require.NoError(t, err)

			var ids []string
			for _, lawyer := range got {
				ids = append(ids, lawyer.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestMemoryLawyerDirectory_SnapshotIsolation(t *testing.T) {
	seed := SeedLawyers()
	dir := NewMemoryLawyerDirectory(seed)

	// Mutating the caller's slice must not affect the directory
	seed[0].Name = "changed"

	all, err := dir.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", all[0].Name)

	// Mutating a returned snapshot must not affect later reads
	all[1].Email = "changed@example.com"
	again, err := dir.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "john.doe@legalpractice.com", again[1].Email)
}

func TestSeedLawyers_RecordShape(t *testing.T) {
	for _, lawyer := range SeedLawyers() {
		assert.NotEmpty(t, lawyer.ID)
		assert.NotEmpty(t, lawyer.Email)
		assert.NotEmpty(t, lawyer.PracticeAreas)
		assert.InDelta(t, 40.7, lawyer.Location.Coordinates.Latitude, 0.5)
		for _, area := range lawyer.PracticeAreas {
			assert.Equal(t, strings.ToLower(area), area, "practice areas are stored lowercase")
		}
	}
}
