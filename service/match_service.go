package service

import (
	"context"
	"errors"
	"sort"

	"github.com/kleinjoris/electronic-paralegal-email-system/geo"
	"github.com/kleinjoris/electronic-paralegal-email-system/models"
	"github.com/kleinjoris/electronic-paralegal-email-system/repository"
)

// MatchService finds and ranks attorneys for a client search
type MatchService struct {
	directory repository.LawyerDirectory
}

// MatchServiceOption is a functional option for MatchService
type MatchServiceOption func(*MatchService)

// WithLawyerDirectory sets the lawyer directory
func WithLawyerDirectory(directory repository.LawyerDirectory) MatchServiceOption {
	return func(s *MatchService) {
		s.directory = directory
	}
}

// NewMatchService creates a new match service
func NewMatchService(opts ...MatchServiceOption) *MatchService {
	s := &MatchService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MatchLawyersRequest represents a request to match lawyers
type MatchLawyersRequest struct {
	Criteria models.SearchCriteria
}

// MatchLawyersResult represents the result of matching lawyers
type MatchLawyersResult struct {
	Lawyers []models.MatchedLawyer
}

// MatchLawyers filters and ranks the directory against the search
// criteria. An empty result is a normal outcome, not an error.
//
// Filter and sort order matters: practice area, then public-defender
// exclusion, then distance ceiling, then a stable sort (ascending by
// distance, or descending by rating when requested), then truncation.
func (s *MatchService) MatchLawyers(ctx context.Context, req MatchLawyersRequest) (*MatchLawyersResult, error) {
	if s.directory == nil {
		return nil, errors.New("lawyer directory not set")
	}

	criteria := req.Criteria

	candidates, err := s.directory.ListByPracticeArea(ctx, criteria.PracticeArea)
	if err != nil {
		return nil, err
	}

	matched := make([]models.MatchedLawyer, 0, len(candidates))
	for _, lawyer := range candidates {
		if !criteria.IncludePublicDefenders && lawyer.IsPublicDefender {
			continue
		}

		distance := geo.Distance(
			criteria.ClientLocation.Latitude,
			criteria.ClientLocation.Longitude,
			lawyer.Location.Coordinates.Latitude,
			lawyer.Location.Coordinates.Longitude,
		)
		if distance > criteria.MaxDistanceMiles {
			continue
		}

		matched = append(matched, models.MatchedLawyer{
			Lawyer:        lawyer,
			DistanceMiles: distance,
		})
	}

	// Stable sort so records with equal keys keep directory order
	switch criteria.SortBy {
	case models.SortByRating:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Rating > matched[j].Rating
		})
	default:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].DistanceMiles < matched[j].DistanceMiles
		})
	}

	if criteria.MaxResults > 0 && len(matched) > criteria.MaxResults {
		matched = matched[:criteria.MaxResults]
	}

	return &MatchLawyersResult{Lawyers: matched}, nil
}
