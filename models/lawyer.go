package models

// Coordinate represents a WGS84 point in decimal degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LawyerLocation represents an attorney's office location
type LawyerLocation struct {
	Address     string     `json:"address"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	Zip         string     `json:"zip"`
	Coordinates Coordinate `json:"coordinates"`
}

// Lawyer represents an attorney record in the directory. Records are
// reference data: created when the directory is loaded and never
// mutated afterwards.
type Lawyer struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone"`
	PracticeAreas    []string       `json:"practiceAreas"`
	IsPublicDefender bool           `json:"isPublicDefender"`
	Rating           float64        `json:"rating"`
	Location         LawyerLocation `json:"location"`
}

// MatchedLawyer pairs a directory record with the distance from the
// client's location, computed fresh on every match call.
type MatchedLawyer struct {
	Lawyer
	DistanceMiles float64 `json:"distance"`
}

// SortKey selects the ranking order for matched lawyers
type SortKey string

const (
	SortByDistance SortKey = "distance"
	SortByRating   SortKey = "rating"
)

// SearchCriteria represents one lawyer search. Ephemeral, one per request.
type SearchCriteria struct {
	ClientLocation         Coordinate
	PracticeArea           string
	MaxDistanceMiles       float64
	MaxResults             int
	IncludePublicDefenders bool
	SortBy                 SortKey
}
