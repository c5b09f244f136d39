package models

// DistributionResult represents the outcome of one notification
// attempt. MessageID is set only on success, Error only on failure.
type DistributionResult struct {
	LawyerID    string `json:"lawyerId"`
	LawyerName  string `json:"lawyerName"`
	LawyerEmail string `json:"lawyerEmail"`
	Success     bool   `json:"success"`
	MessageID   string `json:"messageId,omitempty"`
	Error       string `json:"error,omitempty"`
}
