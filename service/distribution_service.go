package service

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"github.com/kleinjoris/electronic-paralegal-email-system/mailer"
	"github.com/kleinjoris/electronic-paralegal-email-system/models"
	"github.com/kleinjoris/electronic-paralegal-email-system/storage"
)

// defaultSendTimeout bounds each individual delivery attempt. A
// timed-out send is recorded as that recipient's failure.
const defaultSendTimeout = 15 * time.Second

// DistributionService fans a generated report out to matched attorneys
type DistributionService struct {
	mailer      mailer.Mailer
	artifacts   storage.Storage
	sendTimeout time.Duration
}

// DistributionServiceOption is a functional option for DistributionService
type DistributionServiceOption func(*DistributionService)

// WithMailer sets the outbound transport
func WithMailer(m mailer.Mailer) DistributionServiceOption {
	return func(s *DistributionService) {
		s.mailer = m
	}
}

// DistributionWithArtifactStorage sets the storage backend holding
// rendered reports
func DistributionWithArtifactStorage(st storage.Storage) DistributionServiceOption {
	return func(s *DistributionService) {
		s.artifacts = st
	}
}

// WithSendTimeout overrides the per-recipient delivery timeout
func WithSendTimeout(d time.Duration) DistributionServiceOption {
	return func(s *DistributionService) {
		s.sendTimeout = d
	}
}

// NewDistributionService creates a new distribution service
func NewDistributionService(opts ...DistributionServiceOption) *DistributionService {
	s := &DistributionService{
		sendTimeout: defaultSendTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DistributeReportRequest represents one distribution action
type DistributeReportRequest struct {
	Report     *models.Report
	Lawyers    []models.MatchedLawyer
	ClientInfo models.ClientInfo
}

// DistributeReportResult represents the aggregate outcome of a
// distribution. NoRecipients is set when the lawyer list was empty;
// otherwise Results holds one entry per lawyer, in request order.
type DistributeReportResult struct {
	NoRecipients bool
	Results      []models.DistributionResult
}

// DistributeReport sends the report to every lawyer concurrently.
// Each attempt is isolated: one recipient failing never prevents or
// aborts the others, and the call returns only after all attempts
// have settled. Per-recipient outcomes land in the result slot
// matching the input order, regardless of completion order.
func (s *DistributionService) DistributeReport(ctx context.Context, req DistributeReportRequest) (*DistributeReportResult, error) {
	if s.mailer == nil {
		return nil, errors.New("mailer not set")
	}

	if len(req.Lawyers) == 0 {
		return &DistributeReportResult{NoRecipients: true}, nil
	}

	attachment := s.loadAttachment(ctx, req.Report)
	attachName := attachmentFilename(req.ClientInfo)
	subject := buildNotificationSubject(req.ClientInfo)

	results := make([]models.DistributionResult, len(req.Lawyers))
	var wg sync.WaitGroup

	for i, lawyer := range req.Lawyers {
		wg.Add(1)
		go func(i int, lawyer models.MatchedLawyer) {
			defer wg.Done()
			results[i] = s.sendOne(ctx, lawyer, req.ClientInfo, subject, attachName, attachment)
		}(i, lawyer)
	}

	wg.Wait()

	sent := 0
	for _, r := range results {
		if r.Success {
			sent++
		}
	}
	log.Printf("Report %s distributed to %d lawyers (%d delivered, %d failed)",
		req.Report.ID, len(results), sent, len(results)-sent)

	return &DistributeReportResult{Results: results}, nil
}

// sendOne renders and delivers the notification for a single
// attorney, mapping any failure into that attorney's result.
func (s *DistributionService) sendOne(ctx context.Context, lawyer models.MatchedLawyer, clientInfo models.ClientInfo, subject, attachName string, attachment []byte) models.DistributionResult {
	result := models.DistributionResult{
		LawyerID:    lawyer.ID,
		LawyerName:  lawyer.Name,
		LawyerEmail: lawyer.Email,
	}

	body, err := buildNotificationBody(lawyer, clientInfo)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	messageID, err := s.mailer.Send(sendCtx, mailer.Message{
		To:             lawyer.Email,
		ToName:         lawyer.Name,
		Subject:        subject,
		HTMLBody:       body,
		AttachmentName: attachName,
		Attachment:     attachment,
	})
	if err != nil {
		log.Printf("Error sending notification to %s: %v", lawyer.Name, err)
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.MessageID = messageID
	return result
}

// loadAttachment fetches the rendered report artifact. The
// notification still references the report when no artifact is
// available, so a missing artifact downgrades to a log warning.
func (s *DistributionService) loadAttachment(ctx context.Context, report *models.Report) []byte {
	if s.artifacts == nil || report == nil {
		return nil
	}

	path := storage.ObjectPath(report.ID, ArtifactFilename)
	rc, err := s.artifacts.Download(ctx, path)
	if err != nil {
		log.Printf("Warning: report artifact %s unavailable: %v", path, err)
		return nil
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		log.Printf("Warning: failed to read report artifact %s: %v", path, err)
		return nil
	}
	return data
}
