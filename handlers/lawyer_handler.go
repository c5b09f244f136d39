package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/kleinjoris/electronic-paralegal-email-system/models"
	"github.com/kleinjoris/electronic-paralegal-email-system/repository"
	"github.com/kleinjoris/electronic-paralegal-email-system/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Search defaults applied when the request omits a preference.
const (
	defaultPracticeArea     = "criminal"
	defaultMaxDistanceMiles = 25
	defaultFindMaxResults   = 10
	defaultSendMaxResults   = 5
)

// LawyerHandler handles HTTP requests for lawyer search and report
// distribution
type LawyerHandler struct {
	matchService        *service.MatchService
	distributionService *service.DistributionService
	reportService       *service.ReportService
}

// NewLawyerHandler creates a new lawyer handler
func NewLawyerHandler(matchService *service.MatchService, distributionService *service.DistributionService, reportService *service.ReportService) *LawyerHandler {
	return &LawyerHandler{
		matchService:        matchService,
		distributionService: distributionService,
		reportService:       reportService,
	}
}

// FindLawyersRequest represents the request body for finding lawyers
type FindLawyersRequest struct {
	Location               *models.Coordinate `json:"location"`
	PracticeArea           string             `json:"practiceArea"`
	MaxDistance            float64            `json:"maxDistance"`
	MaxResults             int                `json:"maxResults"`
	IncludePublicDefenders *bool              `json:"includePublicDefenders"`
	SortBy                 string             `json:"sortBy"`
}

// FindLawyers handles POST /api/find-lawyers
func (h *LawyerHandler) FindLawyers(c *gin.Context) {
	var req FindLawyersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if req.Location == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing location data",
		})
		return
	}

	criteria := models.SearchCriteria{
		ClientLocation:         *req.Location,
		PracticeArea:           defaultPracticeArea,
		MaxDistanceMiles:       defaultMaxDistanceMiles,
		MaxResults:             defaultFindMaxResults,
		IncludePublicDefenders: true,
		SortBy:                 models.SortKey(req.SortBy),
	}
	if req.PracticeArea != "" {
		criteria.PracticeArea = req.PracticeArea
	}
	if req.MaxDistance > 0 {
		criteria.MaxDistanceMiles = req.MaxDistance
	}
	if req.MaxResults > 0 {
		criteria.MaxResults = req.MaxResults
	}
	if req.IncludePublicDefenders != nil {
		criteria.IncludePublicDefenders = *req.IncludePublicDefenders
	}

	result, err := h.matchService.MatchLawyers(c.Request.Context(), service.MatchLawyersRequest{
		Criteria: criteria,
	})
	if err != nil {
		log.Printf("Error finding lawyers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to find lawyers",
		})
		return
	}

	lawyers := result.Lawyers
	if lawyers == nil {
		lawyers = []models.MatchedLawyer{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"lawyers": lawyers,
		"total":   len(lawyers),
	})
}

// SendPreferences represents distribution search preferences
type SendPreferences struct {
	PracticeArea           string  `json:"practiceArea"`
	Distance               float64 `json:"distance"`
	Count                  int     `json:"count"`
	IncludePublicDefenders *bool   `json:"includePublicDefenders"`
}

// SendToLawyersRequest represents the request body for distributing a
// report
type SendToLawyersRequest struct {
	ReportID       string             `json:"reportId"`
	ClientLocation *models.Coordinate `json:"clientLocation"`
	Preferences    *SendPreferences   `json:"preferences"`
	ClientInfo     models.ClientInfo  `json:"clientInfo"`
}

// SendToLawyers handles POST /api/send-to-lawyers
func (h *LawyerHandler) SendToLawyers(c *gin.Context) {
	var req SendToLawyersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if req.ReportID == "" || req.ClientLocation == nil || req.Preferences == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required data",
		})
		return
	}

	reportID, err := uuid.Parse(req.ReportID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid report ID format",
		})
		return
	}

	reportResult, err := h.reportService.GetReport(c.Request.Context(), service.GetReportRequest{ID: reportID})
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Report not found",
			})
			return
		}
		log.Printf("Error resolving report %s: %v", reportID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to send report to lawyers",
		})
		return
	}

	criteria := models.SearchCriteria{
		ClientLocation:         *req.ClientLocation,
		PracticeArea:           defaultPracticeArea,
		MaxDistanceMiles:       defaultMaxDistanceMiles,
		MaxResults:             defaultSendMaxResults,
		IncludePublicDefenders: true,
	}
	if req.Preferences.PracticeArea != "" {
		criteria.PracticeArea = req.Preferences.PracticeArea
	}
	if req.Preferences.Distance > 0 {
		criteria.MaxDistanceMiles = req.Preferences.Distance
	}
	if req.Preferences.Count > 0 {
		criteria.MaxResults = req.Preferences.Count
	}
	if req.Preferences.IncludePublicDefenders != nil {
		criteria.IncludePublicDefenders = *req.Preferences.IncludePublicDefenders
	}

	matchResult, err := h.matchService.MatchLawyers(c.Request.Context(), service.MatchLawyersRequest{
		Criteria: criteria,
	})
	if err != nil {
		log.Printf("Error matching lawyers for report %s: %v", reportID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to send report to lawyers",
		})
		return
	}

	// Zero matches is a normal outcome, not an error
	if len(matchResult.Lawyers) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "No lawyers found matching your criteria",
		})
		return
	}

	distResult, err := h.distributionService.DistributeReport(c.Request.Context(), service.DistributeReportRequest{
		Report:     reportResult.Report,
		Lawyers:    matchResult.Lawyers,
		ClientInfo: req.ClientInfo,
	})
	if err != nil {
		log.Printf("Error distributing report %s: %v", reportID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to send report to lawyers",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"lawyersContacted": len(matchResult.Lawyers),
		"emailResults":     distResult.Results,
	})
}
