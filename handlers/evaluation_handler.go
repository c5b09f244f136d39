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

// EvaluationHandler handles HTTP requests for case evaluations
type EvaluationHandler struct {
	reportService *service.ReportService
}

// NewEvaluationHandler creates a new evaluation handler
func NewEvaluationHandler(reportService *service.ReportService) *EvaluationHandler {
	return &EvaluationHandler{
		reportService: reportService,
	}
}

// SubmitEvaluation handles POST /api/submit-evaluation
func (h *EvaluationHandler) SubmitEvaluation(c *gin.Context) {
	var answers models.EvaluationAnswers
	if err := c.ShouldBindJSON(&answers); err != nil || len(answers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No data provided",
		})
		return
	}

	result, err := h.reportService.GenerateReport(c.Request.Context(), service.GenerateReportRequest{
		Answers: answers,
	})
	if err != nil {
		log.Printf("Error processing evaluation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to process evaluation",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"reportId": result.Report.ID,
		"message":  "Evaluation submitted successfully",
	})
}

// GetReport handles GET /api/reports/:id
func (h *EvaluationHandler) GetReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid report ID format",
		})
		return
	}

	result, err := h.reportService.GetReport(c.Request.Context(), service.GetReportRequest{ID: id})
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Report not found",
			})
			return
		}
		log.Printf("Error retrieving report %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve report",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"report":  result.Report,
	})
}
