package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/kleinjoris/electronic-paralegal-email-system/mailer"
	"github.com/kleinjoris/electronic-paralegal-email-system/repository"
	"github.com/kleinjoris/electronic-paralegal-email-system/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMailer struct {
	mu      sync.Mutex
	sent    int
	failFor map[string]bool
}

func (m *stubMailer) Send(ctx context.Context, msg mailer.Message) (string, error) {
	m.mu.Lock()
	m.sent++
	m.mu.Unlock()
	if m.failFor[msg.To] {
		return "", errors.New("smtp: connection refused")
	}
	return fmt.Sprintf("%s@test.local", uuid.NewString()), nil
}

func newTestRouter(m mailer.Mailer) (*gin.Engine, *service.ReportService) {
	gin.SetMode(gin.TestMode)

	reportService := service.NewReportService(
		service.WithReportStore(repository.NewMemoryReportStore()),
	)
	matchService := service.NewMatchService(
		service.WithLawyerDirectory(repository.NewMemoryLawyerDirectory(repository.SeedLawyers())),
	)
	distributionService := service.NewDistributionService(
		service.WithMailer(m),
	)

	evaluationHandler := NewEvaluationHandler(reportService)
	lawyerHandler := NewLawyerHandler(matchService, distributionService, reportService)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/submit-evaluation", evaluationHandler.SubmitEvaluation)
	api.GET("/reports/:id", evaluationHandler.GetReport)
	api.POST("/find-lawyers", lawyerHandler.FindLawyers)
	api.POST("/send-to-lawyers", lawyerHandler.SendToLawyers)
	return r, reportService
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var payload map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	}
	return w, payload
}

func TestSubmitEvaluation_EmptyBody(t *testing.T) {
	r, _ := newTestRouter(&stubMailer{})

	w, payload := doJSON(t, r, http.MethodPost, "/api/submit-evaluation", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No data provided", payload["error"])

	w, payload = doJSON(t, r, http.MethodPost, "/api/submit-evaluation", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No data provided", payload["error"])
}

func TestSubmitEvaluation_ReturnsReportID(t *testing.T) {
	r, reportService := newTestRouter(&stubMailer{})

	w, payload := doJSON(t, r, http.MethodPost, "/api/submit-evaluation", map[string]interface{}{
		"miranda_rights": "no",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "Evaluation submitted successfully", payload["message"])

	reportID, err := uuid.Parse(payload["reportId"].(string))
	require.NoError(t, err)

	result, err := reportService.GetReport(context.Background(), service.GetReportRequest{ID: reportID})
	require.NoError(t, err)
	assert.Equal(t, 60, result.Report.Score)
}

func TestGetReport_NotFound(t *testing.T) {
	r, _ := newTestRouter(&stubMailer{})

	w, payload := doJSON(t, r, http.MethodGet, "/api/reports/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Report not found", payload["error"])

	w, _ = doJSON(t, r, http.MethodGet, "/api/reports/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFindLawyers_MissingLocation(t *testing.T) {
	r, _ := newTestRouter(&stubMailer{})

	w, payload := doJSON(t, r, http.MethodPost, "/api/find-lawyers", map[string]interface{}{
		"practiceArea": "criminal",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing location data", payload["error"])
}

func TestFindLawyers_DefaultsAndResults(t *testing.T) {
	r, _ := newTestRouter(&stubMailer{})

	w, payload := doJSON(t, r, http.MethodPost, "/api/find-lawyers", map[string]interface{}{
		"location": map[string]float64{"latitude": 40.7128, "longitude": -74.006},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, payload["success"])

	lawyers := payload["lawyers"].([]interface{})
	assert.Equal(t, float64(len(lawyers)), payload["total"])
	require.NotEmpty(t, lawyers)

	// Default search includes public defenders within 25 miles
	first := lawyers[0].(map[string]interface{})
	assert.Equal(t, "1", first["id"])
	assert.NotNil(t, first["distance"])
}

func TestFindLawyers_NoMatchesIsEmptyList(t *testing.T) {
	r, _ := newTestRouter(&stubMailer{})

	w, payload := doJSON(t, r, http.MethodPost, "/api/find-lawyers", map[string]interface{}{
		"location":     map[string]float64{"latitude": 34.0522, "longitude": -118.2437},
		"practiceArea": "criminal",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, float64(0), payload["total"])
	assert.Empty(t, payload["lawyers"])
}

func submitEvaluation(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, payload := doJSON(t, r, http.MethodPost, "/api/submit-evaluation", map[string]interface{}{
		"miranda_rights": "no",
		"contact": map[string]interface{}{
			"name": "Alex Turner", "city": "New York", "state": "NY",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	return payload["reportId"].(string)
}

func TestSendToLawyers_MissingFields(t *testing.T) {
	r, _ := newTestRouter(&stubMailer{})

	cases := []map[string]interface{}{
		{},
		{"reportId": uuid.NewString()},
		{"reportId": uuid.NewString(), "clientLocation": map[string]float64{"latitude": 40.7, "longitude": -74.0}},
	}
	for _, body := range cases {
		w, payload := doJSON(t, r, http.MethodPost, "/api/send-to-lawyers", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing required data", payload["error"])
	}
}

func TestSendToLawyers_UnknownReport(t *testing.T) {
	r, _ := newTestRouter(&stubMailer{})

	w, payload := doJSON(t, r, http.MethodPost, "/api/send-to-lawyers", map[string]interface{}{
		"reportId":       uuid.NewString(),
		"clientLocation": map[string]float64{"latitude": 40.7128, "longitude": -74.006},
		"preferences":    map[string]interface{}{},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Report not found", payload["error"])
}

func TestSendToLawyers_NoMatches(t *testing.T) {
	stub := &stubMailer{}
	r, _ := newTestRouter(stub)
	reportID := submitEvaluation(t, r)

	w, payload := doJSON(t, r, http.MethodPost, "/api/send-to-lawyers", map[string]interface{}{
		"reportId":       reportID,
		"clientLocation": map[string]float64{"latitude": 34.0522, "longitude": -118.2437},
		"preferences":    map[string]interface{}{"distance": 10},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "No lawyers found matching your criteria", payload["message"])
	assert.Zero(t, stub.sent, "no-match outcome must not touch the transport")
}

func TestSendToLawyers_DistributesWithPartialFailures(t *testing.T) {
	stub := &stubMailer{failFor: map[string]bool{
		"john.doe@legalpractice.com": true,
	}}
	r, _ := newTestRouter(stub)
	reportID := submitEvaluation(t, r)

	w, payload := doJSON(t, r, http.MethodPost, "/api/send-to-lawyers", map[string]interface{}{
		"reportId":       reportID,
		"clientLocation": map[string]float64{"latitude": 40.7128, "longitude": -74.006},
		"preferences": map[string]interface{}{
			"practiceArea": "criminal",
			"distance":     25,
			"count":        5,
		},
		"clientInfo": map[string]interface{}{
			"name": "Alex Turner", "email": "alex@example.com",
			"phone": "555-000-1111", "city": "New York", "state": "NY",
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, payload["success"], "aggregate success is lenient about per-recipient failures")

	results := payload["emailResults"].([]interface{})
	assert.Equal(t, float64(len(results)), payload["lawyersContacted"])
	require.NotEmpty(t, results)

	var failed int
	for _, raw := range results {
		res := raw.(map[string]interface{})
		if res["success"] == false {
			failed++
			assert.Equal(t, "john.doe@legalpractice.com", res["lawyerEmail"])
			assert.NotEmpty(t, res["error"])
			assert.Nil(t, res["messageId"])
		} else {
			assert.NotEmpty(t, res["messageId"])
		}
	}
	assert.Equal(t, 1, failed)
}
