package service

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/kleinjoris/electronic-paralegal-email-system/models"
)

// reportDocumentTemplate renders the case report artifact attached to
// attorney notifications.
var reportDocumentTemplate = template.Must(template.New("report").Parse(`<html>
  <head><title>Case Evaluation Report {{.ID}}</title></head>
  <body>
    <h1>Case Evaluation Report</h1>
    <p><strong>Report ID:</strong> {{.ID}}<br>
    <strong>Generated:</strong> {{.CreatedAt.Format "January 2, 2006 15:04 MST"}}<br>
    <strong>Score:</strong> {{.Score}} / 100</p>

    {{if .ClientInfo.Name}}<h2>Client</h2>
    <p>{{.ClientInfo.Name}}{{if .ClientInfo.City}}, {{.ClientInfo.City}}, {{.ClientInfo.State}}{{end}}</p>{{end}}

    <h2>Findings</h2>
    {{if .Issues}}<ol>
    {{range .Issues}}<li>
      <strong>{{.Title}}</strong> (severity: {{.Severity}})<br>
      {{.Description}}<br>
      <em>{{.Details}}</em>
    </li>
    {{end}}</ol>{{else}}<p>No procedural issues were identified.</p>{{end}}

    <h2>Recommendation</h2>
    <p>{{.Recommendation}}</p>

    <h2>Next Steps</h2>
    <ul>
    {{range .NextSteps}}<li>{{.}}</li>
    {{end}}</ul>
  </body>
</html>
`))

// renderReportDocument renders a report to the HTML artifact stored
// for later distribution
func renderReportDocument(report *models.Report) (string, error) {
	var b strings.Builder
	if err := reportDocumentTemplate.Execute(&b, report); err != nil {
		return "", fmt.Errorf("failed to execute report template: %w", err)
	}
	return b.String(), nil
}
