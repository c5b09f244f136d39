package service

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/kleinjoris/electronic-paralegal-email-system/models"

	"github.com/google/uuid"
)

// notificationTemplate is the body of the email sent to each matched
// attorney.
var notificationTemplate = template.Must(template.New("notification").Parse(`<html>
  <body>
    <h2>Potential Client Seeking Legal Representation</h2>
    <p>Dear {{.LawyerName}},</p>

    <p>A potential client has used our Electronic Paralegal system to evaluate their criminal case
    and has expressed interest in legal representation. They are located approximately
    {{.Distance}} from your office.</p>

    <h3>Client Information:</h3>
    <ul>
      <li><strong>Name:</strong> {{.Client.Name}}</li>
      <li><strong>Contact:</strong> {{.Client.Phone}} / {{.Client.Email}}</li>
      <li><strong>Location:</strong> {{.Client.City}}, {{.Client.State}}</li>
      <li><strong>Case Type:</strong> {{.CaseType}}</li>
    </ul>

    <p>The system has identified potential procedural due process issues in their case.
    A detailed report is attached for your review.</p>

    <p>If you are interested in representing this client, please contact them directly
    using the information provided above.</p>

    <p>Best regards,<br>
    Electronic Paralegal System</p>

    <hr>
    <p style="font-size: 0.8em; color: #666;">
      This email was sent because the client requested attorney referrals through our system.
      If you wish to opt out of future referrals, please visit
      https://electronicparalegal.com/opt-out?id={{.LawyerID}}&amp;token={{.OptOutToken}}.
    </p>
  </body>
</html>
`))

type notificationData struct {
	LawyerName  string
	LawyerID    string
	Distance    string
	Client      models.ClientInfo
	CaseType    string
	OptOutToken string
}

// buildNotificationSubject renders the email subject line
func buildNotificationSubject(clientInfo models.ClientInfo) string {
	caseType := clientInfo.CaseType
	if caseType == "" {
		caseType = "Criminal Defense"
	}
	return fmt.Sprintf("Potential Client Seeking %s Representation", caseType)
}

// buildNotificationBody renders the email body for one attorney
func buildNotificationBody(lawyer models.MatchedLawyer, clientInfo models.ClientInfo) (string, error) {
	distance := "your area"
	if lawyer.DistanceMiles > 0 {
		distance = fmt.Sprintf("%.1f miles", lawyer.DistanceMiles)
	}

	caseType := clientInfo.CaseType
	if caseType == "" {
		caseType = "Criminal Defense"
	}

	data := notificationData{
		LawyerName:  lawyer.Name,
		LawyerID:    lawyer.ID,
		Distance:    distance,
		Client:      clientInfo,
		CaseType:    caseType,
		OptOutToken: uuid.NewString(),
	}

	var b strings.Builder
	if err := notificationTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to execute notification template: %w", err)
	}
	return b.String(), nil
}

// attachmentFilename names the report attachment after the client
func attachmentFilename(clientInfo models.ClientInfo) string {
	name := clientInfo.Name
	if name == "" {
		name = "client"
	}
	return strings.ReplaceAll(name, " ", "_") + "_case_report.html"
}
