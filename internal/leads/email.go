package leads

import (
	"fmt"
	"html/template"
	"strings"
)

// notificationTemplate is the internal notification sent to the business
// inbox. Every user-supplied value goes through html/template's contextual
// escaping; the optional rows are rendered only when the field is non-empty,
// never as blank placeholders.
const notificationTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, Helvetica, sans-serif; color: #222;">
  <h2 style="color: #1f3d5c;">New Quote Request</h2>
  <table cellpadding="6" cellspacing="0" border="0" style="border-collapse: collapse;">
    <tr><td style="border-bottom: 1px solid #ddd;"><strong>Name</strong></td><td style="border-bottom: 1px solid #ddd;">{{.Name}}</td></tr>
    <tr><td style="border-bottom: 1px solid #ddd;"><strong>Email</strong></td><td style="border-bottom: 1px solid #ddd;">{{.Email}}</td></tr>
    <tr><td style="border-bottom: 1px solid #ddd;"><strong>Phone</strong></td><td style="border-bottom: 1px solid #ddd;">{{.Phone}}</td></tr>
    <tr><td style="border-bottom: 1px solid #ddd;"><strong>Postcode</strong></td><td style="border-bottom: 1px solid #ddd;">{{.Postcode}}</td></tr>
    <tr><td style="border-bottom: 1px solid #ddd;"><strong>Property Type</strong></td><td style="border-bottom: 1px solid #ddd;">{{.PropertyType}}</td></tr>
{{- if .Rooms}}
    <tr><td style="border-bottom: 1px solid #ddd;"><strong>Rooms/Areas</strong></td><td style="border-bottom: 1px solid #ddd;">{{.Rooms}}</td></tr>
{{- end}}
{{- if .PreferredDate}}
    <tr><td style="border-bottom: 1px solid #ddd;"><strong>Preferred Start Date</strong></td><td style="border-bottom: 1px solid #ddd;">{{.PreferredDate}}</td></tr>
{{- end}}
  </table>
{{- if .MessageHTML}}
  <h3 style="color: #1f3d5c;">Additional Details</h3>
  <p>{{.MessageHTML}}</p>
{{- end}}
  <p style="color: #777; font-size: 12px;">Reply to this email to respond to the customer directly.</p>
</body>
</html>`

var notificationTmpl = template.Must(template.New("quote-notification").Parse(notificationTemplate))

type notificationData struct {
	QuoteRequest
	MessageHTML template.HTML
}

// composeNotification builds the subject and HTML body for a quote request.
func composeNotification(req *QuoteRequest) (subject, html string, err error) {
	data := notificationData{
		QuoteRequest: *req,
		MessageHTML:  withLineBreaks(req.Message),
	}

	var buf strings.Builder
	if err := notificationTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render notification: %w", err)
	}

	return fmt.Sprintf("New Quote Request from %s", req.Name), buf.String(), nil
}

// withLineBreaks escapes the free-text message and then converts its
// newlines to <br> for HTML display. Escape first: the breaks we insert are
// the only markup allowed through.
func withLineBreaks(s string) template.HTML {
	if s == "" {
		return ""
	}
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
