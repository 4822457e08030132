package templates

import (
	"context"
	"io"
	"text/template"

	"github.com/a-h/templ"
)

// ContactNotificationParams holds the values shown in a contact notification.
type ContactNotificationParams struct {
	SiteName string
	Name     string
	Email    string
	Message  string
}

// Values are inserted verbatim. The message keeps its line breaks through
// white-space: pre-wrap.
var contactNotificationTmpl = template.Must(template.New("contact_notification").Parse(`
<div style="font-family: sans-serif; max-width: 600px; padding: 20px; border: 1px solid #eaeaea; border-radius: 10px;">
    <h2 style="color: #111111; margin-bottom: 20px;">New Message from {{.SiteName}}</h2>
    <p><strong>Sender:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <hr style="border: none; border-top: 1px solid #eaeaea; margin: 20px 0;" />
    <p style="color: #333333; line-height: 1.6; white-space: pre-wrap;">{{.Message}}</p>
</div>
`))

// ContactNotification is the body of the email the site owner receives for
// each contact form submission.
func ContactNotification(p ContactNotificationParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return contactNotificationTmpl.Execute(w, p)
	})
}
