package email

import (
	"fmt"
	"html/template"
	"strings"
)

var passwordResetTemplate = template.Must(template.New("password_reset").Parse(`
<html>
<body style="font-family: sans-serif; color: #333;">
	<h2>Password Reset</h2>
	<p>Hello{{if .Name}} {{.Name}}{{end}},</p>
	<p>We received a request to reset the password for your account.
	Use the link below to choose a new password. The link expires in {{.ExpiryMinutes}} minutes.</p>
	<p><a href="{{.ResetURL}}">Reset your password</a></p>
	<p>If you did not request this, you can safely ignore this message.</p>
</body>
</html>`))

// PasswordResetMessage renders the password reset email for a recipient.
func PasswordResetMessage(to, name, resetURL string, expiryMinutes int) (*Message, error) {
	var buf strings.Builder
	data := map[string]interface{}{
		"Name":          name,
		"ResetURL":      resetURL,
		"ExpiryMinutes": expiryMinutes,
	}
	if err := passwordResetTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render password reset template: %w", err)
	}

	return &Message{
		To:      to,
		Subject: "Reset your password",
		HTML:    buf.String(),
	}, nil
}
