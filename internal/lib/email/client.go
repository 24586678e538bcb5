// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the email provider and renders
// HTML bodies from templates embedded in the binary.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/deppfellow/persons-api/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templatesFS embed.FS

// DefaultFrom is used when integration.email_from is not configured.
const DefaultFrom = "onboarding@resend.dev"

// Sender delivers a rendered email. resend.EmailsSvc satisfies it.
type Sender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Client wraps the Resend client and a logger.
//
// A Client without sender (no API key configured) renders templates but
// only logs instead of sending.
type Client struct {
	sender Sender
	from   string
	logger *zerolog.Logger
}

// NewClient creates an email Client from config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	from := cfg.Integration.EmailFrom
	if from == "" {
		from = DefaultFrom
	}

	var sender Sender
	if cfg.Integration.ResendAPIKey != "" {
		sender = resend.NewClient(cfg.Integration.ResendAPIKey).Emails
	}

	return NewClientWithSender(sender, from, logger)
}

// NewClientWithSender builds a Client around an explicit Sender.
func NewClientWithSender(sender Sender, from string, logger *zerolog.Logger) *Client {
	return &Client{
		sender: sender,
		from:   from,
		logger: logger,
	}
}

// Render executes the named template with data.
func Render(templateName Template, data map[string]string) (string, error) {
	tmpl, err := template.ParseFS(templatesFS, fmt.Sprintf("templates/%s.html", templateName))
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse email template %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}

	return body.String(), nil
}

// SendEmail sends an email with HTML rendered from a template.
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	html, err := Render(templateName, data)
	if err != nil {
		return err
	}

	if c.sender == nil {
		c.logger.Debug().
			Str("to", to).
			Str("template", string(templateName)).
			Msg("email delivery disabled, skipping send")
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", "Persons API", c.from),
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	if _, err := c.sender.Send(params); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	return nil
}
