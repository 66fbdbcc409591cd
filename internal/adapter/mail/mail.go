// Package mail delivers the sign-up confirmation email.
package mail

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/heartmarshall/realty-crm/internal/config"
)

const confirmSubject = "Confirm your RealEstate CRM account"

var confirmBody = template.Must(template.New("confirm").Parse(
	`<p>Hi {{.Name}},</p>
<p>Confirm your email address to finish creating your account:</p>
<p><a href="{{.Link}}">Confirm my account</a></p>
<p>If you did not sign up, ignore this email.</p>`))

type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendMailer sends mail through the Resend API.
type ResendMailer struct {
	log        *slog.Logger
	emails     emailSender
	from       string
	confirmURL string
}

func NewResendMailer(log *slog.Logger, cfg config.MailConfig) *ResendMailer {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &ResendMailer{
		log:        log.With("component", "mail"),
		emails:     client.Emails,
		from:       cfg.From,
		confirmURL: cfg.ConfirmURL,
	}
}

// SendConfirmation emails the confirmation link for token to the address.
func (m *ResendMailer) SendConfirmation(ctx context.Context, to, fullName, token string) error {
	html, err := renderConfirmation(fullName, ConfirmLink(m.confirmURL, token))
	if err != nil {
		return err
	}

	sent, err := m.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: confirmSubject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}

	m.log.InfoContext(ctx, "confirmation email sent", slog.String("message_id", sent.Id))
	return nil
}

// LogMailer writes the confirmation link to the log instead of sending it.
type LogMailer struct {
	log        *slog.Logger
	confirmURL string
}

func NewLogMailer(log *slog.Logger, cfg config.MailConfig) *LogMailer {
	return &LogMailer{log: log.With("component", "mail"), confirmURL: cfg.ConfirmURL}
}

func (m *LogMailer) SendConfirmation(ctx context.Context, to, _, token string) error {
	m.log.InfoContext(ctx, "confirmation email not sent, no provider configured",
		slog.String("to", to),
		slog.String("link", ConfirmLink(m.confirmURL, token)))
	return nil
}

// ConfirmLink appends token as the "token" query parameter of base.
func ConfirmLink(base, token string) string {
	u, err := url.Parse(base)
	if err != nil {
		sep := "?"
		if strings.Contains(base, "?") {
			sep = "&"
		}
		return base + sep + "token=" + url.QueryEscape(token)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}

func renderConfirmation(name, link string) (string, error) {
	if strings.TrimSpace(name) == "" {
		name = "there"
	}
	var b strings.Builder
	if err := confirmBody.Execute(&b, struct{ Name, Link string }{name, link}); err != nil {
		return "", fmt.Errorf("render confirmation email: %w", err)
	}
	return b.String(), nil
}
