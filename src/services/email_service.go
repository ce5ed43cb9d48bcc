package services

import (
	"context"
	"fmt"
	"time"

	"github.com/khabaroff/flabef-storefront/src/templates"
	"github.com/mailgun/mailgun-go/v4"
)

// EmailService handles transactional email sending via Mailgun
type EmailService struct {
	mg        *mailgun.MailgunImpl
	fromEmail string
	fromName  string
}

// NewEmailService creates a new email service with Mailgun configuration;
// it returns nil when Mailgun is not configured
func NewEmailService(domain, apiKey, fromEmail, fromName string) *EmailService {
	if domain == "" || apiKey == "" {
		return nil
	}
	mg := mailgun.NewMailgun(domain, apiKey)
	mg.SetAPIBase(mailgun.APIBaseEU) // Use EU endpoint for GDPR compliance

	return newEmailService(mg, fromEmail, fromName)
}

func newEmailService(mg *mailgun.MailgunImpl, fromEmail, fromName string) *EmailService {
	return &EmailService{
		mg:        mg,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// renderRecoveryCode builds subject, text and HTML bodies for a recovery code email
func renderRecoveryCode(toName, code string, ttl time.Duration) (subject, text, html string, err error) {
	config, err := templates.LoadEmailConfig()
	if err != nil {
		return "", "", "", err
	}

	displayName := toName
	if displayName == "" {
		displayName = "there"
	}
	minutes := int(ttl.Minutes())

	data := templates.RecoveryCodeData{
		Name:          displayName,
		Code:          code,
		ExpiryMinutes: minutes,
		BrandName:     config.Branding.Name,
		Tagline:       config.Branding.Tagline,
		Website:       config.Branding.Website,
		Greeting:      fmt.Sprintf(config.RecoveryCode.Greeting, displayName),
		Intro:         config.RecoveryCode.Intro,
		ExpiryWarning: fmt.Sprintf(config.RecoveryCode.ExpiryWarning, minutes),
		SecurityNote:  config.RecoveryCode.SecurityNote,
		IgnoreText:    config.RecoveryCode.IgnoreText,
		PrimaryColor:  config.Design.PrimaryColor,
		TextColor:     config.Design.TextColor,
		MutedColor:    config.Design.MutedColor,
		WarningBg:     config.Design.WarningBg,
		WarningBorder: config.Design.WarningBorder,
		CodeBg:        config.Design.CodeBg,
		BorderColor:   config.Design.BorderColor,
	}

	html, err = templates.RenderRecoveryCodeHTML(data)
	if err != nil {
		return "", "", "", err
	}
	text, err = templates.RenderRecoveryCodeText(data)
	if err != nil {
		return "", "", "", err
	}
	return config.Subjects.RecoveryCode, text, html, nil
}

// SendRecoveryCode emails a password recovery code
func (s *EmailService) SendRecoveryCode(ctx context.Context, toEmail, toName, code string, ttl time.Duration) error {
	subject, textBody, htmlBody, err := renderRecoveryCode(toName, code, ttl)
	if err != nil {
		return fmt.Errorf("failed to render recovery email: %w", err)
	}

	message := s.mg.NewMessage(
		fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		subject,
		textBody,
		toEmail,
	)
	message.SetHtml(htmlBody)

	// Set timeout for sending
	ctxWithTimeout, cancel := context.WithTimeout(ctx, time.Second*30)
	defer cancel()

	_, _, err = s.mg.Send(ctxWithTimeout, message)
	if err != nil {
		return fmt.Errorf("failed to send recovery email to %s: %w", toEmail, err)
	}

	return nil
}
