// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"

	"github.com/AdAtelier/atelier-go/internal/infrastructure/email/templates"
	"github.com/AdAtelier/atelier-go/pkg/config"
	"github.com/resendlabs/resend-go"
)

// Service defines the interface for sending emails, allowing for mock implementations in tests.
type Service interface {
	SendContactEmail(fromName, fromEmail, message string) error
	SendAccessCodeEmail(toEmail, accessCode string) error
}

// ResendClient is the concrete implementation of the email Service using the Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	fromName  string
	inbox     string
}

// NewService creates a new email service client, returning the Service interface.
func NewService() (Service, error) {
	if config.ResendAPIKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	return &ResendClient{
		client:    resend.NewClient(config.ResendAPIKey),
		fromEmail: config.EmailFrom,
		fromName:  config.EmailFromName,
		inbox:     config.ContactInbox,
	}, nil
}

// SendContactEmail forwards a contact form submission to the studio inbox.
func (c *ResendClient) SendContactEmail(fromName, fromEmail, message string) error {
	content := templates.GetHeading("New contact form submission") +
		templates.GetParagraph(fmt.Sprintf("From: %s <%s>", fromName, fromEmail)) +
		templates.GetQuoteBlock(message)

	htmlContent := templates.GetEmailLayout(templates.EmailLayoutProps{
		Preheader: fmt.Sprintf("New message from %s", fromName),
		Content:   content,
	})

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{c.inbox},
		ReplyTo: fromEmail,
		Subject: fmt.Sprintf("Contact form: %s", fromName),
		Html:    htmlContent,
	}

	_, err := c.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send contact email via Resend: %w", err)
	}

	return nil
}

// SendAccessCodeEmail delivers the premium access code after a verified payment.
func (c *ResendClient) SendAccessCodeEmail(toEmail, accessCode string) error {
	content := templates.GetHeading("Your premium access code") +
		templates.GetParagraph("Thanks for upgrading! Your access code is below. Keep it somewhere safe.") +
		templates.GetCodeBlock(accessCode) +
		templates.GetParagraph("Enter this code on the site to unlock premium caption generation.")

	htmlContent := templates.GetEmailLayout(templates.EmailLayoutProps{
		Preheader: "Your Ad Atelier AI premium access code",
		Content:   content,
	})

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{toEmail},
		Subject: "Your Ad Atelier AI access code",
		Html:    htmlContent,
	}

	_, err := c.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send access code email via Resend: %w", err)
	}

	return nil
}
