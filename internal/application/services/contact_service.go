package services

import (
	"fmt"
	"strings"

	"github.com/AdAtelier/atelier-go/internal/infrastructure/email"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
)

// ContactService relays contact form submissions to the studio inbox.
type ContactService struct {
	emailSvc email.Service
	logger   *logging.ChanneledLogger
}

// NewContactService creates a new contact service.
func NewContactService(emailSvc email.Service, logger *logging.ChanneledLogger) *ContactService {
	return &ContactService{
		emailSvc: emailSvc,
		logger:   logger,
	}
}

// ContactRequest is one contact form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate checks the submission fields before sending.
func (r *ContactRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("a valid email is required")
	}
	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("message is required")
	}
	if len(r.Message) > 5000 {
		return fmt.Errorf("message is too long")
	}
	return nil
}

// ProcessContactRequest validates and forwards a submission.
func (s *ContactService) ProcessContactRequest(req *ContactRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if s.emailSvc == nil {
		return fmt.Errorf("email delivery is not configured")
	}

	if err := s.emailSvc.SendContactEmail(req.Name, req.Email, req.Message); err != nil {
		s.logger.LogError(logging.ChannelEmail, "send_contact", err, "", map[string]any{"from": req.Email})
		return fmt.Errorf("failed to deliver message")
	}

	s.logger.Email().Info("Contact form relayed", "from", req.Email)
	return nil
}
