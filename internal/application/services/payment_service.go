package services

import (
	"context"
	"time"

	"github.com/AdAtelier/atelier-go/internal/infrastructure/email"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/performance"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/persistence/billing"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/security"
	"github.com/AdAtelier/atelier-go/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

// PaymentRepository is the persistence contract for verified payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *billing.Payment) error
	FindByPaymentID(ctx context.Context, paymentID string) (*billing.Payment, error)
}

// PaymentService verifies gateway payment signatures and issues premium
// access credentials.
type PaymentService struct {
	repo        PaymentRepository
	emailSvc    email.Service
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewPaymentService creates a new payment service. emailSvc may be nil when
// no email provider is configured; access codes are then only returned inline.
func NewPaymentService(repo PaymentRepository, emailSvc email.Service, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *PaymentService {
	return &PaymentService{
		repo:        repo,
		emailSvc:    emailSvc,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// VerifyRequest carries the gateway callback fields for verification.
type VerifyRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
	Email     string `json:"email,omitempty"`
}

// VerifyResult holds the outcome of payment verification.
type VerifyResult struct {
	Verified   bool   `json:"verified"`
	AccessCode string `json:"accessCode,omitempty"`
	Token      string `json:"token,omitempty"`
	Error      string `json:"error,omitempty"`
}

// VerifyPayment checks the HMAC signature over the order and payment IDs,
// then mints an access code and a premium JWT. Replayed payment IDs are
// rejected. The access code is stored bcrypt-hashed; the plaintext leaves
// the server only in the response and the optional email.
func (s *PaymentService) VerifyPayment(ctx context.Context, sessionID string, req *VerifyRequest) (*VerifyResult, error) {
	marker := s.perfTracker.StartOperation("verify_payment", sessionID)
	defer marker.Complete()

	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		marker.SetSuccess(false)
		return &VerifyResult{Verified: false, Error: "missing verification fields"}, nil
	}

	if !security.VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature, config.RazorpayKeySecret) {
		s.logger.Payments().Warn("Payment signature mismatch",
			"sessionId", sessionID, "orderId", req.OrderID, "paymentId", req.PaymentID)
		marker.SetSuccess(false)
		return &VerifyResult{Verified: false, Error: "signature verification failed"}, nil
	}

	existing, err := s.repo.FindByPaymentID(ctx, req.PaymentID)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}
	if existing != nil {
		s.logger.Payments().Warn("Replayed payment rejected",
			"sessionId", sessionID, "paymentId", req.PaymentID)
		marker.SetSuccess(false)
		return &VerifyResult{Verified: false, Error: "payment already processed"}, nil
	}

	accessCode, err := security.GenerateAccessCode()
	if err != nil {
		marker.SetError(err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(accessCode), bcrypt.DefaultCost)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}

	payment := &billing.Payment{
		ID:             security.GenerateULID(),
		SessionID:      sessionID,
		OrderID:        req.OrderID,
		PaymentID:      req.PaymentID,
		AccessCodeHash: string(hash),
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		marker.SetError(err)
		return nil, err
	}

	token, err := security.GenerateAccessToken(sessionID, req.PaymentID, config.JWTSecret)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}

	if s.emailSvc != nil && req.Email != "" {
		if err := s.emailSvc.SendAccessCodeEmail(req.Email, accessCode); err != nil {
			s.logger.LogError(logging.ChannelEmail, "send_access_code", err, sessionID, nil)
		}
	}

	s.logger.Payments().Info("Payment verified",
		"sessionId", sessionID, "orderId", req.OrderID, "paymentId", req.PaymentID)

	marker.SetSuccess(true)
	return &VerifyResult{
		Verified:   true,
		AccessCode: accessCode,
		Token:      token,
	}, nil
}

// RedeemAccessCode checks a presented code against the stored hash for a
// payment, for restoring premium access on a new device.
func (s *PaymentService) RedeemAccessCode(ctx context.Context, paymentID, code string) (bool, error) {
	payment, err := s.repo.FindByPaymentID(ctx, paymentID)
	if err != nil {
		return false, err
	}
	if payment == nil {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(payment.AccessCodeHash), []byte(code)) == nil, nil
}
