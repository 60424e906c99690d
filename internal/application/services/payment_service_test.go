package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/performance"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/persistence/billing"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/security"
	"github.com/AdAtelier/atelier-go/pkg/config"
)

type fakePaymentRepo struct {
	payments  map[string]*billing.Payment
	createErr error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*billing.Payment)}
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *billing.Payment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.payments[payment.PaymentID] = payment
	return nil
}

func (r *fakePaymentRepo) FindByPaymentID(_ context.Context, paymentID string) (*billing.Payment, error) {
	return r.payments[paymentID], nil
}

type fakeEmailService struct {
	accessCodeEmails []string
	contactEmails    []string
	sendErr          error
}

func (e *fakeEmailService) SendContactEmail(fromName, fromEmail, message string) error {
	if e.sendErr != nil {
		return e.sendErr
	}
	e.contactEmails = append(e.contactEmails, fromEmail)
	return nil
}

func (e *fakeEmailService) SendAccessCodeEmail(toEmail, accessCode string) error {
	if e.sendErr != nil {
		return e.sendErr
	}
	e.accessCodeEmails = append(e.accessCodeEmails, fmt.Sprintf("%s:%s", toEmail, accessCode))
	return nil
}

func signPayment(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func setupPaymentSecrets(t *testing.T) {
	t.Helper()
	prevRzp, prevJWT := config.RazorpayKeySecret, config.JWTSecret
	config.RazorpayKeySecret = "rzp_test_secret"
	config.JWTSecret = "jwt-test-secret"
	t.Cleanup(func() {
		config.RazorpayKeySecret = prevRzp
		config.JWTSecret = prevJWT
	})
}

func newTestPaymentService(t *testing.T, repo *fakePaymentRepo, emailSvc *fakeEmailService) *PaymentService {
	t.Helper()
	tracker := performance.NewTracker(performance.DefaultTrackerConfig())
	if emailSvc == nil {
		return NewPaymentService(repo, nil, testLogger(t), tracker)
	}
	return NewPaymentService(repo, emailSvc, testLogger(t), tracker)
}

func TestVerifyPaymentHappyPath(t *testing.T) {
	setupPaymentSecrets(t)
	repo := newFakePaymentRepo()
	emailSvc := &fakeEmailService{}
	svc := newTestPaymentService(t, repo, emailSvc)

	req := &VerifyRequest{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: signPayment("order_1", "pay_1", config.RazorpayKeySecret),
		Email:     "buyer@example.com",
	}

	result, err := svc.VerifyPayment(context.Background(), "sess-1", req)
	if err != nil {
		t.Fatalf("VerifyPayment() error = %v", err)
	}
	if !result.Verified {
		t.Fatalf("Verified = false, error = %q", result.Error)
	}
	if !strings.HasPrefix(result.AccessCode, "ATELIER-") {
		t.Errorf("AccessCode = %q, want ATELIER- prefix", result.AccessCode)
	}

	claims, err := security.ValidateAccessToken(result.Token, config.JWTSecret)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims["scope"] != "premium" {
		t.Errorf("token scope = %v, want premium", claims["scope"])
	}

	stored := repo.payments["pay_1"]
	if stored == nil {
		t.Fatal("payment was not persisted")
	}
	if stored.AccessCodeHash == result.AccessCode {
		t.Error("access code stored in plaintext")
	}
	if len(emailSvc.accessCodeEmails) != 1 {
		t.Errorf("access code emails sent = %d, want 1", len(emailSvc.accessCodeEmails))
	}
}

func TestVerifyPaymentRejectsBadSignature(t *testing.T) {
	setupPaymentSecrets(t)
	repo := newFakePaymentRepo()
	svc := newTestPaymentService(t, repo, nil)

	req := &VerifyRequest{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: signPayment("order_1", "pay_1", "some-other-secret"),
	}

	result, err := svc.VerifyPayment(context.Background(), "sess-1", req)
	if err != nil {
		t.Fatalf("VerifyPayment() error = %v", err)
	}
	if result.Verified {
		t.Fatal("forged signature was accepted")
	}
	if len(repo.payments) != 0 {
		t.Error("payment persisted despite failed verification")
	}
}

func TestVerifyPaymentRejectsMissingFields(t *testing.T) {
	setupPaymentSecrets(t)
	svc := newTestPaymentService(t, newFakePaymentRepo(), nil)

	result, err := svc.VerifyPayment(context.Background(), "sess-1", &VerifyRequest{OrderID: "order_1"})
	if err != nil {
		t.Fatalf("VerifyPayment() error = %v", err)
	}
	if result.Verified {
		t.Fatal("incomplete request was accepted")
	}
}

func TestVerifyPaymentRejectsReplay(t *testing.T) {
	setupPaymentSecrets(t)
	repo := newFakePaymentRepo()
	svc := newTestPaymentService(t, repo, nil)

	req := &VerifyRequest{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: signPayment("order_1", "pay_1", config.RazorpayKeySecret),
	}

	first, err := svc.VerifyPayment(context.Background(), "sess-1", req)
	if err != nil || !first.Verified {
		t.Fatalf("first verification failed: verified=%v err=%v", first.Verified, err)
	}

	second, err := svc.VerifyPayment(context.Background(), "sess-2", req)
	if err != nil {
		t.Fatalf("VerifyPayment() error = %v", err)
	}
	if second.Verified {
		t.Fatal("replayed payment ID was accepted")
	}
}

func TestVerifyPaymentToleratesEmailFailure(t *testing.T) {
	setupPaymentSecrets(t)
	repo := newFakePaymentRepo()
	emailSvc := &fakeEmailService{sendErr: errors.New("provider down")}
	svc := newTestPaymentService(t, repo, emailSvc)

	req := &VerifyRequest{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: signPayment("order_1", "pay_1", config.RazorpayKeySecret),
		Email:     "buyer@example.com",
	}

	result, err := svc.VerifyPayment(context.Background(), "sess-1", req)
	if err != nil {
		t.Fatalf("VerifyPayment() error = %v", err)
	}
	if !result.Verified {
		t.Fatal("email failure should not block verification")
	}
}

func TestRedeemAccessCode(t *testing.T) {
	setupPaymentSecrets(t)
	repo := newFakePaymentRepo()
	svc := newTestPaymentService(t, repo, nil)

	req := &VerifyRequest{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: signPayment("order_1", "pay_1", config.RazorpayKeySecret),
	}
	result, err := svc.VerifyPayment(context.Background(), "sess-1", req)
	if err != nil || !result.Verified {
		t.Fatalf("verification failed: verified=%v err=%v", result.Verified, err)
	}

	ok, err := svc.RedeemAccessCode(context.Background(), "pay_1", result.AccessCode)
	if err != nil {
		t.Fatalf("RedeemAccessCode() error = %v", err)
	}
	if !ok {
		t.Error("correct access code was rejected")
	}

	ok, err = svc.RedeemAccessCode(context.Background(), "pay_1", "ATELIER-WRONGCOD")
	if err != nil {
		t.Fatalf("RedeemAccessCode() error = %v", err)
	}
	if ok {
		t.Error("wrong access code was accepted")
	}

	ok, err = svc.RedeemAccessCode(context.Background(), "pay_unknown", result.AccessCode)
	if err != nil {
		t.Fatalf("RedeemAccessCode() error = %v", err)
	}
	if ok {
		t.Error("unknown payment ID was accepted")
	}
}
