package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/divgaze/api/internal/api/dto/v1/contact"
	"github.com/divgaze/api/internal/config"
	"github.com/divgaze/api/internal/logging"
	"github.com/divgaze/api/internal/mail"
)

func TestMain(m *testing.M) {
	logging.InitLogger(&logging.LogConfig{
		Level: "info",
		File:  filepath.Join(os.TempDir(), "divgaze-service-test.log"),
	})
	os.Exit(m.Run())
}

// fakeSender records sent messages and can fail from a given send index
type fakeSender struct {
	sent      []mail.Message
	failIndex int // fail the nth send (0-based); -1 never fails
}

func newFakeSender() *fakeSender {
	return &fakeSender{failIndex: -1}
}

func (f *fakeSender) Send(ctx context.Context, msg mail.Message) error {
	if f.failIndex >= 0 && len(f.sent) == f.failIndex {
		return errors.New("provider unavailable")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		CompanyEmail:    "divgaze@gmail.com",
		NotifyFrom:      "Divgaze Website <contact@divgaze.com>",
		ConfirmFrom:     "Divgaze Team <contact@divgaze.com>",
		ContactTimezone: "Asia/Colombo",
	}
}

func testSubmission() contact.SanitizedSubmission {
	return contact.SanitizedSubmission{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "+1 (555) 123-4567",
		Service: "Web Development",
		Message: "I need a new website for my business.",
	}
}

func TestDispatchSendsBothEmails(t *testing.T) {
	sender := newFakeSender()
	svc := NewContactService(sender, testConfig())
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	}

	if err := svc.Dispatch(context.Background(), testSubmission()); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	if len(sender.sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(sender.sent))
	}

	notification := sender.sent[0]
	if notification.To != "divgaze@gmail.com" {
		t.Errorf("notification to = %q, want operator inbox", notification.To)
	}
	if notification.Subject != "New Inquiry - Web Development" {
		t.Errorf("notification subject = %q", notification.Subject)
	}
	for _, field := range []string{"Jane Doe", "jane@example.com", "+1 (555) 123-4567", "I need a new website"} {
		if !strings.Contains(notification.HTML, field) {
			t.Errorf("notification body missing %q", field)
		}
	}
	// Receipt timestamp rendered in Asia/Colombo (UTC+5:30)
	if !strings.Contains(notification.HTML, "Jun 1, 2025, 3:00 PM") {
		t.Errorf("notification body missing receipt timestamp, got:\n%s", notification.HTML)
	}

	confirmation := sender.sent[1]
	if confirmation.To != "jane@example.com" {
		t.Errorf("confirmation to = %q, want visitor email", confirmation.To)
	}
	if confirmation.Subject != "We received your message - Divgaze" {
		t.Errorf("confirmation subject = %q", confirmation.Subject)
	}
	if !strings.Contains(confirmation.HTML, "24 hours") {
		t.Error("confirmation body missing SLA promise")
	}
	if !strings.Contains(confirmation.HTML, "Web Development") {
		t.Error("confirmation body missing service")
	}
}

func TestDispatchOperatorFailureShortCircuits(t *testing.T) {
	sender := newFakeSender()
	sender.failIndex = 0
	svc := NewContactService(sender, testConfig())

	err := svc.Dispatch(context.Background(), testSubmission())
	if err == nil {
		t.Fatal("Dispatch() should fail when the operator send fails")
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent %d emails after operator failure, want 0", len(sender.sent))
	}
}

func TestDispatchConfirmationFailureReportsError(t *testing.T) {
	sender := newFakeSender()
	sender.failIndex = 1
	svc := NewContactService(sender, testConfig())

	err := svc.Dispatch(context.Background(), testSubmission())
	if err == nil {
		t.Fatal("Dispatch() should fail when the confirmation send fails")
	}
	// The operator email already went out; the overall call still fails
	if len(sender.sent) != 1 {
		t.Errorf("sent %d emails, want 1 (operator notification)", len(sender.sent))
	}
}
