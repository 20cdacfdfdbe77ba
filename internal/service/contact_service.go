package service

import (
	"context"
	"fmt"
	"time"

	"github.com/divgaze/api/internal/api/dto/v1/contact"
	"github.com/divgaze/api/internal/config"
	"github.com/divgaze/api/internal/logging"
	"github.com/divgaze/api/internal/mail"
)

// timestampLayout renders the receipt time the way the website displays
// dates: medium date, short time (e.g. "Jan 2, 2006, 3:04 PM").
const timestampLayout = "Jan 2, 2006, 3:04 PM"

// ContactService dispatches an accepted inquiry as two emails: a
// notification to the company inbox and a confirmation to the visitor.
type ContactService struct {
	mailer mail.Sender
	cfg    *config.Config
	loc    *time.Location
	now    func() time.Time
}

// NewContactService creates a new contact service
func NewContactService(mailer mail.Sender, cfg *config.Config) *ContactService {
	loc, err := time.LoadLocation(cfg.ContactTimezone)
	if err != nil {
		logging.GetGlobalLogger().Warn("Unknown timezone %q, falling back to UTC", cfg.ContactTimezone)
		loc = time.UTC
	}

	return &ContactService{
		mailer: mailer,
		cfg:    cfg,
		loc:    loc,
		now:    time.Now,
	}
}

// Dispatch sends the operator notification and then the visitor
// confirmation. Both sends must succeed; the first failure is returned and
// the overall call reports failure even if the operator email already went
// out. Each send's outcome is logged individually so that asymmetry is
// visible server-side.
func (s *ContactService) Dispatch(ctx context.Context, sub contact.SanitizedSubmission) error {
	logger := logging.GetGlobalLogger()
	timestamp := s.now().In(s.loc).Format(timestampLayout)

	notification := mail.Message{
		From:    s.cfg.NotifyFrom,
		To:      s.cfg.CompanyEmail,
		Subject: fmt.Sprintf("New Inquiry - %s", sub.Service),
		HTML:    operatorNotificationHTML(sub, timestamp),
	}
	if err := s.mailer.Send(ctx, notification); err != nil {
		return logging.WrapError(err, "operator notification failed")
	}
	logger.Info("Operator notification sent for inquiry (%s)", sub.Service)

	confirmation := mail.Message{
		From:    s.cfg.ConfirmFrom,
		To:      sub.Email,
		Subject: "We received your message - Divgaze",
		HTML:    visitorConfirmationHTML(sub),
	}
	if err := s.mailer.Send(ctx, confirmation); err != nil {
		return logging.WrapError(err, "visitor confirmation failed")
	}
	logger.Info("Visitor confirmation sent to %s", sub.Email)

	return nil
}

// operatorNotificationHTML builds the company-facing email body. All field
// values are already sanitized; they are embedded as-is.
func operatorNotificationHTML(sub contact.SanitizedSubmission, timestamp string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: -apple-system, 'Segoe UI', Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #000; color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
    .section { background: white; padding: 20px; margin: 15px 0; border-radius: 8px; border-left: 4px solid #000; }
    .label { font-weight: 600; color: #666; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 0;">New Client Inquiry</h1>
      <p style="margin: 10px 0 0 0; opacity: 0.9;">From Website Contact Form</p>
    </div>
    <div class="content">
      <div class="section">
        <h3 style="margin-top: 0;">Client Details</h3>
        <p><span class="label">Name:</span> %s</p>
        <p><span class="label">Email:</span> <a href="mailto:%s">%s</a></p>
        <p><span class="label">Phone:</span> <a href="tel:%s">%s</a></p>
      </div>
      <div class="section">
        <h3 style="margin-top: 0;">Inquiry Details</h3>
        <p><span class="label">Service:</span> <strong>%s</strong></p>
        <p><span class="label">Message:</span></p>
        <p style="background: #f0f0f0; padding: 15px; border-radius: 6px; font-style: italic;">"%s"</p>
      </div>
      <div class="section">
        <p><span class="label">Received:</span> %s</p>
        <p><span class="label">Source:</span> Website Contact Form</p>
      </div>
      <div style="text-align: center; margin-top: 20px;">
        <a href="mailto:%s?subject=Re: Your Divgaze Inquiry"
           style="display: inline-block; padding: 12px 24px; background: #000; color: white; text-decoration: none; border-radius: 6px;">
          Reply to %s
        </a>
      </div>
    </div>
  </div>
</body>
</html>`,
		sub.Name,
		sub.Email, sub.Email,
		sub.Phone, sub.Phone,
		sub.Service,
		sub.Message,
		timestamp,
		sub.Email,
		sub.Name,
	)
}

// visitorConfirmationHTML builds the confirmation echoed back to the
// visitor, promising a reply within 24 hours.
func visitorConfirmationHTML(sub contact.SanitizedSubmission) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: -apple-system, 'Segoe UI', Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #000; color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 10px 0 0 0;">Thank You!</h1>
      <p style="margin: 10px 0 0 0; opacity: 0.9;">We've received your message</p>
    </div>
    <div class="content">
      <p>Hi %s,</p>
      <p>Thank you for reaching out to Divgaze! We've received your inquiry about <strong>%s</strong>.</p>
      <p>Our team will review your message and get back to you within <strong>24 hours</strong>.</p>
      <div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h3 style="margin-top: 0;">Your Message:</h3>
        <p><strong>Service:</strong> %s</p>
        <p style="font-style: italic; color: #666;">"%s"</p>
      </div>
      <p>In the meantime, feel free to visit our website: <a href="https://divgaze.com">divgaze.com</a></p>
      <p style="margin-top: 30px;">
        Best regards,<br>
        <strong>Divgaze Team</strong>
      </p>
    </div>
  </div>
</body>
</html>`,
		sub.Name,
		sub.Service,
		sub.Service,
		sub.Message,
	)
}
