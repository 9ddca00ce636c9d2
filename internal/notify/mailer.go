package notify

import (
	"fmt"
	"strings"
	"studiobook/internal/events"
	"studiobook/pkg/config"
	"studiobook/pkg/logger"

	"gopkg.in/gomail.v2"
)

// Sender delivers one email message. Satisfied by gomail's Dialer.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer builds and sends the confirmation emails: one to the customer, one
// to the studio admin. Delivery failures are reported per recipient so a
// bounced admin copy never blocks the customer's.
type Mailer struct {
	sender     Sender
	fromEmail  string
	adminEmail string
	log        *logger.Logger
}

func NewMailer(cfg *config.Config) *Mailer {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &Mailer{
		sender:     dialer,
		fromEmail:  cfg.FromEmail,
		adminEmail: cfg.AdminEmail,
		log:        cfg.Log,
	}
}

// SendConfirmation sends both confirmation emails for one event. Each send is
// attempted independently; the returned error aggregates any failures.
func (m *Mailer) SendConfirmation(event *events.BookingConfirmed) error {
	var failures []string

	if err := m.sender.DialAndSend(m.customerMessage(event)); err != nil {
		m.log.Error("Failed to send customer confirmation email",
			"booking_id", event.BookingID,
			"to", event.Customer.Email,
			"error", err,
		)
		failures = append(failures, fmt.Sprintf("customer: %v", err))
	}

	if m.adminEmail != "" {
		if err := m.sender.DialAndSend(m.adminMessage(event)); err != nil {
			m.log.Error("Failed to send admin notification email",
				"booking_id", event.BookingID,
				"to", m.adminEmail,
				"error", err,
			)
			failures = append(failures, fmt.Sprintf("admin: %v", err))
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("confirmation email delivery failed: %s", strings.Join(failures, "; "))
	}
	return nil
}

func (m *Mailer) customerMessage(event *events.BookingConfirmed) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.fromEmail)
	msg.SetHeader("To", event.Customer.Email)
	msg.SetHeader("Subject", "Your booking is confirmed")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour booking for %s at %s is confirmed.\n\nAmount paid: %s\nPayment reference: %s\n\nSee you there!\n",
		event.Customer.Name,
		event.Date,
		eventTimeLabel(event),
		formatAmount(event.Amount, event.Currency),
		event.Reference,
	))
	return msg
}

func (m *Mailer) adminMessage(event *events.BookingConfirmed) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.fromEmail)
	msg.SetHeader("To", m.adminEmail)
	msg.SetHeader("Subject", fmt.Sprintf("New confirmed booking: %s %s", event.Date, eventTimeLabel(event)))
	msg.SetBody("text/plain", fmt.Sprintf(
		"A booking was just confirmed.\n\nDate: %s\nTime: %s\nType: %s\nCustomer: %s <%s> %s\nAmount: %s\nReference: %s\n",
		event.Date,
		eventTimeLabel(event),
		event.BookingType,
		event.Customer.Name,
		event.Customer.Email,
		event.Customer.Phone,
		formatAmount(event.Amount, event.Currency),
		event.Reference,
	))
	return msg
}

func eventTimeLabel(event *events.BookingConfirmed) string {
	if event.TimeSlot != "" {
		return event.TimeSlot
	}
	return event.CustomTime
}

// formatAmount renders a minor-unit amount as a major-unit string, e.g.
// 500000 NGN (kobo) as "NGN 5000.00".
func formatAmount(minor int64, currency string) string {
	return fmt.Sprintf("%s %d.%02d", currency, minor/100, minor%100)
}
