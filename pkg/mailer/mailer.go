package mailer

import (
	"fmt"

	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// ReservationDetails is the confirmation payload. All fields are
// pre-formatted strings except Price so templates stay dumb.
type ReservationDetails struct {
	PlanName        string
	HotelName       string
	ReservationDate string
	CheckInDate     string
	CheckInTime     string
	CheckOutDate    string
	CheckOutTime    string
	Price           int
}

// Mailer sends reservation confirmations to the guest and the admin inbox.
type Mailer interface {
	SendReservationConfirmation(to string, details *ReservationDetails) error
}

type smtpMailer struct {
	dialer  *gomail.Dialer
	from    string
	adminTo string
	log     *zap.Logger
}

func NewSMTPMailer(config utils.EmailConfig, log *zap.Logger) Mailer {
	return &smtpMailer{
		dialer:  gomail.NewDialer(config.Host, config.Port, config.User, config.Password),
		from:    config.From,
		adminTo: config.AdminTo,
		log:     log.With(zap.String("component", "mailer")),
	}
}

// SendReservationConfirmation sends the guest confirmation and the admin
// notice. Both sends are attempted; any failure is reported as one error.
func (m *smtpMailer) SendReservationConfirmation(to string, details *ReservationDetails) error {
	guestMsg := m.buildMessage(to, "Reservation Confirmation",
		"Thank you for your reservation.", details)
	adminMsg := m.buildMessage(m.adminTo, "New reservation received",
		"A new reservation has been made.", details)

	var firstErr error
	for _, msg := range []*gomail.Message{guestMsg, adminMsg} {
		if err := m.dialer.DialAndSend(msg); err != nil {
			m.log.Error("Failed to send reservation email",
				zap.Error(err),
				zap.Strings("to", msg.GetHeader("To")),
			)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr != nil {
		return fmt.Errorf("send reservation emails: %w", firstErr)
	}

	m.log.Info("Reservation emails sent",
		zap.String("to", to),
		zap.String("admin_to", m.adminTo),
		zap.String("plan", details.PlanName),
	)
	return nil
}

func (m *smtpMailer) buildMessage(to, subject, intro string, d *ReservationDetails) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", FormatBody(intro, d))
	return msg
}

// FormatBody renders the confirmation body shared by both messages.
func FormatBody(intro string, d *ReservationDetails) string {
	return fmt.Sprintf(
		"<p>%s</p>"+
			"<p>Plan: %s</p>"+
			"<p>Hotel: %s</p>"+
			"<p>Reserved at: %s</p>"+
			"<p>Check-in: %s %s</p>"+
			"<p>Check-out: %s %s</p>"+
			"<p>Price: %d</p>",
		intro,
		d.PlanName,
		d.HotelName,
		d.ReservationDate,
		d.CheckInDate, d.CheckInTime,
		d.CheckOutDate, d.CheckOutTime,
		d.Price,
	)
}
