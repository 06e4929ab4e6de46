package services

import (
	"fmt"
	"net/smtp"
	"os"
	"time"

	"performup_api/internal/models"
)

type EmailService struct {
	host     string
	port     string
	user     string
	password string
	from     string
}

func NewEmailService() *EmailService {
	return &EmailService{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		user:     os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASS"),
		from:     os.Getenv("EMAIL_FROM"),
	}
}

func (s *EmailService) SendEmail(to []string, subject, body string) error {
	if s.host == "" || s.port == "" || s.user == "" || s.password == "" {
		return fmt.Errorf("SMTP credentials not fully configured")
	}

	auth := smtp.PlainAuth("", s.user, s.password, s.host)

	// Build the message
	message := []byte(fmt.Sprintf("To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", to[0], subject, body))

	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	err := smtp.SendMail(addr, auth, s.from, to, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// FormatAmount renders a minor-unit amount as a human readable string
func FormatAmount(amount int64, currency models.Currency) string {
	return fmt.Sprintf("%.2f %s", float64(amount)/100, currency)
}

// SendQuoteNotification emails a student that a quote is ready for review
func (s *EmailService) SendQuoteNotification(to, name string, quoteID uint, total int64, currency models.Currency) error {
	subject := fmt.Sprintf("Your PerformUp quote #%d is ready", quoteID)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour quote #%d for a total of %s is ready for review.\n"+
			"Please log in to your PerformUp account to accept it.\n\nThe PerformUp team",
		name, quoteID, FormatAmount(total, currency))
	return s.SendEmail([]string{to}, subject, body)
}

// SendPaymentReminder emails a debtor about an upcoming or overdue schedule
func (s *EmailService) SendPaymentReminder(to, name string, schedule models.PaymentSchedule) error {
	subject := fmt.Sprintf("Payment reminder: %s", schedule.Label)
	body := fmt.Sprintf(
		"Hello %s,\n\nThis is a reminder that %s of %s is due on %s.\n"+
			"Remaining amount: %s.\n\nThe PerformUp team",
		name, schedule.Label,
		FormatAmount(schedule.Amount, schedule.Currency),
		schedule.DueDate.Format(time.DateOnly),
		FormatAmount(schedule.RemainingAmount(), schedule.Currency))
	return s.SendEmail([]string{to}, subject, body)
}
