package service

import (
	"context"
	"fmt"
	"time"

	"onerental-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.Debug("Email sent", "to", to, "subject", subject)
	return nil
}

func (s *emailService) SendBookingRequestNotification(ctx context.Context, ownerEmail, renterName, equipmentTitle string) error {
	body := fmt.Sprintf("Hello,\n\n%s has requested to rent %s. Review the request on your dashboard to approve or reject it.\n\nThe OneRental Team", renterName, equipmentTitle)
	return s.send(ownerEmail, fmt.Sprintf("New booking request for %s", equipmentTitle), body)
}

func (s *emailService) SendBookingDecisionNotification(ctx context.Context, renterEmail, equipmentTitle string, accepted bool) error {
	if accepted {
		body := fmt.Sprintf("Good news!\n\nYour booking request for %s has been accepted. The owner will arrange delivery with you.\n\nThe OneRental Team", equipmentTitle)
		return s.send(renterEmail, fmt.Sprintf("Booking accepted: %s", equipmentTitle), body)
	}
	body := fmt.Sprintf("Hello,\n\nUnfortunately your booking request for %s was rejected by the owner.\n\nThe OneRental Team", equipmentTitle)
	return s.send(renterEmail, fmt.Sprintf("Booking rejected: %s", equipmentTitle), body)
}

func (s *emailService) SendBookingDeliveredNotification(ctx context.Context, renterEmail, equipmentTitle string) error {
	body := fmt.Sprintf("Hello,\n\n%s has been marked as delivered. Enjoy your rental!\n\nThe OneRental Team", equipmentTitle)
	return s.send(renterEmail, fmt.Sprintf("Equipment delivered: %s", equipmentTitle), body)
}

func (s *emailService) SendBookingCompletedNotification(ctx context.Context, email, equipmentTitle string, amount float64) error {
	body := fmt.Sprintf("Hello,\n\nYour rental of %s is complete. Total amount: %.2f.\n\nThe OneRental Team", equipmentTitle, amount)
	return s.send(email, fmt.Sprintf("Rental completed: %s", equipmentTitle), body)
}

func (s *emailService) SendPickupReminder(ctx context.Context, renterEmail, equipmentTitle string, startDate time.Time) error {
	body := fmt.Sprintf("Hello,\n\nA reminder that your rental of %s starts on %s.\n\nThe OneRental Team", equipmentTitle, startDate.Format("2006-01-02"))
	return s.send(renterEmail, fmt.Sprintf("Upcoming rental: %s", equipmentTitle), body)
}

func (s *emailService) SendReturnReminder(ctx context.Context, renterEmail, equipmentTitle string, endDate time.Time) error {
	body := fmt.Sprintf("Hello,\n\nYour rental of %s ended on %s. Please arrange its return with the owner.\n\nThe OneRental Team", equipmentTitle, endDate.Format("2006-01-02"))
	return s.send(renterEmail, fmt.Sprintf("Return due: %s", equipmentTitle), body)
}
