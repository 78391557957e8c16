package service

import (
	"fmt"
	"log"
	"os"
	"time"

	"raeesatours/internal/db"
	"raeesatours/internal/entities"
	"raeesatours/internal/utils"
)

// SenderService builds and dispatches the transactional emails and SMS the
// site sends: the admin notification and auto-reply for contact messages,
// and the booking-received confirmation for registrations. Delivery is
// asynchronous and best-effort; a failed send never fails the request that
// triggered it.
type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

// SendContactAdminNotification emails the configured admin address about a
// new contact-form submission.
func (s *SenderService) SendContactAdminNotification(message db.ContactMessage) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		log.Println("WARNING: ADMIN_EMAIL not set. Admin notification will not be sent.")
		return
	}

	data := entities.ContactEmailData{
		Name:        message.Name,
		Email:       message.Email,
		Subject:     message.Subject,
		Message:     message.Message,
		SubmittedAt: message.CreatedAt.Format("02 Jan 2006 15:04 MST"),
	}

	subject := fmt.Sprintf("New Contact Form Submission: %s", data.Subject)
	plainBody := fmt.Sprintf(
		"New contact form submission\n\n"+
			"From: %s (%s)\n"+
			"Subject: %s\n\n"+
			"%s\n\n"+
			"Submitted at: %s\n\n"+
			"Login to the admin dashboard to respond to this message.",
		data.Name, data.Email, data.Subject, data.Message, data.SubmittedAt,
	)
	htmlBody := fmt.Sprintf(
		"<h2>New Contact Form Submission</h2>"+
			"<p><strong>From:</strong> %s (%s)</p>"+
			"<p><strong>Subject:</strong> %s</p>"+
			"<p><strong>Message:</strong></p><p>%s</p>"+
			"<p><strong>Submitted at:</strong> %s</p>"+
			"<hr><p>Login to the admin dashboard to respond to this message.</p>",
		data.Name, data.Email, data.Subject, data.Message, data.SubmittedAt,
	)

	go func() {
		if err := SendEmailWithSendGrid(adminEmail, "Admin", subject, plainBody, htmlBody); err != nil {
			log.Printf("ALERT (async): failed to send admin notification for contact %s: %v", message.ID.Hex(), err)
		}
	}()
}

// SendContactAutoReply thanks the sender and echoes their message back.
func (s *SenderService) SendContactAutoReply(message db.ContactMessage) {
	subject := "Thank you for contacting Raeesa Tours"
	plainBody := fmt.Sprintf(
		"Dear %s,\n\n"+
			"We have received your message regarding \"%s\". Our team will review it "+
			"and get back to you as soon as possible.\n\n"+
			"For your reference, here's a copy of your message:\n\n%s\n\n"+
			"Best regards,\nRaeesa Tours Team",
		message.Name, message.Subject, message.Message,
	)
	htmlBody := fmt.Sprintf(
		"<h2>Thank you for reaching out!</h2>"+
			"<p>Dear %s,</p>"+
			"<p>We have received your message regarding \"%s\". Our team will review it and get back to you as soon as possible.</p>"+
			"<p>For your reference, here's a copy of your message:</p>"+
			"<blockquote>%s</blockquote>"+
			"<p>Best regards,<br>Raeesa Tours Team</p>",
		message.Name, message.Subject, message.Message,
	)

	go func() {
		if err := SendEmailWithSendGrid(message.Email, message.Name, subject, plainBody, htmlBody); err != nil {
			log.Printf("ALERT (async): failed to send auto-reply for contact %s: %v", message.ID.Hex(), err)
		}
	}()
}

// SendBookingReceived confirms a new registration to the traveller by email
// and, when a phone number is present, by SMS.
func (s *SenderService) SendBookingReceived(registration db.Registration) {
	data := entities.BookingEmailData{
		FirstName:     registration.FirstName,
		Destination:   registration.Destination,
		DepartureDate: registration.DepartureDate,
		ReturnDate:    registration.ReturnDate,
		Adults:        registration.Adults,
		Children:      registration.Children,
		RoomType:      registration.RoomType,
		CurrentYear:   time.Now().Year(),
	}

	subject := fmt.Sprintf("Your Raeesa Tours booking request for %s", data.Destination)
	plainBody := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Thank you for your booking! We will contact you shortly to confirm the details.\n\n"+
			"Booking details:\n"+
			"Destination: %s\n"+
			"Departure: %s\n"+
			"Return: %s\n"+
			"Travellers: %s adults, %s children\n"+
			"Room: %s\n\n"+
			"Raeesa Tours. All rights reserved. %d",
		data.FirstName, data.Destination, data.DepartureDate, data.ReturnDate,
		data.Adults, data.Children, data.RoomType, data.CurrentYear,
	)
	htmlBody := fmt.Sprintf(
		"<h2>Thank you for your booking, %s!</h2>"+
			"<p>We will contact you shortly to confirm the details.</p>"+
			"<p><strong>Destination:</strong> %s<br>"+
			"<strong>Departure:</strong> %s<br>"+
			"<strong>Return:</strong> %s<br>"+
			"<strong>Travellers:</strong> %s adults, %s children<br>"+
			"<strong>Room:</strong> %s</p>"+
			"<p>Raeesa Tours. All rights reserved. %d</p>",
		data.FirstName, data.Destination, data.DepartureDate, data.ReturnDate,
		data.Adults, data.Children, data.RoomType, data.CurrentYear,
	)

	fullName := registration.FirstName + " " + registration.LastName
	smsMessage := fmt.Sprintf("Raeesa Tours: We received your booking for %s (departure %s). We will contact you shortly to confirm.",
		data.Destination, data.DepartureDate)

	go func() {
		if err := SendEmailWithSendGrid(registration.Email, fullName, subject, plainBody, htmlBody); err != nil {
			log.Printf("ALERT (async): failed to send booking confirmation email for %s: %v", registration.ID.Hex(), err)
		}
		// Twilio rejects numbers with separators; the form accepts them.
		if phone := utils.NormalizePhone(registration.Phone); phone != "" {
			if err := SendSMS(phone, smsMessage); err != nil {
				log.Printf("ALERT (async): booking %s saved, but confirmation SMS to %s failed: %v", registration.ID.Hex(), registration.Phone, err)
			}
		}
	}()
}
