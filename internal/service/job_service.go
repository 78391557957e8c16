package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// JobService runs the scheduled work: a daily digest email reminding the
// admin about contact messages still marked "new".
type JobService struct {
	Contacts *ContactService
}

func NewJobService(contacts *ContactService) *JobService {
	return &JobService{Contacts: contacts}
}

// SendUnreadContactDigest emails the admin a summary of all unread contact
// messages. No email goes out when there is nothing unread.
func (s *JobService) SendUnreadContactDigest(ctx context.Context) error {
	log.Println("Cron Job: Checking for unread contact messages...")

	messages, err := s.Contacts.Repo.ListByStatus(ctx, contactStatusNew)
	if err != nil {
		return fmt.Errorf("cron job: failed to list unread contact messages: %w", err)
	}

	if len(messages) == 0 {
		log.Println("Cron Job: No unread contact messages.")
		return nil
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		return fmt.Errorf("cron job: ADMIN_EMAIL not set, cannot send digest")
	}

	var lines []string
	for _, m := range messages {
		lines = append(lines, fmt.Sprintf("- %s <%s>: %s (%s)",
			m.Name, m.Email, m.Subject, m.CreatedAt.Format("02 Jan 2006 15:04")))
	}

	subject := fmt.Sprintf("Raeesa Tours: %d unread contact message(s)", len(messages))
	plainBody := fmt.Sprintf(
		"You have %d unread contact message(s) waiting in the dashboard:\n\n%s\n",
		len(messages), strings.Join(lines, "\n"),
	)
	htmlBody := fmt.Sprintf(
		"<h2>%d unread contact message(s)</h2><pre>%s</pre><p>Login to the admin dashboard to respond.</p>",
		len(messages), strings.Join(lines, "\n"),
	)

	if err := SendEmailWithSendGrid(adminEmail, "Admin", subject, plainBody, htmlBody); err != nil {
		return fmt.Errorf("cron job: failed to send digest email: %w", err)
	}

	log.Printf("Cron Job: Sent digest for %d unread contact messages.", len(messages))
	return nil
}
