package service

import (
	"context"
	"log"
	"time"

	"raeesatours/internal/db"
	"raeesatours/internal/entities"
	httperrors "raeesatours/internal/errors"
	"raeesatours/internal/repository"
	"raeesatours/internal/utils"

	"github.com/go-playground/validator/v10"
)

const contactStatusNew = "new"

type ContactService struct {
	Repo     repository.ContactRepository
	Sender   *SenderService
	validate *validator.Validate
}

func NewContactService(repo repository.ContactRepository, sender *SenderService) *ContactService {
	return &ContactService{
		Repo:     repo,
		Sender:   sender,
		validate: validator.New(),
	}
}

// Create stores a new contact message with status "new" and triggers the
// admin notification plus the auto-reply to the sender.
func (s *ContactService) Create(ctx context.Context, req *entities.ContactRequest) (*db.ContactMessage, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, httperrors.ErrBadRequest("Please fill in all required fields")
	}

	message := &db.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    contactStatusNew,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, message); err != nil {
		log.Printf("Error creating contact message in repository: %v", err)
		return nil, err
	}

	s.Sender.SendContactAdminNotification(*message)
	s.Sender.SendContactAutoReply(*message)
	return message, nil
}

func (s *ContactService) List(ctx context.Context) ([]db.ContactMessage, error) {
	return s.Repo.List(ctx)
}

// UpdateStatus moves a message through new → read → replied and records
// optional admin notes.
func (s *ContactService) UpdateStatus(ctx context.Context, id string, req *entities.ContactUpdateRequest) (*db.ContactMessage, error) {
	if !utils.IsValidContactStatus(req.Status) {
		return nil, httperrors.ErrBadRequest("Invalid status")
	}
	return s.Repo.UpdateStatus(ctx, id, req.Status, req.AdminNotes)
}

func (s *ContactService) DeleteByID(ctx context.Context, id string) error {
	return s.Repo.DeleteByID(ctx, id)
}
