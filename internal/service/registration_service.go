package service

import (
	"context"
	"log"
	"math"
	"time"

	"raeesatours/internal/db"
	"raeesatours/internal/entities"
	httperrors "raeesatours/internal/errors"
	"raeesatours/internal/repository"
	"raeesatours/internal/utils"

	"github.com/go-playground/validator/v10"
)

const (
	defaultChildren       = "0"
	defaultRoomType       = "standard"
	defaultMealPreference = "vegetarian"
)

type RegistrationService struct {
	Repo     repository.RegistrationRepository
	Sender   *SenderService
	validate *validator.Validate
}

func NewRegistrationService(repo repository.RegistrationRepository, sender *SenderService) *RegistrationService {
	return &RegistrationService{
		Repo:     repo,
		Sender:   sender,
		validate: validator.New(),
	}
}

// Create persists a new registration after the server-side gates: every
// required field present, terms accepted, enum fields within range. Field-level
// messages are the client's job; here absence collapses into one rejection.
func (s *RegistrationService) Create(ctx context.Context, req *entities.RegistrationRequest) (*db.Registration, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, httperrors.ErrBadRequest("Please fill in all required fields")
	}

	if !req.TermsAccepted {
		return nil, httperrors.ErrBadRequest("Please accept the terms and conditions")
	}

	if req.Children == "" {
		req.Children = defaultChildren
	}
	if req.RoomType == "" {
		req.RoomType = defaultRoomType
	}
	if req.MealPreference == "" {
		req.MealPreference = defaultMealPreference
	}

	if !utils.IsValidDestination(req.Destination) ||
		!utils.IsValidRoomType(req.RoomType) ||
		!utils.IsValidMealPreference(req.MealPreference) {
		return nil, httperrors.ErrBadRequest("Error creating registration")
	}

	now := time.Now().UTC()
	registration := &db.Registration{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Destination:     req.Destination,
		DepartureDate:   req.DepartureDate,
		ReturnDate:      req.ReturnDate,
		Adults:          req.Adults,
		Children:        req.Children,
		RoomType:        req.RoomType,
		MealPreference:  req.MealPreference,
		SpecialRequests: req.SpecialRequests,
		EmergencyContact: db.EmergencyContact{
			Name:     req.EmergencyContact.Name,
			Phone:    req.EmergencyContact.Phone,
			Relation: req.EmergencyContact.Relation,
		},
		StreetAddress: req.StreetAddress,
		City:          req.City,
		StateProvince: req.StateProvince,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
		TermsAccepted: req.TermsAccepted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(ctx, registration); err != nil {
		log.Printf("Error creating registration in repository: %v", err)
		return nil, err
	}

	s.Sender.SendBookingReceived(*registration)
	return registration, nil
}

// List returns one page of registrations with pagination metadata.
func (s *RegistrationService) List(ctx context.Context, query entities.RegistrationListQuery) ([]db.Registration, *entities.Pagination, error) {
	if query.Limit <= 0 {
		query.Limit = repository.DefaultPageSize
	}
	if query.Page < 1 {
		query.Page = 1
	}

	registrations, total, err := s.Repo.List(ctx, query)
	if err != nil {
		return nil, nil, err
	}

	pagination := &entities.Pagination{
		Total: total,
		Page:  query.Page,
		Pages: int(math.Ceil(float64(total) / float64(query.Limit))),
	}
	return registrations, pagination, nil
}

func (s *RegistrationService) GetByID(ctx context.Context, id string) (*db.Registration, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *RegistrationService) DeleteByID(ctx context.Context, id string) error {
	return s.Repo.DeleteByID(ctx, id)
}
