package repository

import (
	"context"
	"fmt"

	"raeesatours/internal/db"
	"raeesatours/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultPageSize matches the admin dashboard page size.
const DefaultPageSize = 10

type RegistrationRepository interface {
	Create(ctx context.Context, registration *db.Registration) error
	List(ctx context.Context, query entities.RegistrationListQuery) ([]db.Registration, int64, error)
	GetByID(ctx context.Context, id string) (*db.Registration, error)
	DeleteByID(ctx context.Context, id string) error
}

type registrationRepository struct {
	collection *mongo.Collection
}

func NewRegistrationRepository(client *mongo.Client) RegistrationRepository {
	return &registrationRepository{
		collection: client.Database(db.DatabaseName).Collection(db.RegistrationsCollection),
	}
}

func (r *registrationRepository) Create(ctx context.Context, registration *db.Registration) error {
	registration.ID = primitive.NewObjectID()
	result, err := r.collection.InsertOne(ctx, registration)
	if err != nil {
		return fmt.Errorf("error inserting registration: %w", err)
	}
	registration.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns one page of registrations, newest first, plus the total count
// for the current filter set. Destination matches as a case-insensitive
// substring; the date range filters on the stored departureDate strings.
func (r *registrationRepository) List(ctx context.Context, query entities.RegistrationListQuery) ([]db.Registration, int64, error) {
	filter := bson.M{}
	if query.Destination != "" {
		filter["destination"] = bson.M{"$regex": primitive.Regex{Pattern: query.Destination, Options: "i"}}
	}
	if query.StartDate != "" && query.EndDate != "" {
		filter["departureDate"] = bson.M{"$gte": query.StartDate, "$lte": query.EndDate}
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	skip := int64((page - 1) * limit)

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying registrations: %w", err)
	}
	defer cursor.Close(ctx)

	var registrations []db.Registration
	if err := cursor.All(ctx, &registrations); err != nil {
		return nil, 0, fmt.Errorf("error decoding registrations: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting registrations: %w", err)
	}
	return registrations, total, nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*db.Registration, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var registration db.Registration
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&registration)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching registration %s: %w", id, err)
	}
	return &registration, nil
}

func (r *registrationRepository) DeleteByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("error deleting registration %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
