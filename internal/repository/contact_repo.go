package repository

import (
	"context"
	"fmt"

	"raeesatours/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContactRepository interface {
	Create(ctx context.Context, message *db.ContactMessage) error
	List(ctx context.Context) ([]db.ContactMessage, error)
	ListByStatus(ctx context.Context, status string) ([]db.ContactMessage, error)
	UpdateStatus(ctx context.Context, id, status, adminNotes string) (*db.ContactMessage, error)
	DeleteByID(ctx context.Context, id string) error
}

type contactRepository struct {
	collection *mongo.Collection
}

func NewContactRepository(client *mongo.Client) ContactRepository {
	return &contactRepository{
		collection: client.Database(db.DatabaseName).Collection(db.ContactsCollection),
	}
}

func (r *contactRepository) Create(ctx context.Context, message *db.ContactMessage) error {
	message.ID = primitive.NewObjectID()
	result, err := r.collection.InsertOne(ctx, message)
	if err != nil {
		return fmt.Errorf("error inserting contact message: %w", err)
	}
	message.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *contactRepository) List(ctx context.Context) ([]db.ContactMessage, error) {
	return r.find(ctx, bson.M{})
}

// ListByStatus backs the unread digest job.
func (r *contactRepository) ListByStatus(ctx context.Context, status string) ([]db.ContactMessage, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *contactRepository) find(ctx context.Context, filter bson.M) ([]db.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying contact messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []db.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("error decoding contact messages: %w", err)
	}
	return messages, nil
}

// UpdateStatus sets the status and admin notes of one message and returns the
// updated document.
func (r *contactRepository) UpdateStatus(ctx context.Context, id, status, adminNotes string) (*db.ContactMessage, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	update := bson.M{"$set": bson.M{"status": status, "adminNotes": adminNotes}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var message db.ContactMessage
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&message)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating contact message %s: %w", id, err)
	}
	return &message, nil
}

func (r *contactRepository) DeleteByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("error deleting contact message %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
