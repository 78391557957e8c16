package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"raeesatours/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type AdminAuthRepository interface {
	GetByEmail(ctx context.Context, email string) (*db.Admin, error)
	CreateAdmin(ctx context.Context, email, password string) error
}

type adminAuthRepository struct {
	collection *mongo.Collection
}

func NewAdminAuthRepository(client *mongo.Client) AdminAuthRepository {
	return &adminAuthRepository{
		collection: client.Database(db.DatabaseName).Collection(db.AdminsCollection),
	}
}

// GetByEmail returns nil without error when the admin does not exist, so the
// service can answer "invalid credentials" without leaking which part failed.
func (r *adminAuthRepository) GetByEmail(ctx context.Context, email string) (*db.Admin, error) {
	var admin db.Admin
	err := r.collection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching admin: %w", err)
	}
	return &admin, nil
}

func (r *adminAuthRepository) CreateAdmin(ctx context.Context, email, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := db.Admin{
		ID:           primitive.NewObjectID(),
		Email:        strings.ToLower(email),
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := r.collection.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("error inserting admin: %w", err)
	}
	return nil
}
