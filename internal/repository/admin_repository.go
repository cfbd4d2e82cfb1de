package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"sidehustle/internal/model"
)

// AdminRepository defines admin identity persistence operations.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	UpdateLastLogin(ctx context.Context, email string, at time.Time) error
}

type adminRepository struct {
	coll *mongo.Collection
}

// NewAdminRepository creates a Mongo-backed admin identity repository.
func NewAdminRepository(coll *mongo.Collection) AdminRepository {
	return &adminRepository{coll: coll}
}

// FindByEmail returns the first identity with the given email or ErrNoMatch.
func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var user model.AdminUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoMatch
		}
		return nil, fmt.Errorf("find admin user: %w", err)
	}
	return &user, nil
}

// UpdateLastLogin stamps the last successful login of the identity.
func (r *adminRepository) UpdateLastLogin(ctx context.Context, email string, at time.Time) error {
	if _, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"lastLogin": at}}); err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}
