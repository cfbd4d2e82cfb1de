package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles an admin identity may hold.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// AdminUser is a stored identity allowed into the admin panel.
type AdminUser struct {
	ObjectID     primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"passwordHash"` // Never expose in JSON
	Role         string             `json:"role" bson:"role"`
	LastLogin    *time.Time         `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	CreatedAt    *time.Time         `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// Principal is the authenticated identity carried by a token.
type Principal struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// IsAdmin reports whether the principal may perform admin-only operations.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
