package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user may hold. The super admin is not a role: it is the single
// account whose email matches the configured privileged address.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account. Password holds a bcrypt hash and is never
// serialized in responses; accounts provisioned without one cannot log in
// with a password.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"createdAt,omitempty"`
}

// ValidRole reports whether s is an assignable role value.
func ValidRole(s string) bool {
	return s == RoleUser || s == RoleAdmin
}
