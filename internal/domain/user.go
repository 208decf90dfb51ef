package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered principal. The password field holds the hex
// SHA-1 digest of the plaintext, never the plaintext itself.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
}

// UserView is the public JSON representation of a user.
type UserView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ToView converts a User to its public representation.
func (u *User) ToView() UserView {
	return UserView{ID: u.ID.Hex(), Email: u.Email}
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*User, error)
}

// UserService defines the use-case operations for users.
type UserService interface {
	Register(ctx context.Context, email, password string) (*User, error)
}
