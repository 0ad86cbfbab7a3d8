package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// Identity links a user to one way of signing in. For the email provider ProviderID is the
// user's email; for Google it is the Google account subject.
type Identity struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	UserID      string        `bson:"user_id"`
	ProviderID  string        `bson:"provider_id"`
	Provider    string        `bson:"provider"`
	Email       string        `bson:"email"`
	LastLoginAt time.Time     `bson:"last_login_at"`
	CreatedAt   time.Time     `bson:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at"`
}
