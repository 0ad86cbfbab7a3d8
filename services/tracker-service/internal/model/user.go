package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is the aggregate root: profile fields plus the embedded interests and job applications.
// The embedded collections are always loaded and saved together with the user.
type User struct {
	ID              bson.ObjectID    `bson:"_id,omitempty"`
	Username        string           `bson:"username"`
	Email           string           `bson:"email"`
	PasswordHash    string           `bson:"password_hash"`
	FirstName       string           `bson:"first_name"`
	LastName        string           `bson:"last_name"`
	ProfilePicture  string           `bson:"profile_picture"`
	Bio             string           `bson:"bio"`
	Interests       []Interest       `bson:"interests"`
	JobApplications []JobApplication `bson:"job_applications"`
	LastLoginAt     *time.Time       `bson:"last_login_at,omitempty"`
	CreatedAt       time.Time        `bson:"created_at"`
	UpdatedAt       time.Time        `bson:"updated_at"`
}

// InterestSet returns the user's interests keyed by (opportunity id, opportunity type).
func (u *User) InterestSet() *InterestSet {
	return NewInterestSet(u.Interests)
}

// JobApplicationSet returns the user's job applications keyed by job id.
func (u *User) JobApplicationSet() *JobApplicationSet {
	return NewJobApplicationSet(u.JobApplications)
}
