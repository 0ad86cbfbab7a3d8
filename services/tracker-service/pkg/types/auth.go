package types

import "time"

type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	ProfilePicture string     `json:"profilePicture"`
	Bio            string     `json:"bio"`
	LastLoginAt    *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type RegisterRequest struct {
	Username  string `json:"username"  validate:"required,min=3,max=30"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken     string `json:"idToken"     validate:"required"`
	AccessToken string `json:"accessToken"`
}

// AuthResponse is returned by register and both login flows.
type AuthResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

type ProfileResponse struct {
	User User `json:"user"`
}

// UpdateProfileRequest leaves nil fields untouched. Blank names are ignored.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName,omitempty"  validate:"omitempty,max=100"`
	Bio       *string `json:"bio,omitempty"       validate:"omitempty,max=500"`
}

type UpdateProfileResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}
