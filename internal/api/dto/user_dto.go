package dto

import "time"

// UserRegisterRequest payload for new members.
type UserRegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// UserLoginRequest payload for login.
type UserLoginRequest struct {
	Email      string `json:"email" validate:"required"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// UserResponse is the account view returned to its owner.
type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	Location        *string   `json:"location"`
	UserType        string    `json:"userType"`
	CreatedAt       time.Time `json:"createdAt"`
}

// UserSummaryResponse is the display projection joined onto content.
type UserSummaryResponse struct {
	ID              string  `json:"id"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
	Location        *string `json:"location"`
}

// AuthResponse standard response for register and login.
type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}
