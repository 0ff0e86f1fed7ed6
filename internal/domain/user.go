package domain

import "time"

// UserType is the community-level role used for moderation gates.
type UserType string

const (
	UserTypeMember    UserType = "member"
	UserTypeModerator UserType = "moderator"
	UserTypeAdmin     UserType = "admin"
)

// Valid reports whether t is a known user type.
func (t UserType) Valid() bool {
	switch t {
	case UserTypeMember, UserTypeModerator, UserTypeAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the user type may moderate community content.
func (t UserType) IsStaff() bool {
	return t == UserTypeModerator || t == UserTypeAdmin
}

// User is a community member account.
type User struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL *string
	Location        *string
	UserType        UserType
	PasswordHash    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Summary returns the display fields shown next to content the user authored.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:              u.ID,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
		Location:        u.Location,
	}
}

// UserSummary is the read-only projection of a user joined onto other records.
type UserSummary struct {
	ID              string
	FirstName       string
	LastName        string
	ProfileImageURL *string
	Location        *string
}
