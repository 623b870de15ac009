package domain

import "time"

type UserRole string

const (
	UserRoleOwner  UserRole = "owner"
	UserRoleRenter UserRole = "renter"
)

type UserProfile struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	AvatarURL    string     `json:"avatar_url,omitempty"`
	Roles        []UserRole `json:"roles,omitempty"`
	PasswordHash string     `json:"-"`
	CreatedOn    time.Time  `json:"created_on"`
}

// HasRole reports whether the profile carries the given role.
func (u *UserProfile) HasRole(role UserRole) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
