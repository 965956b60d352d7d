package model

import "time"

const (
	UserRoleAdmin       = "admin"
	UserRoleHR          = "hr"
	UserRoleInterviewer = "interviewer"
	UserRoleUser        = "user"
)

// UserDo user document. PasswordHash is written by the auth subsystem
// and never serialized out.
type UserDo struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	Name         string    `json:"name" bson:"name"`
	Role         string    `json:"role" bson:"role"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Active       bool      `json:"active" bson:"active"`
	AvatarURL    string    `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	PasswordHash string    `json:"-" bson:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}
