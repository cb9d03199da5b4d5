package domain

import (
	"errors"
	"time"
)

const (
	RoleUser           = "User"
	RoleProjectManager = "ProjectManager"
	RoleAdmin          = "Admin"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrTooManyAttempts = errors.New("too many login attempts")
var ErrNoUsersMatched = errors.New("no users matched")

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity is the embedded {email, userId} snapshot persisted on projects,
// teams and assignment logs. It is a copy taken at write time, not a live
// reference to the users collection.
type Identity struct {
	Email  string `json:"email" bson:"email"`
	UserID string `json:"userId" bson:"user_id"`
}
