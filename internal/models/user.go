// ABOUTME: User model with bcrypt password hashing.
// ABOUTME: One profile per user; all log entries reference a user ID.
package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User represents a ReHealth profile.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Sex          *string
	DateOfBirth  *time.Time
	JoinedAt     time.Time
}

// NewUser creates a User with a generated ID and join date of today.
func NewUser(username string) *User {
	return &User{
		ID:       uuid.New(),
		Username: username,
		JoinedAt: time.Now(),
	}
}

// WithSex sets the optional sex field.
func (u *User) WithSex(sex string) *User {
	u.Sex = &sex
	return u
}

// WithDateOfBirth sets the optional date of birth.
func (u *User) WithDateOfBirth(t time.Time) *User {
	u.DateOfBirth = &t
	return u
}

// SetPassword hashes and stores the given password.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the given password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
