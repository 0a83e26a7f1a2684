// ABOUTME: User persistence: registration and lookup by username.
// ABOUTME: Usernames are unique; inserts surface the constraint violation.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rehealth/internal/models"
)

// CreateUser stores a new user. A duplicate username fails with the
// underlying unique-constraint error.
func (d *DB) CreateUser(u *models.User) error {
	var dob *string
	if u.DateOfBirth != nil {
		s := u.DateOfBirth.Format(models.DayFormat)
		dob = &s
	}

	query := `
		INSERT INTO users (id, username, password_hash, sex, date_of_birth, joined_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		u.ID.String(),
		u.Username,
		u.PasswordHash,
		u.Sex,
		dob,
		u.JoinedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetUserByUsername retrieves a user by their unique username.
func (d *DB) GetUserByUsername(username string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, sex, date_of_birth, joined_at
		FROM users
		WHERE username = ?
	`
	row := d.db.QueryRow(query, username)

	var u models.User
	var id, joinedAt string
	var dob *string
	if err := row.Scan(&id, &u.Username, &u.PasswordHash, &u.Sex, &dob, &joinedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("get user: parse id: %w", err)
	}
	u.ID = uid

	if u.JoinedAt, err = time.Parse(time.RFC3339, joinedAt); err != nil {
		return nil, fmt.Errorf("get user: parse joined_at: %w", err)
	}
	if dob != nil {
		t, err := time.ParseInLocation(models.DayFormat, *dob, time.Local)
		if err != nil {
			return nil, fmt.Errorf("get user: parse date_of_birth: %w", err)
		}
		u.DateOfBirth = &t
	}
	return &u, nil
}
