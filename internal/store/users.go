package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is a registered account.
type User struct {
	Username  string
	CreatedAt time.Time
}

// CreateUser registers username with a bcrypt hash of password.
//
// Errors: ErrEmptyField, ErrUserExists, bcrypt errors (e.g. passwords over 72 bytes).
func (d *DB) CreateUser(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, fmt.Errorf("%w: username and password are required", ErrEmptyField)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("store: hashing password: %w", err)
	}

	created := d.now().UTC()
	res, err := d.conn.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(username) DO NOTHING`,
		username, hash, created.UnixNano())
	if err != nil {
		return User{}, fmt.Errorf("store: inserting user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return User{}, fmt.Errorf("store: inserting user: %w", err)
	}
	if n == 0 {
		return User{}, fmt.Errorf("%w: %q", ErrUserExists, username)
	}

	return User{Username: username, CreatedAt: created}, nil
}

// Authenticate checks password against the stored hash for username.
//
// An unknown user and a wrong password both yield ErrInvalidCredentials.
func (d *DB) Authenticate(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)

	var (
		hash    []byte
		created int64
	)
	err := d.conn.QueryRowContext(ctx,
		"SELECT password_hash, created_at FROM users WHERE username = ?", username).
		Scan(&hash, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, fmt.Errorf("store: loading user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return User{Username: username, CreatedAt: time.Unix(0, created).UTC()}, nil
}
