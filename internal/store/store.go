package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

var (
	// ErrUserExists is returned by CreateUser for a taken username.
	ErrUserExists = errors.New("store: username already exists")

	// ErrInvalidCredentials is returned by Authenticate for an unknown user or wrong password.
	ErrInvalidCredentials = errors.New("store: invalid username or password")

	// ErrUnknownUser is returned when a route is saved for a user that does not exist.
	ErrUnknownUser = errors.New("store: unknown user")

	// ErrEmptyField is returned when a required field is blank.
	ErrEmptyField = errors.New("store: required field is empty")
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	username      TEXT PRIMARY KEY,
	password_hash BLOB NOT NULL,
	created_at    INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS saved_routes (
	id          TEXT PRIMARY KEY,
	username    TEXT NOT NULL REFERENCES users(username) ON DELETE CASCADE,
	source      TEXT NOT NULL,
	destination TEXT NOT NULL,
	route_text  TEXT NOT NULL,
	cost        REAL NOT NULL,
	saved_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS saved_routes_user ON saved_routes(username, saved_at);
`

// DB wraps a SQLite database connection.
type DB struct {
	conn *sql.DB
	Path string
	now  func() time.Time
}

// Option configures a DB.
type Option func(*DB)

// WithClock overrides the time source used for created_at and saved_at.
func WithClock(now func() time.Time) Option {
	return func(d *DB) {
		if now != nil {
			d.now = now
		}
	}
}

// OpenDB opens a SQLite database with WAL mode and foreign keys enabled and
// creates the schema if needed. ":memory:" gives a private in-memory database.
func OpenDB(ctx context.Context, path string, opts ...Option) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// pragmas are per connection, and an in-memory database is per connection too
	conn.SetMaxOpenConns(1)

	// Enable WAL mode for concurrent readers from other processes
	if _, err := conn.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	d := &DB{conn: conn, Path: path, now: time.Now}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.conn.Close()
}

// Conn returns the underlying sql.DB for custom queries.
func (d *DB) Conn() *sql.DB {
	return d.conn
}
