package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// SavedRoute is a route a user chose to keep.
type SavedRoute struct {
	ID          string
	Username    string
	Source      string
	Destination string
	// RouteText is the rendered route, e.g. "Front Gate -> Library -> Lab".
	RouteText string
	Cost      float64
	SavedAt   time.Time
}

// SaveRoute stores r for its user and returns it with ID and SavedAt filled in.
//
// Errors: ErrEmptyField, ErrUnknownUser.
func (d *DB) SaveRoute(ctx context.Context, r SavedRoute) (SavedRoute, error) {
	if r.Username == "" || r.Source == "" || r.Destination == "" || r.RouteText == "" {
		return SavedRoute{}, fmt.Errorf("%w: route needs user, endpoints and text", ErrEmptyField)
	}
	if math.IsNaN(r.Cost) || math.IsInf(r.Cost, 0) {
		return SavedRoute{}, fmt.Errorf("store: route cost must be finite, got %v", r.Cost)
	}

	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return SavedRoute{}, fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var one int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM users WHERE username = ?", r.Username).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return SavedRoute{}, fmt.Errorf("%w: %q", ErrUnknownUser, r.Username)
	}
	if err != nil {
		return SavedRoute{}, fmt.Errorf("store: loading user: %w", err)
	}

	r.ID = uuid.New().String()
	r.SavedAt = d.now().UTC()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO saved_routes (id, username, source, destination, route_text, cost, saved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Username, r.Source, r.Destination, r.RouteText, r.Cost, r.SavedAt.UnixNano())
	if err != nil {
		return SavedRoute{}, fmt.Errorf("store: inserting route: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return SavedRoute{}, fmt.Errorf("store: commit: %w", err)
	}

	return r, nil
}

// ListRoutes returns the routes saved by username, newest first.
// An unknown user simply has no routes.
func (d *DB) ListRoutes(ctx context.Context, username string) ([]SavedRoute, error) {
	rows, err := d.conn.QueryContext(ctx,
		`SELECT id, username, source, destination, route_text, cost, saved_at
		 FROM saved_routes WHERE username = ?
		 ORDER BY saved_at DESC, rowid DESC`, username)
	if err != nil {
		return nil, fmt.Errorf("store: listing routes: %w", err)
	}
	defer rows.Close()

	var out []SavedRoute
	for rows.Next() {
		var (
			r     SavedRoute
			saved int64
		)
		if err := rows.Scan(&r.ID, &r.Username, &r.Source, &r.Destination, &r.RouteText, &r.Cost, &saved); err != nil {
			return nil, fmt.Errorf("store: scanning route: %w", err)
		}
		r.SavedAt = time.Unix(0, saved).UTC()
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: listing routes: %w", err)
	}

	return out, nil
}
