// Package store persists waitlist signups from the landing page.
package store

import (
	"context"
	"fmt"

	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/database"
)

// WaitlistStore writes and counts waitlist signups.
type WaitlistStore struct {
	db database.PostgresConn
}

func NewWaitlistStore(db database.PostgresConn) *WaitlistStore {
	return &WaitlistStore{db: db}
}

// Add records a signup. Duplicate emails are ignored; created reports whether
// a new row was inserted.
func (s *WaitlistStore) Add(ctx context.Context, email, name, source string) (created bool, err error) {
	if source == "" {
		source = "landing"
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO waitlist_signups (email, name, source)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO NOTHING`,
		email, name, source)
	if err != nil {
		return false, fmt.Errorf("failed to insert waitlist signup: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}

	return rows > 0, nil
}

// Count returns the total number of signups.
func (s *WaitlistStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM waitlist_signups`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count waitlist signups: %w", err)
	}
	return count, nil
}
