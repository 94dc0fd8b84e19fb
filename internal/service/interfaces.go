// Package service defines the interfaces for the application's external
// collaborators.
package service

import (
	"context"
	"time"

	"github.com/LeoFurone/personal-finance-furone/internal/model"
)

// Ledger is the persistent append-only store of classified transactions.
// Implementations must serialize Append calls so that at most one writer
// computes and fills the next free row at a time.
type Ledger interface {
	// KnownIdentifiers returns the set of statement identifiers already
	// recorded in the ledger's dedup column. It is read once at session
	// start and not refreshed for the lifetime of the session.
	KnownIdentifiers(ctx context.Context) (map[string]struct{}, error)

	// Append writes one record at the next free row.
	Append(ctx context.Context, record model.LedgerRecord) error

	// Close releases any underlying resources.
	Close() error
}

// RetryOptions configures retry behavior for operations against external
// services.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// SessionStats summarizes the outcome of one review session.
type SessionStats struct {
	Eligible int
	Written  int
	Skipped  int
	Duration time.Duration
}
