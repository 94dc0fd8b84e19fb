// Package review implements the per-session batch-review state machine:
// filtering of statement rows, the three-step classification dialogue, and
// assembly of the final ledger records.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LeoFurone/personal-finance-furone/internal/common"
	"github.com/LeoFurone/personal-finance-furone/internal/model"
	"github.com/LeoFurone/personal-finance-furone/internal/service"
)

// Engine drives one session through the review protocol. For each row it
// asks for an account, an expense category, and a funding source, then
// appends the assembled record to the ledger and advances the cursor.
type Engine struct {
	ledger service.Ledger
	conv   Conversation
	retry  service.RetryOptions
}

// Config holds configuration options for the review engine.
type Config struct {
	Retry service.RetryOptions
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Retry: service.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     5 * time.Second,
			Multiplier:   2.0,
		},
	}
}

// New creates a review engine with the given collaborators.
func New(ledger service.Ledger, conv Conversation) *Engine {
	return NewWithConfig(ledger, conv, DefaultConfig())
}

// NewWithConfig creates a review engine with custom configuration.
func NewWithConfig(ledger service.Ledger, conv Conversation, config Config) *Engine {
	return &Engine{
		ledger: ledger,
		conv:   conv,
		retry:  config.Retry,
	}
}

// Run walks the session from its current cursor to the terminal state. Each
// inbound reply is processed to completion before the next prompt is issued;
// no two transitions for the same session ever run concurrently.
//
// On a persistence failure the cursor and answers are left untouched, so a
// second Run resumes at the failed row. A cancel from the conversation
// surface returns common.ErrReviewCanceled without persisting the
// in-progress row.
func (e *Engine) Run(ctx context.Context, session *Session) (service.SessionStats, error) {
	start := time.Now()
	stats := service.SessionStats{Eligible: session.Len()}

	if session.Len() == 0 {
		slog.Info("No eligible rows to review")
		if err := e.conv.Say(ctx, "Nothing to review: no new expenses in this statement."); err != nil {
			return stats, err
		}
		stats.Duration = time.Since(start)
		return stats, nil
	}

	slog.Info("Starting review session", "eligible_rows", session.Len(), "cursor", session.Cursor())

	for !session.IsTerminal() {
		select {
		case <-ctx.Done():
			stats.Duration = time.Since(start)
			return stats, ctx.Err()
		default:
		}

		entry, err := session.CurrentEntry()
		if err != nil {
			stats.Duration = time.Since(start)
			return stats, err
		}

		prompt := fmt.Sprintf("Row %d of %d:\n%s\n\nWhich account?\n%s",
			session.Cursor()+1, session.Len(), entry.Summary(), model.AccountMenu())
		reply, err := e.conv.AskText(ctx, prompt)
		if err != nil {
			stats.Duration = time.Since(start)
			return stats, err
		}

		account, ok := model.ParseAccount(reply)
		if !ok {
			// An unrecognized reply does not re-prompt: the row is
			// consumed and the cursor advances. Long-standing behavior;
			// callers depend on the cursor moving.
			slog.Warn("Unrecognized account reply, skipping row",
				"row", session.Cursor()+1,
				"identifier", entry.Identifier,
				"reply", reply)
			stats.Skipped++
			session.Advance()
			continue
		}

		answer := session.CurrentAnswer()
		answer.Account = account

		category, err := e.conv.AskOption(ctx, "Which category is this expense?", model.ExpenseCategories())
		if err != nil {
			stats.Duration = time.Since(start)
			return stats, err
		}
		answer.Category = category

		source, err := e.conv.AskOption(ctx, "Where does the money come from?", model.FundingSources())
		if err != nil {
			stats.Duration = time.Since(start)
			return stats, err
		}
		answer.Source = source

		record := AssembleRecord(entry, *answer)
		appendErr := common.WithRetry(ctx, func() error {
			return e.ledger.Append(ctx, record)
		}, e.retry)
		if appendErr != nil {
			slog.Error("Failed to append record to ledger",
				"identifier", record.Identifier,
				"error", appendErr)
			stats.Duration = time.Since(start)
			return stats, fmt.Errorf("failed to persist row %d: %w", session.Cursor()+1, appendErr)
		}

		stats.Written++
		session.Advance()

		if !session.IsTerminal() {
			if err := e.conv.Say(ctx, "Saved. Next row:"); err != nil {
				stats.Duration = time.Since(start)
				return stats, err
			}
		}
	}

	slog.Info("Review session complete",
		"written", stats.Written,
		"skipped", stats.Skipped)

	if err := e.conv.Say(ctx, "All rows reviewed."); err != nil {
		stats.Duration = time.Since(start)
		return stats, err
	}

	stats.Duration = time.Since(start)
	return stats, nil
}
