// Package storage provides the local SQLite implementation of the ledger,
// used for offline review and tests.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/LeoFurone/personal-finance-furone/internal/common"
	"github.com/LeoFurone/personal-finance-furone/internal/model"
	"github.com/shopspring/decimal"

	sqlite3 "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS ledger_entries (
	row_num         INTEGER PRIMARY KEY AUTOINCREMENT,
	kind            TEXT NOT NULL,
	account         TEXT NOT NULL,
	description     TEXT NOT NULL,
	funding_account TEXT NOT NULL,
	amount          TEXT NOT NULL,
	date            TEXT NOT NULL,
	category        TEXT NOT NULL,
	payment_method  TEXT NOT NULL,
	source          TEXT NOT NULL,
	identifier      TEXT NOT NULL,
	created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_ledger_entries_identifier
	ON ledger_entries(identifier);
`

// SQLiteLedger implements service.Ledger on a local SQLite database. The
// connection pool is capped at one connection, which also serializes
// writers.
type SQLiteLedger struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteLedger opens (creating if needed) a SQLite ledger at dbPath.
func NewSQLiteLedger(dbPath string) (*SQLiteLedger, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: database path is empty", common.ErrInvalidConfig)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLiteLedger{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteLedger) Close() error {
	return s.db.Close()
}

// KnownIdentifiers returns the set of statement identifiers already recorded.
func (s *SQLiteLedger) KnownIdentifiers(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT identifier FROM ledger_entries`)
	if err != nil {
		return nil, fmt.Errorf("failed to query identifiers: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	known := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan identifier: %w", err)
		}
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		known[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate identifiers: %w", err)
	}

	return known, nil
}

// Append inserts one record at the next row. A second record with the same
// identifier fails with common.ErrDuplicateEntry.
func (s *SQLiteLedger) Append(ctx context.Context, record model.LedgerRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ledger_entries
			(kind, account, description, funding_account, amount, date,
			 category, payment_method, source, identifier)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		model.KindExpense,
		string(record.Account),
		record.Description,
		model.FundingAccountLabel,
		record.Amount.String(),
		record.Date,
		record.Category,
		record.PaymentMethod,
		record.Source,
		record.Identifier,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("%w: identifier %s", common.ErrDuplicateEntry, record.Identifier)
		}
		return fmt.Errorf("failed to insert record: %w", err)
	}

	return nil
}

// Records returns all recorded entries in append order.
func (s *SQLiteLedger) Records(ctx context.Context) ([]model.LedgerRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT account, description, amount, date, category,
		       payment_method, source, identifier
		FROM ledger_entries
		ORDER BY row_num`)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []model.LedgerRecord
	for rows.Next() {
		var record model.LedgerRecord
		var account, amount string
		if err := rows.Scan(&account, &record.Description, &amount, &record.Date,
			&record.Category, &record.PaymentMethod, &record.Source, &record.Identifier); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		record.Account = model.Account(account)
		record.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount for %s: %w", record.Identifier, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}
