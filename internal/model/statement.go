// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StatementEntry represents a single row from a bank statement export.
// Date is kept verbatim as exported by the bank and written through to the
// ledger unchanged.
type StatementEntry struct {
	Identifier  string
	Date        string
	Description string
	Amount      decimal.Decimal
	AmountValid bool
}

// Summary returns a short human-readable rendering of the entry, used when
// prompting the reviewer.
func (e StatementEntry) Summary() string {
	return fmt.Sprintf("%s | %s | %s", e.Date, e.Amount.StringFixed(2), e.Description)
}
