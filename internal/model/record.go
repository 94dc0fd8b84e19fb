package model

import "github.com/shopspring/decimal"

// Payment methods recorded on a ledger row.
const (
	PaymentMethodPix   = "Pix"
	PaymentMethodDebit = "Débito"
)

// KindExpense is the entry kind written on every reviewed row; the review
// flow only ever handles outgoing movements.
const KindExpense = "Despesa"

// FundingAccountLabel is the fixed label of the account the money leaves,
// written on every ledger row.
const FundingAccountLabel = "Nubank / Furone"

// ReviewAnswer accumulates the classification answers collected for one
// statement entry across the three review steps.
type ReviewAnswer struct {
	Identifier string
	Account    Account
	Category   string
	Source     string
}

// Complete reports whether all three answers have been collected.
func (a ReviewAnswer) Complete() bool {
	return a.Account != "" && a.Category != "" && a.Source != ""
}

// LedgerRecord is one fully classified transaction ready to be appended to
// the ledger.
type LedgerRecord struct {
	Account       Account
	Description   string
	Date          string
	Category      string
	PaymentMethod string
	Source        string
	Identifier    string
	Amount        decimal.Decimal
}

// Cells returns the record as the 14 ordered ledger columns (A through N).
// Columns with no value are blank.
func (r LedgerRecord) Cells() []any {
	return []any{
		"",
		KindExpense,
		string(r.Account),
		r.Description,
		FundingAccountLabel,
		r.Amount.InexactFloat64(),
		r.Date,
		r.Category,
		r.PaymentMethod,
		"",
		"",
		r.Source,
		"",
		r.Identifier,
	}
}
