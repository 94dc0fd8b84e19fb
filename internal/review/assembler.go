package review

import (
	"strings"

	"github.com/LeoFurone/personal-finance-furone/internal/model"
)

// instantTransferMarker identifies instant-transfer payments by their
// description.
const instantTransferMarker = "pix"

// AssembleRecord merges one eligible statement entry with its collected
// answers into the final ledger record. The payment method is derived from
// the description; the amount is recorded as its absolute value. Pure
// function, no I/O.
func AssembleRecord(entry model.StatementEntry, answer model.ReviewAnswer) model.LedgerRecord {
	method := model.PaymentMethodDebit
	if strings.Contains(strings.ToLower(entry.Description), instantTransferMarker) {
		method = model.PaymentMethodPix
	}

	return model.LedgerRecord{
		Account:       answer.Account,
		Description:   entry.Description,
		Date:          entry.Date,
		Category:      answer.Category,
		PaymentMethod: method,
		Source:        answer.Source,
		Identifier:    entry.Identifier,
		Amount:        entry.Amount.Abs(),
	}
}
