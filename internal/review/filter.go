package review

import (
	"strings"

	"github.com/LeoFurone/personal-finance-furone/internal/model"
)

// billMarker flags statement-settlement transfers (credit-card bill
// payments), which are not real expenses.
const billMarker = "fatura"

// Filter produces the eligible batch from parsed statement entries: rows
// whose identifier is not already in the ledger, whose amount parsed and is
// negative (outgoing), and whose description does not mention the bill
// marker. Source order is preserved. Amounts are sign-flipped to positive on
// emission.
func Filter(entries []model.StatementEntry, known map[string]struct{}) []model.StatementEntry {
	eligible := make([]model.StatementEntry, 0, len(entries))

	for _, entry := range entries {
		if _, recorded := known[strings.TrimSpace(entry.Identifier)]; recorded {
			continue
		}
		if !entry.AmountValid || !entry.Amount.IsNegative() {
			continue
		}
		if strings.Contains(strings.ToLower(entry.Description), billMarker) {
			continue
		}

		entry.Amount = entry.Amount.Neg()
		eligible = append(eligible, entry)
	}

	return eligible
}
