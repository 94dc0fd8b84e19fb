package review

import (
	"testing"

	"github.com/LeoFurone/personal-finance-furone/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleRecord_PaymentMethod(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{name: "lowercase pix", description: "pix transporte", want: model.PaymentMethodPix},
		{name: "uppercase pix", description: "PIX mercado", want: model.PaymentMethodPix},
		{name: "mixed case pix", description: "Transferência Pix enviada", want: model.PaymentMethodPix},
		{name: "no pix marker", description: "Compra no débito - Padaria", want: model.PaymentMethodDebit},
		{name: "empty description", description: "", want: model.PaymentMethodDebit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := makeEntry("A1", "01/02/2024", "10.00", tt.description)
			answer := model.ReviewAnswer{
				Identifier: "A1",
				Account:    model.AccountFurone,
				Category:   "Mercado",
				Source:     "Salário Mensal",
			}

			record := AssembleRecord(entry, answer)
			assert.Equal(t, tt.want, record.PaymentMethod)
		})
	}
}

func TestAssembleRecord_AmountIsAbsolute(t *testing.T) {
	entry := makeEntry("A1", "01/02/2024", "-42.10", "Mercado")
	answer := model.ReviewAnswer{Account: model.AccountCasal, Category: "Mercado", Source: "13º"}

	record := AssembleRecord(entry, answer)

	assert.True(t, record.Amount.Equal(decimal.RequireFromString("42.10")),
		"got %s", record.Amount)
}

func TestAssembleRecord_WorkedExample(t *testing.T) {
	entry := makeEntry("X1", "2024-01-01", "-50", "Pix transporte")
	eligible := Filter([]model.StatementEntry{entry}, map[string]struct{}{})
	require.Len(t, eligible, 1)

	answer := model.ReviewAnswer{
		Identifier: "X1",
		Account:    model.AccountCasal,
		Category:   "Transporte",
		Source:     "Salário Mensal",
	}

	record := AssembleRecord(eligible[0], answer)

	assert.True(t, record.Amount.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, model.PaymentMethodPix, record.PaymentMethod)
	assert.Equal(t, model.AccountCasal, record.Account)
	assert.Equal(t, "Transporte", record.Category)
	assert.Equal(t, "Salário Mensal", record.Source)
	assert.Equal(t, "X1", record.Identifier)
	assert.Equal(t, "2024-01-01", record.Date)
}

func TestLedgerRecord_Cells(t *testing.T) {
	record := model.LedgerRecord{
		Account:       model.AccountFurone,
		Description:   "Padaria",
		Date:          "02/02/2024",
		Category:      "Dia a dia",
		PaymentMethod: model.PaymentMethodDebit,
		Source:        "Salário Mensal",
		Identifier:    "A2",
		Amount:        decimal.RequireFromString("3.99"),
	}

	cells := record.Cells()

	require.Len(t, cells, 14)
	assert.Equal(t, "", cells[0])
	assert.Equal(t, model.KindExpense, cells[1])
	assert.Equal(t, "Furone", cells[2])
	assert.Equal(t, "Padaria", cells[3])
	assert.Equal(t, model.FundingAccountLabel, cells[4])
	assert.InDelta(t, 3.99, cells[5], 0.0001)
	assert.Equal(t, "02/02/2024", cells[6])
	assert.Equal(t, "Dia a dia", cells[7])
	assert.Equal(t, model.PaymentMethodDebit, cells[8])
	assert.Equal(t, "", cells[9])
	assert.Equal(t, "", cells[10])
	assert.Equal(t, "Salário Mensal", cells[11])
	assert.Equal(t, "", cells[12])
	assert.Equal(t, "A2", cells[13])
}
