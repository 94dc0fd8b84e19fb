package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAccount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Account
		wantOK  bool
	}{
		{name: "menu number 1", input: "1", want: AccountFurone, wantOK: true},
		{name: "menu number 2", input: "2", want: AccountSamia, wantOK: true},
		{name: "menu number 3", input: "3", want: AccountCasal, wantOK: true},
		{name: "exact name", input: "Casal", want: AccountCasal, wantOK: true},
		{name: "case-insensitive name", input: "sâmia", want: AccountSamia, wantOK: true},
		{name: "surrounding whitespace", input: "  Furone ", want: AccountFurone, wantOK: true},
		{name: "out-of-range number", input: "4", wantOK: false},
		{name: "gibberish", input: "whatever", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAccount(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountMenu(t *testing.T) {
	assert.Equal(t, "1. Furone\n2. Sâmia\n3. Casal", AccountMenu())
}

func TestOptionSetsAreClosed(t *testing.T) {
	assert.Len(t, ExpenseCategories(), 8)
	assert.Len(t, FundingSources(), 4)
	assert.NotContains(t, ExpenseCategories(), "")
	assert.NotContains(t, FundingSources(), "")
}
