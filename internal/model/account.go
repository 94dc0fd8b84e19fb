package model

import (
	"fmt"
	"strings"
)

// Account identifies which household account a transaction is charged to.
type Account string

const (
	// AccountFurone is his personal account.
	AccountFurone Account = "Furone"
	// AccountSamia is her personal account.
	AccountSamia Account = "Sâmia"
	// AccountCasal is the shared household account.
	AccountCasal Account = "Casal"
)

// Accounts returns the valid accounts in menu order.
func Accounts() []Account {
	return []Account{AccountFurone, AccountSamia, AccountCasal}
}

// AccountMenu renders the numbered account choices shown at the account step.
func AccountMenu() string {
	var b strings.Builder
	for i, a := range Accounts() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, a)
	}
	return b.String()
}

// ParseAccount matches free-form reviewer input against the account menu.
// It accepts the menu number ("1", "2", "3") or the account name,
// case-insensitively. The second return value reports whether the input
// matched.
func ParseAccount(input string) (Account, bool) {
	trimmed := strings.TrimSpace(input)
	for i, a := range Accounts() {
		if trimmed == fmt.Sprintf("%d", i+1) {
			return a, true
		}
		if strings.EqualFold(trimmed, string(a)) {
			return a, true
		}
	}
	return "", false
}
