package model

// ExpenseCategories is the closed set of categories offered at the category
// step. Selections are accepted verbatim; free text is not.
func ExpenseCategories() []string {
	return []string{
		"Assinaturas",
		"Casa",
		"Compras",
		"Delivery",
		"Dia a dia",
		"Mercado",
		"Saúde",
		"Transporte",
	}
}

// FundingSources is the closed set of options offered at the funding-source
// step.
func FundingSources() []string {
	return []string{
		"Salário Mensal",
		"13º",
		"14º",
		"Investimentos / Pessoais",
	}
}
