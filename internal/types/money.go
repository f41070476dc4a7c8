// README: Common money value object used by the budget calculator and guide budgets.
package types

import "strings"

// Money is an amount in a single ISO 4217 currency. Amounts are plain numbers as
// produced by the generation service; no minor-unit scaling is applied.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// NewMoney normalizes the currency code to upper case.
func NewMoney(amount float64, currency string) Money {
	return Money{Amount: amount, Currency: strings.ToUpper(strings.TrimSpace(currency))}
}

// Times multiplies the amount by n, keeping the currency.
func (m Money) Times(n float64) Money {
	return Money{Amount: m.Amount * n, Currency: m.Currency}
}

// Plus adds o to m. The caller guarantees both share a currency.
func (m Money) Plus(o Money) Money {
	return Money{Amount: m.Amount + o.Amount, Currency: m.Currency}
}
