package investments

import (
	"github.com/etnz/investments/date"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of deposits that do not declare one.
const DefaultCurrency = "RUB"

// DepositConfig is a fixed-term interest-bearing cash deposit.
type DepositConfig struct {
	Name string `yaml:"name" json:"name" validate:"present"`

	OpenDate  date.Date `yaml:"open-date" json:"open-date" validate:"required"`
	CloseDate date.Date `yaml:"close-date" json:"close-date" validate:"required"`

	Currency       string          `yaml:"currency" json:"currency,omitempty"`
	Amount         decimal.Decimal `yaml:"amount" json:"amount" validate:"required"`
	Interest       decimal.Decimal `yaml:"interest" json:"interest" validate:"required"`
	Capitalization bool            `yaml:"capitalization" json:"capitalization"`
	Contributions  CashFlows       `yaml:"contributions" json:"contributions,omitempty"`
}

// Range returns the period the deposit is open.
func (d *DepositConfig) Range() date.Range { return date.Range{From: d.OpenDate, To: d.CloseDate} }

// Principal returns the initial amount of the deposit in its currency.
func (d *DepositConfig) Principal() Money {
	cur := d.Currency
	if cur == "" {
		cur = DefaultCurrency
	}
	return M(d.Amount, cur)
}
