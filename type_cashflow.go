package investments

import (
	"slices"

	"github.com/etnz/investments/date"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// CashFlow is a dated, strictly positive amount.
type CashFlow struct {
	Date   date.Date       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// CashFlows is a list of cash flows sorted by date.
type CashFlows []CashFlow

// ParseCashFlows reads a "date -> amount" mapping into cash flows sorted by date.
func ParseCashFlows(raw map[string]string) (CashFlows, error) {
	flows := make(CashFlows, 0, len(raw))
	for on, amount := range raw {
		d, err := date.Parse(on)
		if err != nil {
			return nil, &ParseError{What: "date", Raw: on}
		}
		a, err := decimal.NewFromString(amount)
		if err != nil || !a.IsPositive() {
			return nil, &ParseError{What: "amount", Raw: amount}
		}
		flows = append(flows, CashFlow{Date: d, Amount: a})
	}
	flows.Sort()
	return flows, nil
}

// Sort sorts flows by date. Flows on the same date are ordered by amount so
// that the order does not depend on how the mapping was read.
func (flows CashFlows) Sort() {
	slices.SortStableFunc(flows, func(a, b CashFlow) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return a.Amount.Cmp(b.Amount)
	})
}

// Total returns the sum of all amounts.
func (flows CashFlows) Total() decimal.Decimal {
	total := decimal.Zero
	for _, f := range flows {
		total = total.Add(f.Amount)
	}
	return total
}

// UnmarshalYAML reads cash flows from a yaml mapping.
func (flows *CashFlows) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	v, err := ParseCashFlows(raw)
	if err != nil {
		return err.(*ParseError).at(node.Line)
	}
	*flows = v
	return nil
}
