package renderer

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/etnz/investments"
)

// Config is the printable form of a configuration.
type Config struct {
	Portfolios []Portfolio
	Deposits   []Deposit
	Brokers    []Broker
}

// Portfolio is the printable form of a portfolio.
type Portfolio struct {
	Name           string
	Broker         string
	Statements     string
	Currency       string
	MinTradeVolume string
	MinCashAssets  string
	Restrictions   string
	TaxPaymentDay  string
	Allocation     []AllocationRow
	Merges         []MergeRow
	TaxDeductions  []FlowRow
}

// AllocationRow is a node of the allocation tree, as a nested list item.
type AllocationRow struct {
	Indent       string
	Name         string
	Symbol       string
	Weight       string
	Restrictions string
}

// MergeRow lists the symbols folded into Master.
type MergeRow struct {
	Master string
	Slaves string
}

// FlowRow is a dated amount.
type FlowRow struct {
	Date   string
	Amount string
}

// Deposit is the printable form of a deposit.
type Deposit struct {
	Name           string
	Period         string
	Principal      string
	Interest       string
	Capitalization string
	Contributions  []FlowRow
	Total          string
}

// Broker is the printable form of a brokerage's settings.
type Broker struct {
	Name        string
	Commissions []FlowRow // Date holds the transaction kind.
}

// NewConfig builds the printable form of cfg.
func NewConfig(cfg *investments.Config) *Config {
	c := &Config{}
	for i := range cfg.Portfolios {
		c.Portfolios = append(c.Portfolios, newPortfolio(&cfg.Portfolios[i]))
	}
	for i := range cfg.Deposits {
		c.Deposits = append(c.Deposits, newDeposit(&cfg.Deposits[i]))
	}
	for _, b := range []investments.Broker{investments.InteractiveBrokers, investments.OpenBroker} {
		settings := cfg.Brokers.Get(b)
		if settings == nil {
			continue
		}
		broker := Broker{Name: b.String()}
		for _, kind := range slices.Sorted(maps.Keys(settings.DepositCommissions)) {
			broker.Commissions = append(broker.Commissions, FlowRow{
				Date:   kind,
				Amount: settings.DepositCommissions[kind].FixedAmount.String(),
			})
		}
		c.Brokers = append(c.Brokers, broker)
	}
	return c
}

func newPortfolio(p *investments.PortfolioConfig) Portfolio {
	v := Portfolio{
		Name:         p.Name,
		Broker:       p.Broker.String(),
		Statements:   p.Statements,
		Currency:     p.Currency,
		Restrictions: restrictions(p.RestrictBuying, p.RestrictSelling),
	}
	if v.Currency == "" {
		v.Currency = "-"
	}
	if p.MinTradeVolume != nil {
		v.MinTradeVolume = p.MinTradeVolume.String()
	}
	if p.MinCashAssets != nil {
		v.MinCashAssets = p.MinCashAssets.String()
	}
	switch p.TaxPaymentDay.Kind() {
	case investments.TaxPaymentOnClose:
		v.TaxPaymentDay = "on position close"
	case investments.TaxPaymentOnDay:
		v.TaxPaymentDay = fmt.Sprintf("%s %d", p.TaxPaymentDay.Month(), p.TaxPaymentDay.Day())
	}
	v.Allocation = allocationRows(p.Assets, 0, nil)
	for _, master := range slices.Sorted(maps.Keys(p.MergePerformance)) {
		v.Merges = append(v.Merges, MergeRow{
			Master: master,
			Slaves: strings.Join(p.MergePerformance[master], ", "),
		})
	}
	for _, f := range p.TaxDeductions {
		v.TaxDeductions = append(v.TaxDeductions, FlowRow{Date: f.Date.String(), Amount: f.Amount.String()})
	}
	return v
}

// allocationRows flattens the allocation tree depth first.
func allocationRows(assets []investments.AssetAllocationConfig, depth int, rows []AllocationRow) []AllocationRow {
	for i := range assets {
		a := &assets[i]
		row := AllocationRow{
			Indent:       strings.Repeat("  ", depth),
			Name:         a.Name,
			Weight:       a.Weight.String(),
			Restrictions: restrictions(a.RestrictBuying, a.RestrictSelling),
		}
		if a.Symbol != nil {
			row.Symbol = *a.Symbol
		}
		rows = append(rows, row)
		rows = allocationRows(a.Assets, depth+1, rows)
	}
	return rows
}

func newDeposit(d *investments.DepositConfig) Deposit {
	principal := d.Principal()
	v := Deposit{
		Name:           d.Name,
		Period:         d.Range().String(),
		Principal:      principal.String(),
		Interest:       d.Interest.String() + "%",
		Capitalization: "no",
		Total:          principal.Add(d.Contributions.Total()).String(),
	}
	if d.Capitalization {
		v.Capitalization = "yes"
	}
	for _, f := range d.Contributions {
		v.Contributions = append(v.Contributions, FlowRow{
			Date:   f.Date.String(),
			Amount: investments.M(f.Amount, principal.Currency()).String(),
		})
	}
	return v
}

// restrictions describes the buy and sell restrictions, "" if there are none.
func restrictions(buying, selling *bool) string {
	var r []string
	if buying != nil && *buying {
		r = append(r, "no buying")
	}
	if selling != nil && *selling {
		r = append(r, "no selling")
	}
	return strings.Join(r, ", ")
}
