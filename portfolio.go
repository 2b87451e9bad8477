package investments

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// supportedCurrencies are the currencies a portfolio can be reported in.
var supportedCurrencies = []string{"RUB", "USD"}

// PortfolioConfig is a brokerage account and the policy it is managed with.
type PortfolioConfig struct {
	Name       string `yaml:"name" json:"name" validate:"present"`
	Broker     Broker `yaml:"broker" json:"broker" validate:"required"`
	Statements string `yaml:"statements" json:"statements" validate:"present"`

	Currency        string           `yaml:"currency" json:"currency,omitempty"`
	MinTradeVolume  *decimal.Decimal `yaml:"min-trade-volume" json:"min-trade-volume,omitempty"`
	MinCashAssets   *decimal.Decimal `yaml:"min-cash-assets" json:"min-cash-assets,omitempty"`
	RestrictBuying  *bool            `yaml:"restrict-buying" json:"restrict-buying,omitempty"`
	RestrictSelling *bool            `yaml:"restrict-selling" json:"restrict-selling,omitempty"`

	// MergePerformance folds the performance of each slave symbol into its
	// master symbol. Slave lists are deduplicated and sorted on load.
	MergePerformance map[string][]string `yaml:"merge-performance" json:"merge-performance,omitempty"`

	Assets []AssetAllocationConfig `yaml:"assets" json:"assets,omitempty" validate:"dive"`

	TaxPaymentDay TaxPaymentDay `yaml:"tax-payment-day" json:"tax-payment-day"`
	TaxDeductions CashFlows     `yaml:"tax-deductions" json:"tax-deductions,omitempty"`
}

// StockSymbols returns every symbol of the allocation tree, sorted.
func (p *PortfolioConfig) StockSymbols() []string {
	symbols := make(map[string]struct{})
	for i := range p.Assets {
		p.Assets[i].collectSymbols(symbols)
	}
	return slices.Sorted(maps.Keys(symbols))
}

// nullMergeList returns the first master, in sorted order, whose list of
// merged symbols is null in the document.
func (p *PortfolioConfig) nullMergeList() string {
	for _, master := range slices.Sorted(maps.Keys(p.MergePerformance)) {
		if p.MergePerformance[master] == nil {
			return master
		}
	}
	return ""
}

// normalizeMergePerformance turns every slave list into a sorted set.
func (p *PortfolioConfig) normalizeMergePerformance() {
	for master, slaves := range p.MergePerformance {
		slaves = slices.Clone(slaves)
		slices.Sort(slaves)
		p.MergePerformance[master] = slices.Compact(slaves)
	}
}
