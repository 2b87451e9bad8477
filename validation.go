package investments

import (
	"maps"
	"slices"
)

// Validate checks the relations between configuration values and returns the
// first violation found.
//
// Deposits are checked first, then portfolios in document order.
func (c *Config) Validate() error {
	for i := range c.Deposits {
		if err := c.Deposits[i].validate(); err != nil {
			return err
		}
	}

	names := make(map[string]struct{}, len(c.Portfolios))
	for i := range c.Portfolios {
		p := &c.Portfolios[i]
		if _, dup := names[p.Name]; dup {
			return invalidf("duplicate portfolio name: %q", p.Name)
		}
		names[p.Name] = struct{}{}

		if err := p.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (d *DepositConfig) validate() error {
	r := d.Range()
	if !r.Valid() {
		return invalidf("invalid %q deposit dates: %s", d.Name, r)
	}
	for _, c := range d.Contributions {
		if !r.Contains(c.Date) {
			return invalidf("invalid %q deposit contribution date: %s", d.Name, c.Date)
		}
	}
	return nil
}

func (p *PortfolioConfig) validate() error {
	if p.Currency != "" && !slices.Contains(supportedCurrencies, p.Currency) {
		return invalidf("unsupported portfolio currency: %s", p.Currency)
	}

	// A symbol is merged at most once within a portfolio. The same symbol
	// may be merged differently in another portfolio.
	merged := make(map[string]struct{})
	add := func(symbol string) error {
		if _, dup := merged[symbol]; dup {
			return invalidf("invalid performance merging configuration: duplicated %s symbol", symbol)
		}
		merged[symbol] = struct{}{}
		return nil
	}
	for _, master := range slices.Sorted(maps.Keys(p.MergePerformance)) {
		if err := add(master); err != nil {
			return err
		}
		for _, slave := range p.MergePerformance[master] {
			if err := add(slave); err != nil {
				return err
			}
		}
	}
	return nil
}
