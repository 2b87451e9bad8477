package investments

import (
	"errors"
	"strings"
	"testing"
)

// portfolioDoc returns a document with the given portfolio entries.
func portfolioDoc(portfolios string) string {
	return "portfolios:\n" + portfolios + "brokers: {}\nalphavantage: {api-key: demo}\n"
}

// depositDoc returns a document with the given deposit entries and no portfolio.
func depositDoc(deposits string) string {
	return "deposits:\n" + deposits + "portfolios: []\nbrokers: {}\nalphavantage: {api-key: demo}\n"
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string // empty if valid
	}{
		{"deposit closes before it opens", depositDoc(`
  - name: Savings
    open-date: 02.01.2020
    close-date: 01.01.2020
    amount: 100
    interest: 5
`), `invalid "Savings" deposit dates: 02.01.2020 -> 01.01.2020`},
		{"deposit opens and closes the same day", depositDoc(`
  - name: Savings
    open-date: 01.01.2020
    close-date: 01.01.2020
    amount: 100
    interest: 5
    contributions:
      01.01.2020: 10
`), ""},
		{"contribution before opening", depositDoc(`
  - name: Savings
    open-date: 01.02.2020
    close-date: 01.02.2021
    amount: 100
    interest: 5
    contributions:
      31.01.2020: 10
`), `invalid "Savings" deposit contribution date: 31.01.2020`},
		{"contribution after closing", depositDoc(`
  - name: Savings
    open-date: 01.02.2020
    close-date: 01.02.2021
    amount: 100
    interest: 5
    contributions:
      01.03.2020: 10
      02.02.2021: 10
`), `invalid "Savings" deposit contribution date: 02.02.2021`},
		{"contributions on both boundaries", depositDoc(`
  - name: Savings
    open-date: 01.02.2020
    close-date: 01.02.2021
    amount: 100
    interest: 5
    contributions:
      01.02.2020: 10
      01.02.2021: 10
`), ""},
		{"deposits are checked before portfolios", `
deposits:
  - name: Savings
    open-date: 02.01.2020
    close-date: 01.01.2020
    amount: 100
    interest: 5
portfolios:
  - {name: a, broker: open-broker, statements: /a}
  - {name: a, broker: open-broker, statements: /b}
brokers: {}
alphavantage: {api-key: demo}
`, `invalid "Savings" deposit dates`},
		{"duplicate deposit names are allowed", depositDoc(`
  - {name: Savings, open-date: 01.01.2020, close-date: 01.01.2021, amount: 100, interest: 5}
  - {name: Savings, open-date: 01.01.2021, close-date: 01.01.2022, amount: 100, interest: 5}
`), ""},
		{"duplicate portfolio name", portfolioDoc(`
  - {name: main, broker: interactive-brokers, statements: /ib, currency: USD}
  - {name: main, broker: open-broker, statements: /open, currency: RUB}
`), `duplicate portfolio name: "main"`},
		{"unsupported currency", portfolioDoc(`
  - {name: main, broker: interactive-brokers, statements: /ib, currency: EUR}
`), "unsupported portfolio currency: EUR"},
		{"supported currencies", portfolioDoc(`
  - {name: a, broker: interactive-brokers, statements: /a, currency: USD}
  - {name: b, broker: open-broker, statements: /b, currency: RUB}
`), ""},
		{"master reused as slave", portfolioDoc(`
  - name: main
    broker: interactive-brokers
    statements: /ib
    merge-performance:
      VTI: [VOO]
      SPY: [VTI]
`), "invalid performance merging configuration: duplicated VTI symbol"},
		{"slave merged twice", portfolioDoc(`
  - name: main
    broker: interactive-brokers
    statements: /ib
    merge-performance:
      VTI: [VOO]
      SPY: [VOO]
`), "invalid performance merging configuration: duplicated VOO symbol"},
		{"master merged into itself", portfolioDoc(`
  - name: main
    broker: interactive-brokers
    statements: /ib
    merge-performance:
      VTI: [VTI]
`), "invalid performance merging configuration: duplicated VTI symbol"},
		{"repeated slave in one list", portfolioDoc(`
  - name: main
    broker: interactive-brokers
    statements: /ib
    merge-performance:
      VTI: [VOO, VOO]
`), ""},
		{"same merge in two portfolios", portfolioDoc(`
  - name: a
    broker: interactive-brokers
    statements: /a
    merge-performance:
      VTI: [VOO]
  - name: b
    broker: open-broker
    statements: /b
    merge-performance:
      VOO: [VTI]
`), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.doc))
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("Parse() error = %v, want none", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Parse() = %+v, want an error", cfg)
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, want ErrInvalid", err)
			}
			if errors.Is(err, ErrSyntax) {
				t.Errorf("Parse() error = %v, should not match ErrSyntax", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Parse() error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidate_FirstPortfolioFailureWins(t *testing.T) {
	// the first portfolio is reported even though the second one has a
	// duplicated name.
	doc := portfolioDoc(`
  - name: a
    broker: interactive-brokers
    statements: /a
    currency: EUR
  - name: a
    broker: interactive-brokers
    statements: /b
`)
	_, err := Parse([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "unsupported portfolio currency: EUR") {
		t.Errorf("Parse() error = %v, want the currency of the first portfolio", err)
	}
}
