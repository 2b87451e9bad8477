// Package investments loads the configuration of a personal investment
// tracker: bank deposits, brokerage portfolios with their target asset
// allocation and tax rules, brokerage commissions and API credentials.
//
// The configuration is a YAML document:
//
//	deposits:
//	  - name: Savings
//	    open-date: 01.02.2020
//	    close-date: 01.02.2021
//	    amount: 100000
//	    interest: 6.5
//	    contributions:
//	      01.06.2020: 10000
//	portfolios:
//	  - name: ib
//	    broker: interactive-brokers
//	    statements: ~/statements/ib
//	    currency: USD
//	    assets:
//	      - name: Stocks
//	        symbol: VTI
//	        weight: 60%
//	      - name: Bonds
//	        symbol: BND
//	        weight: 40%
//	brokers:
//	  interactive-brokers:
//	    deposit-commissions:
//	      wire: {fixed-amount: 10}
//	alphavantage:
//	  api-key: demo
//
// Load returns a Config only if the whole document is valid: every field is
// known and well formed (errors matching ErrSyntax) and values are consistent
// with each other (errors matching ErrInvalid). The returned Config is meant to
// be read, never modified.
package investments
