package investments

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/etnz/investments/date"
	"gopkg.in/yaml.v3"
)

// TaxPaymentKind tells how the payment day of a TaxPaymentDay is computed.
type TaxPaymentKind int

const (
	// TaxPaymentOnDay pays on a fixed day of the year following the trade.
	TaxPaymentOnDay TaxPaymentKind = iota
	// TaxPaymentOnClose pays when the position is closed.
	TaxPaymentOnClose
)

const onCloseToken = "on-close"

// DefaultTaxPaymentDay applies to portfolios that do not declare one.
var DefaultTaxPaymentDay = TaxPaymentDay{kind: TaxPaymentOnDay, month: time.April, day: 30}

var taxPaymentDayRE = regexp.MustCompile(`^([0-9]+)\.([0-9]+)$`)

// TaxPaymentDay is the rule giving the date tax on a portfolio's gains is due.
//
// The zero value is unset.
type TaxPaymentDay struct {
	kind  TaxPaymentKind
	month time.Month
	day   int
}

// TaxOnClose returns the rule paying tax when the position is closed.
func TaxOnClose() TaxPaymentDay { return TaxPaymentDay{kind: TaxPaymentOnClose} }

// TaxOnDay returns the rule paying tax every year on day.month.
//
// The day must exist every year, so February 29 is rejected.
func TaxOnDay(day int, month time.Month) (TaxPaymentDay, error) {
	raw := fmt.Sprintf("%d.%d", day, month)
	if month < time.January || month > time.December || day < 1 || (day == 29 && month == time.February) {
		return TaxPaymentDay{}, &ParseError{What: "tax payment day", Raw: raw}
	}
	year := date.Today().Year()
	if d := date.New(year, month, day); d.Month() != month || d.Day() != day {
		return TaxPaymentDay{}, &ParseError{What: "tax payment day", Raw: raw}
	}
	return TaxPaymentDay{kind: TaxPaymentOnDay, month: month, day: day}, nil
}

// ParseTaxPaymentDay reads "on-close" or a "day.month" pair like "15.3".
func ParseTaxPaymentDay(s string) (TaxPaymentDay, error) {
	if s == onCloseToken {
		return TaxOnClose(), nil
	}
	invalid := &ParseError{What: "tax payment day", Raw: s}
	m := taxPaymentDayRE.FindStringSubmatch(s)
	if m == nil {
		return TaxPaymentDay{}, invalid
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return TaxPaymentDay{}, invalid
	}
	month, err := strconv.Atoi(m[2])
	if err != nil {
		return TaxPaymentDay{}, invalid
	}
	t, err := TaxOnDay(day, time.Month(month))
	if err != nil {
		return TaxPaymentDay{}, invalid
	}
	return t, nil
}

// IsZero reports whether the rule is unset.
func (t TaxPaymentDay) IsZero() bool { return t == TaxPaymentDay{} }

func (t TaxPaymentDay) Kind() TaxPaymentKind { return t.kind }
func (t TaxPaymentDay) Month() time.Month    { return t.month }
func (t TaxPaymentDay) Day() int             { return t.day }

// PaymentDate returns the date tax is due for a position traded during
// tradeYear and closed on closeDate.
func (t TaxPaymentDay) PaymentDate(tradeYear int, closeDate date.Date) date.Date {
	switch t.kind {
	case TaxPaymentOnClose:
		return closeDate
	case TaxPaymentOnDay:
		return date.New(tradeYear+1, t.month, t.day)
	default:
		panic(fmt.Sprintf("unknown tax payment kind %d", t.kind))
	}
}

func (t TaxPaymentDay) String() string {
	switch t.kind {
	case TaxPaymentOnClose:
		return onCloseToken
	case TaxPaymentOnDay:
		return fmt.Sprintf("%d.%d", t.day, t.month)
	default:
		panic(fmt.Sprintf("unknown tax payment kind %d", t.kind))
	}
}

// UnmarshalYAML reads a tax payment day from a yaml scalar.
func (t *TaxPaymentDay) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseTaxPaymentDay(s)
	if err != nil {
		return err.(*ParseError).at(node.Line)
	}
	*t = v
	return nil
}

func (t TaxPaymentDay) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }
