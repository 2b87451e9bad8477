package date

import "fmt"

// Range represents a range of dates.
type Range struct{ From, To Date }

// Valid reports whether From is not after To.
func (r Range) Valid() bool { return !r.From.After(r.To) }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

func (r Range) String() string { return fmt.Sprintf("%s -> %s", r.From, r.To) }
