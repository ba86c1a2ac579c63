// Package dataset holds the year-indexed tables plotted by the figure generator.
//
// Both tables are ordered lists rather than maps so that display order is the
// declaration order. Nothing in the render path sorts; Validate enforces that
// the declared order is already strictly ascending by year.
package dataset

import (
	"github.com/pkg/errors"
)

var (
	ErrEmpty       = errors.New("table has no records")
	ErrUnordered   = errors.New("years must be strictly ascending")
	ErrNonPositive = errors.New("values must be positive for a log scale")
	ErrNoDevice    = errors.New("record has no device label")
)

// Record is one year -> (device, value) entry.
// For transistor tables Value is a transistor count; for storage tables it is a capacity in GB.
type Record struct {
	Year   int     `mapstructure:"year" json:"year"`
	Device string  `mapstructure:"device" json:"device"`
	Value  float64 `mapstructure:"value" json:"value"`
}

// Table is a named, read-only list of records in display order.
type Table struct {
	Name    string
	Records []Record
}

// Len returns the number of records.
func (t Table) Len() int { return len(t.Records) }

// Validate checks the table invariants: non-empty, strictly ascending unique years,
// positive values and a device label on every record.
func (t Table) Validate() error {
	if len(t.Records) == 0 {
		return errors.Wrapf(ErrEmpty, "table %q", t.Name)
	}
	for i, r := range t.Records {
		if r.Device == "" {
			return errors.Wrapf(ErrNoDevice, "table %q year %d", t.Name, r.Year)
		}
		if !(r.Value > 0) {
			return errors.Wrapf(ErrNonPositive, "table %q year %d value %v", t.Name, r.Year, r.Value)
		}
		if i > 0 && r.Year <= t.Records[i-1].Year {
			return errors.Wrapf(ErrUnordered, "table %q: %d follows %d", t.Name, r.Year, t.Records[i-1].Year)
		}
	}
	return nil
}

// Years returns the x values as float64 in declaration order.
func (t Table) Years() []float64 {
	out := make([]float64, len(t.Records))
	for i, r := range t.Records {
		out[i] = float64(r.Year)
	}
	return out
}

// Values returns the y values in declaration order.
func (t Table) Values() []float64 {
	out := make([]float64, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.Value
	}
	return out
}

// Bounds returns the smallest and largest value. Both are zero for an empty table.
func (t Table) Bounds() (min, max float64) {
	for i, r := range t.Records {
		if i == 0 || r.Value < min {
			min = r.Value
		}
		if i == 0 || r.Value > max {
			max = r.Value
		}
	}
	return min, max
}

// Lookup returns the record for a year.
func (t Table) Lookup(year int) (Record, bool) {
	for _, r := range t.Records {
		if r.Year == year {
			return r, true
		}
	}
	return Record{}, false
}
