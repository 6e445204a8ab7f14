package dataset

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/corrmap/matrix"
)

// ErrOutOfBounds is returned by CheckBounds when a value leaves its domain.
var ErrOutOfBounds = errors.New("dataset: value out of bounds")

// Dataset is an ordered, read-only collection of records.
type Dataset struct {
	records []Record
}

// New copies records into a Dataset.
func New(records []Record) *Dataset {
	rs := make([]Record, len(records))
	copy(rs, records)

	return &Dataset{records: rs}
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}

	return len(d.records)
}

// Record returns the i-th record.
func (d *Dataset) Record(i int) Record { return d.records[i] }

// Records returns a copy of all records in order.
func (d *Dataset) Records() []Record {
	out := make([]Record, d.Len())
	copy(out, d.records)

	return out
}

// Column returns field f for every record, in record order.
func (d *Dataset) Column(f Field) []float64 {
	out := make([]float64, d.Len())
	for i := range out {
		out[i] = d.records[i].Value(f)
	}

	return out
}

// Matrix returns the N×NumFields matrix of the dataset in schema order.
// An empty dataset yields a 0×NumFields matrix.
func (d *Dataset) Matrix() (*matrix.Dense, error) {
	cols := make([][]float64, NumFields)
	for _, f := range Fields {
		cols[f] = d.Column(f)
	}
	m, err := matrix.NewFromColumns(cols)
	if err != nil {
		return nil, fmt.Errorf("dataset matrix: %w", err)
	}

	return m, nil
}

// CheckBounds verifies every value against its field's inclusive domain.
// NaN never satisfies a domain.
func (d *Dataset) CheckBounds() error {
	return d.CheckWithin(SchemaDomains())
}

// CheckWithin verifies every value against dom, e.g. the bounds of a
// configured model that widens the documented ranges.
func (d *Dataset) CheckWithin(dom Domains) error {
	for i := 0; i < d.Len(); i++ {
		r := d.records[i]
		for _, f := range Fields {
			v := r.Value(f)
			if math.IsNaN(v) || !dom[f].Contains(v) {
				return fmt.Errorf("record %d: %s=%g: %w", i, f, v, ErrOutOfBounds)
			}
		}
	}

	return nil
}
