package correlation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/corrmap/dataset"
	"github.com/katalvlaran/corrmap/matrix"
)

// ErrNilDataset is returned by Compute when the dataset is nil.
var ErrNilDataset = errors.New("correlation: nil dataset")

// SymmetryTol is the tolerance used when checking a table for symmetry.
const SymmetryTol = 1e-9

// Table is a square correlation matrix labeled by the dataset schema.
type Table struct {
	labels []string
	values *matrix.Dense

	// Insufficient is set when the dataset had fewer than two records and
	// every entry is NaN.
	Insufficient bool
	// Observations is the number of records the table was computed from.
	Observations int
}

// Compute returns the Pearson correlation table of ds in schema order.
func Compute(ds *dataset.Dataset) (*Table, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}

	X, err := ds.Matrix()
	if err != nil {
		return nil, fmt.Errorf("correlation: %w", err)
	}

	t := &Table{labels: dataset.Labels(), Observations: ds.Len()}
	corr, _, _, err := matrix.Correlation(X)
	switch {
	case errors.Is(err, matrix.ErrInsufficientData):
		t.Insufficient = true
		if t.values, err = matrix.NewFilled(dataset.NumFields, dataset.NumFields, math.NaN()); err != nil {
			return nil, fmt.Errorf("correlation: %w", err)
		}
		return t, nil
	case err != nil:
		return nil, fmt.Errorf("correlation: %w", err)
	}

	d, ok := corr.(*matrix.Dense)
	if !ok {
		d = corr.Clone().(*matrix.Dense)
	}
	t.values = d

	return t, nil
}

// NewTable wraps an existing square matrix with labels. The matrix is cloned.
func NewTable(labels []string, values matrix.Matrix) (*Table, error) {
	if err := matrix.ValidateSquare(values); err != nil {
		return nil, fmt.Errorf("correlation: %w", err)
	}
	if len(labels) != values.Rows() {
		return nil, fmt.Errorf("correlation: %d labels for %d rows: %w", len(labels), values.Rows(), matrix.ErrDimensionMismatch)
	}
	d, ok := values.Clone().(*matrix.Dense)
	if !ok {
		return nil, fmt.Errorf("correlation: unsupported matrix type %T", values)
	}
	ls := make([]string, len(labels))
	copy(ls, labels)

	return &Table{labels: ls, values: d}, nil
}

// Size returns the number of rows (and columns).
func (t *Table) Size() int { return len(t.labels) }

// Labels returns the row/column labels in order.
func (t *Table) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)

	return out
}

// At returns entry (i, j); out-of-range indices read as NaN.
func (t *Table) At(i, j int) float64 {
	v, err := t.values.At(i, j)
	if err != nil {
		return math.NaN()
	}

	return v
}

// Pair returns the correlation between two schema fields.
func (t *Table) Pair(a, b dataset.Field) float64 { return t.At(a.Index(), b.Index()) }

// Matrix returns a copy of the underlying values.
func (t *Table) Matrix() *matrix.Dense { return t.values.Clone().(*matrix.Dense) }

// Degenerate lists the fields whose correlation is undefined (NaN diagonal).
// For an Insufficient table every field is listed.
func (t *Table) Degenerate() []dataset.Field {
	var out []dataset.Field
	for i := 0; i < t.Size() && i < dataset.NumFields; i++ {
		if math.IsNaN(t.At(i, i)) {
			out = append(out, dataset.Fields[i])
		}
	}

	return out
}

// Validate checks the structural invariants: square, symmetric within
// SymmetryTol, unit diagonal where defined, entries within [-1, 1].
func (t *Table) Validate() error {
	if err := matrix.ValidateSymmetric(t.values, SymmetryTol); err != nil {
		return fmt.Errorf("correlation: %w", err)
	}
	n := t.Size()
	for i := 0; i < n; i++ {
		if d := t.At(i, i); !math.IsNaN(d) && d != 1 {
			return fmt.Errorf("correlation: diagonal %s=%g", t.labels[i], d)
		}
		for j := 0; j < n; j++ {
			if v := t.At(i, j); v < -1 || v > 1 {
				return fmt.Errorf("correlation: %s/%s=%g outside [-1,1]", t.labels[i], t.labels[j], v)
			}
		}
	}

	return nil
}

// FormatValue renders a coefficient with two decimals, or "nan".
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}

	return fmt.Sprintf("%.2f", v)
}

// String renders the table as fixed-width text with two-decimal values.
func (t *Table) String() string {
	width := 0
	for _, l := range t.labels {
		if len(l) > width {
			width = len(l)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s", width, "")
	for j := range t.labels {
		fmt.Fprintf(&sb, " %6s", fmt.Sprintf("[%d]", j))
	}
	sb.WriteByte('\n')
	for i, l := range t.labels {
		fmt.Fprintf(&sb, "%-*s", width, l)
		for j := range t.labels {
			fmt.Fprintf(&sb, " %6s", FormatValue(t.At(i, j)))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
