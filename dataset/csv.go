package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes a header of field labels followed by one row per record.
// Purchase frequency is written as an integer; other values use the
// shortest representation that round-trips.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Labels()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, NumFields)
	for i := 0; i < d.Len(); i++ {
		r := d.records[i]
		for _, f := range Fields {
			if f == PurchaseFrequency {
				row[f] = strconv.Itoa(r.PurchaseFrequency)
				continue
			}
			row[f] = strconv.FormatFloat(r.Value(f), 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}
