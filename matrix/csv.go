// SPDX-License-Identifier: MIT

package matrix

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	ctxReadCSV  = "ReadCSV"
	ctxWriteCSV = "WriteCSV"
)

// ReadCSV parses a comma-separated 0/1 matrix, one row per record, and
// validates it with New. Blank lines are skipped and fields are trimmed.
// Rows of differing length are reported as ErrNonSquare, not as a CSV error.
//
// Errors: ErrNonSquare, ErrNonBinary, ErrAsymmetry, or a wrapped read error.
func ReadCSV(r io.Reader, opts ...Option) (*Adjacency, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // shape is validated by ValidateCells
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	cells := make([][]int64, 0)
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ctxReadCSV, err)
		}
		line++
		row := make([]int64, len(rec))
		for j, field := range rec {
			v, perr := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
			if perr != nil {
				return nil, fmt.Errorf("%s: row %d col %d: %q: %w", ctxReadCSV, line, j, field, ErrNonBinary)
			}
			row[j] = v
		}
		cells = append(cells, row)
	}

	am, err := New(cells, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxReadCSV, err)
	}
	return am, nil
}

// WriteCSV writes the view's cells as comma-separated 0/1 rows.
// A round trip through ReadCSV with the same directedness yields an equal view.
func WriteCSV(w io.Writer, am *Adjacency) error {
	if am == nil {
		return fmt.Errorf("%s: %w", ctxWriteCSV, ErrNilMatrix)
	}
	cw := csv.NewWriter(w)
	rec := make([]string, am.n)
	for i := 0; i < am.n; i++ {
		for j := 0; j < am.n; j++ {
			if am.cells[i*am.n+j] {
				rec[j] = "1"
			} else {
				rec[j] = "0"
			}
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("%s: %w", ctxWriteCSV, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", ctxWriteCSV, err)
	}
	return nil
}
