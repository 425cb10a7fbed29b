// SPDX-License-Identifier: MIT

// Package csvio - encoder and decoder.
//
// Determinism:
//   - Column order is the canonical frame order; rows are written in order.
//   - Output is byte-identical for equal inputs and options.

package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/tabkit/table"
)

// SerializeToCSVFormattedBytes encodes a 2-D numeric table as CSV bytes.
//
// Implementation:
//   - Stage 1: normalize src via table.From (slices, Dense, Frame, NDArray,
//     gonum matrices, any table.Table).
//   - Stage 2: canonicalize: keep labels if present, else "0".."n-1".
//   - Stage 3: write the header, then one record per row, through encoding/csv.
//
// Errors:
//   - table sentinels for unsupported, ragged or non-2-D inputs.
//   - ErrNoColumns for zero-width tables.
//   - ErrNonIntegral for Int64 columns holding non-integers.
//
// The function is pure: it touches nothing but an in-memory buffer.
func SerializeToCSVFormattedBytes(src any, opts ...Option) ([]byte, error) {
	o := gatherOptions(opts...)

	t, err := table.From(src)
	if err != nil {
		return nil, fmt.Errorf("SerializeToCSVFormattedBytes: %w", err)
	}
	f, err := table.Canonical(t)
	if err != nil {
		return nil, fmt.Errorf("SerializeToCSVFormattedBytes: %w", err)
	}
	rows, cols := f.Dims()
	if cols == 0 {
		return nil, fmt.Errorf("SerializeToCSVFormattedBytes: %w", ErrNoColumns)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = o.useCRLF
	if err = writeRecord(w, &buf, f.Columns(), o.useCRLF); err != nil {
		return nil, fmt.Errorf("SerializeToCSVFormattedBytes: header: %w", err)
	}

	kinds := f.DTypes()
	data := f.Values()
	rec := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rec[j], err = formatValue(data[i*cols+j], kinds[j]); err != nil {
				return nil, fmt.Errorf("SerializeToCSVFormattedBytes(%d,%d): %w", i, j, err)
			}
		}
		if err = writeRecord(w, &buf, rec, o.useCRLF); err != nil {
			return nil, fmt.Errorf("SerializeToCSVFormattedBytes: row %d: %w", i, err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return nil, fmt.Errorf("SerializeToCSVFormattedBytes: %w", err)
	}

	o.logger.Debug("serialized table", "rows", rows, "cols", cols, "bytes", buf.Len())

	return buf.Bytes(), nil
}

// ReadCSV decodes bytes produced by SerializeToCSVFormattedBytes (or any
// comma-delimited numeric CSV with a header) into a Frame.
//
// The header becomes the column labels. A column whose every field parses
// as an integer is Int64, otherwise Float64; empty fields decode as NaN.
// Every failure wraps ErrMalformedCSV.
func ReadCSV(b []byte, opts ...Option) (*table.Frame, error) {
	o := gatherOptions(opts...)

	r := csv.NewReader(bytes.NewReader(b))
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ReadCSV: empty input: %w", ErrMalformedCSV)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: header: %w: %w", ErrMalformedCSV, err)
	}
	cols := len(header)

	// Gather fields column-wise so kinds can be inferred per column.
	fields := make([][]string, cols)
	rows := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: %w: %w", ErrMalformedCSV, err)
		}
		for j, s := range rec {
			fields[j] = append(fields[j], s)
		}
		rows++
	}

	data := make([]float64, rows*cols)
	kinds := make([]table.DType, cols)
	for j := 0; j < cols; j++ {
		vals, kind, bad, err := parseColumn(fields[j])
		if err != nil {
			return nil, fmt.Errorf("ReadCSV(%d,%d): %w: %w", bad, j, ErrMalformedCSV, err)
		}
		kinds[j] = kind
		for i, v := range vals {
			data[i*cols+j] = v
		}
	}

	f, err := table.NewFrameFrom(header, kinds, rows, data)
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w: %w", ErrMalformedCSV, err)
	}
	o.logger.Debug("decoded csv", "rows", rows, "cols", cols)

	return f, nil
}

// writeRecord writes rec through w. A lone empty field would otherwise be an
// empty line, which readers skip, so it is emitted quoted straight into buf.
func writeRecord(w *csv.Writer, buf *bytes.Buffer, rec []string, crlf bool) error {
	if len(rec) != 1 || rec[0] != "" {
		return w.Write(rec)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	buf.WriteString(`""`)
	buf.WriteString(lineEnd(crlf))

	return nil
}

// lineEnd returns the record terminator for the configured style.
func lineEnd(crlf bool) string {
	if crlf {
		return "\r\n"
	}

	return "\n"
}
