// SPDX-License-Identifier: MIT
// Package: dataset
//
// text.go: the whitespace-delimited record format and CSV.

package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ReadText reads records "label v0 ... v{inputSize-1}" until EOF.
// Line breaks carry no meaning; records are delimited by count.
//
// Errors:
//   - ErrFormat for a bad token, a negative label or a truncated record.
//
// Complexity: O(total tokens).
func ReadText(r io.Reader, inputSize int) ([]Sample, error) {
	if inputSize <= 0 {
		return nil, fmt.Errorf("ReadText: inputSize %d: %w", inputSize, ErrInputSize)
	}
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var out []Sample
	for sc.Scan() {
		label, err := strconv.Atoi(sc.Text())
		if err != nil || label < 0 {
			return nil, fmt.Errorf("ReadText: record %d label %q: %w", len(out), sc.Text(), ErrFormat)
		}
		s := Sample{Label: label, Input: make([]float64, inputSize)}
		for i := range s.Input {
			if !sc.Scan() {
				if err = sc.Err(); err != nil {
					return nil, fmt.Errorf("ReadText: %w", err)
				}
				return nil, fmt.Errorf("ReadText: record %d truncated after %d values: %w", len(out), i, ErrFormat)
			}
			if s.Input[i], err = strconv.ParseFloat(sc.Text(), 64); err != nil {
				return nil, fmt.Errorf("ReadText: record %d value %d %q: %w", len(out), i, sc.Text(), ErrFormat)
			}
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadText: %w", err)
	}

	return out, nil
}

// WriteText writes one record per line in the ReadText format.
func WriteText(w io.Writer, samples []Sample) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, s := range samples {
		bw.Write(strconv.AppendInt(buf[:0], int64(s.Label), 10))
		for _, v := range s.Input {
			bw.WriteByte(' ')
			bw.Write(strconv.AppendFloat(buf[:0], v, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteText: %w", err)
	}

	return nil
}

// ReadCSV reads one sample per CSV record, label in the first column.
// Every record must carry the same number of values.
//
// Errors:
//   - ErrFormat for a bad field; ErrInputSize for ragged records.
func ReadCSV(r io.Reader) ([]Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []Sample
	width := -1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: %w: %w", ErrFormat, err)
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("ReadCSV: record %d has %d fields: %w", len(out), len(rec), ErrFormat)
		}
		if width < 0 {
			width = len(rec) - 1
		} else if len(rec)-1 != width {
			return nil, fmt.Errorf("ReadCSV: record %d has %d values, want %d: %w", len(out), len(rec)-1, width, ErrInputSize)
		}
		label, err := strconv.Atoi(rec[0])
		if err != nil || label < 0 {
			return nil, fmt.Errorf("ReadCSV: record %d label %q: %w", len(out), rec[0], ErrFormat)
		}
		s := Sample{Label: label, Input: make([]float64, width)}
		for j, f := range rec[1:] {
			if s.Input[j], err = strconv.ParseFloat(f, 64); err != nil {
				return nil, fmt.Errorf("ReadCSV: record %d value %d %q: %w", len(out), j, f, ErrFormat)
			}
		}
		out = append(out, s)
	}

	return out, nil
}
