// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trillium

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// DefaultMeta is the number of leading metadata columns in
// trillium.csv.
const DefaultMeta = 4

// Options control how Load interprets a CSV file.
type Options struct {
	// Meta is the number of leading columns loaded as strings.
	// All following columns are compound measurements, except
	// LocationColumn and MaxColumn, which load as the columns
	// AddLocation and AddRowMax would have added. Zero means
	// DefaultMeta.
	Meta int
}

// LoadFile loads a Frame from the CSV file at path.
func LoadFile(path string, opts Options) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	f, err := Load(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Load reads a Frame from CSV data with a header row. Empty, "NA" and
// "NaN" measurement cells load as NaN.
func Load(r io.Reader, opts Options) (*Frame, error) {
	meta := opts.Meta
	if meta == 0 {
		meta = DefaultMeta
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	header, rows := records[0], records[1:]
	if len(header) < meta {
		return nil, fmt.Errorf("header has %d columns, want at least %d", len(header), meta)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	f := newFrame(len(rows))
	for j, name := range header {
		name = strings.TrimSpace(name)
		if j < meta || name == LocationColumn {
			col := make([]string, len(rows))
			for i, row := range rows {
				col[i] = strings.TrimSpace(row[j])
			}
			if err := f.addStrings(name, col); err != nil {
				return nil, err
			}
			continue
		}

		col := make([]float64, len(rows))
		for i, row := range rows {
			v, err := parseCell(row[j])
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", i+1, name, err)
			}
			col[i] = v
		}
		if err := f.addFloats(name, col); err != nil {
			return nil, err
		}
		if name != MaxColumn {
			f.compounds = append(f.compounds, name)
		}
	}
	return f, nil
}

func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "NA", "NaN", "nan":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// WriteCSV writes f as CSV with a header row. NaN cells are written
// empty. The output loads back with Load.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.names); err != nil {
		return err
	}
	rec := make([]string, len(f.names))
	for i := 0; i < f.n; i++ {
		for j, name := range f.names {
			if col, ok := f.strs[name]; ok {
				rec[j] = col[i]
				continue
			}
			v := f.nums[name][i]
			if math.IsNaN(v) {
				rec[j] = ""
			} else {
				rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
