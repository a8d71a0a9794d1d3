package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// metaColumns is the number of leading metadata columns in an atlas CSV:
// locality name, area, latitude, longitude.
const metaColumns = 4

// Atlas is a dialect-atlas table: one row per locality, one column per
// concept, each cell holding the attested form(s) for that concept at that
// locality.
type Atlas struct {
	Localities []string
	Concepts   []string
	Cells      [][]string // [locality][concept]
}

// ReadAtlas parses an atlas CSV. The first row is the header (metadata
// columns, then one column per concept), the second row carries concept
// indices and is skipped, and every following row is one locality.
func ReadAtlas(r io.Reader) (*Atlas, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) <= metaColumns {
		return nil, fmt.Errorf("header has %d columns, need more than %d", len(header), metaColumns)
	}
	concepts := header[metaColumns:]

	// Index row.
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return &Atlas{Concepts: concepts}, nil
		}
		return nil, fmt.Errorf("read index row: %w", err)
	}

	a := &Atlas{Concepts: concepts}
	line := 2
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		line++
		if len(row) == 0 {
			continue
		}
		a.Localities = append(a.Localities, row[0])
		cells := make([]string, len(concepts))
		if len(row) > metaColumns {
			copy(cells, row[metaColumns:])
		}
		a.Cells = append(a.Cells, cells)
	}
	return a, nil
}

// ReadAtlasFile opens and parses an atlas CSV file.
func ReadAtlasFile(path string) (*Atlas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAtlas(f)
}

// Column returns the non-empty cells of one concept column.
func (a *Atlas) Column(concept int) []string {
	var cells []string
	for _, row := range a.Cells {
		if c := row[concept]; c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}
