// Package export writes the current loadout to shareable documents: a PDF
// drawing of the loaded bar and an XLSX loading sheet.
package export

import (
	"fmt"
	"io"
	"strings"

	"barbell/internal/loadout"
	"barbell/internal/render"
)

// Format is an export file format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts "pdf" or "xlsx" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPDF, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (want pdf or xlsx)", s)
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return "", false
	}
	f, err := ParseFormat(path[i+1:])
	return f, err == nil
}

// Snapshot is the state being exported.
type Snapshot struct {
	BarWeight float64
	Plates    loadout.Plates
	Shape     render.Shape
}

// Total returns bar plus plates.
func (s Snapshot) Total() float64 {
	return loadout.Total(s.BarWeight, s.Plates)
}

// Write encodes s in format f.
func Write(w io.Writer, f Format, s Snapshot) error {
	switch f {
	case FormatPDF:
		return WritePDF(w, s)
	case FormatXLSX:
		return WriteXLSX(w, s)
	}
	return fmt.Errorf("unknown export format %q", f)
}
