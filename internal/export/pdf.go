package export

import (
	"fmt"
	"io"
	"time"

	"barbell/internal/geometry"
	"barbell/internal/loadout"
	"barbell/internal/render"

	"github.com/phpdave11/gofpdf"
)

// mmPerPx maps the reference layout onto the page.
const mmPerPx = 0.5

const (
	pageMarginMM = 15.0
	drawingTopMM = 40.0
)

type rgb struct{ r, g, b int }

var (
	barRGB   = rgb{0x44, 0x44, 0x44}
	plateRGB = rgb{0x99, 0x99, 0x99}
)

func mm(px float64) float64 { return px * mmPerPx }

// WritePDF draws the loaded bar to scale and lists the plates below it.
func WritePDF(w io.Writer, s Snapshot) error {
	shape := s.Shape
	if shape == nil {
		shape = render.Side{}
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pageMarginMM, pageMarginMM, pageMarginMM)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Barbell Calculator")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Total: %s    Date: %s", loadout.FormatWeight(s.Total()), time.Now().Format("2006-01-02")))
	pdf.Ln(6)

	drawBarbell(pdf, s.BarWeight, s.Plates, shape)

	pdf.SetXY(pageMarginMM, drawingTopMM+mm(geometry.GraphicHeight)+8)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(30, 7, "Position", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 7, "Weight", "1", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(30, 7, "bar", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 7, loadout.FormatWeight(s.BarWeight), "1", 1, "R", false, 0, "")
	for i, p := range s.Plates {
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, loadout.FormatWeight(p), "1", 1, "R", false, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	return nil
}

func drawBarbell(pdf *gofpdf.Fpdf, barWeight float64, plates loadout.Plates, shape render.Shape) {
	left := pageMarginMM
	mid := drawingTopMM + mm(geometry.GraphicHeight)/2

	setFill(pdf, barRGB)
	thick := mm(geometry.BarThickness.At(barWeight))
	pdf.Rect(left, mid-thick/2, mm(geometry.BarLength), thick, "F")

	collarW := mm(geometry.CollarWidth(barWeight))
	collarH := mm(geometry.CollarThickness(barWeight))
	pdf.Rect(left+collarW, mid-collarH/2, collarW, collarH, "F")
	label(pdf, left+collarW, mid, collarW, loadout.FormatWeight(barWeight), 255)

	x := left + mm(geometry.PlateRowStart(barWeight))
	for _, p := range plates {
		h := mm(geometry.PlateRadius.At(p))
		setFill(pdf, plateRGB)
		var wide float64
		switch shape.(type) {
		case render.Disc:
			wide = h
			pdf.Ellipse(x+wide/2, mid, wide/2, h/2, 0, "F")
		default:
			wide = mm(geometry.PlateWidth.At(p))
			pdf.Rect(x, mid-h/2, wide, h, "F")
		}
		label(pdf, x, mid, wide, loadout.FormatWeight(p), 0)
		x += wide + mm(geometry.PlateMargin)
	}
}

func setFill(pdf *gofpdf.Fpdf, c rgb) {
	pdf.SetFillColor(c.r, c.g, c.b)
}

// label centres text horizontally in [x, x+w) on baseline y.
func label(pdf *gofpdf.Fpdf, x, y, w float64, text string, grey int) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(grey, grey, grey)
	pdf.Text(x+(w-pdf.GetStringWidth(text))/2, y+1, text)
	pdf.SetTextColor(0, 0, 0)
}
