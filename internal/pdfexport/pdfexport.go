// Package pdfexport renders a packed layout to a multi-page PDF, one page
// per page_index plus a trailing summary page. It is the "document
// emitter" external collaborator the packing core assumes exists but
// never implements itself.
package pdfexport

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/photopack/pkg/pack"
)

// color represents an RGB color for a placed photo.
type color struct {
	R, G, B int
}

// palette mirrors the color scheme a preview canvas would use so a
// printed proof and an on-screen preview read the same way.
var palette = []color{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Layout constants for the fixed-size margins and header bands drawn
// around the page's own content, in the same unit as config.
const (
	outerMargin  = 10.0
	headerHeight = 10.0
	statsHeight  = 6.0
	drawAreaGap  = 4.0
)

// Export renders placements, one PDF page per page_index, plus a
// trailing summary page to path, in unit (one of fpdf's accepted unit
// strings: "pt", "mm", "cm", "in"). unit must match the unit placements
// and config are expressed in.
func Export(path string, placements []pack.Placement, config pack.PageConfig, unit string) error {
	if len(placements) == 0 {
		return fmt.Errorf("pdfexport: no placements to export")
	}

	byPage := groupByPage(placements)

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: orientation(config),
		UnitStr:        unit,
		Size:           fpdf.SizeType{Wd: config.PageWidth, Ht: config.PageHeight},
	})
	pdf.SetAutoPageBreak(false, outerMargin)

	for pageIndex := 0; pageIndex <= maxPageIndex(byPage); pageIndex++ {
		pdf.AddPage()
		renderPage(pdf, pageIndex, byPage[pageIndex], config)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, placements, byPage, config)

	return pdf.OutputFileAndClose(path)
}

func orientation(config pack.PageConfig) string {
	if config.PageWidth >= config.PageHeight {
		return "L"
	}
	return "P"
}

func groupByPage(placements []pack.Placement) map[int][]pack.Placement {
	byPage := make(map[int][]pack.Placement)
	for _, p := range placements {
		byPage[p.PageIndex] = append(byPage[p.PageIndex], p)
	}
	return byPage
}

func maxPageIndex(byPage map[int][]pack.Placement) int {
	max := 0
	for idx := range byPage {
		if idx > max {
			max = idx
		}
	}
	return max
}

// renderPage draws every placement on one page_index onto the current PDF
// page, at 1:1 scale in config's own unit.
func renderPage(pdf *fpdf.Fpdf, pageIndex int, pagePlacements []pack.Placement, config pack.PageConfig) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(outerMargin, outerMargin/2)
	title := fmt.Sprintf("Page %d (%.2f x %.2f)", pageIndex+1, config.PageWidth, config.PageHeight)
	pdf.CellFormat(config.PageWidth-2*outerMargin, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(outerMargin, outerMargin/2+headerHeight)
	stats := fmt.Sprintf("Photos: %d | Used area: %.1f | Printable area: %.1f",
		len(pagePlacements), usedArea(pagePlacements), printableArea(config))
	pdf.CellFormat(config.PageWidth-2*outerMargin, statsHeight, stats, "", 0, "L", false, 0, "")

	// Draw the printable-area boundary as a light guide rectangle.
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.2)
	pw := config.PageWidth - config.MarginLeft - config.MarginRight
	ph := config.PageHeight - config.MarginTop - config.MarginBottom
	pdf.Rect(config.MarginLeft, config.MarginTop, pw, ph, "D")

	sorted := sortedByPosition(pagePlacements)
	for i, p := range sorted {
		col := palette[i%len(palette)]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(p.X, p.Y, p.EffectiveWidth, p.EffectiveHeight, "FD")

		if p.EffectiveWidth > 15 && p.EffectiveHeight > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(p.EffectiveWidth, p.EffectiveHeight))
			pdf.SetTextColor(0, 0, 0)
			label := photoLabel(p)
			labelW := pdf.GetStringWidth(label)
			if labelW < p.EffectiveWidth-2 {
				pdf.SetXY(p.X+(p.EffectiveWidth-labelW)/2, p.Y+p.EffectiveHeight/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		}
	}

	drawLegend(pdf, sorted, config.MarginTop+ph+drawAreaGap, config.MarginLeft, config.PageWidth-config.MarginRight)
}

func photoLabel(p pack.Placement) string {
	label := p.Size.Name
	if label == "" {
		label = p.ID
	}
	if p.Rotation != 0 {
		label += " R"
	}
	return label
}

func sortedByPosition(placements []pack.Placement) []pack.Placement {
	sorted := make([]pack.Placement, len(placements))
	copy(sorted, placements)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})
	return sorted
}

// drawLegend renders a compact, wrapping legend of placed photos below
// the page's printable area.
func drawLegend(pdf *fpdf.Fpdf, placements []pack.Placement, startY, left, right float64) {
	if len(placements) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(left, startY)
	pdf.CellFormat(24, 4, "Placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := left + 26
	y := startY

	for i, p := range placements {
		col := palette[i%len(palette)]
		label := fmt.Sprintf("%s (%.1fx%.1f)", photoLabel(p), p.EffectiveWidth, p.EffectiveHeight)
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > right {
			y += 5
			xPos = left
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, y+0.5, 3, 3, "F")
		pdf.SetXY(xPos+4, y)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}

func usedArea(placements []pack.Placement) float64 {
	total := 0.0
	for _, p := range placements {
		total += p.EffectiveWidth * p.EffectiveHeight
	}
	return total
}

func printableArea(config pack.PageConfig) float64 {
	w := config.PageWidth - config.MarginLeft - config.MarginRight
	h := config.PageHeight - config.MarginTop - config.MarginBottom
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// renderSummaryPage draws overall statistics and a per-page breakdown
// table.
func renderSummaryPage(pdf *fpdf.Fpdf, all []pack.Placement, byPage map[int][]pack.Placement, config pack.PageConfig) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(outerMargin, outerMargin)
	pdf.CellFormat(config.PageWidth-2*outerMargin, 8, "Layout Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	pdf.Line(outerMargin, outerMargin+10, config.PageWidth-outerMargin, outerMargin+10)

	y := outerMargin + 14
	pageCount := maxPageIndex(byPage) + 1

	pdf.SetFont("Helvetica", "", 9)
	rows := []struct{ label, value string }{
		{"Pages used", fmt.Sprintf("%d", pageCount)},
		{"Photos placed", fmt.Sprintf("%d", len(all))},
	}
	for _, row := range rows {
		pdf.SetXY(outerMargin+3, y)
		pdf.CellFormat(60, 5, row.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(40, 5, row.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		y += 6
	}

	y += 4
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(outerMargin, y)
	pdf.CellFormat(80, 6, "Per-page breakdown", "", 0, "L", false, 0, "")
	y += 7

	pdf.SetFont("Helvetica", "", 8)
	for idx := 0; idx < pageCount; idx++ {
		pdf.SetXY(outerMargin+3, y)
		line := fmt.Sprintf("Page %d: %d photos, used area %.1f", idx+1, len(byPage[idx]), usedArea(byPage[idx]))
		pdf.CellFormat(config.PageWidth-2*outerMargin-3, 5, line, "", 0, "L", false, 0, "")
		y += 5
	}
}
