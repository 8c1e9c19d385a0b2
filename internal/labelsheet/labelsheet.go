// Package labelsheet prints one QR-coded tracking label per placement
// onto a standard Avery-5160-style label sheet, so a print shop can match
// a physical photo to the page and position it belongs on.
package labelsheet

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/photopack/pkg/pack"
)

// Info holds the data encoded into each placement label's QR code.
type Info struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	PageIndex int     `json:"page_index"`
	Rotation  int     `json:"rotation"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns,
// 10 rows per page), in millimeters, regardless of the unit placements
// were packed in — the label sheet itself is a fixed physical product.
const (
	pageWidth  = 215.9 // US Letter width in mm
	pageHeight = 279.4 // US Letter height in mm
	marginTop  = 12.7
	marginLeft = 4.8
	labelWidth = 66.7
	labelHigh  = 25.4
	cols       = 3
	rows       = 10
	perPage    = cols * rows
	qrSize     = 20.0
	padding    = 2.0
)

// CollectInfos converts placements into the per-label metadata Export
// encodes into each QR code.
func CollectInfos(placements []pack.Placement) []Info {
	infos := make([]Info, 0, len(placements))
	for _, p := range placements {
		name := p.Size.Name
		if name == "" {
			name = p.ID
		}
		infos = append(infos, Info{
			ID:        p.ID,
			Name:      name,
			Width:     p.EffectiveWidth,
			Height:    p.EffectiveHeight,
			PageIndex: p.PageIndex,
			Rotation:  p.Rotation,
			X:         p.X,
			Y:         p.Y,
		})
	}
	return infos
}

// Export generates a PDF of QR-coded labels, one per placement.
func Export(path string, placements []pack.Placement) error {
	if len(placements) == 0 {
		return fmt.Errorf("labelsheet: no placements to generate labels for")
	}

	infos := CollectInfos(placements)

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, info := range infos {
		if i%perPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % perPage
		col := posOnPage % cols
		row := posOnPage / cols

		x := marginLeft + float64(col)*labelWidth
		y := marginTop + float64(row)*labelHigh

		if err := renderLabel(pdf, x, y, info); err != nil {
			return fmt.Errorf("labelsheet: rendering label for %q: %w", info.Name, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

func renderLabel(pdf *fpdf.Fpdf, x, y float64, info Info) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHigh, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshaling label info: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generating QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d", info.ID, info.PageIndex)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - padding
	qrY := y + (labelHigh-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + padding
	textW := labelWidth - qrSize - 3*padding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+padding)

	name := info.Name
	if pdf.GetStringWidth(name) > textW {
		for len(name) > 0 && pdf.GetStringWidth(name+"...") > textW {
			name = name[:len(name)-1]
		}
		name += "..."
	}
	pdf.CellFormat(textW, 4.5, name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+padding+5)
	dims := fmt.Sprintf("%.1f x %.1f", info.Width, info.Height)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+padding+9)
	pos := fmt.Sprintf("Page %d @ (%.1f, %.1f)", info.PageIndex+1, info.X, info.Y)
	pdf.CellFormat(textW, 3, pos, "", 1, "L", false, 0, "")

	if info.Rotation != 0 {
		pdf.SetXY(textX, y+padding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, fmt.Sprintf("Rotated %d\xb0", info.Rotation), "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}
