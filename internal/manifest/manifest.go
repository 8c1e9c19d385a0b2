// Package manifest writes a packed layout to an Excel workbook: one row
// per placement plus a summary sheet, so a print shop can reconcile a
// physical order against the pages it was packed onto without opening a
// PDF. It is the write-side counterpart to the order importer's
// read-side use of excelize (f.GetRows, sheet iteration).
package manifest

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/photopack/pkg/pack"
)

const (
	sheetPlacements = "Placements"
	sheetSummary    = "Summary"
)

var placementHeader = []string{"ID", "Name", "Page", "X", "Y", "Width", "Height", "Rotation"}

// Write renders placements to an .xlsx workbook at path: a Placements
// sheet with one row per placement, and a Summary sheet with per-page
// photo counts and used area.
func Write(path string, placements []pack.Placement, config pack.PageConfig) error {
	if len(placements) == 0 {
		return fmt.Errorf("manifest: no placements to write")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := writePlacementsSheet(f, placements); err != nil {
		return fmt.Errorf("manifest: writing placements sheet: %w", err)
	}
	if err := writeSummarySheet(f, placements, config); err != nil {
		return fmt.Errorf("manifest: writing summary sheet: %w", err)
	}

	f.SetActiveSheet(0)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("manifest: removing default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("manifest: saving workbook: %w", err)
	}
	return nil
}

func writePlacementsSheet(f *excelize.File, placements []pack.Placement) error {
	index, err := f.NewSheet(sheetPlacements)
	if err != nil {
		return err
	}

	for col, title := range placementHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetPlacements, cell, title); err != nil {
			return err
		}
	}

	sorted := sortedByPageThenPosition(placements)
	for i, p := range sorted {
		row := i + 2
		name := p.Size.Name
		if name == "" {
			name = p.ID
		}
		values := []any{p.ID, name, p.PageIndex, p.X, p.Y, p.EffectiveWidth, p.EffectiveHeight, p.Rotation}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheetPlacements, cell, v); err != nil {
				return err
			}
		}
	}

	f.SetActiveSheet(index)
	return nil
}

func writeSummarySheet(f *excelize.File, placements []pack.Placement, config pack.PageConfig) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return err
	}

	byPage := groupByPage(placements)
	pageCount := maxPageIndex(byPage) + 1

	rows := [][]any{
		{"Pages used", pageCount},
		{"Photos placed", len(placements)},
		{"Printable width", config.PageWidth - config.MarginLeft - config.MarginRight},
		{"Printable height", config.PageHeight - config.MarginTop - config.MarginBottom},
		{},
		{"Page", "Photos", "Used area"},
	}
	for idx := 0; idx < pageCount; idx++ {
		rows = append(rows, []any{idx, len(byPage[idx]), usedArea(byPage[idx])})
	}

	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue(sheetSummary, cell, v); err != nil {
				return err
			}
		}
	}

	return nil
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

func usedArea(placements []pack.Placement) float64 {
	total := 0.0
	for _, p := range placements {
		total += p.EffectiveWidth * p.EffectiveHeight
	}
	return total
}

func sortedByPageThenPosition(placements []pack.Placement) []pack.Placement {
	sorted := make([]pack.Placement, len(placements))
	copy(sorted, placements)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].PageIndex != sorted[j].PageIndex {
			return sorted[i].PageIndex < sorted[j].PageIndex
		}
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})
	return sorted
}
