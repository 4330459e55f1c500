package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/docsgov/docsgov/internal/domain"
)

// GapXLSX renders the gap backlog as a spreadsheet with a summary sheet, the
// full backlog, and a high-priority-only sheet for review meetings.
func GapXLSX(r domain.GapReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("renaming summary sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating style: %w", err)
	}

	writeSummary(f, summarySheet, bold, r)

	if err := writeGapSheet(f, "Documentation Gaps", bold, r.Gaps); err != nil {
		return nil, err
	}

	var high []domain.Gap
	for _, g := range r.Gaps {
		if g.Priority == domain.PriorityHigh {
			high = append(high, g)
		}
	}
	if err := writeGapSheet(f, "High Priority", bold, high); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encoding workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, sheet string, bold int, r domain.GapReport) {
	_ = f.SetCellValue(sheet, "A1", "Documentation Gap Analysis Report")
	_ = f.SetCellStyle(sheet, "A1", "A1", bold)
	_ = f.SetCellValue(sheet, "A3", "Generated")
	_ = f.SetCellValue(sheet, "B3", r.GeneratedAt.Format("2006-01-02 15:04 MST"))
	_ = f.SetCellValue(sheet, "A4", "Sources analyzed")
	_ = f.SetCellValue(sheet, "B4", joinOrNone(r.SourcesAnalyzed))
	_ = f.SetCellValue(sheet, "A5", "Collection caveats")
	_ = f.SetCellValue(sheet, "B5", joinOrNone(r.CollectionFailures))

	rows := [][2]any{
		{"Total gaps", r.Summary.TotalGaps},
		{"High priority", r.Summary.HighPriority},
		{"Medium priority", r.Summary.MediumPriority},
		{"Low priority", r.Summary.LowPriority},
	}
	for i, row := range rows {
		cellA, _ := excelize.CoordinatesToCellName(1, 7+i)
		cellB, _ := excelize.CoordinatesToCellName(2, 7+i)
		_ = f.SetCellValue(sheet, cellA, row[0])
		_ = f.SetCellValue(sheet, cellB, row[1])
	}

	_ = f.SetColWidth(sheet, "A", "A", 25)
	_ = f.SetColWidth(sheet, "B", "B", 45)
}

func writeGapSheet(f *excelize.File, sheet string, bold int, gaps []domain.Gap) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}

	headers := []string{"ID", "Title", "Source", "Doc Type", "Priority", "Score", "Frequency", "Description"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
		_ = f.SetCellStyle(sheet, cell, cell, bold)
	}

	for row, g := range gaps {
		values := []any{
			g.ID, g.Title, string(g.Source), g.SuggestedDocType,
			string(g.Priority), g.Score, g.Frequency, g.Description,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	widths := []float64{16, 45, 16, 14, 10, 10, 10, 60}
	for i, width := range widths {
		name, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, name, name, width)
	}
	return nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	out := items[0]
	for _, s := range items[1:] {
		out += ", " + s
	}
	return out
}
