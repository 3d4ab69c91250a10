// Package excel renders attendance report rows as an xlsx workbook.
package excel

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"punchcard/internal/domain/attendance"
	"punchcard/internal/shared/biztime"
)

const (
	sheetName = "Attendance"

	dateLayout = "2 Jan 2006"
	timeLayout = "3:04 PM"
)

var headers = []string{"Username", "Email", "Date", "Check-in Time", "Check-out Time", "Duration", "Status"}

var columnWidths = []float64{20, 30, 15, 15, 15, 12, 12}

// Writer renders report rows into a spreadsheet. Timestamps are shown in the
// office timezone so the export matches what employees saw when punching.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Write renders the rows and streams the workbook to w.
func (Writer) Write(w io.Writer, rows []attendance.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), sheetName)

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build header cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetRowStyle(sheetName, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to apply header style: %w", err)
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.Username,
			row.Email,
			formatDate(row.Date),
			biztime.FormatInOfficeTime(row.CheckInTime, timeLayout),
			formatCheckOut(row.CheckOutTime),
			formatDuration(row.Duration, row.HasDuration),
			string(row.Status),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to build row cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func formatDate(day string) string {
	t, err := time.Parse(biztime.DateLayout, day)
	if err != nil {
		return day
	}
	return t.Format(dateLayout)
}

func formatCheckOut(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return biztime.FormatInOfficeTime(*t, timeLayout)
}

func formatDuration(d time.Duration, closed bool) string {
	if !closed {
		return "-"
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
