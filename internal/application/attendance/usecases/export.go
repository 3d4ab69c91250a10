package usecases

import (
	"context"
	"fmt"
	"io"

	"punchcard/internal/domain/attendance"
	"punchcard/internal/shared/biztime"
	"punchcard/internal/shared/errors"
	"punchcard/internal/shared/logger"
	"punchcard/internal/shared/query"
)

// SpreadsheetWriter renders report rows into a workbook.
type SpreadsheetWriter interface {
	Write(w io.Writer, rows []attendance.Row) error
}

type ExportCommand struct {
	StartDate string
	EndDate   string
	UserID    *uint
}

type ExportResult struct {
	FileName string
	RowCount int
}

type ExportExecutor interface {
	Execute(ctx context.Context, cmd ExportCommand, w io.Writer) (*ExportResult, error)
}

type ExportUseCase struct {
	attendanceRepo attendance.Repository
	writer         SpreadsheetWriter
	logger         logger.Interface
}

func NewExportUseCase(
	attendanceRepo attendance.Repository,
	writer SpreadsheetWriter,
	logger logger.Interface,
) *ExportUseCase {
	return &ExportUseCase{
		attendanceRepo: attendanceRepo,
		writer:         writer,
		logger:         logger,
	}
}

// Execute streams the rendered workbook to w. Callers must not have written
// headers implying success before calling; the workbook is built in memory
// and written at the end.
func (uc *ExportUseCase) Execute(ctx context.Context, cmd ExportCommand, w io.Writer) (*ExportResult, error) {
	dateRange, err := query.FromParams(cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, err
	}

	records, err := uc.attendanceRepo.ListRecords(ctx, dateRange, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load records for export", "error", err)
		return nil, errors.NewInternalError("failed to load attendance records")
	}

	today := biztime.DateString(biztime.NowUTC())
	rows := attendance.Tabulate(records, today)

	if err := uc.writer.Write(w, rows); err != nil {
		uc.logger.Errorw("failed to render export", "error", err)
		return nil, errors.NewInternalError("failed to generate export")
	}

	uc.logger.Infow("attendance export generated", "rows", len(rows))

	fileName := fmt.Sprintf("attendance_report_%s.xlsx", today)
	if !dateRange.IsAll() {
		start, end := dateRange.Bounds()
		fileName = fmt.Sprintf("attendance_%s_to_%s.xlsx", start, end)
	}

	return &ExportResult{
		FileName: fileName,
		RowCount: len(rows),
	}, nil
}
