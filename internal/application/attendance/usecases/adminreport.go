package usecases

import (
	"context"

	"punchcard/internal/application/attendance/dto"
	"punchcard/internal/domain/attendance"
	"punchcard/internal/shared/biztime"
	"punchcard/internal/shared/errors"
	"punchcard/internal/shared/logger"
	"punchcard/internal/shared/query"
)

type AdminReportCommand struct {
	StartDate string
	EndDate   string
	UserID    *uint
}

type AdminReportResult struct {
	Records []dto.RecordDTO
}

type AdminReportExecutor interface {
	Execute(ctx context.Context, cmd AdminReportCommand) (*AdminReportResult, error)
}

type AdminReportUseCase struct {
	attendanceRepo attendance.Repository
	logger         logger.Interface
}

func NewAdminReportUseCase(attendanceRepo attendance.Repository, logger logger.Interface) *AdminReportUseCase {
	return &AdminReportUseCase{
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

func (uc *AdminReportUseCase) Execute(ctx context.Context, cmd AdminReportCommand) (*AdminReportResult, error) {
	dateRange, err := query.FromParams(cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, err
	}

	records, err := uc.attendanceRepo.ListRecords(ctx, dateRange, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load attendance records", "error", err)
		return nil, errors.NewInternalError("failed to load attendance records")
	}

	today := biztime.DateString(biztime.NowUTC())
	return &AdminReportResult{Records: dto.NewRecordDTOs(records, today)}, nil
}
