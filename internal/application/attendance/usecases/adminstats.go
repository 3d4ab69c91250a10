package usecases

import (
	"context"
	"time"

	"punchcard/internal/domain/attendance"
	"punchcard/internal/shared/errors"
	"punchcard/internal/shared/logger"
	"punchcard/internal/shared/query"
)

type AdminStatsCommand struct {
	StartDate string
	EndDate   string
}

// AdminStatsResult is the office-wide dashboard summary for a period.
type AdminStatsResult struct {
	TotalSessions          int   `json:"total_sessions"`
	OpenSessions           int   `json:"open_sessions"`
	DistinctUsers          int   `json:"distinct_users"`
	AverageDurationMinutes int64 `json:"average_duration_minutes"`
}

type AdminStatsExecutor interface {
	Execute(ctx context.Context, cmd AdminStatsCommand) (*AdminStatsResult, error)
}

type AdminStatsUseCase struct {
	attendanceRepo attendance.Repository
	logger         logger.Interface
}

func NewAdminStatsUseCase(attendanceRepo attendance.Repository, logger logger.Interface) *AdminStatsUseCase {
	return &AdminStatsUseCase{
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

func (uc *AdminStatsUseCase) Execute(ctx context.Context, cmd AdminStatsCommand) (*AdminStatsResult, error) {
	dateRange, err := query.FromParams(cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, err
	}

	records, err := uc.attendanceRepo.ListRecords(ctx, dateRange, nil)
	if err != nil {
		uc.logger.Errorw("failed to load records for stats", "error", err)
		return nil, errors.NewInternalError("failed to load attendance stats")
	}

	result := &AdminStatsResult{TotalSessions: len(records)}

	users := make(map[uint]struct{})
	var total time.Duration
	closed := 0

	for _, rec := range records {
		users[rec.Session.UserID] = struct{}{}
		if d, ok := rec.Session.RawDuration(); ok {
			if d < 0 {
				d = 0
			}
			total += d
			closed++
		} else {
			result.OpenSessions++
		}
	}

	result.DistinctUsers = len(users)
	if closed > 0 {
		result.AverageDurationMinutes = int64((total / time.Duration(closed)).Minutes())
	}
	return result, nil
}
