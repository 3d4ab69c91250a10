package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"punchcard/internal/domain/attendance"
	"punchcard/internal/infrastructure/persistence/mappers"
	"punchcard/internal/infrastructure/persistence/models"
	"punchcard/internal/shared/constants"
	"punchcard/internal/shared/db"
	"punchcard/internal/shared/errors"
	"punchcard/internal/shared/query"
)

type AttendanceRepository struct {
	db     *gorm.DB
	mapper mappers.AttendanceMapper
}

func NewAttendanceRepository(gormDB *gorm.DB) attendance.Repository {
	return &AttendanceRepository{
		db:     gormDB,
		mapper: mappers.NewAttendanceMapper(),
	}
}

func (r *AttendanceRepository) Create(ctx context.Context, s *attendance.Session) error {
	model := r.mapper.ToModel(s)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			// The uq_open_session index rejected a second open row for this
			// user and day.
			return errors.NewValidationError(constants.ErrMsgOpenSessionExists)
		}
		return fmt.Errorf("failed to create session: %w", err)
	}
	s.ID = model.ID
	return nil
}

// Close writes the check-out only where the row is still open. A concurrent
// close that already set check_out_time matches zero rows, so a stored
// check-out is never overwritten.
func (r *AttendanceRepository) Close(ctx context.Context, s *attendance.Session) error {
	if s.CheckOutTime == nil {
		return errors.NewValidationError("session has no check-out time")
	}
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AttendanceSessionModel{}).
		Where("id = ? AND check_out_time IS NULL", s.ID).
		Updates(map[string]interface{}{
			"check_out_time": *s.CheckOutTime,
			"open_flag":      nil,
			"updated_at":     s.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to close session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("no open session found")
	}
	return nil
}

func (r *AttendanceRepository) FindOpen(ctx context.Context, userID uint, date string) (*attendance.Session, error) {
	var model models.AttendanceSessionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND date = ? AND check_out_time IS NULL", userID, mappers.DayToUTC(date)).
		Order("check_in_time DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("no open session found")
		}
		return nil, fmt.Errorf("failed to find open session: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *AttendanceRepository) ListByUserAndDate(ctx context.Context, userID uint, date string) ([]*attendance.Session, error) {
	var sessionModels []models.AttendanceSessionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND date = ?", userID, mappers.DayToUTC(date)).
		Order("check_in_time ASC").
		Find(&sessionModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for date: %w", err)
	}
	return r.toDomainSlice(sessionModels), nil
}

func (r *AttendanceRepository) ListByUser(ctx context.Context, userID uint, dateRange query.DateRange) ([]*attendance.Session, error) {
	tx := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID)
	tx = applyDateRange(tx, dateRange)

	var sessionModels []models.AttendanceSessionModel
	err := tx.Order("date DESC, check_in_time DESC").Find(&sessionModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return r.toDomainSlice(sessionModels), nil
}

// recordRow is the scan target for the report query joining sessions with
// user identity.
type recordRow struct {
	ID           uint
	UserID       uint
	Date         time.Time
	CheckInTime  time.Time
	CheckOutTime *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Username     string
	Email        string
}

func (r *AttendanceRepository) ListRecords(ctx context.Context, dateRange query.DateRange, userID *uint) ([]*attendance.Record, error) {
	tx := db.GetTxFromContext(ctx, r.db).
		Table(constants.TableAttendanceSessions+" AS s").
		Select("s.id, s.user_id, s.date, s.check_in_time, s.check_out_time, s.created_at, s.updated_at, u.username, u.email").
		Joins(fmt.Sprintf("JOIN %s AS u ON u.id = s.user_id", constants.TableUsers))
	if userID != nil {
		tx = tx.Where("s.user_id = ?", *userID)
	}
	if !dateRange.IsAll() {
		start, end := dateRange.Bounds()
		tx = tx.Where("s.date BETWEEN ? AND ?", mappers.DayToUTC(start), mappers.DayToUTC(end))
	}

	var rows []recordRow
	err := tx.Order("s.date DESC, s.check_in_time DESC").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	records := make([]*attendance.Record, len(rows))
	for i, row := range rows {
		records[i] = &attendance.Record{
			Session: r.mapper.ToDomain(&models.AttendanceSessionModel{
				ID:           row.ID,
				UserID:       row.UserID,
				Date:         row.Date,
				CheckInTime:  row.CheckInTime,
				CheckOutTime: row.CheckOutTime,
				CreatedAt:    row.CreatedAt,
				UpdatedAt:    row.UpdatedAt,
			}),
			Username: row.Username,
			Email:    row.Email,
		}
	}
	return records, nil
}

func (r *AttendanceRepository) toDomainSlice(sessionModels []models.AttendanceSessionModel) []*attendance.Session {
	sessions := make([]*attendance.Session, len(sessionModels))
	for i := range sessionModels {
		sessions[i] = r.mapper.ToDomain(&sessionModels[i])
	}
	return sessions
}

func applyDateRange(tx *gorm.DB, dateRange query.DateRange) *gorm.DB {
	if dateRange.IsAll() {
		return tx
	}
	start, end := dateRange.Bounds()
	return tx.Where("date BETWEEN ? AND ?", mappers.DayToUTC(start), mappers.DayToUTC(end))
}
