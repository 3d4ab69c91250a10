package mappers

import (
	"time"

	"punchcard/internal/domain/attendance"
	"punchcard/internal/infrastructure/persistence/models"
	"punchcard/internal/shared/biztime"
)

type AttendanceMapper struct{}

func NewAttendanceMapper() AttendanceMapper {
	return AttendanceMapper{}
}

// DayToUTC converts a YYYY-MM-DD day string to UTC midnight, the canonical
// storage form of the date column. Day strings originate from
// biztime.DateString or validated query filters and are always well formed.
func DayToUTC(day string) time.Time {
	t, _ := time.ParseInLocation(biztime.DateLayout, day, time.UTC)
	return t
}

func (AttendanceMapper) ToModel(s *attendance.Session) *models.AttendanceSessionModel {
	m := &models.AttendanceSessionModel{
		ID:           s.ID,
		UserID:       s.UserID,
		Date:         DayToUTC(s.Date),
		CheckInTime:  s.CheckInTime,
		CheckOutTime: s.CheckOutTime,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
	if s.IsOpen() {
		open := uint8(1)
		m.OpenFlag = &open
	}
	return m
}

func (AttendanceMapper) ToDomain(m *models.AttendanceSessionModel) *attendance.Session {
	return &attendance.Session{
		ID:           m.ID,
		UserID:       m.UserID,
		Date:         m.Date.UTC().Format(biztime.DateLayout),
		CheckInTime:  m.CheckInTime,
		CheckOutTime: m.CheckOutTime,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
