package models

import (
	"time"

	"punchcard/internal/shared/constants"
)

// AttendanceSessionModel represents the persistence model for attendance
// sessions. Date holds UTC midnight of the office-timezone calendar day.
//
// OpenFlag enforces the open-session invariant at the storage layer: it is 1
// while the session is open and NULL once closed. NULL values never collide
// in the unique index, so uq_open_session allows any number of closed rows
// per (user, date) but at most one open row. A second concurrent check-in
// fails on insert even if it slipped past the application pre-check.
type AttendanceSessionModel struct {
	ID           uint      `gorm:"primarykey"`
	UserID       uint      `gorm:"not null;index:idx_user_date;uniqueIndex:uq_open_session"`
	Date         time.Time `gorm:"type:date;not null;index:idx_user_date;uniqueIndex:uq_open_session"`
	CheckInTime  time.Time `gorm:"not null"`
	CheckOutTime *time.Time
	OpenFlag     *uint8 `gorm:"uniqueIndex:uq_open_session"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (AttendanceSessionModel) TableName() string {
	return constants.TableAttendanceSessions
}
