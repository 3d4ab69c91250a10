package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"punchcard/internal/domain/attendance"
)

func utcTime(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestWriter_Write(t *testing.T) {
	checkIn := utcTime(t, "2026-03-09T03:00:00Z")  // 09:00 in Asia/Dhaka
	checkOut := utcTime(t, "2026-03-09T11:30:00Z") // 17:30 in Asia/Dhaka

	rows := []attendance.Row{
		{
			Username:     "alice",
			Email:        "alice@example.com",
			Date:         "2026-03-09",
			CheckInTime:  checkIn,
			CheckOutTime: &checkOut,
			Duration:     8*time.Hour + 30*time.Minute,
			HasDuration:  true,
			Status:       attendance.StatusComplete,
		},
		{
			Username:    "bob",
			Email:       "bob@example.com",
			Date:        "2026-03-09",
			CheckInTime: checkIn,
			Status:      attendance.StatusInProgress,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewWriter().Write(&buf, rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "Attendance", f.GetSheetName(0))

	cells, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, cells, 3)

	assert.Equal(t, []string{"Username", "Email", "Date", "Check-in Time", "Check-out Time", "Duration", "Status"}, cells[0])
	assert.Equal(t, []string{"alice", "alice@example.com", "9 Mar 2026", "9:00 AM", "5:30 PM", "8h 30m", "Complete"}, cells[1])
	assert.Equal(t, []string{"bob", "bob@example.com", "9 Mar 2026", "9:00 AM", "-", "-", "In Progress"}, cells[2])
}

func TestWriter_Write_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter().Write(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	cells, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.Equal(t, "Username", cells[0][0])
}
