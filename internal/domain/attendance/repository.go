package attendance

import "context"

type AttendanceRepository interface {
	FetchAttendanceLogs(ctx context.Context) ([]AttendanceLog, error)
	// MarkAttendance submits one day's record; earnings are computed by the data source.
	MarkAttendance(ctx context.Context, submission AttendanceSubmission) error
}
