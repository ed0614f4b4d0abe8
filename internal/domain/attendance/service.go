package attendance

import "context"

type AttendanceService interface {
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (MarkAttendanceResponse, error)
}
