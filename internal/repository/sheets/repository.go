package sheets

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/navnirman/admin-backend-go/internal/domain/attendance"
	"github.com/navnirman/admin-backend-go/internal/domain/auth"
	"github.com/navnirman/admin-backend-go/internal/domain/employee"
	"github.com/navnirman/admin-backend-go/internal/domain/transaction"
	"github.com/navnirman/admin-backend-go/internal/pkg/sheets"
	"golang.org/x/sync/singleflight"
)

const (
	ActionAdminLogin     = "adminLogin"
	ActionGetData        = "getData"
	ActionMarkAttendance = "markAttendance"
	ActionLogTransaction = "logTransaction"
)

type getDataResponse struct {
	Employees       []sheets.Record `json:"employees"`
	AttendanceLogs  []sheets.Record `json:"attendance_logs"`
	TransactionLogs []sheets.Record `json:"transaction_logs"`
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

// Repository reads and writes the spreadsheet web app. The endpoint returns all
// three collections from one getData call. Inside a batch every fetch reuses the
// batch's single response; outside one, overlapping fetches share a call.
type Repository struct {
	client   *sheets.Client
	location *time.Location
	group    singleflight.Group
}

var (
	_ employee.EmployeeRepository       = (*Repository)(nil)
	_ attendance.AttendanceRepository   = (*Repository)(nil)
	_ transaction.TransactionRepository = (*Repository)(nil)
	_ auth.PasswordVerifier             = (*Repository)(nil)
)

type batchKey struct{}

type batch struct {
	once sync.Once
	resp getDataResponse
	err  error
}

func NewRepository(client *sheets.Client, location *time.Location) *Repository {
	if location == nil {
		location = time.UTC
	}
	return &Repository{client: client, location: location}
}

// BeginBatch returns a context in which FetchEmployees, FetchAttendanceLogs
// and FetchTransactionLogs all read the same getData response.
func (r *Repository) BeginBatch(ctx context.Context) context.Context {
	return context.WithValue(ctx, batchKey{}, &batch{})
}

func (r *Repository) getData(ctx context.Context) (getDataResponse, error) {
	if b, ok := ctx.Value(batchKey{}).(*batch); ok {
		b.once.Do(func() {
			b.err = r.client.Call(ctx, ActionGetData, nil, &b.resp)
		})
		return b.resp, b.err
	}

	v, err, _ := r.group.Do(ActionGetData, func() (interface{}, error) {
		var resp getDataResponse
		if err := r.client.Call(ctx, ActionGetData, nil, &resp); err != nil {
			return getDataResponse{}, err
		}
		return resp, nil
	})
	if err != nil {
		return getDataResponse{}, err
	}
	return v.(getDataResponse), nil
}

func (r *Repository) FetchEmployees(ctx context.Context) ([]employee.Employee, error) {
	data, err := r.getData(ctx)
	if err != nil {
		return nil, err
	}
	return Employees(data.Employees), nil
}

func (r *Repository) FetchAttendanceLogs(ctx context.Context) ([]attendance.AttendanceLog, error) {
	data, err := r.getData(ctx)
	if err != nil {
		return nil, err
	}
	return AttendanceLogs(data.AttendanceLogs, r.location), nil
}

func (r *Repository) FetchTransactionLogs(ctx context.Context) ([]transaction.TransactionLog, error) {
	data, err := r.getData(ctx)
	if err != nil {
		return nil, err
	}
	return TransactionLogs(data.TransactionLogs, r.location), nil
}

func (r *Repository) MarkAttendance(ctx context.Context, submission attendance.AttendanceSubmission) error {
	return r.client.Call(ctx, ActionMarkAttendance, submission, nil)
}

func (r *Repository) LogTransaction(ctx context.Context, submission transaction.TransactionSubmission) error {
	return r.client.Call(ctx, ActionLogTransaction, submission, nil)
}

// VerifyAdminPassword maps a rejected adminLogin to (false, nil). Transport
// failures are reported as auth.ErrConnectionFailed.
func (r *Repository) VerifyAdminPassword(ctx context.Context, password string) (bool, error) {
	err := r.client.Call(ctx, ActionAdminLogin, adminLoginRequest{Password: password}, nil)
	if err == nil {
		return true, nil
	}

	var remoteErr *sheets.RemoteError
	if errors.As(err, &remoteErr) {
		return false, nil
	}
	return false, errors.Join(auth.ErrConnectionFailed, err)
}
