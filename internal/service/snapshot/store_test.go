package snapshot

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/navnirman/admin-backend-go/internal/domain/attendance"
	"github.com/navnirman/admin-backend-go/internal/domain/employee"
	"github.com/navnirman/admin-backend-go/internal/domain/payroll"
	"github.com/navnirman/admin-backend-go/internal/domain/transaction"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	employees    []employee.Employee
	attendance   []attendance.AttendanceLog
	transactions []transaction.TransactionLog
	txErr        error
	inFlight     atomic.Int32
	maxInFlight  atomic.Int32
	delay        time.Duration
}

func (f *fakeSource) enter() func() {
	n := f.inFlight.Add(1)
	for {
		m := f.maxInFlight.Load()
		if n <= m || f.maxInFlight.CompareAndSwap(m, n) {
			break
		}
	}
	time.Sleep(f.delay)
	return func() { f.inFlight.Add(-1) }
}

func (f *fakeSource) FetchEmployees(ctx context.Context) ([]employee.Employee, error) {
	defer f.enter()()
	return f.employees, nil
}

func (f *fakeSource) FetchAttendanceLogs(ctx context.Context) ([]attendance.AttendanceLog, error) {
	defer f.enter()()
	return f.attendance, nil
}

func (f *fakeSource) MarkAttendance(ctx context.Context, s attendance.AttendanceSubmission) error {
	return nil
}

func (f *fakeSource) FetchTransactionLogs(ctx context.Context) ([]transaction.TransactionLog, error) {
	defer f.enter()()
	return f.transactions, f.txErr
}

func (f *fakeSource) LogTransaction(ctx context.Context, s transaction.TransactionSubmission) error {
	return nil
}

func TestStore_RefreshAndCurrent(t *testing.T) {
	src := &fakeSource{
		employees:    []employee.Employee{{ID: "1", Name: "Asha"}},
		attendance:   []attendance.AttendanceLog{{EmployeeID: "1", Earnings: decimal.NewFromInt(500)}},
		transactions: []transaction.TransactionLog{{EmployeeID: "1", Type: transaction.TypeAdvance, Amount: decimal.NewFromInt(100)}},
		delay:        20 * time.Millisecond,
	}
	store := NewStore(src, src, src)
	fixed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	_, loaded := store.Current()
	assert.False(t, loaded)

	snap, err := store.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Employees, 1)
	assert.Equal(t, fixed, snap.FetchedAt)
	assert.Equal(t, int32(3), src.maxInFlight.Load(), "fetches run concurrently")

	current, loaded := store.Current()
	assert.True(t, loaded)
	assert.Equal(t, snap, current)

	store.Clear()
	_, loaded = store.Current()
	assert.False(t, loaded)
}

func TestStore_RefreshFailureKeepsPreviousSnapshot(t *testing.T) {
	src := &fakeSource{employees: []employee.Employee{{ID: "1"}}}
	store := NewStore(src, src, src)

	_, err := store.Refresh(context.Background())
	require.NoError(t, err)

	src.employees = []employee.Employee{{ID: "1"}, {ID: "2"}}
	src.txErr = errors.New("boom")

	_, err = store.Refresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch transaction logs")

	current, loaded := store.Current()
	assert.True(t, loaded)
	assert.Len(t, current.Employees, 1, "partial fetch is never published")
}

func TestStore_FindEmployee(t *testing.T) {
	src := &fakeSource{employees: []employee.Employee{{ID: "7", Name: "Suresh"}}}
	store := NewStore(src, src, src)

	_, err := store.FindEmployee("7")
	assert.ErrorIs(t, err, payroll.ErrDataNotLoaded)

	_, err = store.Refresh(context.Background())
	require.NoError(t, err)

	emp, err := store.FindEmployee(" 7")
	require.NoError(t, err)
	assert.Equal(t, "Suresh", emp.Name)

	_, err = store.FindEmployee("8")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

type batchKey struct{}

type batchingSource struct {
	fakeSource
	batches atomic.Int32
	unbatch atomic.Int32
}

func (b *batchingSource) BeginBatch(ctx context.Context) context.Context {
	b.batches.Add(1)
	return context.WithValue(ctx, batchKey{}, true)
}

func (b *batchingSource) FetchEmployees(ctx context.Context) ([]employee.Employee, error) {
	if ctx.Value(batchKey{}) == nil {
		b.unbatch.Add(1)
	}
	return b.fakeSource.FetchEmployees(ctx)
}

func (b *batchingSource) FetchTransactionLogs(ctx context.Context) ([]transaction.TransactionLog, error) {
	if ctx.Value(batchKey{}) == nil {
		b.unbatch.Add(1)
	}
	return b.fakeSource.FetchTransactionLogs(ctx)
}

func TestStore_RefreshOpensOneBatch(t *testing.T) {
	src := &batchingSource{fakeSource: fakeSource{employees: []employee.Employee{{ID: "1"}}}}
	store := NewStore(src, src, src)

	_, err := store.Refresh(context.Background())
	require.NoError(t, err)
	_, err = store.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), src.batches.Load(), "one batch per refresh")
	assert.Equal(t, int32(0), src.unbatch.Load(), "every fetch runs inside the batch")
}
