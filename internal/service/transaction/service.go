package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/navnirman/admin-backend-go/internal/domain/employee"
	"github.com/navnirman/admin-backend-go/internal/domain/transaction"
)

type EmployeeLookup interface {
	FindEmployee(id string) (employee.Employee, error)
}

type TransactionServiceImpl struct {
	transaction.TransactionRepository
	employees EmployeeLookup
	now       func() time.Time
}

func NewTransactionService(transactionRepository transaction.TransactionRepository, employees EmployeeLookup) transaction.TransactionService {
	return &TransactionServiceImpl{
		TransactionRepository: transactionRepository,
		employees:             employees,
		now:                   time.Now,
	}
}

// LogTransaction implements transaction.TransactionService.
func (t *TransactionServiceImpl) LogTransaction(ctx context.Context, req transaction.LogTransactionRequest) (transaction.LogTransactionResponse, error) {
	req.ApplyDefaults(t.now())
	if err := req.Validate(); err != nil {
		return transaction.LogTransactionResponse{}, err
	}

	emp, err := t.employees.FindEmployee(req.EmployeeID)
	if err != nil {
		return transaction.LogTransactionResponse{}, err
	}

	submission := transaction.TransactionSubmission{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Date:         req.Date,
		Type:         req.Type,
		Amount:       req.Amount,
		PaymentMode:  req.PaymentMode,
	}
	if req.Notes != nil {
		submission.Notes = *req.Notes
	}
	if err := t.TransactionRepository.LogTransaction(ctx, submission); err != nil {
		return transaction.LogTransactionResponse{}, fmt.Errorf("failed to log transaction: %w", err)
	}

	slog.Info("transaction logged", "emp_id", emp.ID, "type", req.Type, "amount", req.Amount.String())
	return transaction.LogTransactionResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Type:         req.Type,
		Amount:       req.Amount,
	}, nil
}
