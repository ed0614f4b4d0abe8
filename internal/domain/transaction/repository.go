package transaction

import "context"

type TransactionRepository interface {
	FetchTransactionLogs(ctx context.Context) ([]TransactionLog, error)
	LogTransaction(ctx context.Context, submission TransactionSubmission) error
}
