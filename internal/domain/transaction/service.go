package transaction

import "context"

type TransactionService interface {
	LogTransaction(ctx context.Context, req LogTransactionRequest) (LogTransactionResponse, error)
}
