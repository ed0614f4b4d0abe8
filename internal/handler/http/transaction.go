package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/navnirman/admin-backend-go/internal/domain/transaction"
	"github.com/navnirman/admin-backend-go/internal/handler/http/response"
)

type TransactionHandler interface {
	Log(w http.ResponseWriter, r *http.Request)
}

type transactionHandlerImpl struct {
	transactionService transaction.TransactionService
}

func NewTransactionHandler(transactionService transaction.TransactionService) TransactionHandler {
	return &transactionHandlerImpl{transactionService: transactionService}
}

// Log handles POST /transactions
func (h *transactionHandlerImpl) Log(w http.ResponseWriter, r *http.Request) {
	var req transaction.LogTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Log transaction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.transactionService.LogTransaction(r.Context(), req)
	if err != nil {
		slog.Error("Log transaction service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Transaction logged", result)
}
