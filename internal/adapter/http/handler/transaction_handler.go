package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/usecase"
)

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	ledgerUC      *usecase.LedgerUseCase
	transactionUC *usecase.TransactionUseCase
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerUC *usecase.LedgerUseCase, transactionUC *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{
		ledgerUC:      ledgerUC,
		transactionUC: transactionUC,
	}
}

// Record records a new wallet transaction.
func (h *TransactionHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	txn, err := h.ledgerUC.RecordTransaction(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to record transaction", err.Error())

		return
	}

	writeData(w, http.StatusCreated, "transaction recorded", dto.TransactionFromDomain(txn))
}

// ListByCustomer lists recent transactions for a customer.
func (h *TransactionHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "missing customer ID", "")
		return
	}

	limit, err := parseLimitQuery(r, "total", usecase.DefaultListLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid total parameter", err.Error())
		return
	}

	transactions, err := h.transactionUC.ListRecentTransactions(r.Context(), usecase.ListRecentTransactionsInput{
		CustomerID: customerID,
		Limit:      limit,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list transactions", err.Error())

		return
	}

	writeData(w, http.StatusOK, "transactions retrieved", dto.TransactionsFromDomain(transactions))
}

// Get retrieves a transaction by ID.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	txn, err := h.transactionUC.GetTransaction(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get transaction", err.Error())

		return
	}

	writeData(w, http.StatusOK, "transaction retrieved", dto.TransactionFromDomain(txn))
}
