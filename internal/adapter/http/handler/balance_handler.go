package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// BalanceHandler handles balance-related HTTP requests.
type BalanceHandler struct {
	balanceUC        *usecase.BalanceUseCase
	reconciliationUC *usecase.ReconciliationUseCase
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceUC *usecase.BalanceUseCase, reconciliationUC *usecase.ReconciliationUseCase) *BalanceHandler {
	return &BalanceHandler{
		balanceUC:        balanceUC,
		reconciliationUC: reconciliationUC,
	}
}

// GetCurrent returns the customer's current balance. A customer that
// has never transacted gets a zero balance, not an error.
func (h *BalanceHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "missing customer ID", "")
		return
	}

	snapshot, err := h.balanceUC.GetCurrentBalance(r.Context(), customerID)
	if errors.Is(err, domain.ErrBalanceNotFound) {
		writeData(w, http.StatusOK, "balance retrieved", dto.ZeroBalance(customerID))
		return
	}
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get balance", err.Error())

		return
	}

	writeData(w, http.StatusOK, "balance retrieved", dto.BalanceFromDomain(snapshot))
}

// ListHistory lists recent balance history entries for a customer.
func (h *BalanceHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
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

	entries, err := h.balanceUC.ListRecentBalanceHistory(r.Context(), usecase.ListRecentBalanceHistoryInput{
		CustomerID: customerID,
		Limit:      limit,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list balance history", err.Error())

		return
	}

	writeData(w, http.StatusOK, "balance history retrieved", dto.BalanceHistoryFromDomain(entries))
}

// Reconcile recomputes the customer balance from the transaction stream
// and reports whether it matches the snapshot and history.
func (h *BalanceHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "missing customer ID", "")
		return
	}

	result, err := h.reconciliationUC.ReconcileCustomer(r.Context(), customerID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to reconcile customer", err.Error())

		return
	}

	writeData(w, http.StatusOK, "reconciliation completed", dto.ReconciliationFromResult(result))
}
