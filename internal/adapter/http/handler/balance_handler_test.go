package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

func TestBalanceHandler_GetCurrent(t *testing.T) {
	f := newHandlerFixture()

	if err := f.balanceRepo.CreateTx(context.Background(), nil, &domain.BalanceSnapshot{
		CustomerID:     testCustomerID,
		CurrentBalance: decimal.NewFromInt(3000),
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/customers/"+testCustomerID+"/balance", nil)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp dto.BaseResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	data, _ := resp.Data.(map[string]any)
	if data["balance"] != "3000" {
		t.Fatalf("expected balance 3000, got %v", data["balance"])
	}
}

func TestBalanceHandler_GetCurrent_NeverTransacted(t *testing.T) {
	f := newHandlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/customers/"+testCustomerID+"/balance", nil)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("absent balance must be 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp dto.BaseResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	data, _ := resp.Data.(map[string]any)
	if data["balance"] != "0" {
		t.Fatalf("expected zero balance, got %v", data["balance"])
	}
}

func TestBalanceHandler_GetCurrent_InvalidCustomer(t *testing.T) {
	f := newHandlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/customers/not-a-uuid/balance", nil)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestBalanceHandler_ListHistory(t *testing.T) {
	f := newHandlerFixture()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		if err := f.historyRepo.CreateTx(context.Background(), nil, &domain.BalanceHistoryEntry{
			TransactionID:   "00000000-0000-4000-8000-" + base.AddDate(0, 0, i).Format("150402012006"),
			TransactionTime: base.Add(time.Duration(i) * time.Minute),
			CustomerID:      testCustomerID,
			Balance:         decimal.NewFromInt(int64(100 * (i + 1))),
		}); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/customers/"+testCustomerID+"/balance/history", nil)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp dto.BaseResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	items, _ := resp.Data.([]any)
	if len(items) != usecase.DefaultListLimit {
		t.Fatalf("expected %d entries, got %d", usecase.DefaultListLimit, len(items))
	}

	first, _ := items[0].(map[string]any)
	if first["balance"] != "1200" {
		t.Fatalf("expected newest entry first, got %v", first["balance"])
	}
}

func TestBalanceHandler_ListHistory_NegativeTotal(t *testing.T) {
	f := newHandlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/customers/"+testCustomerID+"/balance/history?total=-1", nil)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for total=-1, got %d", rr.Code)
	}
}

func TestBalanceHandler_Reconcile(t *testing.T) {
	f := newHandlerFixture()
	seedFixtureTransactions(t, f, 2)

	// Snapshot matches the signed sum of 1 + 2.
	if err := f.balanceRepo.CreateTx(context.Background(), nil, &domain.BalanceSnapshot{
		CustomerID:     testCustomerID,
		CurrentBalance: decimal.NewFromInt(3),
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := f.historyRepo.CreateTx(context.Background(), nil, &domain.BalanceHistoryEntry{
		TransactionID:   "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		TransactionTime: time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC),
		CustomerID:      testCustomerID,
		Balance:         decimal.NewFromInt(3),
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/customers/"+testCustomerID+"/reconciliation", nil)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp dto.BaseResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	data, _ := resp.Data.(map[string]any)
	if data["is_reconciled"] != true {
		t.Fatalf("expected reconciled customer, got %+v", data)
	}
}
