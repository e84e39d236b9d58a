package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/delvechio-designs/mortgage-toolkit/internal/rates"
)

type stubRateSource struct {
	quote rates.Quote
}

func (s stubRateSource) Current(context.Context) rates.Quote {
	return s.quote
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	return NewHandler(zap.NewNop(), cfg, "test", stubRateSource{
		quote: rates.Quote{Rate30Year: 6.5, Rate15Year: 5.9, AsOf: time.Now()},
	})
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHandleHealth(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
}

func TestHandleVersion(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/version", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["version"] != "test" {
		t.Errorf("version = %q, expected test", resp["version"])
	}
}

func TestHandleRates(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var quote rates.Quote
	if err := json.Unmarshal(rr.Body.Bytes(), &quote); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if quote.Rate30Year != 6.5 {
		t.Errorf("Rate30Year = %.2f, expected 6.5", quote.Rate30Year)
	}
}

func TestCalcPurchaseSuccess(t *testing.T) {
	h := newTestHandler(t)

	rr := postJSON(t, h, "/api/v1/calc/purchase", `{
		"homePrice": 450000,
		"downPayment": {"value": 20, "unit": "percent"},
		"ratePercent": 7.5,
		"term": {"value": 30}
	}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		LoanAmount float64 `json:"loanAmount"`
		MonthlyPI  float64 `json:"monthlyPI"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.LoanAmount != 360000 {
		t.Errorf("loanAmount = %.2f, expected 360000", resp.LoanAmount)
	}
	if resp.MonthlyPI <= 0 {
		t.Errorf("monthlyPI = %.2f, expected positive", resp.MonthlyPI)
	}
}

func TestCalcValidationFailure(t *testing.T) {
	h := newTestHandler(t)

	rr := postJSON(t, h, "/api/v1/calc/purchase", `{
		"homePrice": -1,
		"ratePercent": 7.5,
		"term": {"value": 30}
	}`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] == "" {
		t.Errorf("expected error message in response")
	}
}

func TestCalcMalformedBody(t *testing.T) {
	h := newTestHandler(t)

	rr := postJSON(t, h, "/api/v1/calc/dscr", `{not json`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestCalcUnknownField(t *testing.T) {
	h := newTestHandler(t)

	rr := postJSON(t, h, "/api/v1/calc/refinance", `{
		"currentBalance": 280000,
		"currentPayment": 2200,
		"newRatePercent": 6.25,
		"newTerm": {"value": 30},
		"surpriseField": true
	}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown field, got %d", rr.Code)
	}
}

func TestPayoffNonAmortizing(t *testing.T) {
	h := newTestHandler(t)

	rr := postJSON(t, h, "/api/v1/amortization/payoff", `{
		"principal": 300000,
		"ratePercent": 6.0,
		"term": {"value": 30},
		"monthlyPayment": 1000
	}`)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestAmortizationSchedule(t *testing.T) {
	h := newTestHandler(t)

	rr := postJSON(t, h, "/api/v1/amortization/schedule", `{
		"principal": 100000,
		"ratePercent": 0,
		"term": {"value": 120, "unit": "months"}
	}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var entries []struct {
		Month   int     `json:"month"`
		Payment float64 `json:"payment"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &entries); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(entries) != 120 {
		t.Fatalf("len(entries) = %d, expected 120", len(entries))
	}
	if entries[0].Payment != 833.33 {
		t.Errorf("first payment = %.2f, expected 833.33", entries[0].Payment)
	}
}

func TestCalcBodyTooLarge(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	h := NewHandler(zap.NewNop(), cfg, "test", nil)

	body := `{"homePrice": 450000, "padding": "` + strings.Repeat("x", int(cfg.BodySizeBytes())+1) + `"}`
	rr := postJSON(t, h, "/api/v1/calc/purchase", body)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for oversized body, got %d", rr.Code)
	}
}
