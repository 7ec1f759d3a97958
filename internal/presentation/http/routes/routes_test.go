package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/almvdev/receiving-api/internal/application/service"
	"github.com/almvdev/receiving-api/internal/config"
	"github.com/almvdev/receiving-api/internal/domain/entity"
	infraRepo "github.com/almvdev/receiving-api/internal/infrastructure/repository"
	"github.com/almvdev/receiving-api/internal/presentation/http/handler"
	"github.com/almvdev/receiving-api/pkg/clock"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// newTestRouter builds the full router with in-memory storage so route
// tests exercise the complete request path.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sched := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	orders := []entity.PurchaseOrder{
		{
			OrderNo:  "10401651",
			Year:     2025,
			Supplier: "PANIFICADORA DEL CENTRO",
			Lines: []entity.PurchaseOrderLine{
				{ItemCode: "2212008007", Description: "Harina", OrderedQty: 80, UnitPrice: decimal.RequireFromString("10.00"), ScheduledDate: &sched},
			},
		},
	}

	svc := service.NewReceptionService(
		infraRepo.NewMemoryCatalog(orders),
		infraRepo.NewSessionStore(),
		infraRepo.NewMemoryReceiptRepository(12345),
		clock.FixedClock{Day: time.Date(2025, 9, 4, 0, 0, 0, 0, time.UTC)},
		nil,
	)

	handlers := &Handlers{
		Order:   handler.NewOrderHandler(svc),
		Session: handler.NewSessionHandler(svc),
		Receipt: handler.NewReceiptHandler(svc),
		Ticket:  handler.NewTicketHandler(),
	}
	cfg := &config.Config{
		App:       config.AppConfig{Name: "receiving-api-test"},
		RateLimit: config.RateLimitConfig{Requests: 1000, Duration: 1},
	}
	return Setup(handlers, &Deps{Cfg: cfg})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return envelope
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", body["status"])
	}
}

func TestGetOrder(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/orders/2025/10401651", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec)
	if envelope["success"] != true {
		t.Fatalf("expected success envelope, got %v", envelope)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/orders/2025/99999999", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown order, got %d", rec.Code)
	}
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	// Open a session.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/sessions", map[string]any{
		"year":     2025,
		"order_no": "10401651",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec)
	data, _ := envelope["data"].(map[string]any)
	sessionID, _ := data["id"].(string)
	if sessionID == "" {
		t.Fatalf("expected a session id, got %v", envelope)
	}

	// Record received goods on the single line.
	rec = doJSON(t, router, http.MethodPatch,
		fmt.Sprintf("/api/v1/sessions/%s/lines/2212008007", sessionID),
		map[string]any{"received_qty": 80, "lot": "LOTE-A1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	// Register the receipt into the default warehouse.
	rec = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/sessions/%s/register", sessionID),
		map[string]any{})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	envelope = decodeEnvelope(t, rec)
	data, _ = envelope["data"].(map[string]any)
	folio, _ := data["folio"].(string)
	if folio != "RB-012346" {
		t.Fatalf("folio = %q, want RB-012346", folio)
	}

	// The receipt is now retrievable.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/receipts/RB-012346", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// Registering again conflicts.
	rec = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/sessions/%s/register", sessionID),
		map[string]any{})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestDecodeTicketEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/tickets/decode", map[string]any{
		"payload": "10401651]2025-09-03]FAC-XYZ-789Ç2212008007|80|LOTE-A1|2026-09-01",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/tickets/decode", map[string]any{
		"payload": "not a ticket",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for malformed payload, got %d", rec.Code)
	}
}

func TestListReceiptsPagination(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/receipts?page=1&per_page=5", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	envelope := decodeEnvelope(t, rec)
	if envelope["success"] != true {
		t.Fatalf("expected success envelope, got %v", envelope)
	}
}
