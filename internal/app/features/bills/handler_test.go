package bills_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/hridoylabs/lessonhub/internal/app/features/bills"
	"github.com/hridoylabs/lessonhub/internal/domain/models"
	"github.com/hridoylabs/lessonhub/internal/testutil"
)

func newTestHandler(t *testing.T) (*bills.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return bills.NewHandler(db, zap.NewNop()), testutil.NewFixtures(t, db)
}

func seedBill(t *testing.T, fx *testutil.Fixtures, provider string, amount int64) models.Bill {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	b := models.Bill{
		ID:        primitive.NewObjectID(),
		Type:      "electricity",
		Provider:  provider,
		Amount:    amount,
		DueDate:   time.Now().Add(7 * 24 * time.Hour).UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := fx.DB().Collection("utilityBills").InsertOne(ctx, b); err != nil {
		t.Fatalf("seed bill: %v", err)
	}
	return b
}

func TestListAndGet(t *testing.T) {
	h, fx := newTestHandler(t)
	bill := seedBill(t, fx, "DESCO", 120000)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest("GET", "/bills", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list: %d", rec.Code)
	}
	var listed []models.Bill
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("parse list: %v", err)
	}
	if len(listed) != 1 || listed[0].Provider != "DESCO" {
		t.Fatalf("unexpected list: %+v", listed)
	}

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/bills/"+bill.ID.Hex(), nil), "id", bill.ID.Hex())
	rec = httptest.NewRecorder()
	h.Get(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: %d", rec.Code)
	}

	missing := primitive.NewObjectID().Hex()
	req = testutil.WithChiURLParam(httptest.NewRequest("GET", "/bills/"+missing, nil), "id", missing)
	rec = httptest.NewRecorder()
	h.Get(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get missing: expected 404, got %d", rec.Code)
	}
}

func TestPayAndMyBills(t *testing.T) {
	h, fx := newTestHandler(t)
	bill := seedBill(t, fx, "WASA", 60000)

	body := `{"billId":"` + bill.ID.Hex() + `","email":"payer@x.com","amount":60000}`
	rec := httptest.NewRecorder()
	h.Pay(rec, httptest.NewRequest("POST", "/my-bills", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("pay: %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.MyBills(rec, httptest.NewRequest("GET", "/my-bills?email=payer@x.com", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("my-bills: %d", rec.Code)
	}
	var payments []models.BillPayment
	if err := json.Unmarshal(rec.Body.Bytes(), &payments); err != nil {
		t.Fatalf("parse payments: %v", err)
	}
	if len(payments) != 1 || payments[0].BillID != bill.ID {
		t.Fatalf("unexpected payments: %+v", payments)
	}
}

func TestPay_Validation(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Pay(rec, httptest.NewRequest("POST", "/my-bills", strings.NewReader(`{"email":"payer@x.com"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPay_UnknownBill(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `{"billId":"` + primitive.NewObjectID().Hex() + `","email":"payer@x.com","amount":100}`
	rec := httptest.NewRecorder()
	h.Pay(rec, httptest.NewRequest("POST", "/my-bills", strings.NewReader(body)))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
