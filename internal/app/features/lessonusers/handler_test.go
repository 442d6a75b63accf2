package lessonusers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/hridoylabs/lessonhub/internal/app/features/lessonusers"
	userstore "github.com/hridoylabs/lessonhub/internal/app/store/users"
	"github.com/hridoylabs/lessonhub/internal/app/system/identity"
	"github.com/hridoylabs/lessonhub/internal/testutil"
)

func newTestHandler(t *testing.T) (*lessonusers.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	resolver := identity.NewResolver(userstore.New(db), "")
	return lessonusers.NewHandler(db, resolver, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestRegister_CreatesOnce(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	register := func() *httptest.ResponseRecorder {
		body := `{"email":"new@x.com","name":"New User","photo":"https://pix/x.png"}`
		rec := httptest.NewRecorder()
		h.Register(rec, httptest.NewRequest("POST", "/lesson-users", strings.NewReader(body)))
		return rec
	}

	if rec := register(); rec.Code != http.StatusOK {
		t.Fatalf("first register: %d", rec.Code)
	}
	if rec := register(); rec.Code != http.StatusOK {
		t.Fatalf("second register: %d", rec.Code)
	}

	count, err := fx.DB().Collection("lessonUsers").CountDocuments(ctx, bson.M{"email": "new@x.com"})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 record, got %d", count)
	}
}

func TestRegister_EmptyEmailReturnsEmptyObject(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest("POST", "/lesson-users", strings.NewReader(`{"name":"No Email"}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "{}" {
		t.Errorf("expected empty object, got %s", got)
	}
	count, err := fx.DB().Collection("lessonUsers").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no records, got %d", count)
	}
}

func TestRole_DefaultsForUnknownEmail(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Role(rec, httptest.NewRequest("GET", "/lesson-users/role?email=ghost@x.com", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Role    string `json:"role"`
		Premium bool   `json:"premium"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if resp.Role != "user" || resp.Premium {
		t.Errorf("unexpected defaults: %+v", resp)
	}
}

func TestRole_KnownAdmin(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateAdmin(ctx, "boss@x.com")

	rec := httptest.NewRecorder()
	h.Role(rec, httptest.NewRequest("GET", "/lesson-users/role?email=boss@x.com", nil))

	var resp struct {
		Role string `json:"role"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if resp.Role != "admin" {
		t.Errorf("role: got %q, want admin", resp.Role)
	}
}
