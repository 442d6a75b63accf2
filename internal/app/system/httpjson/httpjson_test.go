package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@x.com"}`))

	var body struct {
		Email string `json:"email"`
	}
	if err := Decode(req, &body); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if body.Email != "a@x.com" {
		t.Errorf("email: got %q, want %q", body.Email, "a@x.com")
	}
}

func TestDecode_EmptyBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", nil)

	var body struct{}
	err := Decode(req, &body)
	if !errors.Is(err, ErrEmptyBody) {
		t.Errorf("expected ErrEmptyBody, got %v", err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{not json`))

	var body struct{}
	if err := Decode(req, &body); err == nil || errors.Is(err, ErrEmptyBody) {
		t.Errorf("expected a decode error, got %v", err)
	}
}

func TestError_Shape(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "Lesson not found")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse body: %v", err)
	}
	if body.Success {
		t.Error("expected success=false")
	}
	if body.Message != "Lesson not found" {
		t.Errorf("message: got %q, want %q", body.Message, "Lesson not found")
	}
}
