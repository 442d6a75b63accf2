package comments_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/hridoylabs/lessonhub/internal/app/features/comments"
	userstore "github.com/hridoylabs/lessonhub/internal/app/store/users"
	"github.com/hridoylabs/lessonhub/internal/app/system/identity"
	"github.com/hridoylabs/lessonhub/internal/testutil"
)

func newTestHandler(t *testing.T) (*comments.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	resolver := identity.NewResolver(userstore.New(db), "")
	return comments.NewHandler(db, resolver, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestCreate_BlankContentRejected(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	lesson := fx.CreateApprovedLesson(ctx, "T", "a@x.com")

	body := `{"userId":"u1","userEmail":"u1@x.com","content":"   "}`
	req := httptest.NewRequest("POST", "/lessons/"+lesson.ID.Hex()+"/comments", strings.NewReader(body))
	req = testutil.WithChiURLParam(req, "id", lesson.ID.Hex())
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	count, err := fx.DB().Collection("comments").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no comments inserted, got %d", count)
	}
}

func TestCreate_EchoesStringifiedID(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	lesson := fx.CreateApprovedLesson(ctx, "T", "a@x.com")

	body := `{"userId":"u1","userEmail":"u1@x.com","userName":"  Commenter ","userPhoto":"javascript:alert(1)","content":" hi there "}`
	req := httptest.NewRequest("POST", "/lessons/"+lesson.ID.Hex()+"/comments", strings.NewReader(body))
	req = testutil.WithChiURLParam(req, "id", lesson.ID.Hex())
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success bool `json:"success"`
		Comment struct {
			ID        string `json:"_id"`
			UserName  string `json:"userName"`
			UserPhoto string `json:"userPhoto"`
			Content   string `json:"content"`
		} `json:"comment"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if resp.Comment.ID == "" {
		t.Error("expected stringified comment id")
	}
	if resp.Comment.UserName != "Commenter" {
		t.Errorf("userName: got %q", resp.Comment.UserName)
	}
	if resp.Comment.UserPhoto != "" {
		t.Errorf("non-http photo url kept: %q", resp.Comment.UserPhoto)
	}
	if resp.Comment.Content != "hi there" {
		t.Errorf("content: got %q", resp.Comment.Content)
	}
}

func TestList_ReturnsNewestFirst(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	lesson := fx.CreateApprovedLesson(ctx, "T", "a@x.com")
	fx.CreateComment(ctx, lesson.ID.Hex(), "u1", "first")
	fx.CreateComment(ctx, lesson.ID.Hex(), "u2", "second")

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/lessons/"+lesson.ID.Hex()+"/comments", nil), "id", lesson.ID.Hex())
	rec := httptest.NewRecorder()
	h.List(rec, req)

	var resp struct {
		Comments []struct {
			ID      string `json:"_id"`
			Content string `json:"content"`
		} `json:"comments"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(resp.Comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(resp.Comments))
	}
	for _, c := range resp.Comments {
		if c.ID == "" {
			t.Error("expected stringified id on listed comment")
		}
	}
}

func TestDelete_NonAuthorForbidden(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	lesson := fx.CreateApprovedLesson(ctx, "T", "a@x.com")
	comment := fx.CreateComment(ctx, lesson.ID.Hex(), "author1", "keep me")
	fx.CreateUser(ctx, "bystander@x.com", "Bystander", "user")

	body := `{"userId":"someone-else","userEmail":"bystander@x.com"}`
	req := httptest.NewRequest("DELETE", "/comments/"+comment.ID.Hex(), strings.NewReader(body))
	req = testutil.WithChiURLParam(req, "id", comment.ID.Hex())
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	count, err := fx.DB().Collection("comments").CountDocuments(ctx, bson.M{"_id": comment.ID})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Error("comment was deleted despite 403")
	}
}

func TestDelete_AuthorAllowed(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	lesson := fx.CreateApprovedLesson(ctx, "T", "a@x.com")
	comment := fx.CreateComment(ctx, lesson.ID.Hex(), "author1", "bye")

	body := `{"userId":"author1","userEmail":"author1@test.com"}`
	req := httptest.NewRequest("DELETE", "/comments/"+comment.ID.Hex(), strings.NewReader(body))
	req = testutil.WithChiURLParam(req, "id", comment.ID.Hex())
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDelete_AdminRoleAllowed(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	lesson := fx.CreateApprovedLesson(ctx, "T", "a@x.com")
	comment := fx.CreateComment(ctx, lesson.ID.Hex(), "author1", "moderated")
	fx.CreateAdmin(ctx, "mod@x.com")

	body := `{"userId":"not-the-author","userEmail":"mod@x.com"}`
	req := httptest.NewRequest("DELETE", "/comments/"+comment.ID.Hex(), strings.NewReader(body))
	req = testutil.WithChiURLParam(req, "id", comment.ID.Hex())
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	count, err := fx.DB().Collection("comments").CountDocuments(ctx, bson.M{"_id": comment.ID})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Error("comment should be gone")
	}
}

func TestToggleLike_FlipsCount(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	lesson := fx.CreateApprovedLesson(ctx, "T", "a@x.com")
	comment := fx.CreateComment(ctx, lesson.ID.Hex(), "author1", "likeable")

	like := func() int {
		req := httptest.NewRequest("PATCH", "/comments/"+comment.ID.Hex()+"/like", strings.NewReader(`{"userId":"u9"}`))
		req = testutil.WithChiURLParam(req, "id", comment.ID.Hex())
		rec := httptest.NewRecorder()
		h.ToggleLike(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("toggle: %d %s", rec.Code, rec.Body.String())
		}
		var resp struct {
			LikesCount int `json:"likesCount"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("parse: %v", err)
		}
		return resp.LikesCount
	}

	if n := like(); n != 1 {
		t.Fatalf("first toggle: got %d, want 1", n)
	}
	if n := like(); n != 0 {
		t.Fatalf("second toggle: got %d, want 0", n)
	}
}
