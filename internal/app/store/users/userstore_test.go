package userstore_test

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	userstore "github.com/hridoylabs/lessonhub/internal/app/store/users"
	"github.com/hridoylabs/lessonhub/internal/domain/models"
	"github.com/hridoylabs/lessonhub/internal/testutil"
)

func TestStore_Create_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{Email: "User@Example.COM"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Email != "user@example.com" {
		t.Errorf("email: got %q, want normalized %q", created.Email, "user@example.com")
	}
	if created.Name != "Unknown User" {
		t.Errorf("name: got %q, want default %q", created.Name, "Unknown User")
	}
	if created.Role != "user" {
		t.Errorf("role: got %q, want %q", created.Role, "user")
	}
	if created.Premium {
		t.Error("expected premium to default to false")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_GetByEmail_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByEmail(ctx, "nobody@test.com")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_EnsureByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.EnsureByEmail(ctx, "author@test.com", "Author", "")
	if err != nil {
		t.Fatalf("EnsureByEmail failed: %v", err)
	}

	// second call returns the same record, not a duplicate
	second, err := store.EnsureByEmail(ctx, "author@test.com", "Different Name", "")
	if err != nil {
		t.Fatalf("EnsureByEmail (existing) failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected same record, got %s and %s", first.ID.Hex(), second.ID.Hex())
	}
	if second.Name != "Author" {
		t.Errorf("name: got %q, want original %q", second.Name, "Author")
	}
}

func TestStore_MakePremium(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.User{Email: "buyer@test.com"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	matched, err := store.MakePremium(ctx, "buyer@test.com")
	if err != nil {
		t.Fatalf("MakePremium failed: %v", err)
	}
	if matched != 1 {
		t.Fatalf("matched: got %d, want 1", matched)
	}

	u, err := store.GetByEmail(ctx, "buyer@test.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if !u.Premium {
		t.Error("expected premium=true")
	}
	if u.PremiumActivatedAt == nil || u.PremiumActivatedAt.IsZero() {
		t.Error("expected premiumActivatedAt to be stamped")
	}
}

func TestStore_MakePremium_NoUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	matched, err := store.MakePremium(ctx, "ghost@test.com")
	if err != nil {
		t.Fatalf("MakePremium failed: %v", err)
	}
	if matched != 0 {
		t.Errorf("matched: got %d, want 0", matched)
	}
}

func TestStore_UpdateRolePremium(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{Email: "promote@test.com"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	matched, err := store.UpdateRolePremium(ctx, created.ID, "admin", true)
	if err != nil {
		t.Fatalf("UpdateRolePremium failed: %v", err)
	}
	if matched != 1 {
		t.Fatalf("matched: got %d, want 1", matched)
	}

	u, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if u.Role != "admin" || !u.Premium {
		t.Errorf("got role=%q premium=%v, want admin/true", u.Role, u.Premium)
	}
}
