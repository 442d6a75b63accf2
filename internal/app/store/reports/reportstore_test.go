package reportstore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	reportstore "github.com/hridoylabs/lessonhub/internal/app/store/reports"
	"github.com/hridoylabs/lessonhub/internal/domain/models"
	"github.com/hridoylabs/lessonhub/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.ReportedLesson{
		LessonID:       primitive.NewObjectID().Hex(),
		ReporterUserID: "u1",
		Reason:         "spam",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Ignored {
		t.Error("expected new report to start un-ignored")
	}
	if created.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestStore_All_IncludesIgnored(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	lessonID := primitive.NewObjectID().Hex()
	first := fix.CreateReport(ctx, lessonID, "u1", "spam")
	fix.CreateReport(ctx, lessonID, "u2", "offensive")

	if _, err := store.Ignore(ctx, first.ID); err != nil {
		t.Fatalf("Ignore failed: %v", err)
	}

	all, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all: got %d reports, want 2 (ignored ones included)", len(all))
	}
}

func TestStore_Ignore_ZeroMatchIsNotAnError(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	matched, err := store.Ignore(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("Ignore failed: %v", err)
	}
	if matched != 0 {
		t.Errorf("matched: got %d, want 0", matched)
	}
}

func TestStore_DeleteByLesson_Cascades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	target := primitive.NewObjectID().Hex()
	other := primitive.NewObjectID().Hex()
	fix.CreateReport(ctx, target, "u1", "spam")
	fix.CreateReport(ctx, target, "u2", "spam again")
	fix.CreateReport(ctx, other, "u1", "unrelated")

	deleted, err := store.DeleteByLesson(ctx, target)
	if err != nil {
		t.Fatalf("DeleteByLesson failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted: got %d, want 2", deleted)
	}

	all, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("remaining: got %d, want 1", len(all))
	}
	if all[0].LessonID != other {
		t.Errorf("remaining report references %q, want %q", all[0].LessonID, other)
	}
}
