package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/postmuse/backend/internal/models"
)

func TestDraftSaveAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewDraftService(db)
	user := createTestUser(t, db, models.TierFree, false)

	id, err := svc.Save(user.ID, "first draft", "twitter")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("Save returned nil id")
	}

	drafts, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(drafts) != 1 {
		t.Fatalf("got %d drafts, want 1", len(drafts))
	}
	if drafts[0].Content != "first draft" || drafts[0].Platform != "twitter" {
		t.Errorf("unexpected draft: %+v", drafts[0])
	}
}

func TestDraftListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewDraftService(db)
	user := createTestUser(t, db, models.TierFree, false)

	base := time.Now().Add(-time.Hour)
	for i, content := range []string{"oldest", "middle", "newest"} {
		draft := models.Draft{
			ID:        uuid.New(),
			UserID:    user.ID,
			Content:   content,
			Platform:  "linkedin",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&draft).Error; err != nil {
			t.Fatalf("seed draft: %v", err)
		}
	}

	drafts, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got := make([]string, len(drafts))
	for i, d := range drafts {
		got[i] = d.Content
	}
	want := []string{"newest", "middle", "oldest"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got order %v, want %v", got, want)
		}
	}
}

func TestDraftListScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewDraftService(db)
	alice := createTestUser(t, db, models.TierFree, false)
	bob := createTestUser(t, db, models.TierFree, false)

	if _, err := svc.Save(alice.ID, "alice's draft", "twitter"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	drafts, err := svc.List(bob.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(drafts) != 0 {
		t.Errorf("got %d drafts for another user, want 0", len(drafts))
	}
}
