package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/somapath/somapath-backend/internal/repos/testutil"
)

func TestEssayRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewEssayRepo(db, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "essayrepo-owner@example.com")
	stranger := testutil.SeedUser(t, ctx, tx, "essayrepo-stranger@example.com")

	e1 := testutil.SeedEssay(t, ctx, tx, owner.ID, "Why Stanford")
	e2 := testutil.SeedEssay(t, ctx, tx, owner.ID, "Personal Statement")

	// ownership scoping: missing and not-owned are indistinguishable
	if got, err := repo.GetByIDForUser(ctx, tx, e1.ID, owner.ID); err != nil || got == nil || got.ID != e1.ID {
		t.Fatalf("GetByIDForUser owner: got=%v err=%v", got, err)
	}
	if got, err := repo.GetByIDForUser(ctx, tx, e1.ID, stranger.ID); err != nil || got != nil {
		t.Fatalf("GetByIDForUser stranger: expected nil,nil got=%v err=%v", got, err)
	}
	if got, err := repo.GetByIDForUser(ctx, tx, uuid.New(), owner.ID); err != nil || got != nil {
		t.Fatalf("GetByIDForUser missing: expected nil,nil got=%v err=%v", got, err)
	}

	rows, err := repo.ListByUser(ctx, tx, owner.ID)
	if err != nil || len(rows) != 2 {
		t.Fatalf("ListByUser: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.ListByUser(ctx, tx, stranger.ID); err != nil || len(rows) != 0 {
		t.Fatalf("ListByUser stranger: err=%v len=%d", err, len(rows))
	}

	matched, err := repo.UpdateFields(ctx, tx, e2.ID, owner.ID, map[string]any{"title": "Common App"})
	if err != nil || !matched {
		t.Fatalf("UpdateFields: matched=%v err=%v", matched, err)
	}
	if got, _ := repo.GetByIDForUser(ctx, tx, e2.ID, owner.ID); got.Title != "Common App" {
		t.Fatalf("UpdateFields did not stick: %q", got.Title)
	}
	// scoped update must not match someone else's essay
	matched, err = repo.UpdateFields(ctx, tx, e2.ID, stranger.ID, map[string]any{"title": "hijack"})
	if err != nil || matched {
		t.Fatalf("UpdateFields stranger: matched=%v err=%v", matched, err)
	}

	if err := repo.FullDeleteByIDs(ctx, tx, []uuid.UUID{e1.ID}); err != nil {
		t.Fatalf("FullDeleteByIDs: %v", err)
	}
	if rows, _ := repo.ListByUser(ctx, tx, owner.ID); len(rows) != 1 {
		t.Fatalf("after delete: len=%d", len(rows))
	}
}
