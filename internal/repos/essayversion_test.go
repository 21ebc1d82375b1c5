package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/somapath/somapath-backend/internal/platform/apperr"
	"github.com/somapath/somapath-backend/internal/repos/testutil"
	"github.com/somapath/somapath-backend/internal/types"
)

func TestEssayVersionRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewEssayVersionRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "essayversionrepo@example.com")
	e := testutil.SeedEssay(t, ctx, tx, u.ID, "Supplemental")

	if n, err := repo.MaxVersion(ctx, tx, e.ID); err != nil || n != 0 {
		t.Fatalf("MaxVersion empty: n=%d err=%v", n, err)
	}
	if got, err := repo.Latest(ctx, tx, e.ID); err != nil || got != nil {
		t.Fatalf("Latest empty: expected nil,nil got=%v err=%v", got, err)
	}

	testutil.SeedEssayVersion(t, ctx, tx, e.ID, 1, "first draft")
	testutil.SeedEssayVersion(t, ctx, tx, e.ID, 2, "second draft")

	latest, err := repo.Latest(ctx, tx, e.ID)
	if err != nil || latest == nil || latest.Version != 2 {
		t.Fatalf("Latest: got=%v err=%v", latest, err)
	}
	if n, err := repo.MaxVersion(ctx, tx, e.ID); err != nil || n != 2 {
		t.Fatalf("MaxVersion: n=%d err=%v", n, err)
	}

	rows, err := repo.ListByEssay(ctx, tx, e.ID)
	if err != nil || len(rows) != 2 {
		t.Fatalf("ListByEssay: err=%v len=%d", err, len(rows))
	}
	if rows[0].Version != 2 || rows[1].Version != 1 {
		t.Fatalf("ListByEssay order: %d, %d", rows[0].Version, rows[1].Version)
	}

	// duplicate version number surfaces as a conflict, not a generic error
	_, err = repo.Create(ctx, tx, []*types.EssayVersion{{
		ID:      uuid.New(),
		EssayID: e.ID,
		Version: 2,
		Content: "stale overwrite",
	}})
	if !errors.Is(err, apperr.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}
