package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/somapath/somapath-backend/internal/repos/testutil"
	"github.com/somapath/somapath-backend/internal/types"
)

func TestUniversityRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewUniversityRepo(db, testutil.Logger(t))

	if got, err := repo.GetByScorecardID(ctx, tx, 999999); err != nil || got != nil {
		t.Fatalf("GetByScorecardID missing: expected nil,nil got=%v err=%v", got, err)
	}

	row := &types.University{
		ID:          uuid.New(),
		ScorecardID: testutil.PtrInt(166027),
		Name:        "Harvard University",
		City:        "Cambridge",
		State:       "MA",
		TuitionUSD:  testutil.PtrInt(57261),
	}
	if _, err := repo.Create(ctx, tx, []*types.University{row}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByScorecardID(ctx, tx, 166027)
	if err != nil || got == nil || got.Name != "Harvard University" {
		t.Fatalf("GetByScorecardID: got=%v err=%v", got, err)
	}

	got.TuitionUSD = testutil.PtrInt(59000)
	saved, err := repo.Save(ctx, tx, got)
	if err != nil || saved.TuitionUSD == nil || *saved.TuitionUSD != 59000 {
		t.Fatalf("Save: got=%+v err=%v", saved, err)
	}

	rows, err := repo.List(ctx, tx)
	if err != nil || len(rows) == 0 {
		t.Fatalf("List: err=%v len=%d", err, len(rows))
	}
}
