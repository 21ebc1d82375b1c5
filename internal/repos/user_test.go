package repos

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/somapath/somapath-backend/internal/repos/testutil"
	"github.com/somapath/somapath-backend/internal/types"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewUserRepo(db, testutil.Logger(t))

	if got, err := repo.GetByEmail(ctx, tx, "nobody@example.com"); err != nil || got != nil {
		t.Fatalf("GetByEmail missing: expected nil,nil got=%v err=%v", got, err)
	}
	if exists, err := repo.EmailExists(ctx, tx, "nobody@example.com"); err != nil || exists {
		t.Fatalf("EmailExists missing: exists=%v err=%v", exists, err)
	}

	u := testutil.SeedUser(t, ctx, tx, "userrepo@example.com")

	if got, err := repo.GetByID(ctx, tx, u.ID); err != nil || got == nil || got.Email != u.Email {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}
	if got, err := repo.GetByID(ctx, tx, uuid.New()); err != nil || got != nil {
		t.Fatalf("GetByID missing: expected nil,nil got=%v err=%v", got, err)
	}
	if exists, err := repo.EmailExists(ctx, tx, "userrepo@example.com"); err != nil || !exists {
		t.Fatalf("EmailExists: exists=%v err=%v", exists, err)
	}

	raw, err := json.Marshal(types.AcademicScores{ExamType: "kcse", KCSEGrade: "A-", KCSEPoints: 78})
	if err != nil {
		t.Fatalf("marshal scores: %v", err)
	}
	if err := repo.UpdateAcademicScores(ctx, tx, u.ID, datatypes.JSON(raw)); err != nil {
		t.Fatalf("UpdateAcademicScores: %v", err)
	}
	got, err := repo.GetByID(ctx, tx, u.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID after update: got=%v err=%v", got, err)
	}
	var scores types.AcademicScores
	if err := json.Unmarshal(got.AcademicScores, &scores); err != nil {
		t.Fatalf("unmarshal scores: %v", err)
	}
	if scores.ExamType != "kcse" || scores.KCSEPoints != 78 {
		t.Fatalf("scores round-trip: %+v", scores)
	}
}
