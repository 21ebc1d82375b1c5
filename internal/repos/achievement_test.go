package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/somapath/somapath-backend/internal/repos/testutil"
	"github.com/somapath/somapath-backend/internal/types"
)

func TestAchievementRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewAchievementRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "achievementrepo@example.com")
	a := testutil.SeedAchievement(t, ctx, tx, "First Draft")

	if rows, err := repo.ListForUser(ctx, tx, u.ID); err != nil || len(rows) != 0 {
		t.Fatalf("ListForUser empty: err=%v len=%d", err, len(rows))
	}

	ua := &types.UserAchievement{ID: uuid.New(), UserID: u.ID, AchievementID: a.ID}
	if _, err := repo.Award(ctx, tx, []*types.UserAchievement{ua}); err != nil {
		t.Fatalf("Award: %v", err)
	}

	rows, err := repo.ListForUser(ctx, tx, u.ID)
	if err != nil || len(rows) != 1 {
		t.Fatalf("ListForUser: err=%v len=%d", err, len(rows))
	}
	if rows[0].Achievement == nil || rows[0].Achievement.Name != "First Draft" {
		t.Fatalf("Achievement not preloaded: %+v", rows[0])
	}
}
