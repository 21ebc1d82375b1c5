package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/somapath/somapath-backend/internal/repos/testutil"
	"github.com/somapath/somapath-backend/internal/types"
)

func TestScholarshipRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewScholarshipRepo(db, testutil.Logger(t))

	if got, err := repo.GetByIEFAID(ctx, tx, "nope"); err != nil || got != nil {
		t.Fatalf("GetByIEFAID missing: expected nil,nil got=%v err=%v", got, err)
	}

	row := &types.Scholarship{
		ID:                uuid.New(),
		IEFAID:            testutil.PtrString("4213"),
		Name:              "MasterCard Foundation Scholars Program",
		Organization:      "IEFA",
		ForKenyanStudents: true,
		HostCountries:     datatypes.NewJSONSlice([]string{"United States", "Canada"}),
	}
	if _, err := repo.Create(ctx, tx, []*types.Scholarship{row}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByIEFAID(ctx, tx, "4213")
	if err != nil || got == nil || got.Name != "MasterCard Foundation Scholars Program" {
		t.Fatalf("GetByIEFAID: got=%v err=%v", got, err)
	}
	if len(got.HostCountries) != 2 {
		t.Fatalf("host countries round-trip: %v", got.HostCountries)
	}

	got.Deadline = "Rolling"
	saved, err := repo.Save(ctx, tx, got)
	if err != nil || saved.Deadline != "Rolling" {
		t.Fatalf("Save: got=%+v err=%v", saved, err)
	}

	rows, err := repo.List(ctx, tx)
	if err != nil || len(rows) == 0 {
		t.Fatalf("List: err=%v len=%d", err, len(rows))
	}
}
