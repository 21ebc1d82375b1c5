package services

import (
	"context"
	"testing"

	"github.com/somapath/somapath-backend/internal/repos"
	"github.com/somapath/somapath-backend/internal/repos/testutil"
	"github.com/somapath/somapath-backend/internal/types"
)

func TestCatalogService_UpsertIdempotence(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	log := testutil.Logger(t)

	svc := NewCatalogService(tx, log, repos.NewUniversityRepo(tx, log), repos.NewScholarshipRepo(tx, log), nil)

	first, err := svc.UpsertUniversity(ctx, &types.University{
		ScorecardID: testutil.PtrInt(243744),
		Name:        "Stanford University",
		TuitionUSD:  testutil.PtrInt(58416),
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := svc.UpsertUniversity(ctx, &types.University{
		ScorecardID: testutil.PtrInt(243744),
		Name:        "Stanford University",
		TuitionUSD:  testutil.PtrInt(61731),
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("re-import must update, not duplicate: %s vs %s", first.ID, second.ID)
	}
	if second.TuitionUSD == nil || *second.TuitionUSD != 61731 {
		t.Fatalf("second import should win: %v", second.TuitionUSD)
	}

	rows, err := svc.ListUniversities(ctx)
	if err != nil {
		t.Fatalf("ListUniversities: %v", err)
	}
	count := 0
	for _, r := range rows {
		if r.ScorecardID != nil && *r.ScorecardID == 243744 {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one record for the external id, got %d", count)
	}

	s1, err := svc.UpsertScholarship(ctx, &types.Scholarship{
		IEFAID: testutil.PtrString("svc-9001"),
		Name:   "Test Award",
	})
	if err != nil {
		t.Fatalf("scholarship upsert: %v", err)
	}
	s2, err := svc.UpsertScholarship(ctx, &types.Scholarship{
		IEFAID:   testutil.PtrString("svc-9001"),
		Name:     "Test Award",
		Deadline: "June 1",
	})
	if err != nil {
		t.Fatalf("scholarship re-upsert: %v", err)
	}
	if s2.ID != s1.ID || s2.Deadline != "June 1" {
		t.Fatalf("scholarship upsert not idempotent: %+v vs %+v", s1, s2)
	}
}
