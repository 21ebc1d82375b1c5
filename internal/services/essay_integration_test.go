package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/somapath/somapath-backend/internal/platform/apperr"
	"github.com/somapath/somapath-backend/internal/repos"
	"github.com/somapath/somapath-backend/internal/repos/testutil"
)

func newEssayServiceForTest(t *testing.T) (EssayService, context.Context, *testFixtureUsers) {
	t.Helper()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	log := testutil.Logger(t)

	owner := testutil.SeedUser(t, ctx, tx, "essaysvc-owner@example.com")
	stranger := testutil.SeedUser(t, ctx, tx, "essaysvc-stranger@example.com")

	svc := NewEssayService(tx, log, repos.NewEssayRepo(tx, log), repos.NewEssayVersionRepo(tx, log))
	return svc, ctx, &testFixtureUsers{Owner: owner.ID, Stranger: stranger.ID}
}

type testFixtureUsers struct {
	Owner    uuid.UUID
	Stranger uuid.UUID
}

func TestEssayService_CreateAndFetch(t *testing.T) {
	svc, ctx, users := newEssayServiceForTest(t)

	_, err := svc.Create(ctx, users.Owner, "   ", "")
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("empty title should be a validation error, got %v", err)
	}

	essay, err := svc.Create(ctx, users.Owner, "My Statement", "Why us?")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if essay.CurrentVersion != 1 {
		t.Fatalf("new essay should start at version 1, got %d", essay.CurrentVersion)
	}

	// a fresh essay is immediately readable with empty content
	got, err := svc.Get(ctx, users.Owner, essay.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Content != "" {
		t.Fatalf("fresh essay content should be empty, got %q", got.Content)
	}

	// same id fetched by a different user is indistinguishable from missing
	if _, err := svc.Get(ctx, users.Stranger, essay.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("foreign essay should be ErrNotFound, got %v", err)
	}
}

func TestEssayService_SaveVersionRoundTrip(t *testing.T) {
	svc, ctx, users := newEssayServiceForTest(t)

	essay, err := svc.Create(ctx, users.Owner, "Draft", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	v, err := svc.SaveVersion(ctx, users.Owner, essay.ID, SaveVersionInput{Version: 2, Content: "Hello world"})
	if err != nil {
		t.Fatalf("SaveVersion: %v", err)
	}
	if v.WordCount != 2 {
		t.Fatalf("word count must be recomputed server-side, got %d", v.WordCount)
	}

	got, err := svc.Get(ctx, users.Owner, essay.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Content != "Hello world" {
		t.Fatalf("content round-trip: %q", got.Content)
	}
	if got.CurrentVersion != 2 {
		t.Fatalf("current version should follow the save, got %d", got.CurrentVersion)
	}

	versions, err := svc.ListVersions(ctx, users.Owner, essay.ID)
	if err != nil || len(versions) != 2 {
		t.Fatalf("ListVersions: err=%v len=%d", err, len(versions))
	}

	// version numbers below 1 and saves against foreign essays are rejected
	if _, err := svc.SaveVersion(ctx, users.Owner, essay.ID, SaveVersionInput{Version: 0, Content: "x"}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("version 0 should be validation error, got %v", err)
	}
	if _, err := svc.SaveVersion(ctx, users.Stranger, essay.ID, SaveVersionInput{Version: 3, Content: "x"}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("foreign save should be ErrNotFound, got %v", err)
	}
}

func TestEssayService_StaleVersionConflicts(t *testing.T) {
	svc, ctx, users := newEssayServiceForTest(t)

	essay, err := svc.Create(ctx, users.Owner, "Raced", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.SaveVersion(ctx, users.Owner, essay.ID, SaveVersionInput{Version: 2, Content: "first writer"}); err != nil {
		t.Fatalf("first save: %v", err)
	}

	// a second writer that computed version=2 from a stale read must lose
	_, err = svc.SaveVersion(ctx, users.Owner, essay.ID, SaveVersionInput{Version: 2, Content: "second writer"})
	if !errors.Is(err, apperr.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}

func TestEssayService_UpdateMetadataOnly(t *testing.T) {
	svc, ctx, users := newEssayServiceForTest(t)

	essay, err := svc.Create(ctx, users.Owner, "Before", "old prompt")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	title := "After"
	updated, err := svc.Update(ctx, users.Owner, essay.ID, UpdateEssayInput{Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "After" || updated.Prompt != "old prompt" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	empty := " "
	if _, err := svc.Update(ctx, users.Owner, essay.ID, UpdateEssayInput{Title: &empty}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("blank title should be rejected, got %v", err)
	}
	if _, err := svc.Update(ctx, users.Stranger, essay.ID, UpdateEssayInput{Title: &title}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("foreign update should be ErrNotFound, got %v", err)
	}
}
