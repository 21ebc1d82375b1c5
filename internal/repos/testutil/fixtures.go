package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/somapath/somapath-backend/internal/types"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "pw",
		FirstName: "A",
		LastName:  "B",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedEssay(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, title string) *types.Essay {
	tb.Helper()
	e := &types.Essay{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          title,
		CurrentVersion: 1,
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed essay: %v", err)
	}
	return e
}

func SeedEssayVersion(tb testing.TB, ctx context.Context, tx *gorm.DB, essayID uuid.UUID, version int, content string) *types.EssayVersion {
	tb.Helper()
	v := &types.EssayVersion{
		ID:        uuid.New(),
		EssayID:   essayID,
		Version:   version,
		Content:   content,
		WordCount: len(content),
	}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed essay version: %v", err)
	}
	return v
}

func SeedAchievement(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Achievement {
	tb.Helper()
	a := &types.Achievement{
		ID:       uuid.New(),
		Name:     name,
		Category: "essay",
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed achievement: %v", err)
	}
	return a
}

func PtrInt(v int) *int { return &v }

func PtrString(v string) *string { return &v }
