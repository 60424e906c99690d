package services

import (
	"context"
	"testing"
	"time"

	"github.com/AdAtelier/atelier-go/internal/infrastructure/clock"
)

func TestGetOrCreateFirstSight(t *testing.T) {
	clk := clock.NewFixed(time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC))
	repo := newFakeEngagementRepo()
	svc := NewAchievementService(repo, clk, testLogger(t))

	result, err := svc.GetOrCreate(context.Background(), "vis-1")
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if result.Record.StreakDays != 1 {
		t.Errorf("StreakDays = %d, want 1", result.Record.StreakDays)
	}
	// First sight reports the creation unlocks back to the caller.
	if len(result.Unlocked) == 0 {
		t.Error("first sight reported no unlocks")
	}
	if !result.Record.Has("early_bird") {
		t.Error("early-bird badge missing on a new record")
	}
	if repo.records["vis-1"] == nil {
		t.Error("new record was not persisted")
	}
}

func TestGetOrCreateExtendsStreakAcrossDays(t *testing.T) {
	clk := clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	repo := newFakeEngagementRepo()
	svc := NewAchievementService(repo, clk, testLogger(t))

	if _, err := svc.GetOrCreate(context.Background(), "vis-1"); err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}

	clk.Advance(24 * time.Hour)
	result, err := svc.GetOrCreate(context.Background(), "vis-1")
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if result.Record.StreakDays != 2 {
		t.Errorf("StreakDays = %d, want 2", result.Record.StreakDays)
	}

	clk.Advance(24 * time.Hour)
	result, err = svc.GetOrCreate(context.Background(), "vis-1")
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if result.Record.StreakDays != 3 {
		t.Errorf("StreakDays = %d, want 3", result.Record.StreakDays)
	}
	if !result.Record.Has("streak_3") {
		t.Error("three-day streak achievement not unlocked")
	}
}

func TestRecordCaptionGeneratedCreatesRecordOnDemand(t *testing.T) {
	clk := clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	repo := newFakeEngagementRepo()
	svc := NewAchievementService(repo, clk, testLogger(t))

	svc.RecordCaptionGenerated(context.Background(), "vis-1")

	record := repo.records["vis-1"]
	if record == nil {
		t.Fatal("no record created")
	}
	if record.CaptionsGenerated != 1 {
		t.Errorf("CaptionsGenerated = %d, want 1", record.CaptionsGenerated)
	}
	if !record.Has("first_caption") {
		t.Error("first caption achievement not unlocked")
	}
}
