package services

import (
	"testing"
	"time"

	"github.com/AdAtelier/atelier-go/internal/domain/entities/visitor"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/caching/manager"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/caching/types"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/clock"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/performance"
)

func newTestPersonalizationService(t *testing.T, clk clock.Clock) (*PersonalizationService, *manager.Manager) {
	t.Helper()
	logger := testLogger(t)
	cache := manager.NewManager(logger)
	tracker := performance.NewTracker(performance.DefaultTrackerConfig())
	return NewPersonalizationService(cache, clk, logger, tracker), cache
}

func TestGetProfileSnapshotUnknownSession(t *testing.T) {
	clk := clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	svc, _ := newTestPersonalizationService(t, clk)

	if _, err := svc.GetProfileSnapshot("nope"); err == nil {
		t.Fatal("expected an error for an unknown session")
	}
}

func TestGetProfileSnapshotReflectsBehavior(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(start)
	svc, cache := newTestPersonalizationService(t, clk)

	profile := visitor.NewProfile("/gallery", 375, clk.Now())
	profile.Behavior.RecordClick(visitor.ClickCTA, clk.Now())
	profile.Behavior.RecordScroll(85, clk.Now())
	profile.Reclassify()
	cache.SetSession(types.NewSessionState("sess-1", profile, clk.Now()))

	// Two minutes pass between the last event and the snapshot request.
	clk.Advance(2 * time.Minute)

	snapshot, err := svc.GetProfileSnapshot("sess-1")
	if err != nil {
		t.Fatalf("GetProfileSnapshot() error = %v", err)
	}

	if snapshot.Device != visitor.DeviceMobile {
		t.Errorf("Device = %q, want mobile", snapshot.Device)
	}
	if snapshot.SessionDuration != 120 {
		t.Errorf("SessionDuration = %d, want 120", snapshot.SessionDuration)
	}
	if snapshot.VisitorType != profile.Type {
		t.Errorf("VisitorType = %q, want %q", snapshot.VisitorType, profile.Type)
	}
	if snapshot.Content.CTAText == "" {
		t.Error("snapshot is missing a content bundle")
	}
	// Two minutes on page crosses the extended-stay threshold.
	if !snapshot.IsReturningVisitor {
		t.Error("extended stay not reported as returning")
	}
}

func TestGetProfileSnapshotEngagementLevel(t *testing.T) {
	clk := clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	svc, cache := newTestPersonalizationService(t, clk)

	profile := visitor.NewProfile("/", 1440, clk.Now())
	for i := 0; i < 10; i++ {
		profile.Behavior.RecordClick(visitor.ClickCTA, clk.Now())
	}
	profile.Reclassify()
	cache.SetSession(types.NewSessionState("sess-1", profile, clk.Now()))

	snapshot, err := svc.GetProfileSnapshot("sess-1")
	if err != nil {
		t.Fatalf("GetProfileSnapshot() error = %v", err)
	}
	// Each CTA click accrues the base click weight plus the CTA bonus.
	if snapshot.EngagementScore != 70 {
		t.Errorf("EngagementScore = %d, want 70", snapshot.EngagementScore)
	}
	if snapshot.EngagementLevel != visitor.EngagementHigh {
		t.Errorf("EngagementLevel = %q, want high", snapshot.EngagementLevel)
	}
}
