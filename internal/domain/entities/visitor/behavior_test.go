package visitor

import (
	"encoding/json"
	"testing"
	"time"
)

var testStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestDetectDevice(t *testing.T) {
	tests := []struct {
		width int
		want  Device
	}{
		{0, DeviceMobile},
		{375, DeviceMobile},
		{767, DeviceMobile},
		{768, DeviceTablet},
		{1023, DeviceTablet},
		{1024, DeviceDesktop},
		{1920, DeviceDesktop},
	}
	for _, tt := range tests {
		if got := DetectDevice(tt.width); got != tt.want {
			t.Errorf("DetectDevice(%d) = %q, want %q", tt.width, got, tt.want)
		}
	}
}

func TestScrollDepthRatchet(t *testing.T) {
	b := NewBehaviorRecord("/", 1280, testStart)

	if !b.RecordScroll(40, testStart) {
		t.Fatal("first scroll to 40 should update")
	}
	if b.RecordScroll(25, testStart) {
		t.Fatal("scroll back to 25 must not update")
	}
	if b.ScrollDepth != 40 {
		t.Fatalf("ScrollDepth = %d, want 40", b.ScrollDepth)
	}
	if !b.RecordScroll(90, testStart) {
		t.Fatal("scroll to 90 should update")
	}
	if b.RecordScroll(90, testStart) {
		t.Fatal("equal depth must not update")
	}
	if b.ScrollDepth != 90 {
		t.Fatalf("ScrollDepth = %d, want 90", b.ScrollDepth)
	}
}

func TestScrollDepthClampsAt100(t *testing.T) {
	b := NewBehaviorRecord("/", 1280, testStart)
	b.RecordScroll(150, testStart)
	if b.ScrollDepth != 100 {
		t.Fatalf("ScrollDepth = %d, want 100", b.ScrollDepth)
	}
}

func TestEngagementScoreMonotonicity(t *testing.T) {
	b := NewBehaviorRecord("/", 1280, testStart)

	previous := b.EngagementScore
	interactions := []ClickCategory{
		ClickGeneral, ClickCTA, ClickFeature, ClickTestimonial, ClickCTA, ClickGeneral,
	}
	for i, category := range interactions {
		b.RecordClick(category, testStart)
		if b.EngagementScore < previous {
			t.Fatalf("interaction %d (%s): score decreased from %d to %d", i, category, previous, b.EngagementScore)
		}
		previous = b.EngagementScore
	}

	// 6 clicks * 2 + 2 CTA clicks * 5
	if b.EngagementScore != 22 {
		t.Fatalf("EngagementScore = %d, want 22", b.EngagementScore)
	}
}

func TestClickCountersByCategory(t *testing.T) {
	b := NewBehaviorRecord("/", 1280, testStart)

	b.RecordClick(ClickCTA, testStart)
	b.RecordClick(ClickFeature, testStart)
	b.RecordClick(ClickFeature, testStart)
	b.RecordClick(ClickTestimonial, testStart)
	b.RecordClick(ClickGeneral, testStart)

	if b.Clicks != 5 {
		t.Errorf("Clicks = %d, want 5", b.Clicks)
	}
	if b.CTAClicks != 1 {
		t.Errorf("CTAClicks = %d, want 1", b.CTAClicks)
	}
	if b.FeatureViews != 2 {
		t.Errorf("FeatureViews = %d, want 2", b.FeatureViews)
	}
	if b.TestimonialViews != 1 {
		t.Errorf("TestimonialViews = %d, want 1", b.TestimonialViews)
	}
}

func TestPageVisitIdempotent(t *testing.T) {
	b := NewBehaviorRecord("/", 1280, testStart)

	if !b.RecordPageVisit("/pricing", testStart) {
		t.Fatal("first visit to /pricing should record")
	}
	if b.RecordPageVisit("/pricing", testStart) {
		t.Fatal("second visit to /pricing must be a no-op")
	}

	count := 0
	for _, p := range b.PagesVisited {
		if p == "/pricing" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("/pricing recorded %d times, want 1", count)
	}
}

func TestRecordTimeOnPage(t *testing.T) {
	b := NewBehaviorRecord("/", 1280, testStart)

	b.RecordTimeOnPage(testStart.Add(42500 * time.Millisecond))
	if b.TimeOnPage != 42 {
		t.Fatalf("TimeOnPage = %d, want 42 (floor)", b.TimeOnPage)
	}

	// A clock that drifts behind the session start clamps to zero.
	b.RecordTimeOnPage(testStart.Add(-time.Second))
	if b.TimeOnPage != 0 {
		t.Fatalf("TimeOnPage = %d, want 0", b.TimeOnPage)
	}
}

func TestIsStale(t *testing.T) {
	b := NewBehaviorRecord("/", 1280, testStart)
	window := 30 * time.Minute

	if b.IsStale(testStart.Add(29*time.Minute), window) {
		t.Fatal("record should be fresh at 29 minutes")
	}
	if b.IsStale(testStart.Add(30*time.Minute), window) {
		t.Fatal("record should still be fresh at exactly 30 minutes")
	}
	if !b.IsStale(testStart.Add(31*time.Minute), window) {
		t.Fatal("record should be stale at 31 minutes")
	}
}

func TestIsReturningVisitor(t *testing.T) {
	b := NewBehaviorRecord("/", 1280, testStart)
	if b.IsReturningVisitor() {
		t.Fatal("fresh single-page session is not returning")
	}

	b.RecordPageVisit("/features", testStart)
	if !b.IsReturningVisitor() {
		t.Fatal("multi-page session is returning")
	}

	long := NewBehaviorRecord("/", 1280, testStart)
	long.TimeOnPage = 61
	if !long.IsReturningVisitor() {
		t.Fatal("session over 60s is returning")
	}
}

func TestEngagementLevel(t *testing.T) {
	tests := []struct {
		score int
		want  EngagementLevel
	}{
		{0, EngagementLow},
		{20, EngagementLow},
		{21, EngagementMedium},
		{50, EngagementMedium},
		{51, EngagementHigh},
	}
	for _, tt := range tests {
		b := &BehaviorRecord{EngagementScore: tt.score}
		if got := b.Level(); got != tt.want {
			t.Errorf("Level(score=%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestProfileJSONRoundTrip(t *testing.T) {
	p := NewProfile("/pricing", 375, testStart)
	p.Behavior.RecordClick(ClickCTA, testStart)
	p.Behavior.RecordScroll(70, testStart)
	p.Behavior.RecordPageVisit("/features", testStart)
	p.Behavior.RecordTimeOnPage(testStart.Add(45 * time.Second))
	p.Reclassify()

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored Profile
	if err := json.Unmarshal(raw, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if restored.Type != p.Type || restored.Confidence != p.Confidence || restored.Intent != p.Intent {
		t.Fatalf("derived fields changed: got %+v, want %+v", restored, p)
	}
	if restored.Behavior.ScrollDepth != 70 || restored.Behavior.Device != DeviceMobile {
		t.Fatalf("behavior changed after round trip: %+v", restored.Behavior)
	}
	if !restored.Behavior.SessionStart.Equal(testStart) {
		t.Fatalf("SessionStart = %v, want %v", restored.Behavior.SessionStart, testStart)
	}
}
