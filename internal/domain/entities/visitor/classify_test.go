package visitor

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.1
}

func TestClassifyIsDeterministic(t *testing.T) {
	b := &BehaviorRecord{
		TimeOnPage:       45,
		ScrollDepth:      65,
		Clicks:           5,
		CTAClicks:        1,
		FeatureViews:     3,
		TestimonialViews: 1,
		EngagementScore:  30,
	}

	first := Classify(b)
	for i := 0; i < 100; i++ {
		if got := Classify(b); got != first {
			t.Fatalf("iteration %d: Classify returned %+v, want %+v", i, got, first)
		}
	}
}

func TestClassifyFallbackFloor(t *testing.T) {
	// Long idle visit with no interaction: every category stays below the
	// floor, so the visitor remains "new".
	b := &BehaviorRecord{TimeOnPage: 100}

	got := Classify(b)
	if got.Type != VisitorNew {
		t.Fatalf("Type = %q, want %q", got.Type, VisitorNew)
	}
	if got.Intent != IntentBrowsing {
		t.Fatalf("Intent = %q, want %q", got.Intent, IntentBrowsing)
	}
	// explorer 1 (clicks), comparer 1 (time), actionTaker 1 (time)
	if !almostEqual(got.Confidence, 100.0/3) {
		t.Fatalf("Confidence = %f, want ~33.3", got.Confidence)
	}
}

func TestClassifyCTADominance(t *testing.T) {
	b := &BehaviorRecord{
		TimeOnPage:      10,
		ScrollDepth:     10,
		Clicks:          1,
		CTAClicks:       1,
		EngagementScore: 2,
	}

	got := Classify(b)
	if got.Type != VisitorActionTaker {
		t.Fatalf("Type = %q, want %q", got.Type, VisitorActionTaker)
	}
	if got.Intent != IntentConverting {
		t.Fatalf("Intent = %q, want %q", got.Intent, IntentConverting)
	}
	// explorer 3, comparer 0, actionTaker 4 -> 4/7
	if !almostEqual(got.Confidence, 400.0/7) {
		t.Fatalf("Confidence = %f, want ~57.1", got.Confidence)
	}
}

func TestClassifyComparerScenario(t *testing.T) {
	b := &BehaviorRecord{
		TimeOnPage:       60,
		ScrollDepth:      60,
		Clicks:           5,
		FeatureViews:     3,
		TestimonialViews: 1,
		EngagementScore:  10,
	}

	got := Classify(b)
	if got.Type != VisitorComparer {
		t.Fatalf("Type = %q, want %q", got.Type, VisitorComparer)
	}
	if got.Intent != IntentResearching {
		t.Fatalf("Intent = %q, want %q", got.Intent, IntentResearching)
	}
	// comparer 11, explorer 1 (mid scroll), actionTaker 1 (testimonial) -> 11/13
	if !almostEqual(got.Confidence, 1100.0/13) {
		t.Fatalf("Confidence = %f, want ~84.6", got.Confidence)
	}
}

func TestClassifyTieBreakPrefersExplorer(t *testing.T) {
	// explorer 3 (time + clicks), comparer 3 (feature views): exact tie at
	// the floor; explorer is checked first.
	b := &BehaviorRecord{
		TimeOnPage:   10,
		Clicks:       1,
		FeatureViews: 3,
	}

	got := Classify(b)
	if got.Type != VisitorExplorer {
		t.Fatalf("Type = %q, want %q", got.Type, VisitorExplorer)
	}
}

func TestClassifyConfidenceBounds(t *testing.T) {
	records := []*BehaviorRecord{
		{},
		{TimeOnPage: 10, Clicks: 1},
		{TimeOnPage: 200, ScrollDepth: 100, Clicks: 20, CTAClicks: 5, FeatureViews: 10, TestimonialViews: 5, EngagementScore: 200},
	}
	for i, b := range records {
		got := Classify(b)
		if got.Confidence < 0 || got.Confidence > maxConfidence {
			t.Fatalf("record %d: Confidence = %f out of [0, %f]", i, got.Confidence, maxConfidence)
		}
	}
}

func TestReclassifyUpdatesDerivedFields(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := NewProfile("/", 1280, now)

	if p.Type != VisitorNew || p.Confidence != 0 || p.Intent != IntentBrowsing {
		t.Fatalf("fresh profile = %+v, want new/0/browsing", p)
	}

	p.Behavior.RecordClick(ClickCTA, now)
	p.Reclassify()

	if p.Type != VisitorActionTaker {
		t.Fatalf("Type after CTA click = %q, want %q", p.Type, VisitorActionTaker)
	}
	if p.Intent != IntentConverting {
		t.Fatalf("Intent after CTA click = %q, want %q", p.Intent, IntentConverting)
	}
}
