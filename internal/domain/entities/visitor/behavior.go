// Package visitor provides domain entities for visitor behavior tracking
// and heuristic classification. It defines the behavior record accumulated
// from raw interaction signals and the profile derived from it.
package visitor

import "time"

// Device identifies the viewport class detected at session start.
type Device string

const (
	DeviceMobile  Device = "mobile"
	DeviceTablet  Device = "tablet"
	DeviceDesktop Device = "desktop"
)

// Viewport breakpoints in CSS pixels
const (
	MobileBreakpoint = 768
	TabletBreakpoint = 1024
)

// DetectDevice derives the device class from viewport width. Detection
// happens once at session creation and is not re-derived on resize.
func DetectDevice(viewportWidth int) Device {
	if viewportWidth < MobileBreakpoint {
		return DeviceMobile
	}
	if viewportWidth < TabletBreakpoint {
		return DeviceTablet
	}
	return DeviceDesktop
}

// ClickCategory tags a click interaction with the element class it hit.
type ClickCategory string

const (
	ClickGeneral     ClickCategory = "general"
	ClickCTA         ClickCategory = "cta"
	ClickFeature     ClickCategory = "feature"
	ClickTestimonial ClickCategory = "testimonial"
)

// Engagement score weights per interaction
const (
	ClickWeight    = 2
	CTAClickWeight = 5
)

// BehaviorRecord accumulates raw interaction signals for one session.
// It is owned exclusively by the tracking service; all mutation goes
// through the Record* methods so the ratchet and monotonicity rules hold.
type BehaviorRecord struct {
	Clicks           int       `json:"clicks"`
	ScrollDepth      int       `json:"scrollDepth"`
	TimeOnPage       int       `json:"timeOnPage"`
	PagesVisited     []string  `json:"pagesVisited"`
	CTAClicks        int       `json:"ctaClicks"`
	FeatureViews     int       `json:"featureViews"`
	TestimonialViews int       `json:"testimonialViews"`
	LastActivity     time.Time `json:"lastActivity"`
	Device           Device    `json:"device"`
	SessionStart     time.Time `json:"sessionStart"`
	EngagementScore  int       `json:"engagementScore"`
}

// NewBehaviorRecord creates a fresh record for a session starting at path.
func NewBehaviorRecord(path string, viewportWidth int, now time.Time) *BehaviorRecord {
	return &BehaviorRecord{
		PagesVisited: []string{path},
		LastActivity: now,
		Device:       DetectDevice(viewportWidth),
		SessionStart: now,
	}
}

// RecordClick registers a click interaction. CTA, feature and testimonial
// clicks additionally bump their dedicated counters. The engagement score
// accrues per call and never decreases.
func (b *BehaviorRecord) RecordClick(category ClickCategory, now time.Time) {
	b.Clicks++
	clickDelta, ctaDelta := 1, 0

	switch category {
	case ClickCTA:
		b.CTAClicks++
		ctaDelta = 1
	case ClickFeature:
		b.FeatureViews++
	case ClickTestimonial:
		b.TestimonialViews++
	}

	b.EngagementScore += clickDelta*ClickWeight + ctaDelta*CTAClickWeight
	b.LastActivity = now
}

// RecordPageVisit adds path to the visited set. Repeat visits to the same
// path are no-ops; the return value reports whether the record changed.
func (b *BehaviorRecord) RecordPageVisit(path string, now time.Time) bool {
	for _, visited := range b.PagesVisited {
		if visited == path {
			return false
		}
	}
	b.PagesVisited = append(b.PagesVisited, path)
	b.LastActivity = now
	return true
}

// RecordScroll applies the scroll-depth ratchet: the stored depth only
// moves when the reported percentage exceeds the session maximum.
func (b *BehaviorRecord) RecordScroll(percent int, now time.Time) bool {
	if percent <= b.ScrollDepth {
		return false
	}
	if percent > 100 {
		percent = 100
	}
	b.ScrollDepth = percent
	b.LastActivity = now
	return true
}

// RecordTimeOnPage recomputes elapsed whole seconds since session start.
func (b *BehaviorRecord) RecordTimeOnPage(now time.Time) {
	elapsed := int(now.Sub(b.SessionStart).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}
	b.TimeOnPage = elapsed
}

// Touch refreshes the activity timestamp without reclassifying. Used when
// the page regains visibility.
func (b *BehaviorRecord) Touch(now time.Time) {
	b.LastActivity = now
}

// IsStale reports whether the record has been inactive longer than window.
func (b *BehaviorRecord) IsStale(now time.Time, window time.Duration) bool {
	return now.Sub(b.LastActivity) > window
}

// IsReturningVisitor reports whether the session looks like a return or an
// extended stay rather than a first touch.
func (b *BehaviorRecord) IsReturningVisitor() bool {
	return len(b.PagesVisited) > 1 || b.TimeOnPage > 60
}

// EngagementLevel buckets the cumulative engagement score.
type EngagementLevel string

const (
	EngagementLow    EngagementLevel = "low"
	EngagementMedium EngagementLevel = "medium"
	EngagementHigh   EngagementLevel = "high"
)

// Engagement level thresholds
const (
	engagementHighFloor   = 50
	engagementMediumFloor = 20
)

// Level returns the engagement bucket for the current score.
func (b *BehaviorRecord) Level() EngagementLevel {
	if b.EngagementScore > engagementHighFloor {
		return EngagementHigh
	}
	if b.EngagementScore > engagementMediumFloor {
		return EngagementMedium
	}
	return EngagementLow
}
