package visitor

import "time"

// VisitorType is the behavioral segment assigned to a session.
type VisitorType string

const (
	VisitorNew         VisitorType = "new"
	VisitorExplorer    VisitorType = "explorer"
	VisitorComparer    VisitorType = "comparer"
	VisitorActionTaker VisitorType = "action-taker"
)

// Intent is the conversion-funnel stage inferred from the visitor type.
type Intent string

const (
	IntentBrowsing    Intent = "browsing"
	IntentResearching Intent = "researching"
	IntentConverting  Intent = "converting"
)

// Scoring weights. These thresholds are the behavioral contract of the
// classifier; changing any of them changes which segment a session lands in.
const (
	shortVisitSeconds  = 30
	mediumVisitSeconds = 90

	deepScrollPercent    = 80
	midScrollPercent     = 50
	shallowScrollPercent = 20

	fewClicks  = 3
	manyClicks = 8

	comparerFeatureViewFloor = 2

	engagementBoostHigh = 50
	engagementBoostMid  = 25

	// A category must reach this floor to beat the "new" fallback.
	classificationFloor = 3

	// Confidence is capped to reflect heuristic uncertainty.
	maxConfidence = 95.0
)

// Classification is the derived visitor profile, recomputed on every
// behavior mutation.
type Classification struct {
	Type       VisitorType `json:"type"`
	Confidence float64     `json:"confidence"`
	Intent     Intent      `json:"intent"`
}

// Classify maps a behavior record to a visitor segment using additive
// weighted scoring across three competing categories; "new" is the
// fallback when no category clears the floor. The function is pure:
// identical input always yields identical output.
func Classify(b *BehaviorRecord) Classification {
	var explorerScore, comparerScore, actionTakerScore int

	// Time-based scoring
	if b.TimeOnPage < shortVisitSeconds {
		explorerScore += 2
	} else if b.TimeOnPage < mediumVisitSeconds {
		comparerScore += 2
	} else {
		actionTakerScore++
		comparerScore++
	}

	// Scroll depth scoring
	if b.ScrollDepth > deepScrollPercent {
		actionTakerScore += 3
		comparerScore += 2
	} else if b.ScrollDepth > midScrollPercent {
		comparerScore += 2
		explorerScore++
	} else if b.ScrollDepth > shallowScrollPercent {
		explorerScore += 2
	}

	// Click volume scoring
	if b.Clicks < fewClicks {
		explorerScore++
	} else if b.Clicks < manyClicks {
		comparerScore += 2
	} else {
		actionTakerScore += 2
	}

	// CTA interaction scoring
	if b.CTAClicks > 0 {
		actionTakerScore += 4
	}

	// Feature/testimonial views
	if b.FeatureViews > comparerFeatureViewFloor {
		comparerScore += 3
	}
	if b.TestimonialViews > 0 {
		comparerScore += 2
		actionTakerScore++
	}

	// Engagement score multiplier
	if b.EngagementScore > engagementBoostHigh {
		actionTakerScore += 2
	} else if b.EngagementScore > engagementBoostMid {
		comparerScore++
	}

	maxScore := explorerScore
	if comparerScore > maxScore {
		maxScore = comparerScore
	}
	if actionTakerScore > maxScore {
		maxScore = actionTakerScore
	}
	totalScore := explorerScore + comparerScore + actionTakerScore

	var confidence float64
	if totalScore > 0 {
		confidence = float64(maxScore) / float64(totalScore) * 100
		if confidence > maxConfidence {
			confidence = maxConfidence
		}
	}

	// Tie-break order is explorer, then comparer, then action-taker.
	// Observable behavior; keep it even though exact ties are rare.
	switch {
	case maxScore < classificationFloor:
		return Classification{Type: VisitorNew, Confidence: confidence, Intent: IntentBrowsing}
	case explorerScore == maxScore:
		return Classification{Type: VisitorExplorer, Confidence: confidence, Intent: IntentBrowsing}
	case comparerScore == maxScore:
		return Classification{Type: VisitorComparer, Confidence: confidence, Intent: IntentResearching}
	default:
		return Classification{Type: VisitorActionTaker, Confidence: confidence, Intent: IntentConverting}
	}
}

// Profile is the serialized shape persisted per session. It must round-trip
// exactly through JSON so a restored session resumes where it left off.
type Profile struct {
	Type       VisitorType     `json:"type"`
	Confidence float64         `json:"confidence"`
	Behavior   *BehaviorRecord `json:"behavior"`
	Intent     Intent          `json:"intent"`
}

// NewProfile creates the profile for a brand-new session.
func NewProfile(path string, viewportWidth int, now time.Time) *Profile {
	return &Profile{
		Type:       VisitorNew,
		Confidence: 0,
		Behavior:   NewBehaviorRecord(path, viewportWidth, now),
		Intent:     IntentBrowsing,
	}
}

// Reclassify recomputes the derived fields from the current behavior.
func (p *Profile) Reclassify() {
	c := Classify(p.Behavior)
	p.Type = c.Type
	p.Confidence = c.Confidence
	p.Intent = c.Intent
}
