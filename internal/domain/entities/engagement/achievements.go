// Package engagement provides domain entities for long-lived visitor
// engagement: usage counters, daily streaks and achievement unlocks.
package engagement

import "time"

// Achievement is an unlockable badge.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

var (
	FirstCaption  = Achievement{ID: "first_caption", Name: "First Steps", Description: "Generated your first caption", Icon: "🎯"}
	TenCaptions   = Achievement{ID: "ten_captions", Name: "Getting Started", Description: "Generated 10 captions", Icon: "🚀"}
	FiftyCaptions = Achievement{ID: "fifty_captions", Name: "Caption Pro", Description: "Generated 50 captions", Icon: "⭐"}
	Streak3       = Achievement{ID: "streak_3", Name: "3-Day Streak", Description: "Used the app 3 days in a row", Icon: "🔥"}
	Streak7       = Achievement{ID: "streak_7", Name: "Week Warrior", Description: "7-day streak!", Icon: "💪"}
	EarlyBird     = Achievement{ID: "early_bird", Name: "Early Bird", Description: "Joined Ad Atelier AI", Icon: "🌟"}
)

// All lists every defined achievement.
func All() []Achievement {
	return []Achievement{FirstCaption, TenCaptions, FiftyCaptions, Streak3, Streak7, EarlyBird}
}

// Record tracks one visitor's cumulative product usage across sessions.
// Dates are calendar days (YYYY-MM-DD) so streak math ignores time of day.
type Record struct {
	VisitorID         string   `json:"visitorId"`
	CaptionsGenerated int      `json:"captionsGenerated"`
	ImagesUploaded    int      `json:"imagesUploaded"`
	LastActiveDate    string   `json:"lastActiveDate"`
	StreakDays        int      `json:"streakDays"`
	Achievements      []string `json:"achievements"`
	JoinedDate        string   `json:"joinedDate"`
}

// DayStamp formats a time as the calendar-day key used for streaks.
func DayStamp(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// NewRecord creates a fresh engagement record; every visitor starts with
// the early-bird badge and a one-day streak.
func NewRecord(visitorID string, now time.Time) *Record {
	day := DayStamp(now)
	return &Record{
		VisitorID:      visitorID,
		LastActiveDate: day,
		StreakDays:     1,
		Achievements:   []string{EarlyBird.ID},
		JoinedDate:     day,
	}
}

// Has reports whether an achievement is already unlocked.
func (r *Record) Has(id string) bool {
	for _, a := range r.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

func (r *Record) unlock(a Achievement) *Achievement {
	if r.Has(a.ID) {
		return nil
	}
	r.Achievements = append(r.Achievements, a.ID)
	return &a
}

// UpdateStreak advances the daily streak: a consecutive day extends it, a
// gap resets it to one, same-day activity only refreshes the date.
// Returns any streak achievement unlocked by the update.
func (r *Record) UpdateStreak(now time.Time) []Achievement {
	today := DayStamp(now)
	last, err := time.Parse("2006-01-02", r.LastActiveDate)
	if err != nil {
		r.LastActiveDate = today
		r.StreakDays = 1
		return nil
	}

	current, _ := time.Parse("2006-01-02", today)
	daysDiff := int(current.Sub(last).Hours() / 24)

	var unlocked []Achievement
	switch {
	case daysDiff == 1:
		r.StreakDays++
		r.LastActiveDate = today
		if r.StreakDays == 3 {
			if a := r.unlock(Streak3); a != nil {
				unlocked = append(unlocked, *a)
			}
		}
		if r.StreakDays == 7 {
			if a := r.unlock(Streak7); a != nil {
				unlocked = append(unlocked, *a)
			}
		}
	case daysDiff > 1:
		r.StreakDays = 1
		r.LastActiveDate = today
	default:
		r.LastActiveDate = today
	}
	return unlocked
}

// RecordCaptionGenerated bumps the caption counter and unlocks any count
// milestone it crosses. Also advances the streak.
func (r *Record) RecordCaptionGenerated(now time.Time) []Achievement {
	unlocked := r.UpdateStreak(now)
	r.CaptionsGenerated++

	switch r.CaptionsGenerated {
	case 1:
		if a := r.unlock(FirstCaption); a != nil {
			unlocked = append(unlocked, *a)
		}
	case 10:
		if a := r.unlock(TenCaptions); a != nil {
			unlocked = append(unlocked, *a)
		}
	case 50:
		if a := r.unlock(FiftyCaptions); a != nil {
			unlocked = append(unlocked, *a)
		}
	}
	return unlocked
}

// RecordImageUploaded bumps the upload counter and advances the streak.
func (r *Record) RecordImageUploaded(now time.Time) []Achievement {
	unlocked := r.UpdateStreak(now)
	r.ImagesUploaded++
	return unlocked
}
