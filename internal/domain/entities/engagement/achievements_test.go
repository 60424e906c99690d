package engagement

import (
	"testing"
	"time"
)

var day1 = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func TestNewRecordStartsWithEarlyBird(t *testing.T) {
	r := NewRecord("visitor-1", day1)

	if !r.Has(EarlyBird.ID) {
		t.Error("fresh record missing early_bird")
	}
	if r.StreakDays != 1 {
		t.Errorf("StreakDays = %d, want 1", r.StreakDays)
	}
	if r.JoinedDate != "2025-06-01" || r.LastActiveDate != "2025-06-01" {
		t.Errorf("dates = %q/%q, want 2025-06-01", r.JoinedDate, r.LastActiveDate)
	}
}

func TestStreakExtendsOnConsecutiveDays(t *testing.T) {
	r := NewRecord("visitor-1", day1)

	if unlocked := r.UpdateStreak(day1.AddDate(0, 0, 1)); len(unlocked) != 0 {
		t.Errorf("day 2 unlocked %v, want nothing", unlocked)
	}
	if r.StreakDays != 2 {
		t.Fatalf("StreakDays = %d, want 2", r.StreakDays)
	}

	unlocked := r.UpdateStreak(day1.AddDate(0, 0, 2))
	if r.StreakDays != 3 {
		t.Fatalf("StreakDays = %d, want 3", r.StreakDays)
	}
	if len(unlocked) != 1 || unlocked[0].ID != Streak3.ID {
		t.Fatalf("day 3 unlocked %v, want streak_3", unlocked)
	}
}

func TestStreakUnlocksWeekWarriorAtSeven(t *testing.T) {
	r := NewRecord("visitor-1", day1)
	var all []Achievement
	for d := 1; d <= 6; d++ {
		all = append(all, r.UpdateStreak(day1.AddDate(0, 0, d))...)
	}

	if r.StreakDays != 7 {
		t.Fatalf("StreakDays = %d, want 7", r.StreakDays)
	}
	ids := map[string]bool{}
	for _, a := range all {
		ids[a.ID] = true
	}
	if !ids[Streak3.ID] || !ids[Streak7.ID] {
		t.Fatalf("unlocked %v, want streak_3 and streak_7", all)
	}
}

func TestStreakResetsAfterGap(t *testing.T) {
	r := NewRecord("visitor-1", day1)
	r.UpdateStreak(day1.AddDate(0, 0, 1))
	r.UpdateStreak(day1.AddDate(0, 0, 5))

	if r.StreakDays != 1 {
		t.Fatalf("StreakDays after gap = %d, want 1", r.StreakDays)
	}
	if r.LastActiveDate != "2025-06-06" {
		t.Fatalf("LastActiveDate = %q, want 2025-06-06", r.LastActiveDate)
	}
}

func TestSameDayActivityKeepsStreak(t *testing.T) {
	r := NewRecord("visitor-1", day1)
	r.UpdateStreak(day1.AddDate(0, 0, 1))

	for i := 0; i < 3; i++ {
		r.UpdateStreak(day1.AddDate(0, 0, 1).Add(time.Duration(i) * time.Hour))
	}
	if r.StreakDays != 2 {
		t.Fatalf("StreakDays = %d, want 2 after repeated same-day activity", r.StreakDays)
	}
}

func TestCaptionMilestones(t *testing.T) {
	r := NewRecord("visitor-1", day1)

	unlocked := r.RecordCaptionGenerated(day1)
	if len(unlocked) != 1 || unlocked[0].ID != FirstCaption.ID {
		t.Fatalf("first caption unlocked %v, want first_caption", unlocked)
	}

	var tenth []Achievement
	for i := 2; i <= 10; i++ {
		tenth = r.RecordCaptionGenerated(day1)
	}
	if r.CaptionsGenerated != 10 {
		t.Fatalf("CaptionsGenerated = %d, want 10", r.CaptionsGenerated)
	}
	if len(tenth) != 1 || tenth[0].ID != TenCaptions.ID {
		t.Fatalf("tenth caption unlocked %v, want ten_captions", tenth)
	}

	var fiftieth []Achievement
	for i := 11; i <= 50; i++ {
		fiftieth = r.RecordCaptionGenerated(day1)
	}
	if len(fiftieth) != 1 || fiftieth[0].ID != FiftyCaptions.ID {
		t.Fatalf("fiftieth caption unlocked %v, want fifty_captions", fiftieth)
	}
}

func TestMilestonesUnlockOnce(t *testing.T) {
	r := NewRecord("visitor-1", day1)
	r.RecordCaptionGenerated(day1)
	r.CaptionsGenerated = 0

	if unlocked := r.RecordCaptionGenerated(day1); len(unlocked) != 0 {
		t.Fatalf("re-crossing milestone unlocked %v, want nothing", unlocked)
	}
}
