package services

import (
	"context"

	"github.com/AdAtelier/atelier-go/internal/domain/entities/engagement"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/clock"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
)

// EngagementRepository is the persistence contract for engagement records.
type EngagementRepository interface {
	Save(ctx context.Context, record *engagement.Record) error
	FindByVisitorID(ctx context.Context, visitorID string) (*engagement.Record, error)
}

// AchievementService maintains per-visitor streaks and achievement unlocks.
type AchievementService struct {
	repo   EngagementRepository
	clock  clock.Clock
	logger *logging.ChanneledLogger
}

// NewAchievementService creates a new achievement service.
func NewAchievementService(repo EngagementRepository, clk clock.Clock, logger *logging.ChanneledLogger) *AchievementService {
	return &AchievementService{
		repo:   repo,
		clock:  clk,
		logger: logger,
	}
}

// AchievementsResult is the engagement view for one visitor.
type AchievementsResult struct {
	Record   *engagement.Record       `json:"record"`
	Unlocked []engagement.Achievement `json:"unlocked,omitempty"`
	All      []engagement.Achievement `json:"all"`
}

// GetOrCreate loads the visitor's engagement record, creating it on first
// sight and refreshing the daily streak on every load.
func (s *AchievementService) GetOrCreate(ctx context.Context, visitorID string) (*AchievementsResult, error) {
	now := s.clock.Now()

	record, err := s.repo.FindByVisitorID(ctx, visitorID)
	if err != nil {
		return nil, err
	}

	var unlocked []engagement.Achievement
	if record == nil {
		record = engagement.NewRecord(visitorID, now)
		for _, a := range engagement.All() {
			if record.Has(a.ID) {
				unlocked = append(unlocked, a)
			}
		}
		s.logger.Behavior().Info("Engagement record created", "visitorId", visitorID)
	} else {
		unlocked = record.UpdateStreak(now)
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	return &AchievementsResult{
		Record:   record,
		Unlocked: unlocked,
		All:      engagement.All(),
	}, nil
}

// RecordCaptionGenerated bumps the caption counter for a visitor, unlocking
// milestone achievements. Failures are logged, never surfaced; engagement
// bookkeeping must not break caption generation.
func (s *AchievementService) RecordCaptionGenerated(ctx context.Context, visitorID string) {
	now := s.clock.Now()

	record, err := s.repo.FindByVisitorID(ctx, visitorID)
	if err != nil {
		s.logger.LogError(logging.ChannelBehavior, "record_caption_generated", err, visitorID, nil)
		return
	}
	if record == nil {
		record = engagement.NewRecord(visitorID, now)
	}

	unlocked := record.RecordCaptionGenerated(now)
	for _, a := range unlocked {
		s.logger.Behavior().Info("Achievement unlocked",
			"visitorId", visitorID, "achievement", a.ID, "name", a.Name)
	}

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.LogError(logging.ChannelBehavior, "record_caption_generated", err, visitorID, nil)
	}
}

// RecordImageUploaded bumps the upload counter for a visitor.
func (s *AchievementService) RecordImageUploaded(ctx context.Context, visitorID string) {
	now := s.clock.Now()

	record, err := s.repo.FindByVisitorID(ctx, visitorID)
	if err != nil {
		s.logger.LogError(logging.ChannelBehavior, "record_image_uploaded", err, visitorID, nil)
		return
	}
	if record == nil {
		record = engagement.NewRecord(visitorID, now)
	}

	record.RecordImageUploaded(now)
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.LogError(logging.ChannelBehavior, "record_image_uploaded", err, visitorID, nil)
	}
}
