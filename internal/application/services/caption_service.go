package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/AdAtelier/atelier-go/internal/domain/entities/captions"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/media"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/messaging"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/performance"
	"github.com/AdAtelier/atelier-go/pkg/config"
)

// Sentinel errors surfaced to the transport layer for status mapping.
var (
	ErrRateLimited      = errors.New("caption gateway rate limited")
	ErrCreditsExhausted = errors.New("caption gateway credits exhausted")
)

// CaptionService orchestrates caption generation: image normalization,
// the gateway call, response parsing and the behavioral side effects.
type CaptionService struct {
	httpClient     *http.Client
	imageProcessor *media.ImageProcessor
	tracking       *TrackingService
	achievements   *AchievementService
	broadcaster    messaging.Broadcaster
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewCaptionService creates a new caption service.
func NewCaptionService(imageProcessor *media.ImageProcessor, tracking *TrackingService, achievements *AchievementService, broadcaster messaging.Broadcaster, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *CaptionService {
	return &CaptionService{
		httpClient:     &http.Client{Timeout: config.CaptionGatewayTimeout},
		imageProcessor: imageProcessor,
		tracking:       tracking,
		achievements:   achievements,
		broadcaster:    broadcaster,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// CaptionRequest is one caption generation request.
type CaptionRequest struct {
	ImageBase64 string            `json:"imageBase64"`
	Tone        captions.Tone     `json:"tone"`
	Platform    captions.Platform `json:"platform"`
	Prompt      string            `json:"prompt,omitempty"`
}

// CaptionResult holds the parsed variations for a request.
type CaptionResult struct {
	Variations []captions.Variation `json:"variations"`
	Platform   captions.Platform    `json:"platform"`
	Tone       captions.Tone        `json:"tone"`
}

// Chat-completions wire types for the gateway call.
type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateCaptions runs the full generation flow for a session. A
// successful generation also counts as a CTA interaction and feeds the
// achievement and presence counters.
func (s *CaptionService) GenerateCaptions(ctx context.Context, sessionID string, req *CaptionRequest) (*CaptionResult, error) {
	marker := s.perfTracker.StartOperation("generate_captions", sessionID)
	defer marker.Complete()

	if !captions.ValidTone(req.Tone) {
		marker.SetSuccess(false)
		return nil, fmt.Errorf("invalid tone %q", req.Tone)
	}

	normalized, err := s.imageProcessor.NormalizeBase64Image(req.ImageBase64)
	if err != nil {
		marker.SetError(err)
		return nil, fmt.Errorf("image rejected: %w", err)
	}
	s.achievements.RecordImageUploaded(ctx, sessionID)

	generated, err := s.callGateway(ctx, normalized, req)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}

	variations := captions.ParseVariations(generated, req.Platform)
	if len(variations) == 0 {
		marker.SetSuccess(false)
		return nil, fmt.Errorf("gateway response contained no usable variations")
	}

	s.tracking.RecordConversion(ctx, sessionID)
	s.achievements.RecordCaptionGenerated(ctx, sessionID)
	s.broadcaster.RecordCaptionGenerated()

	s.logger.Captions().Info("Captions generated",
		"sessionId", sessionID,
		"platform", req.Platform,
		"tone", req.Tone,
		"variations", len(variations))

	marker.AddMetadata("variations", len(variations))
	marker.SetSuccess(true)
	return &CaptionResult{
		Variations: variations,
		Platform:   req.Platform,
		Tone:       req.Tone,
	}, nil
}

func (s *CaptionService) callGateway(ctx context.Context, imageDataURL string, req *CaptionRequest) (string, error) {
	payload := chatRequest{
		Model: config.CaptionGatewayModel,
		Messages: []chatMessage{
			{Role: "system", Content: captions.BuildSystemPrompt(req.Platform)},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: captions.BuildUserPrompt(req.Tone, req.Prompt)},
				{Type: "image_url", ImageURL: &imageURL{URL: imageDataURL}},
			}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal gateway request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, config.CaptionGatewayURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build gateway request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+config.CaptionGatewayKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gateway call failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	case http.StatusPaymentRequired:
		return "", ErrCreditsExhausted
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		s.logger.Captions().Error("Gateway returned error status",
			"status", resp.StatusCode, "body", string(raw))
		return "", fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode gateway response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("gateway response contained no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
