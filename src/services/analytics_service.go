package services

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/posthog/posthog-go"
	"github.com/rs/zerolog/log"
)

// HashEmail returns a hex-encoded SHA-256 hash of the email for use as PostHog distinct ID
func HashEmail(email string) string {
	h := sha256.Sum256([]byte(email))
	return fmt.Sprintf("%x", h)
}

// AnalyticsService handles all product analytics tracking.
// A nil or disabled service drops every event.
type AnalyticsService struct {
	client      posthog.Client
	enabled     bool
	environment string
}

type posthogLogger struct{}

func (l posthogLogger) Success(m posthog.APIMessage) {
	log.Debug().Str("type", fmt.Sprintf("%T", m)).Msg("PostHog event delivered")
}

func (l posthogLogger) Failure(m posthog.APIMessage, err error) {
	log.Error().Err(err).Str("type", fmt.Sprintf("%T", m)).Msg("PostHog delivery failed")
}

// AnalyticsConfig holds analytics configuration
type AnalyticsConfig struct {
	PostHogAPIKey string
	PostHogHost   string
	Enabled       bool
	Environment   string
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(cfg AnalyticsConfig) (*AnalyticsService, error) {
	if !cfg.Enabled || cfg.PostHogAPIKey == "" {
		return &AnalyticsService{enabled: false}, nil
	}

	client, err := posthog.NewWithConfig(
		cfg.PostHogAPIKey,
		posthog.Config{
			Endpoint:  cfg.PostHogHost,
			Interval:  30 * time.Second,
			BatchSize: 100,
			Callback:  posthogLogger{},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create PostHog client: %w", err)
	}

	return &AnalyticsService{
		client:      client,
		enabled:     true,
		environment: cfg.Environment,
	}, nil
}

// Close flushes pending events and closes client
func (s *AnalyticsService) Close() error {
	if s == nil || !s.enabled {
		return nil
	}
	return s.client.Close()
}

// TrackEvent captures a generic event
func (s *AnalyticsService) TrackEvent(ctx context.Context, distinctID, event string, properties map[string]interface{}) {
	if s == nil || !s.enabled {
		return
	}

	if properties == nil {
		properties = make(map[string]interface{})
	}
	properties["timestamp"] = time.Now().Unix()
	properties["environment"] = s.environment

	if err := s.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("event", event).Msg("PostHog enqueue failed")
	}
}

// TrackAdminLogin tracks a successful panel sign-in
func (s *AnalyticsService) TrackAdminLogin(ctx context.Context, email, role string) {
	s.TrackEvent(ctx, "admin_"+HashEmail(email), "admin_login", map[string]interface{}{
		"role": role,
	})
}

// TrackPasswordResetRequested tracks an issued recovery code
func (s *AnalyticsService) TrackPasswordResetRequested(ctx context.Context, email, channel string) {
	s.TrackEvent(ctx, "admin_"+HashEmail(email), "password_reset_requested", map[string]interface{}{
		"channel": channel,
	})
}

// TrackPasswordResetCompleted tracks a redeemed recovery code
func (s *AnalyticsService) TrackPasswordResetCompleted(ctx context.Context, adminID string) {
	s.TrackEvent(ctx, "admin_id_"+adminID, "password_reset_completed", nil)
}
