package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/khabaroff/flabef-storefront/src/logging"
	"github.com/khabaroff/flabef-storefront/src/metrics"
	"github.com/khabaroff/flabef-storefront/src/models"
	"github.com/khabaroff/flabef-storefront/src/repositories"
)

const (
	// maxCodeAttempts bounds regeneration when a code collides with an unused token
	maxCodeAttempts = 5

	// MessageCodeSent is returned for every accepted code request, issued or not
	MessageCodeSent = "If the account exists, a recovery code has been sent"
)

var codeSpace = big.NewInt(1_000_000)

// GenerateCode returns a uniformly random 6-digit code, leading zeros kept
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// SMSSender delivers a code by text message
type SMSSender interface {
	SendRecoveryCode(ctx context.Context, phone, code string, ttl time.Duration) error
}

// EmailSender delivers a code by email
type EmailSender interface {
	SendRecoveryCode(ctx context.Context, toEmail, toName, code string, ttl time.Duration) error
}

// RecoveryConfig holds recovery flow settings
type RecoveryConfig struct {
	CodeTTL time.Duration
	// ExposeCode returns the code in responses and tolerates delivery failures (non-production)
	ExposeCode bool
	Now        func() time.Time
	// GenerateCode overrides the code source, GenerateCode when nil
	GenerateCode func() (string, error)
}

// SMSCodeRequest asks for a code by SMS
type SMSCodeRequest struct {
	Email          string
	Phone          string
	DocumentNumber string
}

// EmailCodeRequest asks for a code by email; Email is the destination,
// AdminEmail (when set) identifies the account
type EmailCodeRequest struct {
	Email          string
	AdminEmail     string
	DocumentNumber string
}

// IssueResult is the outcome of a code request
type IssueResult struct {
	Message string
	// Code is only set when ExposeCode is on and a token was issued
	Code string
}

// RecoveryService runs the password recovery flow: verification, code
// issuance, delivery and redemption
type RecoveryService struct {
	verifier  *Verifier
	admins    *AdminService
	tokens    repositories.ResetTokenRepository
	sms       SMSSender
	email     EmailSender
	analytics *AnalyticsService
	metrics   *metrics.Metrics
	cfg       RecoveryConfig
}

// NewRecoveryService creates a new recovery service; sms and email may be nil
func NewRecoveryService(
	verifier *Verifier,
	admins *AdminService,
	tokens repositories.ResetTokenRepository,
	sms SMSSender,
	email EmailSender,
	analytics *AnalyticsService,
	m *metrics.Metrics,
	cfg RecoveryConfig,
) *RecoveryService {
	if cfg.CodeTTL <= 0 {
		cfg.CodeTTL = 15 * time.Minute
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.GenerateCode == nil {
		cfg.GenerateCode = GenerateCode
	}
	return &RecoveryService{
		verifier:  verifier,
		admins:    admins,
		tokens:    tokens,
		sms:       sms,
		email:     email,
		analytics: analytics,
		metrics:   m,
		cfg:       cfg,
	}
}

// VerifyDocument checks a bare document number
func (rs *RecoveryService) VerifyDocument(ctx context.Context, documentNumber string) error {
	_, err := rs.verifier.VerifyDocument(ctx, documentNumber)
	return err
}

// VerifyEmailAndDocument checks an email and document number pair
func (rs *RecoveryService) VerifyEmailAndDocument(ctx context.Context, email, documentNumber string) error {
	_, err := rs.verifier.VerifyEmailAndDocument(ctx, email, documentNumber)
	return err
}

// RequestSMSCode issues a code for the account identified by document number or email
// and texts it to req.Phone
func (rs *RecoveryService) RequestSMSCode(ctx context.Context, req SMSCodeRequest) (*IssueResult, error) {
	admin, err := rs.verifier.ResolveAccount(ctx, req.Email, req.DocumentNumber)
	if errors.Is(err, errUnknownEmail) {
		return &IssueResult{Message: MessageCodeSent}, nil
	}
	if err != nil {
		return nil, err
	}

	phone := strings.TrimSpace(req.Phone)
	token, err := rs.issue(ctx, admin, &phone, nil)
	if err != nil {
		return nil, err
	}

	var sendErr error
	if rs.sms == nil {
		sendErr = errors.New("sms channel not configured")
	} else {
		sendErr = rs.sms.SendRecoveryCode(ctx, phone, token.Code, rs.cfg.CodeTTL)
	}
	return rs.finish(ctx, admin, token, models.ChannelSMS, sendErr)
}

// RequestEmailCode issues a code and emails it to req.Email, which must be the
// account's login or recovery address
func (rs *RecoveryService) RequestEmailCode(ctx context.Context, req EmailCodeRequest) (*IssueResult, error) {
	identity := req.AdminEmail
	if strings.TrimSpace(identity) == "" {
		identity = req.Email
	}

	admin, err := rs.verifier.ResolveAccount(ctx, identity, req.DocumentNumber)
	if errors.Is(err, errUnknownEmail) {
		return &IssueResult{Message: MessageCodeSent}, nil
	}
	if err != nil {
		return nil, err
	}

	destination := strings.TrimSpace(req.Email)
	if !ownsEmail(admin, destination) {
		logging.FromContext(ctx, "recovery").Warn().
			Str("admin_id", admin.ID.String()).
			Msg("Recovery email requested for an address the account does not own")
		return &IssueResult{Message: MessageCodeSent}, nil
	}

	token, err := rs.issue(ctx, admin, nil, &destination)
	if err != nil {
		return nil, err
	}

	var sendErr error
	if rs.email == nil {
		sendErr = errors.New("email channel not configured")
	} else {
		sendErr = rs.email.SendRecoveryCode(ctx, destination, admin.FullName, token.Code, rs.cfg.CodeTTL)
	}
	return rs.finish(ctx, admin, token, models.ChannelEmail, sendErr)
}

// issue persists a fresh token, regenerating the code on collision
func (rs *RecoveryService) issue(ctx context.Context, admin *models.AdminUser, phone, email *string) (*models.ResetToken, error) {
	now := rs.cfg.Now()
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := rs.cfg.GenerateCode()
		if err != nil {
			return nil, err
		}
		token := &models.ResetToken{
			ID:        uuid.New(),
			AdminID:   admin.ID,
			Code:      code,
			Phone:     phone,
			Email:     email,
			ExpiresAt: now.Add(rs.cfg.CodeTTL),
			CreatedAt: now,
		}
		err = rs.tokens.Create(ctx, token)
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("failed to store reset token: %w", err)
		}
		logging.FromContext(ctx, "recovery").Debug().Int("attempt", attempt).Msg("Recovery code collision, regenerating")
	}
	return nil, fmt.Errorf("failed to store reset token: %d code collisions", maxCodeAttempts)
}

// finish applies the delivery policy: production surfaces failures, dev mode logs them
func (rs *RecoveryService) finish(ctx context.Context, admin *models.AdminUser, token *models.ResetToken, channel string, sendErr error) (*IssueResult, error) {
	logger := logging.FromContext(ctx, "recovery")

	if sendErr != nil {
		rs.metrics.DeliveryFailed(channel)
		if !rs.cfg.ExposeCode {
			logger.Error().Err(sendErr).Str("channel", channel).Str("admin_id", admin.ID.String()).Msg("Recovery code delivery failed")
			return nil, wrap(ErrDeliveryFailed, sendErr)
		}
		logger.Warn().Err(sendErr).Str("channel", channel).Msg("Recovery code delivery failed, code returned in response")
	}

	rs.metrics.CodeIssued(channel)
	rs.analytics.TrackPasswordResetRequested(ctx, admin.Email, channel)
	logger.Info().Str("channel", channel).Str("admin_id", admin.ID.String()).Time("expires_at", token.ExpiresAt).Msg("Recovery code issued")

	result := &IssueResult{Message: MessageCodeSent}
	if rs.cfg.ExposeCode {
		result.Code = token.Code
	}
	return result, nil
}

// RedeemCode consumes code and sets newPassword on the owning account
func (rs *RecoveryService) RedeemCode(ctx context.Context, code, newPassword string) error {
	logger := logging.FromContext(ctx, "recovery")
	now := rs.cfg.Now()

	token, err := rs.tokens.FindActiveByCode(ctx, strings.TrimSpace(code))
	if errors.Is(err, repositories.ErrNotFound) {
		rs.metrics.CodeRedemption(metrics.OutcomeInvalid)
		return ErrInvalidCode
	}
	if err != nil {
		return fmt.Errorf("failed to load reset token: %w", err)
	}

	if token.Expired(now) {
		rs.metrics.CodeRedemption(metrics.OutcomeExpired)
		return ErrCodeExpired
	}

	// hash before claiming so a rejected password leaves the code redeemable
	hash, err := rs.admins.HashPassword(newPassword)
	if err != nil {
		return err
	}

	// Only one concurrent redemption can flip used from false to true
	claimed, err := rs.tokens.MarkUsed(ctx, token.ID, now)
	if err != nil {
		return fmt.Errorf("failed to claim reset token: %w", err)
	}
	if !claimed {
		rs.metrics.CodeRedemption(metrics.OutcomeInvalid)
		return ErrInvalidCode
	}

	if err := rs.admins.SetPasswordHash(ctx, token.AdminID, hash); err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			rs.metrics.CodeRedemption(metrics.OutcomeInvalid)
			return ErrInvalidCode
		}
		return err
	}

	rs.metrics.CodeRedemption(metrics.OutcomeRedeemed)
	rs.analytics.TrackPasswordResetCompleted(ctx, token.AdminID.String())
	logger.Info().Str("admin_id", token.AdminID.String()).Msg("Password reset via recovery code")
	return nil
}
