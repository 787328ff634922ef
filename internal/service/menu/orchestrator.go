package menu

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/menuwise/menu-intelligence-api/internal/domain"
	"github.com/menuwise/menu-intelligence-api/internal/generation"
)

// Retry policy bounds. Two model attempts cover the single premium-to-
// standard downgrade; the rate-limit path adds at most one more call after
// a short randomized backoff. No path retries more than once.
const (
	maxModelAttempts = 2

	rateLimitBackoffBase   = 500 * time.Millisecond
	rateLimitBackoffJitter = 250 * time.Millisecond
)

// Service orchestrates one item-detail generation request end to end.
type Service struct {
	// generator is the provider boundary. Nil means no credential is
	// configured and every request takes the deterministic mock path.
	generator generation.Generator

	logger *slog.Logger

	// sleep and rng are swapped out by tests to make the backoff path
	// instant and deterministic.
	sleep func(ctx context.Context, d time.Duration) error
	rng   *rand.Rand
}

// NewService creates an orchestrator over the given provider boundary.
// A nil generator enables mock mode; it is a supported state, not an error.
func NewService(generator generation.Generator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		generator: generator,
		logger:    logger.With(slog.String("component", "menu_service")),
		sleep:     sleepContext,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateItemDetails produces marketing copy for a sanitized item name.
//
// Every classified provider failure is absorbed into a degraded but
// structurally valid result whose ModelUsed field discloses the path taken.
// Only unclassified errors escape to the caller.
func (s *Service) GenerateItemDetails(
	ctx context.Context,
	itemName string,
	tier domain.ModelTier,
) (*domain.ItemDetails, error) {
	log := s.logger.With(slog.String("item_name", itemName), slog.String("model", string(tier)))

	if s.generator == nil {
		log.Warn("no provider credential configured, returning mock response")
		return &domain.ItemDetails{
			Description:      mockDescription,
			UpsellSuggestion: mockUpsell,
			ModelUsed:        OutcomeMock.tagModel(string(tier)),
		}, nil
	}

	prompt := buildItemPrompt(itemName)

	raw, modelUsed, outcome, err := s.callWithRetry(ctx, log, prompt, tier)
	if err != nil {
		return nil, err
	}

	switch outcome {
	case OutcomeRateLimitFallback:
		log.Warn("provider rate limited after retry, synthesizing fallback")
		return &domain.ItemDetails{
			Description:      rateLimitDescription(itemName),
			UpsellSuggestion: fallbackUpsell,
			ModelUsed:        outcome.tagModel(modelUsed),
		}, nil

	case OutcomeAPIFallback, OutcomeNetworkFallback:
		log.Warn("provider unavailable, synthesizing fallback",
			slog.String("outcome", outcome.String()))
		return &domain.ItemDetails{
			Description:      degradedDescription(itemName),
			UpsellSuggestion: fallbackUpsell,
			ModelUsed:        outcome.tagModel(modelUsed),
		}, nil
	}

	description, upsell, ok := parseCompletion(raw)
	if !ok {
		// Malformed completions are repaired, not fatal. The tag carries
		// the requested tier since no trustworthy generation happened.
		log.Error("provider completion failed schema validation",
			slog.Int("completion_length", len(raw)))
		return &domain.ItemDetails{
			Description:      genericDescription,
			UpsellSuggestion: genericUpsell,
			ModelUsed:        OutcomeParseFallback.tagModel(string(tier)),
		}, nil
	}

	if truncated := truncateWords(description, maxDescriptionWords); truncated != description {
		log.Warn("description over word cap, truncating",
			slog.Int("cap", maxDescriptionWords))
		description = truncated
	}

	log.Info("item details generated",
		slog.String("outcome", outcome.String()),
		slog.String("model_used", modelUsed))

	return &domain.ItemDetails{
		Description:      description,
		UpsellSuggestion: upsell,
		ModelUsed:        outcome.tagModel(modelUsed),
	}, nil
}

// callWithRetry runs the bounded retry state machine: at most two model
// attempts (one downgrade) plus at most one backoff retry on rate limiting.
// A nil error with a non-success outcome means the failure was absorbed and
// the caller must synthesize a fallback for the returned model.
func (s *Service) callWithRetry(
	ctx context.Context,
	log *slog.Logger,
	prompt string,
	tier domain.ModelTier,
) (raw string, modelUsed string, outcome Outcome, err error) {
	model := string(tier)
	outcome = OutcomeSuccess

	for attempt := 0; attempt < maxModelAttempts; attempt++ {
		raw, err = s.generator.Generate(ctx, prompt, model)
		if err == nil {
			return raw, model, outcome, nil
		}

		switch {
		case errors.Is(err, generation.ErrModelNotFound) && model == string(domain.TierPremium):
			log.Warn("premium model unavailable, downgrading",
				slog.String("downgrade_to", string(domain.TierStandard)))
			model = string(domain.TierStandard)
			outcome = OutcomeDowngraded
			continue

		case errors.Is(err, generation.ErrRateLimited):
			log.Warn("provider rate limited, backing off and retrying")
			retried, retryErr := s.retryAfterBackoff(ctx, prompt, model)
			if retryErr == nil {
				return retried, model, outcome, nil
			}
			return "", model, OutcomeRateLimitFallback, nil

		case errors.Is(err, generation.ErrTransport):
			log.Error("provider request failed", slog.Any("error", err))
			return "", model, OutcomeNetworkFallback, nil

		case errors.Is(err, generation.ErrModelNotFound),
			errors.Is(err, generation.ErrProviderUnavailable):
			log.Error("provider API error", slog.Any("error", err))
			return "", model, OutcomeAPIFallback, nil

		default:
			// Unclassified failures escape and surface as request errors.
			return "", model, outcome, err
		}
	}

	// Both model attempts reported the model missing.
	return "", model, OutcomeAPIFallback, nil
}

// retryAfterBackoff waits out the randomized backoff window and issues the
// one permitted retry. Cancellation aborts the wait immediately and counts as
// a failed retry; the rate-limit fallback still answers the request.
func (s *Service) retryAfterBackoff(ctx context.Context, prompt, model string) (string, error) {
	backoff := rateLimitBackoffBase +
		time.Duration(s.rng.Int63n(int64(rateLimitBackoffJitter)))
	if err := s.sleep(ctx, backoff); err != nil {
		return "", err
	}

	return s.generator.Generate(ctx, prompt, model)
}

// sleepContext waits d, returning early with the context error if ctx is
// canceled first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
