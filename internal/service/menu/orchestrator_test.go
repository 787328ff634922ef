package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuwise/menu-intelligence-api/internal/domain"
	"github.com/menuwise/menu-intelligence-api/internal/generation"
)

// fakeGenerator is a scripted generation.Generator. Each call consumes the
// next step; it fails the test if called more often than scripted.
type fakeGenerator struct {
	t     *testing.T
	steps []fakeStep
	calls []fakeCall
}

type fakeStep struct {
	text string
	err  error
}

type fakeCall struct {
	prompt string
	model  string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, model string) (string, error) {
	f.calls = append(f.calls, fakeCall{prompt: prompt, model: model})
	if len(f.calls) > len(f.steps) {
		f.t.Fatalf("unexpected provider call %d with model %s", len(f.calls), model)
	}
	step := f.steps[len(f.calls)-1]
	return step.text, step.err
}

func newTestService(t *testing.T, steps ...fakeStep) (*Service, *fakeGenerator) {
	t.Helper()
	gen := &fakeGenerator{t: t, steps: steps}
	svc := NewService(gen, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Make the backoff path instant.
	svc.sleep = func(context.Context, time.Duration) error { return nil }
	return svc, gen
}

const validCompletion = `{"description": "Smoky paneer cubes in char-grilled peppers", ` +
	`"upsell_suggestion": "Pair it with a chilled Mango Lassi!"}`

func TestGenerateItemDetails_Success(t *testing.T) {
	svc, gen := newTestService(t, fakeStep{text: validCompletion})

	details, err := svc.GenerateItemDetails(context.Background(), "Paneer Tikka", domain.TierPremium)
	require.NoError(t, err)

	assert.Equal(t, "Smoky paneer cubes in char-grilled peppers", details.Description)
	assert.Equal(t, "Pair it with a chilled Mango Lassi!", details.UpsellSuggestion)
	assert.Equal(t, "gpt-4", details.ModelUsed, "authentic generations carry no suffix tag")

	require.Len(t, gen.calls, 1)
	assert.Equal(t, "gpt-4", gen.calls[0].model)
	assert.Contains(t, gen.calls[0].prompt, "Paneer Tikka")
}

func TestGenerateItemDetails_MockModeWithoutGenerator(t *testing.T) {
	svc := NewService(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tier := range domain.AllowedTiers {
		details, err := svc.GenerateItemDetails(context.Background(), "Dal Makhani", tier)
		require.NoError(t, err)

		assert.Equal(t, mockDescription, details.Description)
		assert.Equal(t, mockUpsell, details.UpsellSuggestion)
		assert.Equal(t, "mock-"+string(tier), details.ModelUsed)
	}
}

func TestGenerateItemDetails_DescriptionTruncatedToThirtyWords(t *testing.T) {
	words := make([]string, 40)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	long := strings.Join(words, " ")
	completion := fmt.Sprintf(`{"description": %q, "upsell_suggestion": "Add a side!"}`, long)

	svc, _ := newTestService(t, fakeStep{text: completion})

	details, err := svc.GenerateItemDetails(context.Background(), "Biryani", domain.TierStandard)
	require.NoError(t, err)

	assert.Equal(t, strings.Join(words[:30], " "), details.Description)
	assert.Len(t, strings.Fields(details.Description), 30)
	assert.Equal(t, "Add a side!", details.UpsellSuggestion)
}

func TestGenerateItemDetails_PremiumDowngradesOnceOn404(t *testing.T) {
	svc, gen := newTestService(t,
		fakeStep{err: generation.ErrModelNotFound},
		fakeStep{text: validCompletion},
	)

	details, err := svc.GenerateItemDetails(context.Background(), "Paneer Tikka", domain.TierPremium)
	require.NoError(t, err)

	require.Len(t, gen.calls, 2)
	assert.Equal(t, "gpt-4", gen.calls[0].model)
	assert.Equal(t, "gpt-3.5-turbo", gen.calls[1].model)
	assert.Equal(t, "gpt-3.5-turbo", details.ModelUsed,
		"downgraded success reports the model that answered, untagged")
}

func TestGenerateItemDetails_SecondModelNotFoundBecomesAPIFallback(t *testing.T) {
	svc, gen := newTestService(t,
		fakeStep{err: generation.ErrModelNotFound},
		fakeStep{err: generation.ErrModelNotFound},
	)

	details, err := svc.GenerateItemDetails(context.Background(), "Paneer Tikka", domain.TierPremium)
	require.NoError(t, err)

	require.Len(t, gen.calls, 2, "no third attempt exists past the downgrade")
	assert.Equal(t, "gpt-3.5-turbo (api-fallback)", details.ModelUsed)
	assert.Contains(t, details.Description, "Paneer Tikka")
}

func TestGenerateItemDetails_StandardModelNotFoundIsAPIFallback(t *testing.T) {
	// No downgrade path exists below the standard tier.
	svc, gen := newTestService(t, fakeStep{err: generation.ErrModelNotFound})

	details, err := svc.GenerateItemDetails(context.Background(), "Samosa Chaat", domain.TierStandard)
	require.NoError(t, err)

	require.Len(t, gen.calls, 1)
	assert.Equal(t, "gpt-3.5-turbo (api-fallback)", details.ModelUsed)
}

func TestGenerateItemDetails_RateLimitRetriesOnceThenSucceeds(t *testing.T) {
	svc, gen := newTestService(t,
		fakeStep{err: generation.ErrRateLimited},
		fakeStep{text: validCompletion},
	)

	var slept []time.Duration
	svc.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	details, err := svc.GenerateItemDetails(context.Background(), "Paneer Tikka", domain.TierStandard)
	require.NoError(t, err)

	require.Len(t, gen.calls, 2)
	assert.Equal(t, "gpt-3.5-turbo", details.ModelUsed)

	require.Len(t, slept, 1, "exactly one backoff sleep")
	assert.GreaterOrEqual(t, slept[0], rateLimitBackoffBase)
	assert.Less(t, slept[0], rateLimitBackoffBase+rateLimitBackoffJitter)
}

func TestGenerateItemDetails_SecondRateLimitBecomesFallback(t *testing.T) {
	svc, gen := newTestService(t,
		fakeStep{err: generation.ErrRateLimited},
		fakeStep{err: generation.ErrRateLimited},
	)

	details, err := svc.GenerateItemDetails(context.Background(), "Paneer Tikka", domain.TierStandard)
	require.NoError(t, err, "exhausted rate-limit retries must not surface an error")

	require.Len(t, gen.calls, 2, "exactly one retry after the backoff")
	assert.Equal(t, "gpt-3.5-turbo (rate-limit-fallback)", details.ModelUsed)
	assert.Contains(t, details.Description, "Paneer Tikka")
	assert.Equal(t, fallbackUpsell, details.UpsellSuggestion)
}

func TestGenerateItemDetails_ProviderErrorIsAPIFallbackWithoutRetry(t *testing.T) {
	svc, gen := newTestService(t, fakeStep{err: generation.ErrProviderUnavailable})

	details, err := svc.GenerateItemDetails(context.Background(), "Masala Dosa", domain.TierStandard)
	require.NoError(t, err)

	require.Len(t, gen.calls, 1, "other HTTP errors are never retried")
	assert.Equal(t, "gpt-3.5-turbo (api-fallback)", details.ModelUsed)
	assert.Contains(t, details.Description, "Masala Dosa")
}

func TestGenerateItemDetails_TransportErrorIsNetworkFallbackWithoutRetry(t *testing.T) {
	svc, gen := newTestService(t,
		fakeStep{err: fmt.Errorf("%w: connection refused", generation.ErrTransport)},
	)

	details, err := svc.GenerateItemDetails(context.Background(), "Masala Dosa", domain.TierPremium)
	require.NoError(t, err)

	require.Len(t, gen.calls, 1, "transport failures are never retried")
	assert.Equal(t, "gpt-4 (network-fallback)", details.ModelUsed)
}

func TestGenerateItemDetails_MalformedCompletionBecomesGenericFallback(t *testing.T) {
	tests := []struct {
		name       string
		completion string
	}{
		{name: "not_json", completion: "Here is your description: tasty!"},
		{name: "json_array", completion: `["description", "upsell_suggestion"]`},
		{name: "json_string", completion: `"just a string"`},
		{name: "missing_description", completion: `{"upsell_suggestion": "Add fries!"}`},
		{name: "missing_upsell", completion: `{"description": "Rich and creamy"}`},
		{name: "empty_fields", completion: `{"description": "", "upsell_suggestion": ""}`},
		{name: "null_object", completion: `null`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService(t, fakeStep{text: tc.completion})

			details, err := svc.GenerateItemDetails(context.Background(), "Idli Sambar", domain.TierPremium)
			require.NoError(t, err, "schema violations are repaired, not fatal")

			assert.Equal(t, genericDescription, details.Description)
			assert.Equal(t, genericUpsell, details.UpsellSuggestion)
			assert.Equal(t, "gpt-4 (fallback)", details.ModelUsed,
				"parse fallback is tagged with the requested tier")
		})
	}
}

func TestGenerateItemDetails_UnclassifiedErrorEscapes(t *testing.T) {
	boom := errors.New("unexpected provider behavior")
	svc, _ := newTestService(t, fakeStep{err: boom})

	details, err := svc.GenerateItemDetails(context.Background(), "Vada Pav", domain.TierStandard)
	require.Error(t, err)
	assert.Nil(t, details)
	assert.True(t, errors.Is(err, boom))
}

func TestGenerateItemDetails_DowngradeThenRateLimitPath(t *testing.T) {
	// 404 on premium, then 429 on standard, then the backoff retry lands.
	svc, gen := newTestService(t,
		fakeStep{err: generation.ErrModelNotFound},
		fakeStep{err: generation.ErrRateLimited},
		fakeStep{text: validCompletion},
	)

	details, err := svc.GenerateItemDetails(context.Background(), "Paneer Tikka", domain.TierPremium)
	require.NoError(t, err)

	require.Len(t, gen.calls, 3)
	assert.Equal(t, "gpt-3.5-turbo", gen.calls[2].model)
	assert.Equal(t, "gpt-3.5-turbo", details.ModelUsed)
}

func TestGenerateItemDetails_CancelledContextDuringBackoff(t *testing.T) {
	svc, gen := newTestService(t, fakeStep{err: generation.ErrRateLimited})

	ctx, cancel := context.WithCancel(context.Background())
	svc.sleep = func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	}

	details, err := svc.GenerateItemDetails(ctx, "Paneer Tikka", domain.TierStandard)
	require.NoError(t, err, "cancellation during backoff is absorbed into the fallback")

	require.Len(t, gen.calls, 1, "the retry is skipped once the context is gone")
	assert.Equal(t, "gpt-3.5-turbo (rate-limit-fallback)", details.ModelUsed)
}

func TestGenerateItemDetails_CancelledContextDoesNotWaitOutBackoff(t *testing.T) {
	// The real backoff wait must abort on cancellation instead of blocking
	// for the full window before the fallback answers.
	svc, gen := newTestService(t, fakeStep{err: generation.ErrRateLimited})
	svc.sleep = sleepContext

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	details, err := svc.GenerateItemDetails(ctx, "Paneer Tikka", domain.TierStandard)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Less(t, elapsed, rateLimitBackoffBase, "fallback must not wait for the backoff window")
	require.Len(t, gen.calls, 1)
	assert.Equal(t, "gpt-3.5-turbo (rate-limit-fallback)", details.ModelUsed)
}
