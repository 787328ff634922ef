package generation

import "context"

// Generator is the capability interface for the upstream text-generation
// provider. Implementations issue one synchronous call and classify every
// failure into one of the sentinel errors in errors.go, so the retry policy
// above this boundary never inspects transport details.
type Generator interface {
	// Generate sends the prompt to the provider using the given model
	// identifier and returns the raw completion text.
	//
	// Returns:
	//   - The completion text with surrounding whitespace trimmed
	//   - A classified error (ErrModelNotFound, ErrRateLimited,
	//     ErrProviderUnavailable, or ErrTransport) on failure
	Generate(ctx context.Context, prompt string, model string) (string, error)
}
