package generation

import "errors"

// Classified provider errors. The orchestrator's retry policy branches on
// these and nothing else.
var (
	// ErrModelNotFound is returned when the provider reports the requested
	// model as unknown or unavailable (HTTP 404).
	ErrModelNotFound = errors.New("model not found")

	// ErrRateLimited is returned when the provider rejects the call with
	// too-many-requests (HTTP 429).
	ErrRateLimited = errors.New("provider rate limit exceeded")

	// ErrProviderUnavailable is returned for any other provider-side HTTP
	// error, and for structurally empty completions.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrTransport is returned for network-level failures: timeouts,
	// connection errors, DNS resolution, and anything else that prevented
	// an HTTP response from arriving.
	ErrTransport = errors.New("provider transport error")

	// ErrInvalidConfig is returned when a provider client is constructed
	// with unusable configuration.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
