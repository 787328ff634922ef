package menu

// Outcome enumerates the terminal states of the retry state machine. Keeping
// this explicit (rather than nested error handling) makes the bound on
// attempts and the tagging of model_used independently testable.
type Outcome int

const (
	// OutcomeSuccess means the primary attempt returned a completion.
	OutcomeSuccess Outcome = iota

	// OutcomeDowngraded means the premium model was unavailable and the
	// single downgrade retry on the standard model returned a completion.
	OutcomeDowngraded

	// OutcomeRateLimitFallback means both the primary attempt and the one
	// backoff retry were rate limited; the result is synthesized locally.
	OutcomeRateLimitFallback

	// OutcomeAPIFallback means the provider returned a non-retryable HTTP
	// error; the result is synthesized locally.
	OutcomeAPIFallback

	// OutcomeNetworkFallback means the call never produced an HTTP
	// response (timeout, connection, DNS); the result is synthesized
	// locally.
	OutcomeNetworkFallback

	// OutcomeParseFallback means the provider answered but the completion
	// violated the expected JSON shape; a generic canned result is used.
	OutcomeParseFallback

	// OutcomeMock means no provider credential is configured and the
	// deterministic demonstration result was returned.
	OutcomeMock
)

// String returns the outcome name for logging.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeDowngraded:
		return "downgraded"
	case OutcomeRateLimitFallback:
		return "rate-limit-fallback"
	case OutcomeAPIFallback:
		return "api-fallback"
	case OutcomeNetworkFallback:
		return "network-fallback"
	case OutcomeParseFallback:
		return "fallback"
	case OutcomeMock:
		return "mock"
	default:
		return "unknown"
	}
}

// tagModel stamps model_used for the outcome. Fallback paths disclose the
// degradation with a suffix; success and downgrade report the bare model that
// actually answered.
func (o Outcome) tagModel(model string) string {
	switch o {
	case OutcomeRateLimitFallback:
		return model + " (rate-limit-fallback)"
	case OutcomeAPIFallback:
		return model + " (api-fallback)"
	case OutcomeNetworkFallback:
		return model + " (network-fallback)"
	case OutcomeParseFallback:
		return model + " (fallback)"
	case OutcomeMock:
		return "mock-" + model
	default:
		return model
	}
}
