package domain

import (
	"strings"
	"unicode/utf8"
)

// Item name length bounds, measured after sanitization.
const (
	MinItemNameLength = 2
	MaxItemNameLength = 100
)

// ModelTier is an upstream model identifier from the fixed allow-list.
type ModelTier string

const (
	// TierStandard is the cheaper default model.
	TierStandard ModelTier = "gpt-3.5-turbo"

	// TierPremium is the premium model. When the provider reports it as
	// unavailable, generation downgrades once to TierStandard.
	TierPremium ModelTier = "gpt-4"
)

// DefaultTier is used when a request does not name a model version.
const DefaultTier = TierStandard

// AllowedTiers lists every model identifier a caller may request.
var AllowedTiers = []ModelTier{TierStandard, TierPremium}

// Valid reports whether the tier is on the allow-list.
func (t ModelTier) Valid() bool {
	for _, allowed := range AllowedTiers {
		if t == allowed {
			return true
		}
	}
	return false
}

// ParseModelTier validates a requested model identifier against the
// allow-list. An empty string maps to DefaultTier.
func ParseModelTier(s string) (ModelTier, error) {
	if s == "" {
		return DefaultTier, nil
	}
	tier := ModelTier(s)
	if !tier.Valid() {
		return "", NewValidationError(
			"model_version",
			"must be one of: gpt-3.5-turbo, gpt-4",
			ErrInvalidModelTier,
		)
	}
	return tier, nil
}

// forbiddenItemNameChars are stripped from item names before any other
// processing. They are the markup and quoting characters that could carry
// prompt-injection payloads into the upstream call.
const forbiddenItemNameChars = `<>"'`

// SanitizeItemName trims surrounding whitespace, removes the forbidden
// character set, and enforces the length window on the sanitized result.
// This is the only gate through which user text reaches prompt construction.
func SanitizeItemName(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", NewValidationError("item_name", "cannot be empty", nil)
	}

	sanitized := strings.Map(func(r rune) rune {
		if strings.ContainsRune(forbiddenItemNameChars, r) {
			return -1
		}
		return r
	}, trimmed)
	sanitized = strings.TrimSpace(sanitized)

	switch n := utf8.RuneCountInString(sanitized); {
	case n == 0:
		return "", NewValidationError("item_name", "cannot be empty", nil)
	case n < MinItemNameLength:
		return "", NewValidationError("item_name", "too short (min 2 characters)", nil)
	case n > MaxItemNameLength:
		return "", NewValidationError("item_name", "too long (max 100 characters)", nil)
	}

	return sanitized, nil
}

// ItemDetails is the generated marketing copy for a single menu item.
// ModelUsed may differ from the requested tier and may carry a suffix tag
// when a degraded path produced the result.
type ItemDetails struct {
	Description      string
	UpsellSuggestion string
	ModelUsed        string
}
