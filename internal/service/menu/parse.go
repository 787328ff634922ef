package menu

import (
	"encoding/json"
	"strings"
)

// maxDescriptionWords caps descriptions returned to callers.
const maxDescriptionWords = 30

// completionSchema is the JSON shape the prompt instructs the provider to
// answer in. Pointer fields distinguish missing keys from empty values.
type completionSchema struct {
	Description      *string `json:"description"`
	UpsellSuggestion *string `json:"upsell_suggestion"`
}

// parseCompletion validates the provider's completion text against the
// expected schema. It returns ok=false for anything that is not a JSON
// object carrying both fields with non-empty string values; the caller
// repairs that into a generic fallback rather than failing the request.
func parseCompletion(raw string) (description, upsell string, ok bool) {
	var parsed completionSchema
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return "", "", false
	}
	if parsed.Description == nil || parsed.UpsellSuggestion == nil {
		return "", "", false
	}
	if *parsed.Description == "" || *parsed.UpsellSuggestion == "" {
		return "", "", false
	}
	return *parsed.Description, *parsed.UpsellSuggestion, true
}

// truncateWords bounds s to the first max whitespace-split words. Inputs at
// or under the bound are returned unchanged, original spacing intact.
func truncateWords(s string, max int) string {
	words := strings.Fields(s)
	if len(words) <= max {
		return s
	}
	return strings.Join(words[:max], " ")
}
