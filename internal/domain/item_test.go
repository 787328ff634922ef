package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeItemName(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
		errField    string
	}{
		{
			name:     "plain_name_passes_through",
			input:    "Paneer Tikka Pizza",
			expected: "Paneer Tikka Pizza",
		},
		{
			name:     "surrounding_whitespace_trimmed",
			input:    "  Butter Chicken \t",
			expected: "Butter Chicken",
		},
		{
			name:     "markup_characters_removed",
			input:    `<b>Masala "Dosa"</b>`,
			expected: "bMasala Dosa/b",
		},
		{
			name:     "single_quotes_removed",
			input:    "Chef's Special Thali",
			expected: "Chefs Special Thali",
		},
		{
			name:     "whitespace_retrimmed_after_stripping",
			input:    `<< Gulab Jamun`,
			expected: "Gulab Jamun",
		},
		{
			name:        "empty_input_rejected",
			input:       "   ",
			expectError: true,
			errField:    "item_name",
		},
		{
			name:        "reduces_to_empty_after_stripping",
			input:       `<>"'`,
			expectError: true,
			errField:    "item_name",
		},
		{
			name:        "too_short_after_stripping",
			input:       `<a>`,
			expectError: true,
			errField:    "item_name",
		},
		{
			name:        "too_long_rejected",
			input:       strings.Repeat("a", MaxItemNameLength+1),
			expectError: true,
			errField:    "item_name",
		},
		{
			name:     "exactly_max_length_accepted",
			input:    strings.Repeat("a", MaxItemNameLength),
			expected: strings.Repeat("a", MaxItemNameLength),
		},
		{
			name:     "exactly_min_length_accepted",
			input:    "ok",
			expected: "ok",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SanitizeItemName(tc.input)

			if tc.expectError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation),
					"sanitization failures should wrap ErrValidation")

				var valErr *ValidationError
				require.True(t, errors.As(err, &valErr))
				assert.Equal(t, tc.errField, valErr.Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestSanitizeItemName_LengthCountsRunes(t *testing.T) {
	// Multi-byte characters count as single characters for the bounds.
	name := strings.Repeat("é", MaxItemNameLength)
	got, err := SanitizeItemName(name)
	require.NoError(t, err)
	assert.Equal(t, name, got)
}

func TestParseModelTier(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    ModelTier
		expectError bool
	}{
		{name: "empty_defaults_to_standard", input: "", expected: TierStandard},
		{name: "standard_tier", input: "gpt-3.5-turbo", expected: TierStandard},
		{name: "premium_tier", input: "gpt-4", expected: TierPremium},
		{name: "unknown_model_rejected", input: "gpt-5", expectError: true},
		{name: "case_sensitive", input: "GPT-4", expectError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseModelTier(tc.input)

			if tc.expectError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidModelTier))
				assert.True(t, errors.Is(err, ErrValidation))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
