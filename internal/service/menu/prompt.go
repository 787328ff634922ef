package menu

import (
	"fmt"
	"strings"

	"github.com/lithammer/dedent"
)

// itemPromptTemplate is the static instruction sent with every generation
// request. It has exactly one substitution point, which only ever receives a
// sanitized item name.
var itemPromptTemplate = strings.TrimSpace(dedent.Dedent(`
	You are an expert restaurant menu copywriter and sales strategist. Your task is to create compelling menu descriptions and upsell suggestions.

	For the given food item, provide:

	1. A BRIEF, ATTRACTIVE DESCRIPTION (maximum 30 words):
	   - Highlight key ingredients, flavors, and appeal
	   - Use appetizing, descriptive language
	   - Focus on what makes this dish special
	   - Keep it concise and mouth-watering

	2. ONE UPSELL SUGGESTION:
	   - Suggest a complementary drink, side, or dessert
	   - Make it sound irresistible and logical
	   - Use persuasive but not pushy language
	   - Format as "Pair it with [item]!" or similar

	IMPORTANT RULES:
	- Description must be exactly 30 words or less
	- Use professional, appetizing language
	- Avoid generic phrases like "delicious" or "tasty"
	- Be specific about flavors, textures, and ingredients
	- Make the upsell suggestion relevant and appealing

	Food Item: %s

	Respond in this exact JSON format:
	{
	    "description": "Your 30-word description here",
	    "upsell_suggestion": "Your upsell suggestion here"
	}
`))

// buildItemPrompt renders the instruction template for a sanitized item name.
func buildItemPrompt(itemName string) string {
	return fmt.Sprintf(itemPromptTemplate, itemName)
}
