package menu

import "fmt"

// Canned copy for the non-network result paths. Wording is stable so the
// service stays demonstrable and testable without a provider.
const (
	mockDescription = "A delicious fusion of authentic Indian spices and premium " +
		"cheese on crispy crust."
	mockUpsell = "Pair it with a refreshing Mango Lassi!"

	fallbackUpsell = "Pair it with a refreshing Mango Lassi!"

	genericDescription = "A delicious dish prepared with fresh ingredients and " +
		"authentic flavors."
	genericUpsell = "Pair it with a refreshing beverage!"
)

// rateLimitDescription synthesizes a description from the item name when the
// provider stays rate limited after the backoff retry.
func rateLimitDescription(itemName string) string {
	return fmt.Sprintf("%s: Crafted with fresh ingredients and balanced spices, "+
		"highlighting inviting textures and aromatic flavor. Perfect for quick "+
		"cravings and sharing.", itemName)
}

// degradedDescription synthesizes a description from the item name for the
// api-fallback and network-fallback paths.
func degradedDescription(itemName string) string {
	return fmt.Sprintf("%s: Crafted with fresh ingredients and balanced spices, "+
		"delivering inviting textures and satisfying flavor.", itemName)
}
