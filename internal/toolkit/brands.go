package toolkit

import (
	"sort"
	"strings"
)

// automotiveIndiaBrands is the built-in brand database, segmented the way
// the reference spreadsheet segments it. Only the automotive/India pair is
// populated today; everything else gets the generic fallback.
var automotiveIndiaBrands = map[string][]string{
	"luxury":      {"Mercedes-Benz", "BMW", "Audi", "Jaguar", "Land Rover", "Volvo", "Lexus", "Porsche", "Ferrari", "Lamborghini"},
	"premium":     {"Toyota", "Honda", "Skoda", "Volkswagen", "Nissan", "Renault", "Jeep", "MG", "Kia", "BYD"},
	"mass_market": {"Maruti Suzuki", "Hyundai", "Tata Motors", "Mahindra", "Ford", "Chevrolet", "Datsun"},
	"electric":    {"Tesla", "Tata Nexon EV", "MG ZS EV", "Hyundai Kona", "Mahindra eXUV300", "Ather", "Ola Electric", "TVS iQube", "Bajaj Chetak", "Hero Electric", "BYD", "Kia EV6"},
}

// fallbackBrands is used when no database entry matches the category/market.
var fallbackBrands = []string{"Brand A", "Brand B", "Brand C", "Brand D", "Brand E"}

// BrandList returns the deduplicated, sorted brand list for the given
// category and market. Unknown combinations return the generic fallback so
// the prompt's brand section always has content.
func BrandList(category, market string) []string {
	cat := strings.ToLower(strings.TrimSpace(category))
	mkt := strings.ToLower(strings.TrimSpace(market))

	catMatch := cat == "automotive" || cat == "car" || cat == "vehicle"
	mktMatch := mkt == "india" || mkt == "indian"
	if !catMatch || !mktMatch {
		out := make([]string, len(fallbackBrands))
		copy(out, fallbackBrands)
		return out
	}

	seen := make(map[string]bool)
	var all []string
	for _, segment := range automotiveIndiaBrands {
		for _, b := range segment {
			if !seen[b] {
				seen[b] = true
				all = append(all, b)
			}
		}
	}
	sort.Strings(all)
	return all
}

// DetectCategory infers a brand category from free-text objective and
// audience fields. Empty string means no known category matched.
func DetectCategory(objective, audience string) string {
	text := strings.ToLower(objective + " " + audience)
	for _, kw := range []string{"automotive", "car", "vehicle"} {
		if strings.Contains(text, kw) {
			return "automotive"
		}
	}
	return ""
}
