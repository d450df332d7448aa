package restaurant

import "strings"

// Restaurant is a read-only catalog record.
type Restaurant struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Cuisine     string  `yaml:"cuisine"`
	Rating      float64 `yaml:"rating"`
	PriceTier   string  `yaml:"price_tier"`
	Address     string  `yaml:"address"`
	Description string  `yaml:"description"`
	Image       string  `yaml:"image"`
}

// Matches reports whether query appears in the name or the cuisine, ignoring case.
// An empty query matches every restaurant.
func (r Restaurant) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Cuisine), q)
}
