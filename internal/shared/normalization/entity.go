package normalization

import "strings"

// entityAliases maps the entity name spellings accepted on the wire to their
// canonical collection name. Historical clients used singular and plural
// forms interchangeably.
var entityAliases = map[string]string{
	// Empty/default
	"":        "",
	"-":       "",
	"default": "",

	// Restaurant profile
	"restaurant":  "restaurants",
	"restaurants": "restaurants",

	// Menu items (several historical spellings)
	"menu":       "menuitems",
	"menus":      "menuitems",
	"menuitem":   "menuitems",
	"menuitems":  "menuitems",
	"menu-item":  "menuitems",
	"menu-items": "menuitems",
	"menu_item":  "menuitems",
	"menu_items": "menuitems",

	// Uploaded media
	"image":  "images",
	"images": "images",
}

// NormalizeEntity converts various entity name formats to their canonical form.
//
// Example:
//
//	NormalizeEntity("menu_item") => "menuitems"
//	NormalizeEntity("Restaurant") => "restaurants"
func NormalizeEntity(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	normalized := strings.ReplaceAll(trimmed, "_", "-")

	if canonical, found := entityAliases[normalized]; found {
		return canonical
	}
	if canonical, found := entityAliases[trimmed]; found {
		return canonical
	}
	return normalized
}

// IsValidEntity checks if the given entity name resolves to a known entity type.
func IsValidEntity(raw string) bool {
	switch NormalizeEntity(raw) {
	case "restaurants", "menuitems", "images":
		return true
	default:
		return false
	}
}
