// Package model contains the domain types shared by the recommendation
// engine, the stores that feed it and the adapters that render its output.
package model

import "time"

// Category is the clothing category of a wardrobe item.
type Category string

// Known categories. Each maps one-to-one onto an outfit slot.
const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryDress     Category = "dress"
	CategoryShoes     Category = "shoes"
	CategoryAccessory Category = "accessory"
	CategoryPerfume   Category = "perfume"
)

// Categories lists every known category.
func Categories() []Category {
	return []Category{
		CategoryTop, CategoryBottom, CategoryDress,
		CategoryShoes, CategoryAccessory, CategoryPerfume,
	}
}

// Known reports whether c is one of the known categories.
func (c Category) Known() bool {
	switch c {
	case CategoryTop, CategoryBottom, CategoryDress, CategoryShoes, CategoryAccessory, CategoryPerfume:
		return true
	}
	return false
}

// Style is the style tag of a wardrobe item.
type Style string

// Known styles.
const (
	StyleCasual       Style = "casual"
	StyleElegant      Style = "elegant"
	StyleProfessional Style = "professional"
	StyleSporty       Style = "sporty"
)

// Styles lists every known style.
func Styles() []Style {
	return []Style{StyleCasual, StyleElegant, StyleProfessional, StyleSporty}
}

// Known reports whether s is one of the known styles.
func (s Style) Known() bool {
	switch s {
	case StyleCasual, StyleElegant, StyleProfessional, StyleSporty:
		return true
	}
	return false
}

// WardrobeItem is one piece of clothing owned by the user. The engine only
// ever reads items; the wardrobe store owns them.
type WardrobeItem struct {
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Category  Category   `json:"category" yaml:"category"`
	Color     string     `json:"color" yaml:"color"`
	Brand     string     `json:"brand,omitempty" yaml:"brand"`
	Style     Style      `json:"style" yaml:"style"`
	Favorite  bool       `json:"favorite" yaml:"favorite"`
	TimesWorn int        `json:"times_worn" yaml:"times_worn"`
	LastWorn  *time.Time `json:"last_worn,omitempty" yaml:"last_worn"`
	Notes     string     `json:"notes,omitempty" yaml:"notes"`
}

// Preferences carries the optional user style preferences.
type Preferences struct {
	FavoriteColors  []string `json:"favorite_colors,omitempty"`
	PreferredStyles []Style  `json:"preferred_styles,omitempty"`
}

// LikesColor reports whether color is one of the favorite colors.
func (p *Preferences) LikesColor(color string) bool {
	if p == nil {
		return false
	}
	for _, c := range p.FavoriteColors {
		if c == color {
			return true
		}
	}
	return false
}

// PrefersStyle reports whether style is one of the preferred styles.
func (p *Preferences) PrefersStyle(style Style) bool {
	if p == nil {
		return false
	}
	for _, s := range p.PreferredStyles {
		if s == style {
			return true
		}
	}
	return false
}
