package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrValidation = errors.New("invalid menu item")
	ErrNotFound   = errors.New("menu item not found")
)

// Menu categories form a closed set; the card is organised around these four
// sections and the front-end renders them in this order.
const (
	CategoryStarters = "Entrées"
	CategoryMains    = "Plats"
	CategoryDesserts = "Desserts"
	CategoryDrinks   = "Boissons"
)

// Categories lists the valid values in display order.
func Categories() []string {
	return []string{CategoryStarters, CategoryMains, CategoryDesserts, CategoryDrinks}
}

// IsValidCategory reports whether raw is one of the enumerated categories.
// Matching is exact: the set is closed and accent-sensitive.
func IsValidCategory(raw string) bool {
	switch raw {
	case CategoryStarters, CategoryMains, CategoryDesserts, CategoryDrinks:
		return true
	default:
		return false
	}
}

// MenuItem is one entry of the restaurant card.
type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Nom         string             `bson:"nom" json:"nom"`
	Description string             `bson:"description" json:"description"`
	Prix        float64            `bson:"prix" json:"prix"`
	Categorie   string             `bson:"categorie" json:"categorie"`
	Disponible  bool               `bson:"disponible" json:"disponible"`
	ImageURL    string             `bson:"image_url" json:"image_url"`
	CreatedAt   time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Validate checks the invariants enforced on every create.
func (m MenuItem) Validate() error {
	if strings.TrimSpace(m.Nom) == "" {
		return fmt.Errorf("%w: nom is required", ErrValidation)
	}
	if m.Prix < 0 {
		return fmt.Errorf("%w: prix must not be negative", ErrValidation)
	}
	if !IsValidCategory(m.Categorie) {
		return fmt.Errorf("%w: categorie %q is not one of %v", ErrValidation, m.Categorie, Categories())
	}
	return nil
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Nom         *string  `json:"nom"`
	Description *string  `json:"description"`
	Prix        *float64 `json:"prix"`
	Categorie   *string  `json:"categorie"`
	Disponible  *bool    `json:"disponible"`
	ImageURL    *string  `json:"image_url"`
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Nom == nil && p.Description == nil && p.Prix == nil &&
		p.Categorie == nil && p.Disponible == nil && p.ImageURL == nil
}

// Validate re-checks the invariants for the fields the patch touches.
func (p Patch) Validate() error {
	if p.Nom != nil && strings.TrimSpace(*p.Nom) == "" {
		return fmt.Errorf("%w: nom must not be empty", ErrValidation)
	}
	if p.Prix != nil && *p.Prix < 0 {
		return fmt.Errorf("%w: prix must not be negative", ErrValidation)
	}
	if p.Categorie != nil && !IsValidCategory(*p.Categorie) {
		return fmt.Errorf("%w: categorie %q is not one of %v", ErrValidation, *p.Categorie, Categories())
	}
	return nil
}
