package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"festProApi/internal/shared/normalization"
)

var ErrNotFound = errors.New("restaurant not found")

// Horaires holds the two service slots as free-text ranges.
type Horaires struct {
	Midi string `bson:"midi" json:"midi"`
	Soir string `bson:"soir" json:"soir"`
}

// Capacite holds the seat count per service slot.
type Capacite struct {
	Midi int `bson:"midi" json:"midi"`
	Soir int `bson:"soir" json:"soir"`
}

// Restaurant is the single profile record of the back office. The service is
// single-tenant: the store holds at most one restaurant document.
type Restaurant struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Nom         string             `bson:"nom" json:"nom"`
	Description string             `bson:"description" json:"description"`
	Adresse     string             `bson:"adresse" json:"adresse"`
	Telephone   string             `bson:"telephone" json:"telephone"`
	Email       string             `bson:"email" json:"email"`
	Horaires    Horaires           `bson:"horaires" json:"horaires"`
	Capacite    Capacite           `bson:"capacite" json:"capacite"`
	ImageURL    string             `bson:"image_url" json:"image_url"`
	Cuisine     []string           `bson:"cuisine,omitempty" json:"cuisine,omitempty"`
	Rating      float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt   time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// FromDocument coerces an arbitrary JSON document into a well-shaped
// Restaurant. Historical clients sent horaires as a plain string, capacities
// as numeric strings or dropped the sub-structures entirely; every variant is
// normalized here, in one pass, before anything reaches the store. Identity
// and store metadata fields in the input are ignored.
func FromDocument(doc map[string]any) Restaurant {
	r := Restaurant{
		Nom:         normalization.AsString(doc["nom"]),
		Description: normalization.AsString(doc["description"]),
		Adresse:     normalization.AsString(doc["adresse"]),
		Telephone:   normalization.AsString(doc["telephone"]),
		Email:       normalization.AsString(doc["email"]),
		ImageURL:    normalization.AsString(doc["image_url"]),
		Cuisine:     normalization.AsStringSlice(doc["cuisine"]),
		Rating:      normalization.AsFloat64(doc["rating"]),
	}

	if horaires := normalization.AsMap(doc["horaires"]); horaires != nil {
		r.Horaires.Midi = normalization.AsString(horaires["midi"])
		r.Horaires.Soir = normalization.AsString(horaires["soir"])
	}
	if capacite := normalization.AsMap(doc["capacite"]); capacite != nil {
		r.Capacite.Midi = normalization.AsInt(capacite["midi"])
		r.Capacite.Soir = normalization.AsInt(capacite["soir"])
	}

	return r
}

// Default is the record served when the store holds no restaurant yet. It is
// never persisted; the UI renders it until the owner saves a real profile.
func Default() Restaurant {
	return Restaurant{
		Nom:         "Le Festin",
		Description: "Une cuisine française raffinée dans un cadre élégant et contemporain.",
		Adresse:     "15 rue de la Gastronomie, 75001 Paris",
		Telephone:   "+33 1 23 45 67 89",
		Email:       "contact@lefestin.fr",
		ImageURL:    "https://images.unsplash.com/photo-1552566626-52f8b828add9",
		Horaires: Horaires{
			Midi: "12:00 - 14:30",
			Soir: "19:00 - 22:30",
		},
		Capacite: Capacite{
			Midi: 45,
			Soir: 60,
		},
	}
}
