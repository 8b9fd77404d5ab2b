package models

import (
	"outfitapi/textutil"

	"github.com/go-playground/validator"
)

type Occasion string

const (
	OccasionCasual     Occasion = "casual"
	OccasionBusiness   Occasion = "business"
	OccasionFormal     Occasion = "formal"
	OccasionAthleisure Occasion = "athleisure"
)

var knownOccasions = map[Occasion]bool{
	OccasionCasual:     true,
	OccasionBusiness:   true,
	OccasionFormal:     true,
	OccasionAthleisure: true,
}

// ParseOccasion normalizes raw case-insensitively. Unrecognized values are
// returned folded with ok=false so callers can decide on a fallback.
func ParseOccasion(raw string) (Occasion, bool) {
	o := Occasion(textutil.Fold(raw))
	return o, knownOccasions[o]
}

// Formality tags share the occasion vocabulary.
func ValidateFormality(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := ParseOccasion(value)
	return ok
}
