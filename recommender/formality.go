package recommender

import (
	"outfitapi/models"
	"outfitapi/textutil"
)

func normalizeFormality(tag string) string {
	return textutil.Fold(tag)
}

// acceptedFormality returns the accepted tag set for occasion, falling back
// to the casual set for anything unknown.
func (e *Engine) acceptedFormality(occasion string) map[string]struct{} {
	key, _ := models.ParseOccasion(occasion)
	if set, ok := e.cfg.formality[key]; ok {
		return set
	}
	return e.cfg.fallback
}

// FormalityOK reports whether g may be worn for occasion. Garments without a
// formality tag are accepted everywhere.
func (e *Engine) FormalityOK(g models.Garment, occasion string) bool {
	tag := normalizeFormality(g.FormalityTag())
	if tag == "" {
		return true
	}
	_, ok := e.acceptedFormality(occasion)[tag]
	return ok
}

// Filter keeps the garments appropriate for occasion. The result points into
// garments and keeps its order.
func (e *Engine) Filter(garments []models.Garment, occasion string) []*models.Garment {
	accepted := e.acceptedFormality(occasion)
	pool := make([]*models.Garment, 0, len(garments))
	for i := range garments {
		tag := normalizeFormality(garments[i].FormalityTag())
		if _, ok := accepted[tag]; ok || tag == "" {
			pool = append(pool, &garments[i])
		}
	}
	return pool
}
