package recommender

import (
	"math/rand/v2"

	"outfitapi/models"
)

// Weather is the caller supplied context. Nil fields are unknown.
type Weather struct {
	TemperatureC *float64
	Raining      *bool
}

// Candidate is one role-consistent combination. Shoes and Outerwear are optional.
type Candidate struct {
	Top       *models.Garment
	Bottom    *models.Garment
	Shoes     *models.Garment
	Outerwear *models.Garment
	Score     float64
}

// Garments returns the candidate in role order: top, bottom, shoes, outerwear.
func (c Candidate) Garments() []*models.Garment {
	out := []*models.Garment{c.Top, c.Bottom}
	if c.Shoes != nil {
		out = append(out, c.Shoes)
	}
	if c.Outerwear != nil {
		out = append(out, c.Outerwear)
	}
	return out
}

func (e *Engine) needsOuterwear(w Weather) bool {
	if w.TemperatureC != nil && *w.TemperatureC < e.cfg.cold {
		return true
	}
	return w.Raining != nil && *w.Raining
}

func pickOne(rng *rand.Rand, bucket []*models.Garment) *models.Garment {
	if len(bucket) == 0 {
		return nil
	}
	return bucket[rng.IntN(len(bucket))]
}

// Candidates builds one candidate per (top, bottom) pair. Shoes and weather
// outerwear are drawn independently for every pair.
func (e *Engine) Candidates(groups Groups, w Weather, rng *rand.Rand) []Candidate {
	if !groups.HasBasics() {
		return nil
	}
	cold := e.needsOuterwear(w)
	candidates := make([]Candidate, 0, len(groups.Tops)*len(groups.Bottoms))
	for _, top := range groups.Tops {
		for _, bottom := range groups.Bottoms {
			c := Candidate{Top: top, Bottom: bottom}
			c.Shoes = pickOne(rng, groups.Shoes)
			if cold {
				c.Outerwear = pickOne(rng, groups.Outerwear)
			}
			candidates = append(candidates, c)
		}
	}
	return candidates
}
