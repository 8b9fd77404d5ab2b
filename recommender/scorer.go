package recommender

import (
	"math/rand/v2"

	"outfitapi/models"
)

func (e *Engine) isNeutral(g *models.Garment) bool {
	for color := range ParseColors(g.ColorsCSV()) {
		if _, ok := e.cfg.neutrals[color]; ok {
			return true
		}
	}
	return false
}

// NeutralCount is the number of garments in c carrying at least one neutral color.
func (e *Engine) NeutralCount(c Candidate) int {
	n := 0
	for _, g := range c.Garments() {
		if e.isNeutral(g) {
			n++
		}
	}
	return n
}

// Score is NeutralCount plus a jitter in [0, JitterAmplitude). Warmth,
// waterproof and subcategory do not count.
func (e *Engine) Score(c Candidate, rng *rand.Rand) float64 {
	return float64(e.NeutralCount(c)) + rng.Float64()*e.cfg.jitter
}
