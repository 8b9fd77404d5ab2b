// Package recommender picks an outfit from a wardrobe snapshot for an
// occasion and the weather. It keeps no state between calls.
package recommender

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"

	"outfitapi/models"
)

// Wardrobe is where garments come from. Recommend calls it once per request.
type Wardrobe interface {
	ListGarments(ctx context.Context, ownerID string) ([]models.Garment, error)
}

type Request struct {
	OwnerID  string
	Occasion string
	Weather  Weather
}

type Engine struct {
	cfg      compiled
	wardrobe Wardrobe
	newRand  func() *rand.Rand
}

type Option func(*Engine)

// WithSeed makes every call start from the same random state, so the shoe and
// outerwear picks and the jitter repeat across calls.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.newRand = func() *rand.Rand {
			return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		}
	}
}

// WithRandSource sets the per call random source factory. The factory must
// return a generator that is not shared with other calls.
func WithRandSource(newRand func() *rand.Rand) Option {
	return func(e *Engine) {
		e.newRand = newRand
	}
}

func NewEngine(cfg Config, wardrobe Wardrobe, opts ...Option) *Engine {
	e := &Engine{
		cfg:      compile(cfg),
		wardrobe: wardrobe,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend fetches the owner's wardrobe once and picks an outfit from it.
// The only error is a failed fetch, every other situation ends in an Outfit
// with explanatory notes.
func (e *Engine) Recommend(ctx context.Context, req Request) (*models.Outfit, error) {
	if e.wardrobe == nil {
		return nil, fmt.Errorf("recommender: no wardrobe configured")
	}
	garments, err := e.wardrobe.ListGarments(ctx, req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wardrobe for %s: %w", req.OwnerID, err)
	}
	outfit := e.Pick(garments, req)
	log.Printf("[Recommend] owner %s occasion %q: %d garments, %d items picked", req.OwnerID, req.Occasion, len(garments), len(outfit.Items))
	return &outfit, nil
}

// Pick runs filter, grouping, generation, scoring and selection over a snapshot.
// garments is only read.
func (e *Engine) Pick(garments []models.Garment, req Request) models.Outfit {
	rng := e.newRand()
	groups := GroupByRole(e.Filter(garments, req.Occasion))
	candidates := e.Candidates(groups, req.Weather, rng)
	for i := range candidates {
		candidates[i].Score = e.Score(candidates[i], rng)
	}
	return e.Select(req.Occasion, groups, candidates)
}

// Select returns the best scored candidate as an Outfit. On equal scores the
// earliest candidate wins.
func (e *Engine) Select(occasion string, groups Groups, candidates []Candidate) models.Outfit {
	outfit := models.Outfit{Occasion: occasion, Items: []models.OutfitItem{}}
	if !groups.HasBasics() {
		outfit.Notes = NoteMissingBasics
		return outfit
	}
	if len(candidates) == 0 {
		outfit.Notes = NoteNoMatch
		return outfit
	}

	best := 0
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Score > candidates[best].Score {
			best = i
		}
	}
	winner := candidates[best]
	for _, g := range winner.Garments() {
		outfit.Items = append(outfit.Items, models.OutfitItem{
			ID:       g.ID,
			Name:     g.Name,
			Category: string(g.Category),
		})
	}
	if winner.Outerwear != nil {
		outfit.Notes = NoteOuterwearAdded
	}
	return outfit
}
