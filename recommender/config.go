package recommender

import "outfitapi/models"

const (
	NoteMissingBasics   = "Add at least one top and one bottom to your closet."
	NoteNoMatch         = "Not enough items that match the occasion."
	NoteOuterwearAdded  = "Added outerwear for weather."
	defaultColdCelsius  = 12.0
	defaultJitterAmount = 0.1
)

// Config holds the tables the engine decides with. Engines never share a
// Config value with callers, see NewEngine.
type Config struct {
	// NeutralColors pair well with anything, each neutral garment adds 1 to a score.
	NeutralColors []string
	// FormalityByOccasion lists the formality tags accepted per occasion. The
	// empty tag stands for garments without formality.
	FormalityByOccasion map[models.Occasion][]string
	// FallbackOccasion is used for occasions missing from FormalityByOccasion.
	FallbackOccasion models.Occasion
	// ColdThresholdC: outerwear is considered below this temperature.
	ColdThresholdC float64
	// JitterAmplitude bounds the random tie-break added to every score.
	JitterAmplitude float64
}

func DefaultConfig() Config {
	return Config{
		NeutralColors: []string{
			"black", "white", "gray", "grey", "navy", "beige",
			"tan", "khaki", "denim", "brown", "cream",
		},
		FormalityByOccasion: map[models.Occasion][]string{
			models.OccasionCasual:     {"casual", "athleisure", ""},
			models.OccasionAthleisure: {"athleisure", "casual", ""},
			models.OccasionBusiness:   {"business", "formal", ""},
			models.OccasionFormal:     {"formal", ""},
		},
		FallbackOccasion: models.OccasionCasual,
		ColdThresholdC:   defaultColdCelsius,
		JitterAmplitude:  defaultJitterAmount,
	}
}

// compiled is the lookup form of Config used on the hot path.
type compiled struct {
	neutrals  map[string]struct{}
	formality map[models.Occasion]map[string]struct{}
	fallback  map[string]struct{}
	cold      float64
	jitter    float64
}

func compile(cfg Config) compiled {
	c := compiled{
		neutrals:  map[string]struct{}{},
		formality: map[models.Occasion]map[string]struct{}{},
		cold:      cfg.ColdThresholdC,
		jitter:    cfg.JitterAmplitude,
	}
	for _, color := range cfg.NeutralColors {
		for k := range ParseColors(color) {
			c.neutrals[k] = struct{}{}
		}
	}
	for occasion, tags := range cfg.FormalityByOccasion {
		key, _ := models.ParseOccasion(string(occasion))
		set := map[string]struct{}{"": {}}
		for _, tag := range tags {
			set[normalizeFormality(tag)] = struct{}{}
		}
		c.formality[key] = set
	}
	fallback, _ := models.ParseOccasion(string(cfg.FallbackOccasion))
	c.fallback = c.formality[fallback]
	if c.fallback == nil {
		c.fallback = map[string]struct{}{"": {}}
	}
	if c.jitter < 0 {
		c.jitter = 0
	}
	return c
}
