package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"outfitapi/models"
	"outfitapi/services"
	"outfitapi/textutil"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

const (
	TypeClosetNormalize = "closet:normalize"
	QueueCloset         = "closet"
	normalizeBatchSize  = 200
)

// NormalizeClosetPayload scopes a sweep to one owner, empty means everybody.
type NormalizeClosetPayload struct {
	OwnerID string `json:"owner_id,omitempty"`
}

func NewNormalizeClosetTask(ownerID string) (*asynq.Task, error) {
	payload, err := json.Marshal(NormalizeClosetPayload{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeClosetNormalize, payload), nil
}

// NormalizeGarment rewrites g into canonical form: category aliases resolved,
// colors and formality folded. It reports whether anything changed.
func NormalizeGarment(g *models.Garment) bool {
	changed := false
	if category, ok := models.ParseCategory(string(g.Category)); ok && category != g.Category {
		g.Category = category
		changed = true
	}
	if g.Colors != nil {
		colors := strings.Join(textutil.SplitFold(*g.Colors), ",")
		if colors != *g.Colors {
			if colors == "" {
				g.Colors = nil
			} else {
				g.Colors = &colors
			}
			changed = true
		}
	}
	if g.Formality != nil {
		formality := textutil.Fold(*g.Formality)
		if formality != *g.Formality {
			if formality == "" {
				g.Formality = nil
			} else {
				g.Formality = &formality
			}
			changed = true
		}
	}
	if g.Warmth == 0 {
		g.Warmth = 3
		changed = true
	}
	return changed
}

// normalizeBatch saves the garments of batch that NormalizeGarment changed and
// returns how many were saved.
func normalizeBatch(ctx context.Context, batch []models.Garment, closet services.ClosetRepositoryProvider) (int, error) {
	updated := 0
	for i := range batch {
		if !NormalizeGarment(&batch[i]) {
			continue
		}
		if err := closet.UpdateGarment(ctx, &batch[i]); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

// HandleNormalizeClosetTask sweeps stored garments in batches and saves the
// ones NormalizeGarment changed.
func HandleNormalizeClosetTask(ctx context.Context, t *asynq.Task, db *gorm.DB) error {
	var p NormalizeClosetPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("json.Unmarshal failed: %v: %w", err, asynq.SkipRetry)
		}
	}
	query := db.WithContext(ctx).Order("id")
	if p.OwnerID != "" {
		query = query.Where("owner_id = ?", p.OwnerID)
	}
	var batch []models.Garment
	updated := 0
	result := query.FindInBatches(&batch, normalizeBatchSize, func(tx *gorm.DB, n int) error {
		count, err := normalizeBatch(ctx, batch, services.NewClosetRepository(tx))
		updated += count
		return err
	})
	if result.Error != nil {
		sentry.CaptureException(result.Error)
		return fmt.Errorf("closet normalization failed after %d updates: %w", updated, result.Error)
	}
	log.Printf("[Queue] closet normalization done for %q, %d garments updated", p.OwnerID, updated)
	return nil
}
