package services

import (
	"context"
	"errors"
	"fmt"

	"outfitapi/models"

	"gorm.io/gorm"
)

var ErrGarmentNotFound = errors.New("garment not found")

type ClosetRepositoryProvider interface {
	ListGarments(ctx context.Context, ownerID string) ([]models.Garment, error)
	CreateGarment(ctx context.Context, garment *models.Garment) error
	UpdateGarment(ctx context.Context, garment *models.Garment) error
	DeleteGarment(ctx context.Context, ownerID, id string) error
}

// ClosetRepository keeps wardrobe entries in postgres.
type ClosetRepository struct {
	DB *gorm.DB
}

func NewClosetRepository(db *gorm.DB) *ClosetRepository {
	return &ClosetRepository{DB: db}
}

func (r *ClosetRepository) ListGarments(ctx context.Context, ownerID string) ([]models.Garment, error) {
	var garments []models.Garment
	err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at asc, id asc").
		Find(&garments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list garments of %s: %w", ownerID, err)
	}
	return garments, nil
}

func (r *ClosetRepository) CreateGarment(ctx context.Context, garment *models.Garment) error {
	if err := r.DB.WithContext(ctx).Create(garment).Error; err != nil {
		return fmt.Errorf("failed to create garment %s: %w", garment.Name, err)
	}
	return nil
}

func (r *ClosetRepository) UpdateGarment(ctx context.Context, garment *models.Garment) error {
	if err := r.DB.WithContext(ctx).Save(garment).Error; err != nil {
		return fmt.Errorf("failed to update garment %s: %w", garment.ID, err)
	}
	return nil
}

// DeleteGarment removes a garment owned by ownerID. Garments of other owners
// are reported as not found.
func (r *ClosetRepository) DeleteGarment(ctx context.Context, ownerID, id string) error {
	result := r.DB.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Garment{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete garment %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGarmentNotFound
	}
	return nil
}
