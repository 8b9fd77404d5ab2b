package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Garment struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	OwnerID   string    `gorm:"index;not null" json:"owner_id"`
	Name      string    `json:"name"`
	Category  Category  `gorm:"type:varchar(32)" json:"category"` // top, bottom, outerwear, shoes, accessory
	// free text, not used for scoring yet
	Subcategory *string `json:"subcategory"`
	// comma separated, e.g. "white, navy"
	Colors    *string `json:"colors"`
	Formality *string `json:"formality"` // empty means fine for any occasion
	// reserved for a richer scoring policy
	Warmth     int  `gorm:"default:3" json:"warmth"`
	Waterproof bool `gorm:"default:false" json:"waterproof"`
	// this is file **key** in storage, not a url
	ImageURL *string `json:"image_url"`
}

func (g *Garment) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.Warmth == 0 {
		g.Warmth = 3
	}
	return nil
}

func (g Garment) ColorsCSV() string {
	if g.Colors == nil {
		return ""
	}
	return *g.Colors
}

func (g Garment) FormalityTag() string {
	if g.Formality == nil {
		return ""
	}
	return *g.Formality
}
