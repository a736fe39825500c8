package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PpfProduct struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`
	Brand     string    `gorm:"type:varchar(60);not null" json:"brand"`
	Type      string    `gorm:"type:varchar(40);not null" json:"type"`
	WidthMm   int       `gorm:"not null" json:"width_mm"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PpfProduct) TableName() string {
	return "ppf_products"
}

func (p *PpfProduct) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
