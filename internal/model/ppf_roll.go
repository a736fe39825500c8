package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RollStatus string

const (
	RollStatusActive   RollStatus = "ACTIVE"
	RollStatusDepleted RollStatus = "DEPLETED"
	RollStatusDisposed RollStatus = "DISPOSED"
)

type PpfRoll struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	RollID        string     `gorm:"type:varchar(40);not null;uniqueIndex" json:"roll_id"`
	ProductID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"product_id"`
	BatchNo       *string    `gorm:"type:varchar(40)" json:"batch_no,omitempty"`
	TotalLengthMm int        `gorm:"not null" json:"total_length_mm"`
	UsedLengthMm  int        `gorm:"not null;default:0" json:"used_length_mm"`
	Status        RollStatus `gorm:"type:varchar(20);not null;default:ACTIVE" json:"status"`
	ImageURL      *string    `gorm:"type:text" json:"image_url,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PpfRoll) TableName() string {
	return "ppf_rolls"
}

func (r *PpfRoll) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RemainingLengthMm is the length still available on the roll.
func (r *PpfRoll) RemainingLengthMm() int {
	return r.TotalLengthMm - r.UsedLengthMm
}
