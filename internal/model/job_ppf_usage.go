package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobPpfUsage is an append-only ledger entry recording film consumed from a
// roll for one panel of a job. Creating an entry moves the roll's used-length
// balance in the same transaction.
type JobPpfUsage struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobID        uuid.UUID `gorm:"type:uuid;not null;index" json:"job_id"`
	PanelName    string    `gorm:"type:varchar(60);not null" json:"panel_name"`
	RollID       uuid.UUID `gorm:"type:uuid;not null;index" json:"roll_id"`
	LengthUsedMm int       `gorm:"not null" json:"length_used_mm"`
	Notes        *string   `gorm:"type:text" json:"notes,omitempty"`
	ImageURL     *string   `gorm:"type:text" json:"image_url,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (JobPpfUsage) TableName() string {
	return "job_ppf_usages"
}

func (u *JobPpfUsage) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
