package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServicePackage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(80);not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ServicePackage) TableName() string {
	return "service_packages"
}

func (p *ServicePackage) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
