package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleAdvisor    UserRole = "ADVISOR"
	UserRoleTechnician UserRole = "TECHNICIAN"
	UserRoleQC         UserRole = "QC"
)

// User is the local directory record for a team member. Credentials live
// entirely in the identity service; no secret is stored here.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(60);not null;uniqueIndex" json:"username"`
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`
	Role      UserRole  `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
