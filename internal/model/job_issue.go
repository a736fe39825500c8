package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type IssueStatus string

const (
	IssueStatusOpen     IssueStatus = "OPEN"
	IssueStatusResolved IssueStatus = "RESOLVED"
)

type IssueSeverity string

const (
	IssueSeverityLow    IssueSeverity = "LOW"
	IssueSeverityMedium IssueSeverity = "MEDIUM"
	IssueSeverityHigh   IssueSeverity = "HIGH"
)

type JobIssue struct {
	ID              uuid.UUID                     `gorm:"type:uuid;primaryKey" json:"id"`
	JobID           uuid.UUID                     `gorm:"type:uuid;not null;index" json:"job_id"`
	StageID         int                           `gorm:"not null" json:"stage_id"`
	IssueType       string                        `gorm:"type:varchar(60);not null" json:"issue_type"`
	Description     string                        `gorm:"type:text;not null" json:"description"`
	Location        *string                       `gorm:"type:varchar(120)" json:"location,omitempty"`
	Severity        IssueSeverity                 `gorm:"type:varchar(20);not null" json:"severity"`
	Status          IssueStatus                   `gorm:"type:varchar(20);not null;default:OPEN" json:"status"`
	ReportedBy      uuid.UUID                     `gorm:"type:uuid;not null" json:"reported_by"`
	ResolvedBy      *uuid.UUID                    `gorm:"type:uuid" json:"resolved_by,omitempty"`
	ResolvedAt      *time.Time                    `json:"resolved_at,omitempty"`
	ResolutionNotes *string                       `gorm:"type:text" json:"resolution_notes,omitempty"`
	MediaURLs       datatypes.JSONSlice[string]   `gorm:"type:jsonb" json:"media_urls"`
	CreatedAt       time.Time                     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time                     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (JobIssue) TableName() string {
	return "job_issues"
}

func (i *JobIssue) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
