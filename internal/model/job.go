package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobStatus string

const (
	JobStatusActive    JobStatus = "ACTIVE"
	JobStatusHold      JobStatus = "HOLD"
	JobStatusDelivered JobStatus = "DELIVERED"
	JobStatusCancelled JobStatus = "CANCELLED"
)

type JobPriority string

const (
	JobPriorityNormal JobPriority = "NORMAL"
	JobPriorityHigh   JobPriority = "HIGH"
)

type StageStatus string

const (
	StageStatusPending    StageStatus = "PENDING"
	StageStatusInProgress StageStatus = "IN_PROGRESS"
	StageStatusCompleted  StageStatus = "COMPLETED"
	StageStatusIssue      StageStatus = "ISSUE"
)

type ChecklistItem struct {
	Item    string `json:"item"`
	Checked bool   `json:"checked"`
}

// StageProgress is one entry of a job's embedded stage list. It has no
// identity of its own; the whole list is stored as a single jsonb value on
// the job row so that stage mutations and the current-stage pointer are
// always written together.
type StageProgress struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Status      StageStatus     `json:"status"`
	StartedAt   *time.Time      `json:"started_at,omitempty"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	AssignedTo  *uuid.UUID      `json:"assigned_to,omitempty"`
	Checklist   []ChecklistItem `json:"checklist"`
	Notes       string          `json:"notes,omitempty"`
	Photos      []string        `json:"photos"`
}

type StageList []StageProgress

type Job struct {
	ID            uuid.UUID                        `gorm:"type:uuid;primaryKey" json:"id"`
	JobNo         string                           `gorm:"type:varchar(20);not null;uniqueIndex" json:"job_no"`
	CustomerName  string                           `gorm:"type:varchar(120);not null" json:"customer_name"`
	CustomerPhone string                           `gorm:"type:varchar(30);not null" json:"customer_phone"`
	VehicleBrand  string                           `gorm:"type:varchar(60);not null" json:"vehicle_brand"`
	VehicleModel  string                           `gorm:"type:varchar(60);not null" json:"vehicle_model"`
	VehicleYear   int                              `gorm:"not null" json:"vehicle_year"`
	VehicleColor  string                           `gorm:"type:varchar(40)" json:"vehicle_color"`
	RegNo         string                           `gorm:"type:varchar(20);not null;index" json:"reg_no"`
	VIN           *string                          `gorm:"type:varchar(17)" json:"vin,omitempty"`
	Package       string                           `gorm:"type:varchar(80);not null;index" json:"package"`
	Status        JobStatus                        `gorm:"type:varchar(20);not null;default:ACTIVE" json:"status"`
	Priority      JobPriority                      `gorm:"type:varchar(20);not null;default:NORMAL" json:"priority"`
	PromisedDate  time.Time                        `gorm:"not null" json:"promised_date"`
	CurrentStage  int                              `gorm:"not null;default:1" json:"current_stage"`
	Stages        datatypes.JSONType[StageList]    `gorm:"type:jsonb;not null" json:"stages"`
	ActiveIssueID *uuid.UUID                       `gorm:"type:uuid" json:"active_issue_id,omitempty"`
	AssignedTo    *uuid.UUID                       `gorm:"type:uuid;index" json:"assigned_to,omitempty"`
	CreatedBy     uuid.UUID                        `gorm:"type:uuid;not null" json:"created_by"`
	Version       int                              `gorm:"not null;default:1" json:"-"`
	CreatedAt     time.Time                        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time                        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

func (j *Job) StageList() StageList {
	return j.Stages.Data()
}

func (j *Job) SetStageList(stages StageList) {
	j.Stages = datatypes.NewJSONType(stages)
}
