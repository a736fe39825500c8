package workflow

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ppf-service/internal/model"
)

var (
	// ErrChecklistIncomplete is returned by Advance when the current stage
	// still has unchecked checklist items.
	ErrChecklistIncomplete = errors.New("stage checklist incomplete")
	// ErrStageBoundary is returned when advancing past the last stage or
	// regressing before the first.
	ErrStageBoundary = errors.New("stage boundary reached")
	// ErrInvalidStateTransition is returned when the job's status does not
	// allow the requested operation.
	ErrInvalidStateTransition = errors.New("invalid state transition")
	// ErrStageNotFound is returned when a stage id is outside 1..StageCount.
	ErrStageNotFound = errors.New("stage not found")
	// ErrCorruptStageList is returned when a job's stage list does not hold
	// exactly StageCount entries with ids 1..StageCount in order.
	ErrCorruptStageList = errors.New("corrupt stage list")
)

// Validate checks the structural invariants of a job's stage list: exactly
// StageCount entries with ids 1..StageCount in order, and a current-stage
// pointer within bounds.
func Validate(job *model.Job) error {
	stages := job.StageList()
	if len(stages) != StageCount {
		return fmt.Errorf("%w: %d entries", ErrCorruptStageList, len(stages))
	}
	for i, stage := range stages {
		if stage.ID != i+1 {
			return fmt.Errorf("%w: id %d at position %d", ErrCorruptStageList, stage.ID, i)
		}
	}
	if job.CurrentStage < 1 || job.CurrentStage > StageCount {
		return fmt.Errorf("%w: current stage %d", ErrCorruptStageList, job.CurrentStage)
	}
	return nil
}

// Advance completes the current stage and starts the next one. The current
// stage's checklist must be fully checked. Advancing past the last stage is
// a boundary error; finishing the pipeline goes through Deliver instead.
func Advance(job *model.Job, now time.Time) error {
	if job.Status != model.JobStatusActive {
		return ErrInvalidStateTransition
	}
	if err := Validate(job); err != nil {
		return err
	}
	if job.CurrentStage >= StageCount {
		return ErrStageBoundary
	}

	stages := job.StageList()
	current := &stages[job.CurrentStage-1]
	for _, item := range current.Checklist {
		if !item.Checked {
			return fmt.Errorf("%w: %q", ErrChecklistIncomplete, item.Item)
		}
	}

	current.Status = model.StageStatusCompleted
	completedAt := now
	current.CompletedAt = &completedAt

	job.CurrentStage++
	next := &stages[job.CurrentStage-1]
	next.Status = model.StageStatusInProgress
	startedAt := now
	next.StartedAt = &startedAt

	job.SetStageList(stages)
	return nil
}

// Regress pushes the current stage back to pending and reopens the previous
// one. Timestamps of the touched stages are cleared so stage durations stay
// truthful after a rework cycle; checklist state, notes, photos and the
// assignee are preserved.
func Regress(job *model.Job, now time.Time) error {
	if job.Status != model.JobStatusActive {
		return ErrInvalidStateTransition
	}
	if err := Validate(job); err != nil {
		return err
	}
	if job.CurrentStage <= 1 {
		return ErrStageBoundary
	}

	stages := job.StageList()
	current := &stages[job.CurrentStage-1]
	current.Status = model.StageStatusPending
	current.StartedAt = nil

	job.CurrentStage--
	previous := &stages[job.CurrentStage-1]
	previous.Status = model.StageStatusInProgress
	previous.CompletedAt = nil

	job.SetStageList(stages)
	return nil
}

// Deliver finalizes the job: the last stage is forced to completed and the
// job becomes DELIVERED. The last stage's checklist is deliberately not
// gated; delivery is the counter's escape hatch when a customer collects
// early. Delivering a terminal job is refused, which keeps the first
// delivery's completion timestamp untouched.
func Deliver(job *model.Job, now time.Time) error {
	if job.Status == model.JobStatusDelivered || job.Status == model.JobStatusCancelled {
		return ErrInvalidStateTransition
	}
	if err := Validate(job); err != nil {
		return err
	}

	stages := job.StageList()
	last := &stages[StageCount-1]
	last.Status = model.StageStatusCompleted
	if last.CompletedAt == nil {
		completedAt := now
		last.CompletedAt = &completedAt
	}

	job.CurrentStage = StageCount
	job.Status = model.JobStatusDelivered
	job.SetStageList(stages)
	return nil
}

// StagePatch is the set of stage fields that can be edited without moving
// the pipeline. Nil fields are left untouched.
type StagePatch struct {
	Checklist  []model.ChecklistItem
	Notes      *string
	Photos     []string
	AssignedTo *uuid.UUID
}

// UpdateStage merges patch data into the addressed stage. Status, the
// current-stage pointer and timestamps are never changed here.
func UpdateStage(job *model.Job, stageID int, patch StagePatch) error {
	if err := Validate(job); err != nil {
		return err
	}
	if stageID < 1 || stageID > StageCount {
		return ErrStageNotFound
	}

	stages := job.StageList()
	stage := &stages[stageID-1]

	if patch.Checklist != nil {
		if len(patch.Checklist) != len(stage.Checklist) {
			return fmt.Errorf("%w: checklist must keep %d items", ErrStageNotFound, len(stage.Checklist))
		}
		for i := range stage.Checklist {
			if patch.Checklist[i].Item != stage.Checklist[i].Item {
				return fmt.Errorf("%w: checklist item %d renamed", ErrStageNotFound, i)
			}
			stage.Checklist[i].Checked = patch.Checklist[i].Checked
		}
	}
	if patch.Notes != nil {
		stage.Notes = *patch.Notes
	}
	if patch.Photos != nil {
		stage.Photos = patch.Photos
	}
	if patch.AssignedTo != nil {
		stage.AssignedTo = patch.AssignedTo
	}

	job.SetStageList(stages)
	return nil
}

// MarkStageIssue flips a stage to ISSUE status; SetStageList callers restore
// it through ClearStageIssue once the defect is resolved.
func MarkStageIssue(job *model.Job, stageID int) error {
	if err := Validate(job); err != nil {
		return err
	}
	if stageID < 1 || stageID > StageCount {
		return ErrStageNotFound
	}
	stages := job.StageList()
	stages[stageID-1].Status = model.StageStatusIssue
	job.SetStageList(stages)
	return nil
}

// ClearStageIssue restores the natural status of a stage that was flagged
// with an issue: in progress if it is the current stage, completed if it has
// a completion timestamp, pending otherwise.
func ClearStageIssue(job *model.Job, stageID int) error {
	if err := Validate(job); err != nil {
		return err
	}
	if stageID < 1 || stageID > StageCount {
		return ErrStageNotFound
	}
	stages := job.StageList()
	stage := &stages[stageID-1]
	switch {
	case stageID == job.CurrentStage:
		stage.Status = model.StageStatusInProgress
	case stage.CompletedAt != nil:
		stage.Status = model.StageStatusCompleted
	default:
		stage.Status = model.StageStatusPending
	}
	job.SetStageList(stages)
	return nil
}
