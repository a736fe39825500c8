package workflow_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"ppf-service/internal/model"
	"ppf-service/internal/workflow"
)

func newTestJob(now time.Time) *model.Job {
	job := &model.Job{
		ID:           uuid.New(),
		JobNo:        "JOB-2026-001",
		Status:       model.JobStatusActive,
		Priority:     model.JobPriorityNormal,
		CurrentStage: 1,
	}
	job.SetStageList(workflow.NewStages(now))
	return job
}

func checkAllItems(t *testing.T, job *model.Job, stageID int) {
	t.Helper()
	stages := job.StageList()
	for i := range stages[stageID-1].Checklist {
		stages[stageID-1].Checklist[i].Checked = true
	}
	job.SetStageList(stages)
}

func TestTemplatesShape(t *testing.T) {
	t.Parallel()

	tpls := workflow.Templates()
	if len(tpls) != workflow.StageCount {
		t.Fatalf("expected %d templates, got %d", workflow.StageCount, len(tpls))
	}
	for i, tpl := range tpls {
		if tpl.ID != i+1 {
			t.Fatalf("template %d has id %d", i, tpl.ID)
		}
		if tpl.Name == "" {
			t.Fatalf("template %d has empty name", tpl.ID)
		}
		if len(tpl.Checklist) == 0 {
			t.Fatalf("template %d has empty checklist", tpl.ID)
		}
	}
}

func TestNewStagesStartsFirstStage(t *testing.T) {
	t.Parallel()

	now := time.Now()
	job := newTestJob(now)

	if err := workflow.Validate(job); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	stages := job.StageList()
	if len(stages) != workflow.StageCount {
		t.Fatalf("expected %d stages, got %d", workflow.StageCount, len(stages))
	}
	if stages[0].Status != model.StageStatusInProgress {
		t.Fatalf("stage 1 status = %s", stages[0].Status)
	}
	if stages[0].StartedAt == nil || !stages[0].StartedAt.Equal(now) {
		t.Fatalf("stage 1 started_at = %v", stages[0].StartedAt)
	}
	for _, stage := range stages[1:] {
		if stage.Status != model.StageStatusPending {
			t.Fatalf("stage %d status = %s", stage.ID, stage.Status)
		}
	}
}

func TestAdvanceRejectsIncompleteChecklist(t *testing.T) {
	t.Parallel()

	now := time.Now()
	job := newTestJob(now)

	err := workflow.Advance(job, now)
	if !errors.Is(err, workflow.ErrChecklistIncomplete) {
		t.Fatalf("expected ErrChecklistIncomplete, got %v", err)
	}
	if job.CurrentStage != 1 {
		t.Fatalf("current stage moved to %d", job.CurrentStage)
	}
	if got := job.StageList()[0].Status; got != model.StageStatusInProgress {
		t.Fatalf("stage 1 status = %s", got)
	}
}

func TestAdvanceCompletesStageAndStartsNext(t *testing.T) {
	t.Parallel()

	created := time.Now()
	job := newTestJob(created)
	checkAllItems(t, job, 1)

	advancedAt := created.Add(time.Hour)
	if err := workflow.Advance(job, advancedAt); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if job.CurrentStage != 2 {
		t.Fatalf("current stage = %d", job.CurrentStage)
	}
	stages := job.StageList()
	if stages[0].Status != model.StageStatusCompleted {
		t.Fatalf("stage 1 status = %s", stages[0].Status)
	}
	if stages[0].CompletedAt == nil || !stages[0].CompletedAt.Equal(advancedAt) {
		t.Fatalf("stage 1 completed_at = %v", stages[0].CompletedAt)
	}
	if stages[1].Status != model.StageStatusInProgress {
		t.Fatalf("stage 2 status = %s", stages[1].Status)
	}
	if stages[1].StartedAt == nil || !stages[1].StartedAt.Equal(advancedAt) {
		t.Fatalf("stage 2 started_at = %v", stages[1].StartedAt)
	}
}

func TestAdvancePastLastStageIsBoundaryError(t *testing.T) {
	t.Parallel()

	now := time.Now()
	job := newTestJob(now)
	for stage := 1; stage < workflow.StageCount; stage++ {
		checkAllItems(t, job, stage)
		if err := workflow.Advance(job, now); err != nil {
			t.Fatalf("Advance from stage %d: %v", stage, err)
		}
	}
	if job.CurrentStage != workflow.StageCount {
		t.Fatalf("current stage = %d", job.CurrentStage)
	}

	checkAllItems(t, job, workflow.StageCount)
	before := job.StageList()
	err := workflow.Advance(job, now)
	if !errors.Is(err, workflow.ErrStageBoundary) {
		t.Fatalf("expected ErrStageBoundary, got %v", err)
	}
	after := job.StageList()
	for i := range before {
		if before[i].Status != after[i].Status {
			t.Fatalf("stage %d status changed across failed advance", i+1)
		}
	}
}

func TestRegressAtFirstStageIsBoundaryError(t *testing.T) {
	t.Parallel()

	now := time.Now()
	job := newTestJob(now)

	if err := workflow.Regress(job, now); !errors.Is(err, workflow.ErrStageBoundary) {
		t.Fatalf("expected ErrStageBoundary, got %v", err)
	}
}

func TestAdvanceThenRegressRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Now()
	job := newTestJob(now)
	checkAllItems(t, job, 1)

	stages := job.StageList()
	stages[0].Notes = "stone chips on bonnet"
	stages[0].Photos = []string{"https://cdn.example/chips.jpg"}
	job.SetStageList(stages)

	statusesBefore := make([]model.StageStatus, workflow.StageCount)
	for i, s := range job.StageList() {
		statusesBefore[i] = s.Status
	}

	if err := workflow.Advance(job, now.Add(time.Minute)); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if err := workflow.Regress(job, now.Add(2*time.Minute)); err != nil {
		t.Fatalf("Regress: %v", err)
	}

	if job.CurrentStage != 1 {
		t.Fatalf("current stage = %d", job.CurrentStage)
	}
	after := job.StageList()
	for i, s := range after {
		if s.Status != statusesBefore[i] {
			t.Fatalf("stage %d status = %s, want %s", i+1, s.Status, statusesBefore[i])
		}
	}
	if after[0].Notes != "stone chips on bonnet" {
		t.Fatalf("notes not preserved: %q", after[0].Notes)
	}
	if len(after[0].Photos) != 1 {
		t.Fatalf("photos not preserved: %v", after[0].Photos)
	}
	if !after[0].Checklist[0].Checked {
		t.Fatal("checklist state not preserved")
	}
	if after[0].CompletedAt != nil {
		t.Fatalf("reopened stage kept completed_at %v", after[0].CompletedAt)
	}
	if after[1].StartedAt != nil {
		t.Fatalf("pending stage kept started_at %v", after[1].StartedAt)
	}
}

func TestDeliverCompletesLastStage(t *testing.T) {
	t.Parallel()

	now := time.Now()
	job := newTestJob(now)
	for stage := 1; stage < workflow.StageCount; stage++ {
		checkAllItems(t, job, stage)
		if err := workflow.Advance(job, now); err != nil {
			t.Fatalf("Advance from stage %d: %v", stage, err)
		}
	}

	deliveredAt := now.Add(time.Hour)
	if err := workflow.Deliver(job, deliveredAt); err != nil {
		t.Fatalf("Deliver: %v", err)
	}

	if job.Status != model.JobStatusDelivered {
		t.Fatalf("status = %s", job.Status)
	}
	last := job.StageList()[workflow.StageCount-1]
	if last.Status != model.StageStatusCompleted {
		t.Fatalf("last stage status = %s", last.Status)
	}
	if last.CompletedAt == nil || !last.CompletedAt.Equal(deliveredAt) {
		t.Fatalf("last stage completed_at = %v", last.CompletedAt)
	}
}

func TestDeliverTwiceKeepsFirstCompletionTime(t *testing.T) {
	t.Parallel()

	now := time.Now()
	job := newTestJob(now)

	if err := workflow.Deliver(job, now); err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	first := job.StageList()[workflow.StageCount-1].CompletedAt

	err := workflow.Deliver(job, now.Add(time.Hour))
	if !errors.Is(err, workflow.ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}
	if job.Status != model.JobStatusDelivered {
		t.Fatalf("status = %s", job.Status)
	}
	second := job.StageList()[workflow.StageCount-1].CompletedAt
	if second == nil || !second.Equal(*first) {
		t.Fatalf("completed_at changed: %v -> %v", first, second)
	}
}

func TestAdvanceRefusedWhileOnHold(t *testing.T) {
	t.Parallel()

	now := time.Now()
	job := newTestJob(now)
	checkAllItems(t, job, 1)
	job.Status = model.JobStatusHold

	if err := workflow.Advance(job, now); !errors.Is(err, workflow.ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}
}

func TestUpdateStageMergesFieldsOnly(t *testing.T) {
	t.Parallel()

	now := time.Now()
	job := newTestJob(now)

	checklist := job.StageList()[2].Checklist
	patched := make([]model.ChecklistItem, len(checklist))
	copy(patched, checklist)
	patched[0].Checked = true

	notes := "use ceramic shampoo"
	assignee := uuid.New()
	err := workflow.UpdateStage(job, 3, workflow.StagePatch{
		Checklist:  patched,
		Notes:      &notes,
		Photos:     []string{"https://cdn.example/wash.jpg"},
		AssignedTo: &assignee,
	})
	if err != nil {
		t.Fatalf("UpdateStage: %v", err)
	}

	stage := job.StageList()[2]
	if !stage.Checklist[0].Checked {
		t.Fatal("checklist toggle not applied")
	}
	if stage.Notes != notes {
		t.Fatalf("notes = %q", stage.Notes)
	}
	if stage.Status != model.StageStatusPending {
		t.Fatalf("status changed to %s", stage.Status)
	}
	if stage.StartedAt != nil {
		t.Fatal("started_at set by field update")
	}
	if job.CurrentStage != 1 {
		t.Fatalf("current stage moved to %d", job.CurrentStage)
	}
	if stage.AssignedTo == nil || *stage.AssignedTo != assignee {
		t.Fatalf("assignee = %v", stage.AssignedTo)
	}
}

func TestUpdateStageUnknownStage(t *testing.T) {
	t.Parallel()

	job := newTestJob(time.Now())
	for _, stageID := range []int{0, 12, -1} {
		if err := workflow.UpdateStage(job, stageID, workflow.StagePatch{}); !errors.Is(err, workflow.ErrStageNotFound) {
			t.Fatalf("stage %d: expected ErrStageNotFound, got %v", stageID, err)
		}
	}
}

func TestMarkAndClearStageIssue(t *testing.T) {
	t.Parallel()

	now := time.Now()
	job := newTestJob(now)

	if err := workflow.MarkStageIssue(job, 1); err != nil {
		t.Fatalf("MarkStageIssue: %v", err)
	}
	if got := job.StageList()[0].Status; got != model.StageStatusIssue {
		t.Fatalf("stage 1 status = %s", got)
	}

	if err := workflow.ClearStageIssue(job, 1); err != nil {
		t.Fatalf("ClearStageIssue: %v", err)
	}
	if got := job.StageList()[0].Status; got != model.StageStatusInProgress {
		t.Fatalf("stage 1 status after clear = %s", got)
	}
}

func TestValidateRejectsCorruptStageList(t *testing.T) {
	t.Parallel()

	job := newTestJob(time.Now())
	stages := job.StageList()
	job.SetStageList(stages[:5])

	if err := workflow.Validate(job); !errors.Is(err, workflow.ErrCorruptStageList) {
		t.Fatalf("expected ErrCorruptStageList, got %v", err)
	}
}
