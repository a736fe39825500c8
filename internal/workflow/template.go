package workflow

import (
	"time"

	"ppf-service/internal/model"
)

// StageCount is the fixed length of every job's stage pipeline.
const StageCount = 11

type StageTemplate struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Checklist []string `json:"checklist"`
}

// templates is the reference pipeline every job runs through. It is fixed at
// build time; stage ids are 1-based and match the job's stage list order.
var templates = []StageTemplate{
	{ID: 1, Name: "Vehicle Check-In", Checklist: []string{
		"Customer handover form signed",
		"Walk-around photos taken",
		"Existing damage documented",
	}},
	{ID: 2, Name: "Initial Inspection", Checklist: []string{
		"Paint condition assessed",
		"Panel gaps and trim checked",
		"Scope confirmed with advisor",
	}},
	{ID: 3, Name: "Wash & Decontamination", Checklist: []string{
		"Foam pre-wash completed",
		"Iron and tar decontamination done",
		"Clay bar treatment done",
	}},
	{ID: 4, Name: "Paint Correction", Checklist: []string{
		"Swirl marks polished out",
		"Panels inspected under lamp",
	}},
	{ID: 5, Name: "Surface Prep", Checklist: []string{
		"Panel degrease completed",
		"Alcohol wipe-down done",
		"Dust-free bay confirmed",
	}},
	{ID: 6, Name: "Film Cutting", Checklist: []string{
		"Pattern loaded on plotter",
		"Roll batch recorded",
		"Pieces labelled per panel",
	}},
	{ID: 7, Name: "Film Installation", Checklist: []string{
		"All panels wrapped",
		"Slip solution rinsed",
		"Squeegee passes completed",
	}},
	{ID: 8, Name: "Edge Wrapping & Detail", Checklist: []string{
		"Edges tucked and sealed",
		"Trim refitted",
	}},
	{ID: 9, Name: "Curing", Checklist: []string{
		"Heat treatment applied",
		"Cure time elapsed",
	}},
	{ID: 10, Name: "Quality Control", Checklist: []string{
		"Bubble and lift inspection passed",
		"Edge adhesion verified",
		"Finish inspected under lamp",
	}},
	{ID: 11, Name: "Final Detail & Delivery Prep", Checklist: []string{
		"Final wash completed",
		"Interior vacuumed",
		"Delivery photos taken",
	}},
}

// Templates returns a copy of the stage catalog.
func Templates() []StageTemplate {
	out := make([]StageTemplate, len(templates))
	copy(out, templates)
	return out
}

// NewStages builds a fresh stage list for a new job: stage 1 in progress,
// everything else pending, checklists unchecked.
func NewStages(now time.Time) model.StageList {
	stages := make(model.StageList, 0, StageCount)
	for _, tpl := range templates {
		checklist := make([]model.ChecklistItem, 0, len(tpl.Checklist))
		for _, item := range tpl.Checklist {
			checklist = append(checklist, model.ChecklistItem{Item: item})
		}
		stage := model.StageProgress{
			ID:        tpl.ID,
			Name:      tpl.Name,
			Status:    model.StageStatusPending,
			Checklist: checklist,
			Photos:    []string{},
		}
		if tpl.ID == 1 {
			stage.Status = model.StageStatusInProgress
			startedAt := now
			stage.StartedAt = &startedAt
		}
		stages = append(stages, stage)
	}
	return stages
}
