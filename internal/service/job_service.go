package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ppf-service/internal/model"
	"ppf-service/internal/repository"
	"ppf-service/internal/workflow"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

type JobService struct {
	jobRepo     *repository.JobRepository
	packageRepo *repository.PackageRepository
	now         func() time.Time
}

func NewJobService(jobRepo *repository.JobRepository, packageRepo *repository.PackageRepository) *JobService {
	return &JobService{
		jobRepo:     jobRepo,
		packageRepo: packageRepo,
		now:         time.Now,
	}
}

type CreateJobInput struct {
	CustomerName  string
	CustomerPhone string
	VehicleBrand  string
	VehicleModel  string
	VehicleYear   int
	VehicleColor  string
	RegNo         string
	VIN           *string
	Package       string
	Priority      string
	PromisedDate  string
}

func (s *JobService) Create(ctx context.Context, principal model.Principal, input CreateJobInput) (*model.Job, error) {
	if input.CustomerName == "" || input.CustomerPhone == "" {
		return nil, fmt.Errorf("%w: customer name and phone are required", ErrInvalidInput)
	}
	if input.VehicleBrand == "" || input.VehicleModel == "" || input.RegNo == "" {
		return nil, fmt.Errorf("%w: vehicle brand, model and registration are required", ErrInvalidInput)
	}
	if input.VehicleYear < 1950 || input.VehicleYear > s.now().Year()+1 {
		return nil, fmt.Errorf("%w: vehicle year out of range", ErrInvalidInput)
	}

	promisedDate, err := time.Parse(time.RFC3339, input.PromisedDate)
	if err != nil {
		return nil, fmt.Errorf("%w: promised_date must be RFC3339", ErrInvalidInput)
	}

	priority := model.JobPriorityNormal
	if input.Priority != "" {
		priority = model.JobPriority(input.Priority)
		if priority != model.JobPriorityNormal && priority != model.JobPriorityHigh {
			return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, input.Priority)
		}
	}

	if _, err := s.packageRepo.GetByName(ctx, input.Package); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown package %q", ErrInvalidInput, input.Package)
		}
		return nil, err
	}

	now := s.now()
	job := &model.Job{
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		VehicleBrand:  input.VehicleBrand,
		VehicleModel:  input.VehicleModel,
		VehicleYear:   input.VehicleYear,
		VehicleColor:  input.VehicleColor,
		RegNo:         input.RegNo,
		VIN:           input.VIN,
		Package:       input.Package,
		Status:        model.JobStatusActive,
		Priority:      priority,
		PromisedDate:  promisedDate,
		CurrentStage:  1,
		CreatedBy:     principal.UserID,
	}
	job.SetStageList(workflow.NewStages(now))

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*model.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

func (s *JobService) List(ctx context.Context, filter repository.JobListFilter) ([]model.Job, error) {
	return s.jobRepo.List(ctx, filter)
}

// JobSummary is the list-view projection: everything the dashboard shows
// without the full stage detail.
type JobSummary struct {
	ID               uuid.UUID         `json:"id"`
	JobNo            string            `json:"job_no"`
	CustomerName     string            `json:"customer_name"`
	VehicleBrand     string            `json:"vehicle_brand"`
	VehicleModel     string            `json:"vehicle_model"`
	RegNo            string            `json:"reg_no"`
	Package          string            `json:"package"`
	Status           model.JobStatus   `json:"status"`
	Priority         model.JobPriority `json:"priority"`
	PromisedDate     time.Time         `json:"promised_date"`
	CurrentStage     int               `json:"current_stage"`
	CurrentStageName string            `json:"current_stage_name"`
	CompletedStages  int               `json:"completed_stages"`
	ActiveIssueID    *uuid.UUID        `json:"active_issue_id,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

func (s *JobService) Summary(ctx context.Context, filter repository.JobListFilter) ([]JobSummary, error) {
	jobs, err := s.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]JobSummary, 0, len(jobs))
	for _, job := range jobs {
		summary := JobSummary{
			ID:            job.ID,
			JobNo:         job.JobNo,
			CustomerName:  job.CustomerName,
			VehicleBrand:  job.VehicleBrand,
			VehicleModel:  job.VehicleModel,
			RegNo:         job.RegNo,
			Package:       job.Package,
			Status:        job.Status,
			Priority:      job.Priority,
			PromisedDate:  job.PromisedDate,
			CurrentStage:  job.CurrentStage,
			ActiveIssueID: job.ActiveIssueID,
			CreatedAt:     job.CreatedAt,
		}
		for _, stage := range job.StageList() {
			if stage.ID == job.CurrentStage {
				summary.CurrentStageName = stage.Name
			}
			if stage.Status == model.StageStatusCompleted {
				summary.CompletedStages++
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

type PatchJobInput struct {
	CustomerName  *string
	CustomerPhone *string
	VehicleColor  *string
	Priority      *string
	PromisedDate  *string
	Status        *string
	AssignedTo    *uuid.UUID
}

// Patch edits job header fields. Status changes are restricted to the
// hold/resume/cancel moves; delivery goes through Deliver.
func (s *JobService) Patch(ctx context.Context, id string, input PatchJobInput) (*model.Job, error) {
	job, err := s.jobRepo.UpdateLocked(ctx, id, func(job *model.Job) error {
		if input.CustomerName != nil {
			if *input.CustomerName == "" {
				return fmt.Errorf("%w: customer name cannot be empty", ErrInvalidInput)
			}
			job.CustomerName = *input.CustomerName
		}
		if input.CustomerPhone != nil {
			job.CustomerPhone = *input.CustomerPhone
		}
		if input.VehicleColor != nil {
			job.VehicleColor = *input.VehicleColor
		}
		if input.Priority != nil {
			priority := model.JobPriority(*input.Priority)
			if priority != model.JobPriorityNormal && priority != model.JobPriorityHigh {
				return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, *input.Priority)
			}
			job.Priority = priority
		}
		if input.PromisedDate != nil {
			promisedDate, err := time.Parse(time.RFC3339, *input.PromisedDate)
			if err != nil {
				return fmt.Errorf("%w: promised_date must be RFC3339", ErrInvalidInput)
			}
			job.PromisedDate = promisedDate
		}
		if input.AssignedTo != nil {
			job.AssignedTo = input.AssignedTo
		}
		if input.Status != nil {
			if err := applyStatusChange(job, model.JobStatus(*input.Status)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, translateJobError(err)
	}
	return job, nil
}

func applyStatusChange(job *model.Job, target model.JobStatus) error {
	if job.Status == model.JobStatusDelivered || job.Status == model.JobStatusCancelled {
		return fmt.Errorf("%w: job is %s", workflow.ErrInvalidStateTransition, job.Status)
	}
	switch target {
	case model.JobStatusActive, model.JobStatusHold, model.JobStatusCancelled:
		job.Status = target
		return nil
	case model.JobStatusDelivered:
		return fmt.Errorf("%w: use the deliver operation", workflow.ErrInvalidStateTransition)
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, target)
	}
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Advance moves the job one stage forward under the row's version guard.
func (s *JobService) Advance(ctx context.Context, id string) (*model.Job, error) {
	job, err := s.jobRepo.UpdateLocked(ctx, id, func(job *model.Job) error {
		return workflow.Advance(job, s.now())
	})
	if err != nil {
		return nil, translateJobError(err)
	}
	return job, nil
}

func (s *JobService) Regress(ctx context.Context, id string) (*model.Job, error) {
	job, err := s.jobRepo.UpdateLocked(ctx, id, func(job *model.Job) error {
		return workflow.Regress(job, s.now())
	})
	if err != nil {
		return nil, translateJobError(err)
	}
	return job, nil
}

func (s *JobService) Deliver(ctx context.Context, id string) (*model.Job, error) {
	job, err := s.jobRepo.UpdateLocked(ctx, id, func(job *model.Job) error {
		return workflow.Deliver(job, s.now())
	})
	if err != nil {
		return nil, translateJobError(err)
	}
	return job, nil
}

func (s *JobService) UpdateStage(ctx context.Context, id string, stageID int, patch workflow.StagePatch) (*model.Job, error) {
	job, err := s.jobRepo.UpdateLocked(ctx, id, func(job *model.Job) error {
		return workflow.UpdateStage(job, stageID, patch)
	})
	if err != nil {
		return nil, translateJobError(err)
	}
	return job, nil
}

func translateJobError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrVersionConflict):
		return fmt.Errorf("%w: job was modified concurrently", ErrConflict)
	default:
		return err
	}
}
