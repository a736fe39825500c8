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

type IssueService struct {
	issueRepo *repository.IssueRepository
	jobRepo   *repository.JobRepository
	now       func() time.Time
}

func NewIssueService(issueRepo *repository.IssueRepository, jobRepo *repository.JobRepository) *IssueService {
	return &IssueService{
		issueRepo: issueRepo,
		jobRepo:   jobRepo,
		now:       time.Now,
	}
}

type CreateIssueInput struct {
	JobID       string
	StageID     int
	IssueType   string
	Description string
	Location    *string
	Severity    string
	MediaURLs   []string
}

// Create records a defect against one stage of a job, flags that stage as
// ISSUE and points the job at the new defect.
func (s *IssueService) Create(ctx context.Context, principal model.Principal, input CreateIssueInput) (*model.JobIssue, error) {
	if input.IssueType == "" || input.Description == "" {
		return nil, fmt.Errorf("%w: issue type and description are required", ErrInvalidInput)
	}
	severity := model.IssueSeverity(input.Severity)
	switch severity {
	case model.IssueSeverityLow, model.IssueSeverityMedium, model.IssueSeverityHigh:
	default:
		return nil, fmt.Errorf("%w: unknown severity %q", ErrInvalidInput, input.Severity)
	}
	if input.StageID < 1 || input.StageID > workflow.StageCount {
		return nil, fmt.Errorf("%w: stage id out of range", ErrInvalidInput)
	}

	job, err := s.jobRepo.GetByID(ctx, input.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	issue := &model.JobIssue{
		ID:          uuid.New(),
		JobID:       job.ID,
		StageID:     input.StageID,
		IssueType:   input.IssueType,
		Description: input.Description,
		Location:    input.Location,
		Severity:    severity,
		Status:      model.IssueStatusOpen,
		ReportedBy:  principal.UserID,
		MediaURLs:   input.MediaURLs,
	}
	if err := s.issueRepo.Create(ctx, issue); err != nil {
		return nil, err
	}

	_, err = s.jobRepo.UpdateLocked(ctx, input.JobID, func(job *model.Job) error {
		if err := workflow.MarkStageIssue(job, input.StageID); err != nil {
			return err
		}
		issueID := issue.ID
		job.ActiveIssueID = &issueID
		return nil
	})
	if err != nil {
		return nil, translateJobError(err)
	}

	return issue, nil
}

func (s *IssueService) ListByJob(ctx context.Context, jobID string) ([]model.JobIssue, error) {
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.issueRepo.ListByJobID(ctx, jobID)
}

type UpdateIssueInput struct {
	Status          *string
	Description     *string
	Severity        *string
	ResolutionNotes *string
	MediaURLs       []string
}

// Update edits an issue. Resolving it restores the affected stage's status
// and clears the job's active-issue pointer.
func (s *IssueService) Update(ctx context.Context, principal model.Principal, id string, input UpdateIssueInput) (*model.JobIssue, error) {
	issue, err := s.issueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	resolving := false
	if input.Status != nil {
		status := model.IssueStatus(*input.Status)
		switch status {
		case model.IssueStatusOpen:
		case model.IssueStatusResolved:
			resolving = issue.Status != model.IssueStatusResolved
		default:
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *input.Status)
		}
		issue.Status = status
	}
	if input.Description != nil {
		issue.Description = *input.Description
	}
	if input.Severity != nil {
		severity := model.IssueSeverity(*input.Severity)
		switch severity {
		case model.IssueSeverityLow, model.IssueSeverityMedium, model.IssueSeverityHigh:
			issue.Severity = severity
		default:
			return nil, fmt.Errorf("%w: unknown severity %q", ErrInvalidInput, *input.Severity)
		}
	}
	if input.ResolutionNotes != nil {
		issue.ResolutionNotes = input.ResolutionNotes
	}
	if input.MediaURLs != nil {
		issue.MediaURLs = input.MediaURLs
	}
	if resolving {
		resolvedBy := principal.UserID
		resolvedAt := s.now()
		issue.ResolvedBy = &resolvedBy
		issue.ResolvedAt = &resolvedAt
	}

	if err := s.issueRepo.Update(ctx, issue); err != nil {
		return nil, err
	}

	if resolving {
		_, err = s.jobRepo.UpdateLocked(ctx, issue.JobID.String(), func(job *model.Job) error {
			if err := workflow.ClearStageIssue(job, issue.StageID); err != nil {
				return err
			}
			if job.ActiveIssueID != nil && *job.ActiveIssueID == issue.ID {
				job.ActiveIssueID = nil
			}
			return nil
		})
		if err != nil {
			return nil, translateJobError(err)
		}
	}

	return issue, nil
}

func (s *IssueService) Delete(ctx context.Context, id string) error {
	issue, err := s.issueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.issueRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if issue.Status == model.IssueStatusOpen {
		_, err = s.jobRepo.UpdateLocked(ctx, issue.JobID.String(), func(job *model.Job) error {
			if err := workflow.ClearStageIssue(job, issue.StageID); err != nil {
				return err
			}
			if job.ActiveIssueID != nil && *job.ActiveIssueID == issue.ID {
				job.ActiveIssueID = nil
			}
			return nil
		})
		if err != nil {
			return translateJobError(err)
		}
	}
	return nil
}
