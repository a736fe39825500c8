package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"ppf-service/internal/model"
)

// ErrVersionConflict is returned when a locked update loses the race against
// a concurrent writer of the same job row.
var ErrVersionConflict = errors.New("job version conflict")

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts the job, generating its sequential job number inside the
// same transaction so two concurrent creations cannot share a number.
func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if job.JobNo == "" {
			jobNo, err := nextJobNo(tx, time.Now())
			if err != nil {
				return err
			}
			job.JobNo = jobNo
		}
		return tx.Create(job).Error
	})
}

func nextJobNo(tx *gorm.DB, now time.Time) (string, error) {
	prefix := fmt.Sprintf("JOB-%d-", now.Year())

	var last model.Job
	err := tx.Where("job_no LIKE ?", prefix+"%").
		Order("job_no DESC").
		First(&last).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Sprintf("%s%03d", prefix, 1), nil
		}
		return "", err
	}

	seq, err := strconv.Atoi(strings.TrimPrefix(last.JobNo, prefix))
	if err != nil {
		return "", fmt.Errorf("malformed job number %q: %w", last.JobNo, err)
	}
	return fmt.Sprintf("%s%03d", prefix, seq+1), nil
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*model.Job, error) {
	var job model.Job
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

type JobListFilter struct {
	Status     *model.JobStatus
	Priority   *model.JobPriority
	AssignedTo *string
	Package    *string
}

func (r *JobRepository) List(ctx context.Context, filter JobListFilter) ([]model.Job, error) {
	var jobs []model.Job
	query := r.db.WithContext(ctx).Model(&model.Job{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.Package != nil {
		query = query.Where("package = ?", *filter.Package)
	}

	if err := query.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateLocked applies mutate to a freshly loaded job and writes it back
// guarded by the row's version counter. All stage mutations go through here
// so the stage list and the current-stage pointer are committed together; a
// lost race surfaces as ErrVersionConflict instead of a silent lost update.
func (r *JobRepository) UpdateLocked(ctx context.Context, id string, mutate func(*model.Job) error) (*model.Job, error) {
	var updated *model.Job
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job model.Job
		if err := tx.Where("id = ?", id).First(&job).Error; err != nil {
			return err
		}

		previousVersion := job.Version
		if err := mutate(&job); err != nil {
			return err
		}
		job.Version = previousVersion + 1

		res := tx.Model(&model.Job{}).
			Where("id = ? AND version = ?", job.ID, previousVersion).
			Select("*").
			Omit("id", "created_at").
			Updates(&job)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVersionConflict
		}

		updated = &job
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Job{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByPackage reports how many jobs reference a service package by name.
func (r *JobRepository) CountByPackage(ctx context.Context, packageName string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Job{}).
		Where("package = ?", packageName).
		Count(&count).Error
	return count, err
}
