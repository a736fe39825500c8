package repository

import (
	"context"

	"gorm.io/gorm"

	"ppf-service/internal/model"
)

type IssueRepository struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

func (r *IssueRepository) Create(ctx context.Context, issue *model.JobIssue) error {
	return r.db.WithContext(ctx).Create(issue).Error
}

func (r *IssueRepository) GetByID(ctx context.Context, id string) (*model.JobIssue, error) {
	var issue model.JobIssue
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&issue).Error
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

func (r *IssueRepository) ListByJobID(ctx context.Context, jobID string) ([]model.JobIssue, error) {
	var issues []model.JobIssue
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&issues).Error
	if err != nil {
		return nil, err
	}
	return issues, nil
}

func (r *IssueRepository) Update(ctx context.Context, issue *model.JobIssue) error {
	return r.db.WithContext(ctx).Save(issue).Error
}

func (r *IssueRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.JobIssue{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
