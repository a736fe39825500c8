package repository

import (
	"context"

	"gorm.io/gorm"

	"ppf-service/internal/model"
)

type UsageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

// Create appends the ledger entry and moves the roll's used-length balance
// in one transaction. The balance update is guarded by the previously read
// value, so two concurrent entries against the same roll cannot overdraw it.
func (r *UsageRepository) Create(ctx context.Context, usage *model.JobPpfUsage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var roll model.PpfRoll
		if err := tx.Where("id = ?", usage.RollID).First(&roll).Error; err != nil {
			return err
		}
		if roll.Status != model.RollStatusActive {
			return ErrRollNotActive
		}
		if usage.LengthUsedMm > roll.RemainingLengthMm() {
			return ErrInsufficientRoll
		}

		newUsed := roll.UsedLengthMm + usage.LengthUsedMm
		newStatus := roll.Status
		if newUsed >= roll.TotalLengthMm {
			newStatus = model.RollStatusDepleted
		}

		res := tx.Model(&model.PpfRoll{}).
			Where("id = ? AND used_length_mm = ?", roll.ID, roll.UsedLengthMm).
			Updates(map[string]interface{}{
				"used_length_mm": newUsed,
				"status":         newStatus,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientRoll
		}

		return tx.Create(usage).Error
	})
}

func (r *UsageRepository) ListByJobID(ctx context.Context, jobID string) ([]model.JobPpfUsage, error) {
	var usages []model.JobPpfUsage
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&usages).Error
	if err != nil {
		return nil, err
	}
	return usages, nil
}
