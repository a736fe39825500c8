package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ppf-service/internal/model"
)

var (
	// ErrRollNotActive is returned when consuming from a depleted or
	// disposed roll.
	ErrRollNotActive = errors.New("roll is not active")
	// ErrInsufficientRoll is returned when a consumption exceeds the roll's
	// remaining length.
	ErrInsufficientRoll = errors.New("insufficient roll length")
)

type RollRepository struct {
	db *gorm.DB
}

func NewRollRepository(db *gorm.DB) *RollRepository {
	return &RollRepository{db: db}
}

func (r *RollRepository) Create(ctx context.Context, roll *model.PpfRoll) error {
	return r.db.WithContext(ctx).Create(roll).Error
}

func (r *RollRepository) GetByID(ctx context.Context, id string) (*model.PpfRoll, error) {
	var roll model.PpfRoll
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&roll).Error
	if err != nil {
		return nil, err
	}
	return &roll, nil
}

func (r *RollRepository) GetByRollID(ctx context.Context, rollID string) (*model.PpfRoll, error) {
	var roll model.PpfRoll
	err := r.db.WithContext(ctx).Where("roll_id = ?", rollID).First(&roll).Error
	if err != nil {
		return nil, err
	}
	return &roll, nil
}

type RollListFilter struct {
	Status    *model.RollStatus
	ProductID *string
}

func (r *RollRepository) List(ctx context.Context, filter RollListFilter) ([]model.PpfRoll, error) {
	var rolls []model.PpfRoll
	query := r.db.WithContext(ctx).Model(&model.PpfRoll{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}

	if err := query.Order("created_at DESC").Find(&rolls).Error; err != nil {
		return nil, err
	}
	return rolls, nil
}

func (r *RollRepository) Update(ctx context.Context, roll *model.PpfRoll) error {
	return r.db.WithContext(ctx).Save(roll).Error
}

func (r *RollRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PpfRoll{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
