package repository

import (
	"context"

	"gorm.io/gorm"

	"ppf-service/internal/model"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) Create(ctx context.Context, pkg *model.ServicePackage) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *PackageRepository) GetByID(ctx context.Context, id string) (*model.ServicePackage, error) {
	var pkg model.ServicePackage
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&pkg).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepository) GetByName(ctx context.Context, name string) (*model.ServicePackage, error) {
	var pkg model.ServicePackage
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&pkg).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepository) List(ctx context.Context) ([]model.ServicePackage, error) {
	var packages []model.ServicePackage
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&packages).Error
	if err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *PackageRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ServicePackage{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
