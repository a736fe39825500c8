package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ppf-service/internal/model"
	"ppf-service/internal/repository"
)

type InventoryService struct {
	productRepo *repository.ProductRepository
	rollRepo    *repository.RollRepository
	usageRepo   *repository.UsageRepository
	jobRepo     *repository.JobRepository
}

func NewInventoryService(
	productRepo *repository.ProductRepository,
	rollRepo *repository.RollRepository,
	usageRepo *repository.UsageRepository,
	jobRepo *repository.JobRepository,
) *InventoryService {
	return &InventoryService{
		productRepo: productRepo,
		rollRepo:    rollRepo,
		usageRepo:   usageRepo,
		jobRepo:     jobRepo,
	}
}

type CreateProductInput struct {
	Name    string
	Brand   string
	Type    string
	WidthMm int
}

func (s *InventoryService) CreateProduct(ctx context.Context, input CreateProductInput) (*model.PpfProduct, error) {
	if input.Name == "" || input.Brand == "" || input.Type == "" {
		return nil, fmt.Errorf("%w: name, brand and type are required", ErrInvalidInput)
	}
	if input.WidthMm <= 0 {
		return nil, fmt.Errorf("%w: width must be positive", ErrInvalidInput)
	}

	product := &model.PpfProduct{
		Name:    input.Name,
		Brand:   input.Brand,
		Type:    input.Type,
		WidthMm: input.WidthMm,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *InventoryService) ListProducts(ctx context.Context) ([]model.PpfProduct, error) {
	return s.productRepo.List(ctx)
}

func (s *InventoryService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

type CreateRollInput struct {
	RollID        string
	ProductID     string
	BatchNo       *string
	TotalLengthMm int
	ImageURL      *string
}

func (s *InventoryService) CreateRoll(ctx context.Context, input CreateRollInput) (*model.PpfRoll, error) {
	if input.RollID == "" {
		return nil, fmt.Errorf("%w: roll id is required", ErrInvalidInput)
	}
	if input.TotalLengthMm <= 0 {
		return nil, fmt.Errorf("%w: total length must be positive", ErrInvalidInput)
	}
	productID, err := uuid.Parse(input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid product id", ErrInvalidInput)
	}
	if _, err := s.productRepo.GetByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown product", ErrInvalidInput)
		}
		return nil, err
	}
	if _, err := s.rollRepo.GetByRollID(ctx, input.RollID); err == nil {
		return nil, fmt.Errorf("%w: roll %q already exists", ErrConflict, input.RollID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	roll := &model.PpfRoll{
		RollID:        input.RollID,
		ProductID:     productID,
		BatchNo:       input.BatchNo,
		TotalLengthMm: input.TotalLengthMm,
		Status:        model.RollStatusActive,
		ImageURL:      input.ImageURL,
	}
	if err := s.rollRepo.Create(ctx, roll); err != nil {
		return nil, err
	}
	return roll, nil
}

func (s *InventoryService) ListRolls(ctx context.Context, filter repository.RollListFilter) ([]model.PpfRoll, error) {
	return s.rollRepo.List(ctx, filter)
}

func (s *InventoryService) GetRoll(ctx context.Context, id string) (*model.PpfRoll, error) {
	roll, err := s.rollRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return roll, nil
}

type PatchRollInput struct {
	Status   *string
	BatchNo  *string
	ImageURL *string
}

func (s *InventoryService) PatchRoll(ctx context.Context, id string, input PatchRollInput) (*model.PpfRoll, error) {
	roll, err := s.rollRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Status != nil {
		status := model.RollStatus(*input.Status)
		switch status {
		case model.RollStatusActive, model.RollStatusDepleted, model.RollStatusDisposed:
			roll.Status = status
		default:
			return nil, fmt.Errorf("%w: unknown roll status %q", ErrInvalidInput, *input.Status)
		}
	}
	if input.BatchNo != nil {
		roll.BatchNo = input.BatchNo
	}
	if input.ImageURL != nil {
		roll.ImageURL = input.ImageURL
	}

	if err := s.rollRepo.Update(ctx, roll); err != nil {
		return nil, err
	}
	return roll, nil
}

func (s *InventoryService) DeleteRoll(ctx context.Context, id string) error {
	if err := s.rollRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

type CreateUsageInput struct {
	JobID        string
	PanelName    string
	RollID       string
	LengthUsedMm int
	Notes        *string
	ImageURL     *string
}

// RecordUsage validates the entry against the roll's remaining capacity and
// appends it; the roll balance moves in the same transaction.
func (s *InventoryService) RecordUsage(ctx context.Context, input CreateUsageInput) (*model.JobPpfUsage, error) {
	if input.PanelName == "" {
		return nil, fmt.Errorf("%w: panel name is required", ErrInvalidInput)
	}
	if input.LengthUsedMm <= 0 {
		return nil, fmt.Errorf("%w: length used must be positive", ErrInvalidInput)
	}
	rollID, err := uuid.Parse(input.RollID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid roll id", ErrInvalidInput)
	}

	job, err := s.jobRepo.GetByID(ctx, input.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	usage := &model.JobPpfUsage{
		JobID:        job.ID,
		PanelName:    input.PanelName,
		RollID:       rollID,
		LengthUsedMm: input.LengthUsedMm,
		Notes:        input.Notes,
		ImageURL:     input.ImageURL,
	}
	if err := s.usageRepo.Create(ctx, usage); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("%w: unknown roll", ErrInvalidInput)
		case errors.Is(err, repository.ErrRollNotActive):
			return nil, fmt.Errorf("%w: roll is not active", ErrInvalidInput)
		case errors.Is(err, repository.ErrInsufficientRoll):
			return nil, fmt.Errorf("%w: length exceeds remaining roll capacity", ErrInvalidInput)
		default:
			return nil, err
		}
	}
	return usage, nil
}

func (s *InventoryService) ListUsageByJob(ctx context.Context, jobID string) ([]model.JobPpfUsage, error) {
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.usageRepo.ListByJobID(ctx, jobID)
}
