package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ppf-service/internal/model"
	"ppf-service/internal/repository"
)

// CatalogService manages the reference data: service packages and the local
// user directory.
type CatalogService struct {
	packageRepo *repository.PackageRepository
	userRepo    *repository.UserRepository
	jobRepo     *repository.JobRepository
}

func NewCatalogService(
	packageRepo *repository.PackageRepository,
	userRepo *repository.UserRepository,
	jobRepo *repository.JobRepository,
) *CatalogService {
	return &CatalogService{
		packageRepo: packageRepo,
		userRepo:    userRepo,
		jobRepo:     jobRepo,
	}
}

func (s *CatalogService) ListPackages(ctx context.Context) ([]model.ServicePackage, error) {
	return s.packageRepo.List(ctx)
}

func (s *CatalogService) CreatePackage(ctx context.Context, name string) (*model.ServicePackage, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if _, err := s.packageRepo.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: package %q already exists", ErrConflict, name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pkg := &model.ServicePackage{Name: name}
	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// DeletePackage refuses to remove a package that jobs still reference.
func (s *CatalogService) DeletePackage(ctx context.Context, id string) error {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	count, err := s.jobRepo.CountByPackage(ctx, pkg.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: package %q is referenced by %d jobs", ErrConflict, pkg.Name, count)
	}

	if err := s.packageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *CatalogService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

type CreateUserInput struct {
	Username string
	Name     string
	Role     string
}

func (s *CatalogService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if input.Username == "" || input.Name == "" {
		return nil, fmt.Errorf("%w: username and name are required", ErrInvalidInput)
	}
	role := model.UserRole(input.Role)
	switch role {
	case model.UserRoleAdmin, model.UserRoleAdvisor, model.UserRoleTechnician, model.UserRoleQC:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
	}

	if _, err := s.userRepo.GetByUsername(ctx, input.Username); err == nil {
		return nil, fmt.Errorf("%w: username %q already exists", ErrConflict, input.Username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &model.User{
		Username: input.Username,
		Name:     input.Name,
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *CatalogService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
