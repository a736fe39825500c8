package service_test

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"ppf-service/internal/model"
	"ppf-service/internal/repository"
	"ppf-service/internal/service"
)

func newCatalogService(database *gorm.DB) *service.CatalogService {
	return service.NewCatalogService(
		repository.NewPackageRepository(database),
		repository.NewUserRepository(database),
		repository.NewJobRepository(database),
	)
}

func TestCreatePackageDuplicateName(t *testing.T) {
	database := newTestDB(t)
	catalog := newCatalogService(database)
	ctx := context.Background()

	if _, err := catalog.CreatePackage(ctx, "Full Body"); err != nil {
		t.Fatalf("CreatePackage: %v", err)
	}
	if _, err := catalog.CreatePackage(ctx, "Full Body"); !errors.Is(err, service.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestDeletePackageProtectedWhileReferenced(t *testing.T) {
	database := newTestDB(t)
	catalog := newCatalogService(database)
	jobs := newJobService(t, database)
	ctx := context.Background()

	// newJobService seeds the "Full Front" package; attach a job to it.
	if _, err := jobs.Create(ctx, testPrincipal(), createJobInput()); err != nil {
		t.Fatalf("Create job: %v", err)
	}

	packages, err := catalog.ListPackages(ctx)
	if err != nil {
		t.Fatalf("ListPackages: %v", err)
	}
	if len(packages) != 1 {
		t.Fatalf("package count = %d", len(packages))
	}

	if err := catalog.DeletePackage(ctx, packages[0].ID.String()); !errors.Is(err, service.ErrConflict) {
		t.Fatalf("expected ErrConflict while jobs reference the package, got %v", err)
	}
}

func TestDeleteUnreferencedPackage(t *testing.T) {
	database := newTestDB(t)
	catalog := newCatalogService(database)
	ctx := context.Background()

	pkg, err := catalog.CreatePackage(ctx, "Track Pack")
	if err != nil {
		t.Fatalf("CreatePackage: %v", err)
	}
	if err := catalog.DeletePackage(ctx, pkg.ID.String()); err != nil {
		t.Fatalf("DeletePackage: %v", err)
	}

	packages, err := catalog.ListPackages(ctx)
	if err != nil {
		t.Fatalf("ListPackages: %v", err)
	}
	if len(packages) != 0 {
		t.Fatalf("package count = %d", len(packages))
	}
}

func TestCreateUserRoleValidationAndDuplicates(t *testing.T) {
	database := newTestDB(t)
	catalog := newCatalogService(database)
	ctx := context.Background()

	user, err := catalog.CreateUser(ctx, service.CreateUserInput{
		Username: "tech1",
		Name:     "Tech One",
		Role:     string(model.UserRoleTechnician),
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Role != model.UserRoleTechnician {
		t.Fatalf("role = %s", user.Role)
	}

	if _, err := catalog.CreateUser(ctx, service.CreateUserInput{
		Username: "tech1",
		Name:     "Another Tech",
		Role:     string(model.UserRoleTechnician),
	}); !errors.Is(err, service.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	if _, err := catalog.CreateUser(ctx, service.CreateUserInput{
		Username: "intern",
		Name:     "Intern",
		Role:     "JANITOR",
	}); !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
