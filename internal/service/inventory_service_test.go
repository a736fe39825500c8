package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ppf-service/internal/model"
	"ppf-service/internal/repository"
	"ppf-service/internal/service"
)

type inventoryFixture struct {
	inventory *service.InventoryService
	jobs      *service.JobService
	rollRepo  *repository.RollRepository
}

func newInventoryFixture(t *testing.T, database *gorm.DB) inventoryFixture {
	t.Helper()
	jobRepo := repository.NewJobRepository(database)
	rollRepo := repository.NewRollRepository(database)
	return inventoryFixture{
		inventory: service.NewInventoryService(
			repository.NewProductRepository(database),
			rollRepo,
			repository.NewUsageRepository(database),
			jobRepo,
		),
		jobs:     newJobService(t, database),
		rollRepo: rollRepo,
	}
}

func seedRoll(t *testing.T, fx inventoryFixture, totalLengthMm int) *model.PpfRoll {
	t.Helper()
	ctx := context.Background()
	product, err := fx.inventory.CreateProduct(ctx, service.CreateProductInput{
		Name:    "Ultimate Plus",
		Brand:   "XPEL",
		Type:    "gloss",
		WidthMm: 1524,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	roll, err := fx.inventory.CreateRoll(ctx, service.CreateRollInput{
		RollID:        "ROLL-XP-001",
		ProductID:     product.ID.String(),
		TotalLengthMm: totalLengthMm,
	})
	if err != nil {
		t.Fatalf("CreateRoll: %v", err)
	}
	return roll
}

func seedJob(t *testing.T, fx inventoryFixture) *model.Job {
	t.Helper()
	job, err := fx.jobs.Create(context.Background(), testPrincipal(), createJobInput())
	if err != nil {
		t.Fatalf("Create job: %v", err)
	}
	return job
}

func TestRecordUsageMovesRollBalance(t *testing.T) {
	database := newTestDB(t)
	fx := newInventoryFixture(t, database)
	roll := seedRoll(t, fx, 10000)
	job := seedJob(t, fx)
	ctx := context.Background()

	usage, err := fx.inventory.RecordUsage(ctx, service.CreateUsageInput{
		JobID:        job.ID.String(),
		PanelName:    "hood",
		RollID:       roll.ID.String(),
		LengthUsedMm: 1800,
	})
	if err != nil {
		t.Fatalf("RecordUsage: %v", err)
	}
	if usage.LengthUsedMm != 1800 {
		t.Fatalf("length recorded = %d", usage.LengthUsedMm)
	}

	reloaded, err := fx.inventory.GetRoll(ctx, roll.ID.String())
	if err != nil {
		t.Fatalf("GetRoll: %v", err)
	}
	if reloaded.UsedLengthMm != 1800 {
		t.Fatalf("used length = %d", reloaded.UsedLengthMm)
	}
	if reloaded.RemainingLengthMm() != 8200 {
		t.Fatalf("remaining length = %d", reloaded.RemainingLengthMm())
	}
	if reloaded.Status != model.RollStatusActive {
		t.Fatalf("roll status = %s", reloaded.Status)
	}

	entries, err := fx.inventory.ListUsageByJob(ctx, job.ID.String())
	if err != nil {
		t.Fatalf("ListUsageByJob: %v", err)
	}
	if len(entries) != 1 || entries[0].PanelName != "hood" {
		t.Fatalf("usage entries = %+v", entries)
	}
}

func TestRecordUsageRejectsOverCapacity(t *testing.T) {
	database := newTestDB(t)
	fx := newInventoryFixture(t, database)
	roll := seedRoll(t, fx, 1000)
	job := seedJob(t, fx)
	ctx := context.Background()

	_, err := fx.inventory.RecordUsage(ctx, service.CreateUsageInput{
		JobID:        job.ID.String(),
		PanelName:    "hood",
		RollID:       roll.ID.String(),
		LengthUsedMm: 1500,
	})
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	reloaded, err := fx.inventory.GetRoll(ctx, roll.ID.String())
	if err != nil {
		t.Fatalf("GetRoll: %v", err)
	}
	if reloaded.UsedLengthMm != 0 {
		t.Fatalf("roll balance moved on rejected usage: %d", reloaded.UsedLengthMm)
	}

	entries, err := fx.inventory.ListUsageByJob(ctx, job.ID.String())
	if err != nil {
		t.Fatalf("ListUsageByJob: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("usage recorded despite rejection: %+v", entries)
	}
}

func TestRecordUsageDepletesRoll(t *testing.T) {
	database := newTestDB(t)
	fx := newInventoryFixture(t, database)
	roll := seedRoll(t, fx, 2000)
	job := seedJob(t, fx)
	ctx := context.Background()

	if _, err := fx.inventory.RecordUsage(ctx, service.CreateUsageInput{
		JobID:        job.ID.String(),
		PanelName:    "hood",
		RollID:       roll.ID.String(),
		LengthUsedMm: 2000,
	}); err != nil {
		t.Fatalf("RecordUsage: %v", err)
	}

	reloaded, err := fx.inventory.GetRoll(ctx, roll.ID.String())
	if err != nil {
		t.Fatalf("GetRoll: %v", err)
	}
	if reloaded.Status != model.RollStatusDepleted {
		t.Fatalf("roll status = %s, want DEPLETED", reloaded.Status)
	}
	if reloaded.RemainingLengthMm() != 0 {
		t.Fatalf("remaining length = %d", reloaded.RemainingLengthMm())
	}

	// A depleted roll takes no further usage.
	if _, err := fx.inventory.RecordUsage(ctx, service.CreateUsageInput{
		JobID:        job.ID.String(),
		PanelName:    "fender",
		RollID:       roll.ID.String(),
		LengthUsedMm: 1,
	}); !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput on depleted roll, got %v", err)
	}
}

func TestRecordUsageUnknownJobAndRoll(t *testing.T) {
	database := newTestDB(t)
	fx := newInventoryFixture(t, database)
	roll := seedRoll(t, fx, 1000)
	job := seedJob(t, fx)
	ctx := context.Background()

	if _, err := fx.inventory.RecordUsage(ctx, service.CreateUsageInput{
		JobID:        uuid.NewString(),
		PanelName:    "hood",
		RollID:       roll.ID.String(),
		LengthUsedMm: 100,
	}); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown job, got %v", err)
	}

	if _, err := fx.inventory.RecordUsage(ctx, service.CreateUsageInput{
		JobID:        job.ID.String(),
		PanelName:    "hood",
		RollID:       uuid.NewString(),
		LengthUsedMm: 100,
	}); !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown roll, got %v", err)
	}
}

func TestCreateRollDuplicateRollID(t *testing.T) {
	database := newTestDB(t)
	fx := newInventoryFixture(t, database)
	roll := seedRoll(t, fx, 1000)
	ctx := context.Background()

	_, err := fx.inventory.CreateRoll(ctx, service.CreateRollInput{
		RollID:        roll.RollID,
		ProductID:     roll.ProductID.String(),
		TotalLengthMm: 5000,
	})
	if !errors.Is(err, service.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestPatchRollStatus(t *testing.T) {
	database := newTestDB(t)
	fx := newInventoryFixture(t, database)
	roll := seedRoll(t, fx, 1000)
	ctx := context.Background()

	disposed := string(model.RollStatusDisposed)
	patched, err := fx.inventory.PatchRoll(ctx, roll.ID.String(), service.PatchRollInput{Status: &disposed})
	if err != nil {
		t.Fatalf("PatchRoll: %v", err)
	}
	if patched.Status != model.RollStatusDisposed {
		t.Fatalf("roll status = %s", patched.Status)
	}

	bogus := "SHREDDED"
	if _, err := fx.inventory.PatchRoll(ctx, roll.ID.String(), service.PatchRollInput{Status: &bogus}); !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
