package db

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"ppf-service/internal/model"
)

// Migrate applies schema migrations in order. Postgres-only statements are
// guarded by a dialect check so the same migration set runs against the
// SQLite test driver.
func Migrate(database *gorm.DB) error {
	m := gormigrate.New(database, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250603_extensions",
			Migrate: func(tx *gorm.DB) error {
				if tx.Dialector.Name() != "postgres" {
					return nil
				}
				return tx.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
		{
			ID: "20250603_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&model.User{},
					&model.ServicePackage{},
					&model.PpfProduct{},
					&model.PpfRoll{},
					&model.Job{},
					&model.JobIssue{},
					&model.JobPpfUsage{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					"job_ppf_usages", "job_issues", "jobs",
					"ppf_rolls", "ppf_products", "service_packages", "users",
				)
			},
		},
		{
			ID: "20250715_roll_balance_guard",
			Migrate: func(tx *gorm.DB) error {
				if tx.Dialector.Name() != "postgres" {
					return nil
				}
				return tx.Exec(`
					ALTER TABLE ppf_rolls
					ADD CONSTRAINT ppf_rolls_used_within_total
					CHECK (used_length_mm >= 0 AND used_length_mm <= total_length_mm);
				`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				if tx.Dialector.Name() != "postgres" {
					return nil
				}
				return tx.Exec(`ALTER TABLE ppf_rolls DROP CONSTRAINT ppf_rolls_used_within_total;`).Error
			},
		},
	})

	return m.Migrate()
}
