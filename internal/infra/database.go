package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ArojasJ/agendas-entregas/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// for the scheduler tables. The schema is small enough that AutoMigrate is the
// single source of truth; there is no separate migrations directory.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}
	return db, nil
}

// RunMigrations creates or updates the scheduler tables. Also used by
// integration tests against a disposable database.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Agenda{},
		&model.DiaBloqueado{},
		&model.CorteCaja{},
	)
}
