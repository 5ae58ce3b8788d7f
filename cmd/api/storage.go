package main

import (
	"database/sql"
	"fmt"

	"medication-reminder/internal/adapters/storage/badgerstore"
	"medication-reminder/internal/adapters/storage/postgres"
	"medication-reminder/internal/config"
	"medication-reminder/internal/router"
)

// openRepositories elige el backend según STORAGE_DRIVER. closeFn libera la
// conexión/archivo (no-op en memoria).
func openRepositories(cfg *config.Config) (repos router.Repositories, closeFn func() error, err error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			return router.Repositories{}, nil, fmt.Errorf("open postgres: %w", err)
		}
		return postgresRepositories(db), db.Close, nil

	case config.StorageBadger:
		db, err := badgerstore.Open(cfg.BadgerPath)
		if err != nil {
			return router.Repositories{}, nil, err
		}
		return router.Repositories{
			Medications:   badgerstore.NewMedicationsRepo(db),
			BloodPressure: badgerstore.NewBloodPressureRepo(db),
			Diabetic:      badgerstore.NewDiabeticRepo(db),
			Subscriptions: badgerstore.NewSubscriptionsRepo(db),
			Contacts:      badgerstore.NewContactsRepo(db),
		}, db.Close, nil

	default:
		// router completa con in-memory.
		return router.Repositories{}, func() error { return nil }, nil
	}
}

func postgresRepositories(db *sql.DB) router.Repositories {
	return router.Repositories{
		Medications:   postgres.NewMedicationsRepo(db),
		BloodPressure: postgres.NewBloodPressureRepo(db),
		Diabetic:      postgres.NewDiabeticRepo(db),
		Subscriptions: postgres.NewSubscriptionsRepo(db),
		Contacts:      postgres.NewContactsRepo(db),
	}
}
