package database

import (
	"context"
	"fmt"

	"github.com/PostHog/birthday-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db              *DB
	birthdayRepo    contract.BirthdayRepo
	tributeRepo     contract.TributeRepo
	descriptionRepo contract.DescriptionRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.birthdayRepo = newBirthdayRepo(i.db.conn)
	i.tributeRepo = newTributeRepo(i.db.conn)
	i.descriptionRepo = newDescriptionRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		birthdayRepo:    newBirthdayRepo(db),
		tributeRepo:     newTributeRepo(db),
		descriptionRepo: newDescriptionRepo(db),
	}
}

// Birthday returns the birthday repository
func (i *instance) Birthday() contract.BirthdayRepo {
	return i.birthdayRepo
}

// Tribute returns the tribute message repository
func (i *instance) Tribute() contract.TributeRepo {
	return i.tributeRepo
}

// Description returns the description entry repository
func (i *instance) Description() contract.DescriptionRepo {
	return i.descriptionRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
