package contract

import (
	"context"
	"time"

	"github.com/PostHog/birthday-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Birthday() BirthdayRepo
	Tribute() TributeRepo
	Description() DescriptionRepo
}

// BirthdayRepo defines the contract for the birthdays table
type BirthdayRepo interface {
	// Upsert inserts or replaces the member's record. An empty date stores
	// the placeholder sentinel and resets notification bookkeeping.
	Upsert(memberID, birthDate string) error

	// EnsurePlaceholder creates a placeholder record if none exists yet.
	// Existing records, placeholder or not, are left untouched.
	EnsurePlaceholder(memberID string) error

	Get(memberID string) (*entity.Birthday, error)
	List() ([]*entity.Birthday, error)
	Exists(memberID string) (bool, error)
	SetNotifiedAt(memberID string, at time.Time) error

	// Delete removes the member's record; tributes and descriptions
	// cascade at the storage layer.
	Delete(memberID string) error
}

// TributeRepo defines the contract for tribute messages
type TributeRepo interface {
	// Add inserts a tribute. It returns false when the same
	// (celebrant, sender, message) was already submitted today.
	Add(tribute *entity.Tribute) (bool, error)

	ListUndelivered(celebrantID string) ([]*entity.Tribute, error)
	CountUndelivered(celebrantID string) (int, error)

	// MarkDelivered flips all undelivered rows for the celebrant and
	// returns how many were affected. Calling it again affects zero rows.
	MarkDelivered(celebrantID string) (int64, error)
}

// DescriptionRepo defines the contract for description entries
type DescriptionRepo interface {
	Add(description *entity.Description) (bool, error)
	ListUndelivered(celebrantID string) ([]*entity.Description, error)
	MarkDelivered(celebrantID string) (int64, error)
}
