package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/PostHog/birthday-bot/internal/domain"
	"github.com/PostHog/birthday-bot/internal/domain/contract"
	"github.com/PostHog/birthday-bot/internal/domain/entity"
)

type birthdayRepo struct {
	db dbConn
}

func newBirthdayRepo(db dbConn) contract.BirthdayRepo {
	return &birthdayRepo{db: db}
}

func (r *birthdayRepo) Upsert(memberID, birthDate string) error {
	if birthDate == "" {
		birthDate = domain.PlaceholderDate
	}

	// Setting a date (or resetting to the placeholder) clears notification
	// bookkeeping so the next occurrence is processed fresh.
	query := `
		INSERT INTO birthdays (member_id, birth_date)
		VALUES (?, ?)
		ON CONFLICT(member_id) DO UPDATE SET
			birth_date = excluded.birth_date,
			notified_at = NULL,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.Exec(query, memberID, birthDate)
	if err != nil {
		return fmt.Errorf("failed to upsert birthday: %w", err)
	}

	return nil
}

func (r *birthdayRepo) EnsurePlaceholder(memberID string) error {
	query := `
		INSERT OR IGNORE INTO birthdays (member_id, birth_date)
		VALUES (?, ?)
	`

	_, err := r.db.Exec(query, memberID, domain.PlaceholderDate)
	if err != nil {
		return fmt.Errorf("failed to ensure birthday record: %w", err)
	}

	return nil
}

func (r *birthdayRepo) Get(memberID string) (*entity.Birthday, error) {
	birthday := &entity.Birthday{}
	query := `
		SELECT member_id, birth_date, notified_at, created_at, updated_at
		FROM birthdays
		WHERE member_id = ?
	`

	var notifiedAt sql.NullTime
	err := r.db.QueryRow(query, memberID).Scan(
		&birthday.MemberID,
		&birthday.BirthDate,
		&notifiedAt,
		&birthday.CreatedAt,
		&birthday.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get birthday: %w", err)
	}

	if notifiedAt.Valid {
		birthday.NotifiedAt = &notifiedAt.Time
	}

	return birthday, nil
}

func (r *birthdayRepo) List() ([]*entity.Birthday, error) {
	query := `
		SELECT member_id, birth_date, notified_at, created_at, updated_at
		FROM birthdays
		ORDER BY member_id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list birthdays: %w", err)
	}
	defer rows.Close()

	var birthdays []*entity.Birthday
	for rows.Next() {
		birthday := &entity.Birthday{}
		var notifiedAt sql.NullTime
		err := rows.Scan(
			&birthday.MemberID,
			&birthday.BirthDate,
			&notifiedAt,
			&birthday.CreatedAt,
			&birthday.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan birthday: %w", err)
		}

		if notifiedAt.Valid {
			birthday.NotifiedAt = &notifiedAt.Time
		}
		birthdays = append(birthdays, birthday)
	}

	return birthdays, nil
}

func (r *birthdayRepo) Exists(memberID string) (bool, error) {
	query := `SELECT 1 FROM birthdays WHERE member_id = ?`

	var one int
	err := r.db.QueryRow(query, memberID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check birthday record: %w", err)
	}

	return true, nil
}

func (r *birthdayRepo) SetNotifiedAt(memberID string, at time.Time) error {
	query := `
		UPDATE birthdays SET notified_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE member_id = ?
	`

	_, err := r.db.Exec(query, at, memberID)
	if err != nil {
		return fmt.Errorf("failed to set notified at: %w", err)
	}

	return nil
}

func (r *birthdayRepo) Delete(memberID string) error {
	// Tributes and descriptions cascade via their foreign keys.
	query := `DELETE FROM birthdays WHERE member_id = ?`

	_, err := r.db.Exec(query, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete birthday: %w", err)
	}

	return nil
}
