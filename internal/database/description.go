package database

import (
	"fmt"
	"time"

	"github.com/PostHog/birthday-bot/internal/domain/contract"
	"github.com/PostHog/birthday-bot/internal/domain/entity"
)

type descriptionRepo struct {
	db dbConn
}

func newDescriptionRepo(db dbConn) contract.DescriptionRepo {
	return &descriptionRepo{db: db}
}

func (r *descriptionRepo) Add(description *entity.Description) (bool, error) {
	if description.SubmittedOn == "" {
		description.SubmittedOn = time.Now().UTC().Format("2006-01-02")
	}

	query := `
		INSERT OR IGNORE INTO descriptions
			(celebrant_id, sender_id, sender_name, text, submitted_on)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		description.CelebrantID,
		description.SenderID,
		description.SenderName,
		description.Text,
		description.SubmittedOn,
	)
	if err != nil {
		return false, fmt.Errorf("failed to add description: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if affected == 0 {
		return false, nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("failed to get last insert id: %w", err)
	}

	description.ID = id
	return true, nil
}

func (r *descriptionRepo) ListUndelivered(celebrantID string) ([]*entity.Description, error) {
	query := `
		SELECT id, celebrant_id, sender_id, sender_name, text,
			submitted_on, delivered, created_at
		FROM descriptions
		WHERE celebrant_id = ? AND delivered = 0
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.Query(query, celebrantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list descriptions: %w", err)
	}
	defer rows.Close()

	var descriptions []*entity.Description
	for rows.Next() {
		description := &entity.Description{}
		err := rows.Scan(
			&description.ID,
			&description.CelebrantID,
			&description.SenderID,
			&description.SenderName,
			&description.Text,
			&description.SubmittedOn,
			&description.Delivered,
			&description.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan description: %w", err)
		}
		descriptions = append(descriptions, description)
	}

	return descriptions, nil
}

func (r *descriptionRepo) MarkDelivered(celebrantID string) (int64, error) {
	query := `
		UPDATE descriptions SET delivered = 1
		WHERE celebrant_id = ? AND delivered = 0
	`

	result, err := r.db.Exec(query, celebrantID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark descriptions delivered: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}
