package database

import (
	"fmt"
	"time"

	"github.com/PostHog/birthday-bot/internal/domain/contract"
	"github.com/PostHog/birthday-bot/internal/domain/entity"
)

type tributeRepo struct {
	db dbConn
}

func newTributeRepo(db dbConn) contract.TributeRepo {
	return &tributeRepo{db: db}
}

func (r *tributeRepo) Add(tribute *entity.Tribute) (bool, error) {
	if tribute.SubmittedOn == "" {
		tribute.SubmittedOn = time.Now().UTC().Format("2006-01-02")
	}

	// The UNIQUE constraint on (celebrant, sender, message, submitted_on)
	// makes a repeated same-day submission a zero-row no-op.
	query := `
		INSERT OR IGNORE INTO tribute_messages
			(celebrant_id, sender_id, sender_name, message, media_url, submitted_on)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		tribute.CelebrantID,
		tribute.SenderID,
		tribute.SenderName,
		tribute.Message,
		tribute.MediaURL,
		tribute.SubmittedOn,
	)
	if err != nil {
		return false, fmt.Errorf("failed to add tribute: %w", err)
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

	tribute.ID = id
	return true, nil
}

func (r *tributeRepo) ListUndelivered(celebrantID string) ([]*entity.Tribute, error) {
	query := `
		SELECT id, celebrant_id, sender_id, sender_name, message, media_url,
			submitted_on, delivered, created_at
		FROM tribute_messages
		WHERE celebrant_id = ? AND delivered = 0
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.Query(query, celebrantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tributes: %w", err)
	}
	defer rows.Close()

	var tributes []*entity.Tribute
	for rows.Next() {
		tribute := &entity.Tribute{}
		err := rows.Scan(
			&tribute.ID,
			&tribute.CelebrantID,
			&tribute.SenderID,
			&tribute.SenderName,
			&tribute.Message,
			&tribute.MediaURL,
			&tribute.SubmittedOn,
			&tribute.Delivered,
			&tribute.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tribute: %w", err)
		}
		tributes = append(tributes, tribute)
	}

	return tributes, nil
}

func (r *tributeRepo) CountUndelivered(celebrantID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM tribute_messages
		WHERE celebrant_id = ? AND delivered = 0
	`

	var count int
	err := r.db.QueryRow(query, celebrantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tributes: %w", err)
	}

	return count, nil
}

func (r *tributeRepo) MarkDelivered(celebrantID string) (int64, error) {
	query := `
		UPDATE tribute_messages SET delivered = 1
		WHERE celebrant_id = ? AND delivered = 0
	`

	result, err := r.db.Exec(query, celebrantID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark tributes delivered: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}
