package contract

import (
	"context"

	"github.com/PostHog/birthday-bot/internal/domain/entity"
)

// BirthdayService is the surface the HTTP handlers and scheduler drive.
type BirthdayService interface {
	SetBirthday(memberID, date string) error
	SetBirthdayByName(ctx context.Context, firstName, lastName, date string) (string, error)
	ListBirthdays() ([]*entity.Birthday, error)

	// SubmitTribute and SubmitDescription return false when the submission
	// was a same-day duplicate (a no-op, not an error).
	SubmitTribute(celebrantID, senderID, senderName, message, mediaURL string) (bool, error)
	SubmitDescription(celebrantID, senderID, senderName, text string) (bool, error)

	// CollectTributes fans out the tribute form to eligible colleagues and
	// returns how many prompts were sent.
	CollectTributes(ctx context.Context, celebrantID string) (int, error)

	// PostCelebration posts the birthday thread for the celebrant and marks
	// posted rows delivered.
	PostCelebration(ctx context.Context, celebrantID string) error
}
