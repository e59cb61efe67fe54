package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/PostHog/birthday-bot/internal/domain"
	"github.com/PostHog/birthday-bot/internal/domain/contract"
	"github.com/PostHog/birthday-bot/internal/domain/entity"
)

type birthdayService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	poem        contract.PoemGenerator
	cache       *resolveCache

	birthdayChannelID string
	adminChannelID    string
	loc               *time.Location

	botUserID string
}

func newBirthday(dm contract.DataManager, slackClient contract.SlackClient, poem contract.PoemGenerator, cfg Config) *birthdayService {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	return &birthdayService{
		dm:                dm,
		slackClient:       slackClient,
		poem:              poem,
		cache:             newResolveCache(domain.ResolveCacheTTL),
		birthdayChannelID: cfg.BirthdayChannelID,
		adminChannelID:    cfg.AdminChannelID,
		loc:               loc,
	}
}

func (s *birthdayService) SetBirthday(memberID, date string) error {
	day, month, err := domain.ParseBirthDate(date)
	if err != nil {
		return err
	}

	if err := s.dm.Birthday().Upsert(memberID, domain.FormatBirthDate(day, month)); err != nil {
		return fmt.Errorf("failed to save birthday: %w", err)
	}

	return nil
}

func (s *birthdayService) SetBirthdayByName(ctx context.Context, firstName, lastName, date string) (string, error) {
	// Validate the date before touching the directory, so a bad date never
	// costs a full member scan.
	day, month, err := domain.ParseBirthDate(date)
	if err != nil {
		return "", err
	}

	member, err := s.resolveByName(ctx, firstName, lastName)
	if err != nil {
		return "", err
	}

	if err := s.dm.Birthday().Upsert(member.ID, domain.FormatBirthDate(day, month)); err != nil {
		return "", fmt.Errorf("failed to save birthday: %w", err)
	}

	return member.ID, nil
}

func (s *birthdayService) ListBirthdays() ([]*entity.Birthday, error) {
	return s.dm.Birthday().List()
}

func (s *birthdayService) SubmitTribute(celebrantID, senderID, senderName, message, mediaURL string) (bool, error) {
	exists, err := s.dm.Birthday().Exists(celebrantID)
	if err != nil {
		return false, fmt.Errorf("failed to check celebrant: %w", err)
	}
	if !exists {
		return false, domain.ErrCelebrantUnknown
	}

	inserted, err := s.dm.Tribute().Add(&entity.Tribute{
		CelebrantID: celebrantID,
		SenderID:    senderID,
		SenderName:  senderName,
		Message:     message,
		MediaURL:    mediaURL,
	})
	if err != nil {
		return false, err
	}

	if !inserted {
		log.Printf("Duplicate tribute from %s for %s ignored", senderID, celebrantID)
	}
	return inserted, nil
}

func (s *birthdayService) SubmitDescription(celebrantID, senderID, senderName, text string) (bool, error) {
	exists, err := s.dm.Birthday().Exists(celebrantID)
	if err != nil {
		return false, fmt.Errorf("failed to check celebrant: %w", err)
	}
	if !exists {
		return false, domain.ErrCelebrantUnknown
	}

	inserted, err := s.dm.Description().Add(&entity.Description{
		CelebrantID: celebrantID,
		SenderID:    senderID,
		SenderName:  senderName,
		Text:        text,
	})
	if err != nil {
		return false, err
	}

	if !inserted {
		log.Printf("Duplicate description from %s for %s ignored", senderID, celebrantID)
	}
	return inserted, nil
}

// ownUserID resolves and caches the bot's own user id, used to keep the bot
// out of fan-out and name matching. Resolution failure is non-fatal.
func (s *birthdayService) ownUserID() string {
	if s.botUserID != "" {
		return s.botUserID
	}

	resp, err := s.slackClient.AuthTest()
	if err != nil {
		log.Printf("Failed to resolve own user id: %v", err)
		return ""
	}

	s.botUserID = resp.UserID
	return s.botUserID
}
