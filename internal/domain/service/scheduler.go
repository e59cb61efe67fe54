package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/PostHog/birthday-bot/internal/domain"
	"github.com/PostHog/birthday-bot/internal/domain/contract"
	"github.com/go-co-op/gocron"
	"github.com/slack-go/slack"
)

type scheduler struct {
	birthdays   *birthdayService
	dm          contract.DataManager
	slackClient contract.SlackClient

	cron           *gocron.Scheduler
	loc            *time.Location
	scheduleTime   string
	adminChannelID string
	running        bool
}

func newScheduler(birthdays *birthdayService, dm contract.DataManager, slackClient contract.SlackClient, cfg Config) *scheduler {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	scheduleTime := cfg.ScheduleTime
	if scheduleTime == "" {
		scheduleTime = "09:00"
	}

	return &scheduler{
		birthdays:      birthdays,
		dm:             dm,
		slackClient:    slackClient,
		loc:            loc,
		scheduleTime:   scheduleTime,
		adminChannelID: cfg.AdminChannelID,
		running:        false,
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}

	log.Printf("Scheduler starting, daily run at %s (%s)", s.scheduleTime, s.loc)

	s.cron = gocron.NewScheduler(s.loc)
	if _, err := s.cron.Every(1).Day().At(s.scheduleTime).Do(s.run); err != nil {
		log.Printf("Failed to schedule daily run: %v", err)
		return
	}
	s.cron.StartAsync()
	s.running = true
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Scheduler stopping...")
	s.cron.Stop()
	s.running = false
}

func (s *scheduler) run() {
	if err := s.RunAt(context.Background(), time.Now().In(s.loc)); err != nil {
		log.Printf("Daily birthday run failed: %v", err)
	}
}

// RunAt executes one daily run as of the given time: first purge members no
// longer in the workspace, then dispatch per-birthday actions by day offset.
// A cleanup error aborts the run since dispatch counts on a consistent
// member list; a single record's dispatch error only skips that record.
func (s *scheduler) RunAt(ctx context.Context, now time.Time) error {
	members, truncated, err := s.slackClient.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch membership: %w", err)
	}

	if truncated {
		// A partial listing would make members on unfetched pages look
		// absent and delete their data, so cleanup sits this run out.
		log.Println("Membership listing was truncated, skipping cleanup this run")
	} else {
		if err := s.cleanup(members); err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
	}

	s.dispatch(ctx, now)
	return nil
}

func (s *scheduler) cleanup(members []slack.User) error {
	present := make(map[string]bool, len(members))
	for _, member := range members {
		if !member.Deleted {
			present[member.ID] = true
		}
	}

	birthdays, err := s.dm.Birthday().List()
	if err != nil {
		return fmt.Errorf("failed to list birthdays: %w", err)
	}

	removed := 0
	for _, birthday := range birthdays {
		if present[birthday.MemberID] {
			continue
		}

		if err := s.dm.Birthday().Delete(birthday.MemberID); err != nil {
			return fmt.Errorf("failed to delete %s: %w", birthday.MemberID, err)
		}
		log.Printf("Removed departed member %s and their pending tributes", birthday.MemberID)
		removed++
	}

	if removed > 0 && s.adminChannelID != "" {
		summary := fmt.Sprintf("Birthday cleanup: removed %d departed member(s)", removed)
		if _, _, err := s.slackClient.PostMessage(s.adminChannelID, slack.MsgOptionText(summary, false)); err != nil {
			log.Printf("Failed to post cleanup summary: %v", err)
		}
	}

	return nil
}

func (s *scheduler) dispatch(ctx context.Context, now time.Time) {
	birthdays, err := s.dm.Birthday().List()
	if err != nil {
		log.Printf("Failed to list birthdays for dispatch: %v", err)
		return
	}

	for _, birthday := range birthdays {
		if !birthday.HasKnownDate() {
			continue
		}

		if err := s.dispatchOne(ctx, birthday.MemberID, birthday.BirthDate, now); err != nil {
			// One record must never take down the rest of the run.
			log.Printf("Dispatch failed for %s: %v", birthday.MemberID, err)
		}
	}
}

func (s *scheduler) dispatchOne(ctx context.Context, memberID, birthDate string, now time.Time) error {
	day, month, err := domain.ParseBirthDate(birthDate)
	if err != nil {
		return fmt.Errorf("stored date %q is invalid: %w", birthDate, err)
	}

	switch offset := domain.DaysUntilNext(day, month, now); offset {
	case domain.CollectOffsetDays:
		sent, err := s.birthdays.CollectTributes(ctx, memberID)
		if err != nil {
			return fmt.Errorf("tribute collection failed: %w", err)
		}
		log.Printf("Birthday of %s in %d days, collected tributes from %d colleagues", memberID, offset, sent)

	case domain.ReminderOffsetDays:
		if err := s.postAdminDigest(memberID); err != nil {
			return err
		}

	case 0:
		log.Printf("Birthday of %s is today, posting celebration thread", memberID)
		if err := s.birthdays.PostCelebration(ctx, memberID); err != nil {
			return fmt.Errorf("celebration post failed: %w", err)
		}
	}

	return nil
}

func (s *scheduler) postAdminDigest(memberID string) error {
	count, err := s.dm.Tribute().CountUndelivered(memberID)
	if err != nil {
		return fmt.Errorf("failed to count tributes: %w", err)
	}

	if s.adminChannelID == "" {
		return nil
	}

	digest := fmt.Sprintf("Heads up: <@%s> has a birthday tomorrow. %d tribute message(s) collected so far.", memberID, count)
	if _, _, err := s.slackClient.PostMessage(s.adminChannelID, slack.MsgOptionText(digest, false)); err != nil {
		return fmt.Errorf("failed to post admin digest: %w", err)
	}

	return nil
}
