package service

import (
	"time"

	"github.com/PostHog/birthday-bot/internal/domain/contract"
)

// Config carries the externally-provided identifiers the services need.
type Config struct {
	BirthdayChannelID string
	AdminChannelID    string
	ScheduleTime      string
	Location          *time.Location
}

type Instance struct {
	Birthday  *birthdayService
	Scheduler *scheduler
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, poem contract.PoemGenerator, cfg Config) *Instance {
	birthdayService := newBirthday(dm, slackClient, poem, cfg)

	return &Instance{
		Birthday:  birthdayService,
		Scheduler: newScheduler(birthdayService, dm, slackClient, cfg),
	}
}
