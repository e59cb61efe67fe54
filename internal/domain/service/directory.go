package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/PostHog/birthday-bot/internal/domain"
	"github.com/slack-go/slack"
)

// slackSystemUserID is Slack's built-in slackbot account, excluded from
// matching and fan-out.
const slackSystemUserID = "USLACKBOT"

type cacheEntry struct {
	member    *slack.User // nil for a cached "not found"
	expiresAt time.Time
}

// resolveCache remembers name resolution results, including negatives, for a
// bounded time so repeated lookups of the same name don't rescan the
// directory.
type resolveCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

func newResolveCache(ttl time.Duration) *resolveCache {
	return &resolveCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func (c *resolveCache) get(key string) (*slack.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.member, true
}

func (c *resolveCache) put(key string, member *slack.User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{member: member, expiresAt: time.Now().Add(c.ttl)}
}

// matchStage is one step of the name resolution cascade. Stages marked
// requireUnique are skipped when zero or more than one member matches.
type matchStage struct {
	name          string
	requireUnique bool
	matches       func(member *slack.User, first, last string) bool
}

// matchStages is evaluated in priority order; the first stage that produces
// an acceptable candidate set wins.
var matchStages = []matchStage{
	{
		name: "display name exact",
		matches: func(member *slack.User, first, last string) bool {
			return normalizeName(member.Profile.DisplayName) == first+" "+last
		},
	},
	{
		name: "real name exact",
		matches: func(member *slack.User, first, last string) bool {
			return normalizeName(member.RealName) == first+" "+last ||
				normalizeName(member.Profile.RealName) == first+" "+last
		},
	},
	{
		name: "nickname exact",
		matches: func(member *slack.User, first, last string) bool {
			return normalizeName(member.Name) == first+" "+last
		},
	},
	{
		name:          "first name only",
		requireUnique: true,
		matches: func(member *slack.User, first, last string) bool {
			return memberFirstName(member) == first
		},
	},
	{
		name:          "last name only",
		requireUnique: true,
		matches: func(member *slack.User, first, last string) bool {
			return memberLastName(member) == last
		},
	},
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func memberFirstName(member *slack.User) string {
	if member.Profile.FirstName != "" {
		return normalizeName(member.Profile.FirstName)
	}
	parts := strings.Fields(normalizeName(member.RealName))
	if len(parts) > 0 {
		return parts[0]
	}
	return ""
}

func memberLastName(member *slack.User) string {
	if member.Profile.LastName != "" {
		return normalizeName(member.Profile.LastName)
	}
	parts := strings.Fields(normalizeName(member.RealName))
	if len(parts) > 1 {
		return parts[len(parts)-1]
	}
	return ""
}

// resolveByName maps a free-text first/last name to a workspace member via
// the match cascade. Results, including misses, are cached for
// domain.ResolveCacheTTL.
func (s *birthdayService) resolveByName(ctx context.Context, firstName, lastName string) (*slack.User, error) {
	first := normalizeName(firstName)
	last := normalizeName(lastName)
	if first == "" || last == "" {
		return nil, fmt.Errorf("%w: first and last name are both required", domain.ErrMemberNotFound)
	}

	cacheKey := first + "|" + last
	if member, hit := s.cache.get(cacheKey); hit {
		if member == nil {
			return nil, domain.ErrMemberNotFound
		}
		return member, nil
	}

	users, _, err := s.slackClient.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member directory: %w", err)
	}

	for _, stage := range matchStages {
		var candidates []*slack.User
		for i := range users {
			member := &users[i]
			if !s.matchable(member) {
				continue
			}
			if stage.matches(member, first, last) {
				candidates = append(candidates, member)
			}
		}

		if len(candidates) == 0 {
			continue
		}
		if stage.requireUnique && len(candidates) != 1 {
			log.Printf("Name match stage %q ambiguous for %s %s (%d candidates), skipping", stage.name, first, last, len(candidates))
			continue
		}

		s.cache.put(cacheKey, candidates[0])
		return candidates[0], nil
	}

	s.cache.put(cacheKey, nil)
	return nil, domain.ErrMemberNotFound
}

// matchable excludes accounts that should never resolve: deactivated
// members, bots and the system account.
func (s *birthdayService) matchable(member *slack.User) bool {
	return !member.Deleted && !member.IsBot && member.ID != slackSystemUserID
}

// eligibleColleagues filters the membership down to accounts that should
// receive the tribute form for the given celebrant.
func (s *birthdayService) eligibleColleagues(users []slack.User, celebrantID string) []slack.User {
	ownID := s.ownUserID()

	var eligible []slack.User
	for _, member := range users {
		if member.Deleted || member.IsBot {
			continue
		}
		if member.IsRestricted || member.IsUltraRestricted {
			continue
		}
		if member.ID == celebrantID || member.ID == ownID || member.ID == slackSystemUserID {
			continue
		}
		eligible = append(eligible, member)
	}
	return eligible
}
