package slackclient

import (
	"context"
	"fmt"
	"log"

	"github.com/PostHog/birthday-bot/internal/domain"
	"github.com/PostHog/birthday-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

// Client adapts *slack.Client to contract.SlackClient. It owns the single
// cursor-pagination loop used for every full-directory listing.
type Client struct {
	api *slack.Client
}

func New(api *slack.Client) contract.SlackClient {
	return &Client{api: api}
}

func (c *Client) GetUserInfo(userID string) (*slack.User, error) {
	return c.api.GetUserInfo(userID)
}

// ListUsers walks users.list pages until the cursor runs out, capped at
// MaxDirectoryPages so a misbehaving cursor cannot loop forever. On hitting
// the cap it logs a warning and returns what was gathered, flagged truncated.
func (c *Client) ListUsers(ctx context.Context) ([]slack.User, bool, error) {
	var users []slack.User

	pager := c.api.GetUsersPaginated(slack.GetUsersOptionLimit(domain.DirectoryPageSize))
	for page := 0; page < domain.MaxDirectoryPages; page++ {
		var err error
		pager, err = pager.Next(ctx)
		if pager.Done(err) {
			return users, false, nil
		}
		if failure := pager.Failure(err); failure != nil {
			return users, false, fmt.Errorf("failed to list users: %w", failure)
		}
		users = append(users, pager.Users...)
	}

	log.Printf("Warning: user listing hit the %d page cap, membership may be partial", domain.MaxDirectoryPages)
	return users, true, nil
}

func (c *Client) OpenConversation(params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error) {
	return c.api.OpenConversation(params)
}

func (c *Client) PostMessage(channelID string, options ...slack.MsgOption) (string, string, error) {
	return c.api.PostMessage(channelID, options...)
}

func (c *Client) AuthTest() (*slack.AuthTestResponse, error) {
	return c.api.AuthTest()
}
