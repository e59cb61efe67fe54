package contract

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// GetUserInfo retrieves user information from Slack
	GetUserInfo(userID string) (*slack.User, error)

	// ListUsers returns the full workspace membership. truncated is true
	// when the pagination safety cap was hit and the listing is partial.
	ListUsers(ctx context.Context) (users []slack.User, truncated bool, err error)

	// OpenConversation opens (or resumes) a direct message channel
	OpenConversation(params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)

	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// AuthTest identifies the bot's own user, excluded from fan-out
	AuthTest() (*slack.AuthTestResponse, error)
}
