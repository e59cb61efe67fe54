package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/PostHog/birthday-bot/internal/domain"
	"github.com/slack-go/slack"
)

// Block and action ids shared with the interaction handler.
const (
	TributeMessageBlockID = "tribute_message"
	TributeMediaBlockID   = "tribute_media_url"
	DescriptionBlockID    = "tribute_description"
	TributeInputActionID  = "input"
	TributeSubmitActionID = "submit_tribute"
)

// CollectTributes fans the tribute form out to every eligible colleague of
// the celebrant. Individual send failures are logged and skipped; the
// returned count is how many prompts went out.
func (s *birthdayService) CollectTributes(ctx context.Context, celebrantID string) (int, error) {
	// Tributes reference the celebrant, so a record must exist before any
	// submission arrives. This is the only path besides date-setting that
	// creates one.
	if err := s.dm.Birthday().EnsurePlaceholder(celebrantID); err != nil {
		return 0, fmt.Errorf("failed to register celebrant: %w", err)
	}

	users, _, err := s.slackClient.ListUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch member directory: %w", err)
	}

	celebrantName := s.displayNameFor(celebrantID)
	blocks := tributeFormBlocks(celebrantID, celebrantName)

	sent := 0
	for _, member := range s.eligibleColleagues(users, celebrantID) {
		// Cooperative throttle: pause between fixed-size batches so the
		// fan-out stays under Slack's rate limits.
		if sent > 0 && sent%domain.CollectBatchSize == 0 {
			time.Sleep(domain.CollectBatchPause)
		}

		channel, _, _, err := s.slackClient.OpenConversation(&slack.OpenConversationParameters{
			Users: []string{member.ID},
		})
		if err != nil {
			log.Printf("Failed to open DM with %s: %v", member.ID, err)
			continue
		}

		_, _, err = s.slackClient.PostMessage(channel.ID, slack.MsgOptionBlocks(blocks...))
		if err != nil {
			log.Printf("Failed to send tribute form to %s: %v", member.ID, err)
			continue
		}

		sent++
	}

	log.Printf("Tribute collection for %s: sent %d prompts", celebrantID, sent)
	return sent, nil
}

func (s *birthdayService) displayNameFor(memberID string) string {
	info, err := s.slackClient.GetUserInfo(memberID)
	if err != nil {
		log.Printf("Failed to get user info for %s: %v", memberID, err)
		return fmt.Sprintf("<@%s>", memberID)
	}

	if info.Profile.RealName != "" {
		return info.Profile.RealName
	}
	if info.Profile.DisplayName != "" {
		return info.Profile.DisplayName
	}
	return info.Name
}

// tributeFormBlocks builds the DM form: a message box, an optional media URL
// box, an optional description box and a submit button carrying the
// celebrant id.
func tributeFormBlocks(celebrantID, celebrantName string) []slack.Block {
	header := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf(":birthday: *%s* has a birthday coming up!\nLeave a message and we'll read it out in the celebration thread.", celebrantName),
			false, false),
		nil, nil)

	messageInput := slack.NewInputBlock(
		TributeMessageBlockID,
		slack.NewTextBlockObject(slack.PlainTextType, "Your birthday message", false, false),
		nil,
		slack.NewPlainTextInputBlockElement(
			slack.NewTextBlockObject(slack.PlainTextType, "Happy birthday...", false, false),
			TributeInputActionID))
	messageInput.Element.(*slack.PlainTextInputBlockElement).Multiline = true

	mediaInput := slack.NewInputBlock(
		TributeMediaBlockID,
		slack.NewTextBlockObject(slack.PlainTextType, "Link to a gif or photo (optional)", false, false),
		nil,
		slack.NewPlainTextInputBlockElement(
			slack.NewTextBlockObject(slack.PlainTextType, "https://", false, false),
			TributeInputActionID))
	mediaInput.Optional = true

	descriptionInput := slack.NewInputBlock(
		DescriptionBlockID,
		slack.NewTextBlockObject(slack.PlainTextType, "A few words on what makes them great (optional)", false, false),
		nil,
		slack.NewPlainTextInputBlockElement(
			slack.NewTextBlockObject(slack.PlainTextType, "They always...", false, false),
			TributeInputActionID))
	descriptionInput.Optional = true

	submit := slack.NewActionBlock(
		"tribute_actions",
		slack.NewButtonBlockElement(
			TributeSubmitActionID,
			celebrantID,
			slack.NewTextBlockObject(slack.PlainTextType, "Submit", false, false),
		).WithStyle(slack.StylePrimary))

	return []slack.Block{header, messageInput, mediaInput, descriptionInput, submit}
}
