package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/slack-go/slack"
)

// PostCelebration posts the consolidated birthday thread for the celebrant:
// a public announcement, the poem, the aggregated descriptions and one reply
// per tribute, then marks posted rows delivered. With nothing undelivered it
// posts nothing, so re-running after a completed post is a no-op.
func (s *birthdayService) PostCelebration(ctx context.Context, celebrantID string) error {
	descriptions, err := s.dm.Description().ListUndelivered(celebrantID)
	if err != nil {
		return fmt.Errorf("failed to load descriptions: %w", err)
	}

	tributes, err := s.dm.Tribute().ListUndelivered(celebrantID)
	if err != nil {
		return fmt.Errorf("failed to load tributes: %w", err)
	}

	if len(descriptions) == 0 && len(tributes) == 0 {
		log.Printf("Nothing undelivered for %s, skipping celebration post", celebrantID)
		return nil
	}

	announcement := fmt.Sprintf(":tada: Happy birthday <@%s>! :birthday:", celebrantID)
	_, threadTS, err := s.slackClient.PostMessage(s.birthdayChannelID, slack.MsgOptionText(announcement, false))
	if err != nil {
		log.Printf("Failed to post birthday announcement for %s: %v", celebrantID, err)
		return fmt.Errorf("failed to post announcement: %w", err)
	}

	if len(descriptions) > 0 {
		texts := make([]string, 0, len(descriptions))
		for _, description := range descriptions {
			texts = append(texts, description.Text)
		}

		poem := s.poem.Generate(ctx, texts)
		_, _, err = s.slackClient.PostMessage(s.birthdayChannelID,
			slack.MsgOptionText(poem, false),
			slack.MsgOptionTS(threadTS))
		if err != nil {
			log.Printf("Failed to post poem for %s: %v", celebrantID, err)
			return fmt.Errorf("failed to post poem: %w", err)
		}

		var aggregated strings.Builder
		aggregated.WriteString(fmt.Sprintf("What makes <@%s> great, according to the team:\n", celebrantID))
		for _, description := range descriptions {
			aggregated.WriteString(fmt.Sprintf("• _%s_ — %s\n", description.Text, description.SenderName))
		}

		_, _, err = s.slackClient.PostMessage(s.birthdayChannelID,
			slack.MsgOptionText(aggregated.String(), false),
			slack.MsgOptionTS(threadTS))
		if err != nil {
			log.Printf("Failed to post descriptions for %s: %v", celebrantID, err)
			return fmt.Errorf("failed to post descriptions: %w", err)
		}

		if _, err := s.dm.Description().MarkDelivered(celebrantID); err != nil {
			return fmt.Errorf("failed to mark descriptions delivered: %w", err)
		}
	}

	// Oldest first: first received, first read aloud. A failure mid-loop
	// aborts; rows already marked delivered above stay marked.
	for _, tribute := range tributes {
		message := fmt.Sprintf("*%s*: %s", tribute.SenderName, tribute.Message)
		if tribute.MediaURL != "" {
			message += "\n" + tribute.MediaURL
		}

		_, _, err = s.slackClient.PostMessage(s.birthdayChannelID,
			slack.MsgOptionText(message, false),
			slack.MsgOptionTS(threadTS))
		if err != nil {
			log.Printf("Failed to post tribute %d for %s: %v", tribute.ID, celebrantID, err)
			return fmt.Errorf("failed to post tribute: %w", err)
		}
	}

	if _, err := s.dm.Tribute().MarkDelivered(celebrantID); err != nil {
		return fmt.Errorf("failed to mark tributes delivered: %w", err)
	}

	if err := s.dm.Birthday().SetNotifiedAt(celebrantID, time.Now().In(s.loc)); err != nil {
		// Bookkeeping only, the thread is already posted.
		log.Printf("Failed to record notification time for %s: %v", celebrantID, err)
	}

	return nil
}
