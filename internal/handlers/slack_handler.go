package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/PostHog/birthday-bot/internal/domain"
	"github.com/PostHog/birthday-bot/internal/domain/contract"
	"github.com/PostHog/birthday-bot/internal/domain/service"
	slackcmd "github.com/PostHog/birthday-bot/internal/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	birthdayService contract.BirthdayService
	signingSecret   string
}

func New(birthdayService contract.BirthdayService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		birthdayService: birthdayService,
		signingSecret:   signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r)
	if !ok {
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWith(w, h.createErrorResponse(err.Error()+"\n\n"+slackcmd.GetHelpText()))
		return
	}

	response := h.handleCommand(r, cmd, &s)
	h.respondWith(w, response)
}

func (h *SlackHandler) respondWith(w http.ResponseWriter, response *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// verifiedBody reads the request body and checks the Slack signature.
func (h *SlackHandler) verifiedBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdSet:
		return h.handleSet(cmd, slashCmd)
	case slackcmd.CmdSetName:
		return h.handleSetName(r, cmd)
	case slackcmd.CmdList:
		return h.handleList()
	case slackcmd.CmdCollect:
		return h.handleCollect(r, cmd)
	case slackcmd.CmdPost:
		return h.handlePost(r, cmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command. Try `/birthday help`.")
	}
}

// parseMention extracts the user id from a <@U12345> or <@U12345|name> mention.
func parseMention(mention string) (string, bool) {
	mention = strings.TrimSpace(mention)
	if !strings.HasPrefix(mention, "<@") || !strings.HasSuffix(mention, ">") {
		return "", false
	}

	id := strings.TrimSuffix(strings.TrimPrefix(mention, "<@"), ">")
	if idx := strings.Index(id, "|"); idx >= 0 {
		id = id[:idx]
	}
	return id, id != ""
}

func (h *SlackHandler) handleSet(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	var memberID, date string

	switch len(cmd.Args) {
	case 1:
		// Own birthday: /birthday set DD-MM
		memberID = slashCmd.UserID
		date = cmd.Args[0]
	case 2:
		mentioned, ok := parseMention(cmd.Args[0])
		if !ok {
			return h.createErrorResponse("Please mention the user: `/birthday set @user DD-MM`")
		}
		memberID = mentioned
		date = cmd.Args[1]
	default:
		return h.createErrorResponse("Usage: `/birthday set DD-MM` or `/birthday set @user DD-MM`")
	}

	if err := h.birthdayService.SetBirthday(memberID, date); err != nil {
		return h.errorResponseFor(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf(":white_check_mark: Birthday for <@%s> saved as %s.", memberID, date),
	}
}

func (h *SlackHandler) handleSetName(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) < 3 {
		return h.createErrorResponse("Usage: `/birthday setname First Last DD-MM`")
	}

	firstName, lastName, date := cmd.Args[0], cmd.Args[1], cmd.Args[2]

	memberID, err := h.birthdayService.SetBirthdayByName(r.Context(), firstName, lastName, date)
	if err != nil {
		return h.errorResponseFor(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf(":white_check_mark: Birthday for %s %s (<@%s>) saved as %s.", firstName, lastName, memberID, date),
	}
}

func (h *SlackHandler) handleList() *slack.Msg {
	birthdays, err := h.birthdayService.ListBirthdays()
	if err != nil {
		log.Printf("Failed to list birthdays: %v", err)
		return h.createErrorResponse("Could not load birthdays, please try again.")
	}

	var lines []string
	for _, birthday := range birthdays {
		// Placeholders are members awaiting a date, not worth displaying.
		if !birthday.HasKnownDate() {
			continue
		}
		lines = append(lines, fmt.Sprintf("• <@%s> — %s", birthday.MemberID, birthday.BirthDate))
	}

	if len(lines) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No birthdays stored yet. Use `/birthday set DD-MM` to add yours!",
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "*Stored birthdays:*\n" + strings.Join(lines, "\n"),
	}
}

func (h *SlackHandler) handleCollect(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention the celebrant: `/birthday collect @user`")
	}

	celebrantID, ok := parseMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse("Please mention the celebrant: `/birthday collect @user`")
	}

	sent, err := h.birthdayService.CollectTributes(r.Context(), celebrantID)
	if err != nil {
		log.Printf("Failed to collect tributes for %s: %v", celebrantID, err)
		return h.createErrorResponse("Could not start tribute collection, please try again.")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf(":mailbox_with_mail: Asked %d colleagues for tributes for <@%s>.", sent, celebrantID),
	}
}

func (h *SlackHandler) handlePost(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention the celebrant: `/birthday post @user`")
	}

	celebrantID, ok := parseMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse("Please mention the celebrant: `/birthday post @user`")
	}

	if err := h.birthdayService.PostCelebration(r.Context(), celebrantID); err != nil {
		log.Printf("Failed to post celebration for %s: %v", celebrantID, err)
		return h.createErrorResponse("Could not post the celebration thread, please try again.")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf(":tada: Celebration thread for <@%s> posted.", celebrantID),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) errorResponseFor(err error) *slack.Msg {
	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		return h.createErrorResponse("That date doesn't look right. Dates are `DD-MM`, e.g. `08-06` for June 8th.")
	case errors.Is(err, domain.ErrMemberNotFound):
		return h.createErrorResponse("I couldn't match that name to exactly one person. Try `/birthday set @user DD-MM` instead.")
	case errors.Is(err, domain.ErrCelebrantUnknown):
		return h.createErrorResponse("That person isn't registered yet. Run `/birthday collect @user` first.")
	default:
		log.Printf("Command failed: %v", err)
		return h.createErrorResponse("Something went wrong, please try again.")
	}
}

func (h *SlackHandler) createErrorResponse(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

// HandleInteraction receives Block Kit callbacks from the tribute form DMs.
func (h *SlackHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r)
	if !ok {
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(r.PostFormValue("payload")), &callback); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if callback.Type != slack.InteractionTypeBlockActions {
		w.WriteHeader(http.StatusOK)
		return
	}

	for _, action := range callback.ActionCallback.BlockActions {
		if action.ActionID != service.TributeSubmitActionID {
			continue
		}

		h.handleTributeSubmission(r, &callback, action.Value)
		break
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SlackHandler) handleTributeSubmission(r *http.Request, callback *slack.InteractionCallback, celebrantID string) {
	message := blockValue(callback, service.TributeMessageBlockID)
	mediaURL := blockValue(callback, service.TributeMediaBlockID)
	description := blockValue(callback, service.DescriptionBlockID)

	if message == "" && description == "" {
		h.ackInteraction(callback, "Please write a message or a description before submitting.")
		return
	}

	senderName := callback.User.Profile.RealName
	if senderName == "" {
		senderName = callback.User.Name
	}

	var stored, duplicate bool
	if message != "" {
		inserted, err := h.birthdayService.SubmitTribute(celebrantID, callback.User.ID, senderName, message, mediaURL)
		if err != nil {
			log.Printf("Failed to store tribute from %s: %v", callback.User.ID, err)
			h.ackInteraction(callback, "Sorry, I couldn't save your message. Please try again.")
			return
		}
		stored = stored || inserted
		duplicate = duplicate || !inserted
	}

	if description != "" {
		inserted, err := h.birthdayService.SubmitDescription(celebrantID, callback.User.ID, senderName, description)
		if err != nil {
			log.Printf("Failed to store description from %s: %v", callback.User.ID, err)
			h.ackInteraction(callback, "Sorry, I couldn't save your description. Please try again.")
			return
		}
		stored = stored || inserted
		duplicate = duplicate || !inserted
	}

	switch {
	case stored:
		h.ackInteraction(callback, ":heart: Thanks! Your contribution is saved for the big day.")
	case duplicate:
		h.ackInteraction(callback, "Looks like you already submitted that today, it's safely stored.")
	}
}

func blockValue(callback *slack.InteractionCallback, blockID string) string {
	if callback.BlockActionState == nil {
		return ""
	}

	actions, ok := callback.BlockActionState.Values[blockID]
	if !ok {
		return ""
	}

	for _, action := range actions {
		return strings.TrimSpace(action.Value)
	}
	return ""
}

func (h *SlackHandler) ackInteraction(callback *slack.InteractionCallback, text string) {
	if callback.ResponseURL == "" {
		return
	}

	err := slack.PostWebhook(callback.ResponseURL, &slack.WebhookMessage{
		Text:            text,
		ReplaceOriginal: false,
	})
	if err != nil {
		log.Printf("Failed to acknowledge interaction: %v", err)
	}
}
