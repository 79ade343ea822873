// Package router implements the message routing and ticket correlation
// core: it classifies each inbound message, forwards new tickets to the
// support group, relays agent replies back to the originating chat, and
// handles the settings/command surface.
package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"helpdeskbot/internal/config"
	"helpdeskbot/internal/i18n"
	"helpdeskbot/internal/store"
)

// Transport is the outbound side of the messaging collaborator. The router
// never talks to the Telegram API directly.
type Transport interface {
	// Forward copies a message into another chat and returns the new
	// message's identifier in the destination chat.
	Forward(ctx context.Context, fromChatID int64, messageID int, toChatID int64) (int, error)

	// SendText sends a text message, optionally with a one-time reply
	// keyboard described as rows of button labels.
	SendText(ctx context.Context, chatID int64, text string, keyboard [][]string) error
}

// Transport failure kinds. Both abort the handling of the single message
// being processed; neither is retried here.
var (
	ErrForwardFailed = errors.New("forward failed")
	ErrSendFailed    = errors.New("send failed")
)

// Deps provides the router's collaborators.
type Deps struct {
	Logger    *slog.Logger
	Transport Transport
	Store     store.Store
	Resolver  *i18n.Resolver
	Config    *config.Config
}

// Router classifies inbound messages and executes exactly one action per
// message: at most one outbound transport call and at most one store write.
type Router struct {
	logger         *slog.Logger
	transport      Transport
	store          store.Store
	resolver       *i18n.Resolver
	supportChatID  int64
	forwardTimeout time.Duration
	botName        string
}

// New creates a Router from its dependencies.
func New(deps Deps) *Router {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	botName := ""
	if deps.Config.Telegram.BotInfo != nil {
		botName = deps.Config.Telegram.BotInfo.FirstName
	}

	return &Router{
		logger:         logger.With("component", "router"),
		transport:      deps.Transport,
		store:          deps.Store,
		resolver:       deps.Resolver,
		supportChatID:  deps.Config.Telegram.SupportChatID,
		forwardTimeout: deps.Config.Router.ForwardTimeout,
		botName:        botName,
	}
}

// Handle classifies msg and executes the matching action. The first
// matching rule wins:
//
//  1. known command
//  2. language selection (exact label match; label-shaped text that
//     matches no label gets a "pick again" reply)
//  3. agent reply in the support group
//  4. new ticket from a private chat
//  5. unrecognized command
//  6. everything else is ignored
//
// Any returned error is local to this message.
func (r *Router) Handle(ctx context.Context, msg Message) error {
	if msg.IsCommand() {
		if handled, err := r.dispatchCommand(ctx, msg); handled {
			return err
		}
	}

	if code, ok := i18n.CodeForLabel(msg.Text); ok {
		return r.handleLanguageSelection(ctx, msg, code)
	}
	if i18n.LooksLikeSelection(msg.Text) {
		return r.handleUnknownSelection(ctx, msg)
	}

	if msg.ChatID == r.supportChatID && msg.ReplyToID != 0 {
		return r.handleAgentReply(ctx, msg)
	}

	if msg.ChatKind == ChatKindPrivate && msg.Text != "" && !msg.IsCommand() {
		return r.handleNewTicket(ctx, msg)
	}

	if msg.IsCommand() {
		return r.handleUnknownCommand(ctx, msg)
	}

	r.logger.DebugContext(ctx, "Ignoring unclassified message",
		"chat_id", msg.ChatID, "message_id", msg.ID, "chat_kind", msg.ChatKind)
	return nil
}

// dispatchCommand routes known commands. It reports handled=false for
// command names outside the known set so later classification rules can
// still examine the message.
func (r *Router) dispatchCommand(ctx context.Context, msg Message) (bool, error) {
	switch msg.CommandName() {
	case "start", "help":
		return true, r.handleStart(ctx, msg)
	case "support":
		return true, r.handleSupport(ctx, msg)
	case "settings":
		return true, r.handleSettings(ctx, msg)
	}
	return false, nil
}

// translator resolves the request-scoped translator for a chat: its stored
// preference when present, the configured default otherwise.
func (r *Router) translator(ctx context.Context, chatID int64) (*i18n.Translator, error) {
	code, ok, err := r.store.GetLanguage(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !ok {
		code = r.resolver.DefaultLanguage()
	}
	return r.resolver.Resolve(code), nil
}

func (r *Router) handleStart(ctx context.Context, msg Message) error {
	tr, err := r.translator(ctx, msg.ChatID)
	if err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "Handling start command", "chat_id", msg.ChatID)

	welcome := tr.Tf("welcome", map[string]any{"BotName": r.botName})
	keyboard := [][]string{{"/support"}, {"/settings"}}
	return r.sendText(ctx, msg.ChatID, welcome, keyboard)
}

func (r *Router) handleSupport(ctx context.Context, msg Message) error {
	tr, err := r.translator(ctx, msg.ChatID)
	if err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "Handling support command", "chat_id", msg.ChatID)
	return r.sendText(ctx, msg.ChatID, tr.T("support_prompt"), nil)
}

func (r *Router) handleSettings(ctx context.Context, msg Message) error {
	tr, err := r.translator(ctx, msg.ChatID)
	if err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "Handling settings command", "chat_id", msg.ChatID)

	var b strings.Builder
	b.WriteString(tr.T("choose_language"))
	keyboard := make([][]string, 0, len(i18n.Supported()))
	for _, lang := range i18n.Supported() {
		b.WriteString("\n")
		b.WriteString(lang.Label)
		keyboard = append(keyboard, []string{lang.Label})
	}

	return r.sendText(ctx, msg.ChatID, b.String(), keyboard)
}

func (r *Router) handleLanguageSelection(ctx context.Context, msg Message, code string) error {
	if err := r.store.SetLanguage(ctx, msg.ChatID, code); err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "Language preference updated", "chat_id", msg.ChatID, "language", code)

	// Confirm in the language the user just picked.
	lang, _ := i18n.ByCode(code)
	tr := r.resolver.Resolve(code)
	confirmation := tr.Tf("language_updated", map[string]any{"Language": lang.Name})
	return r.sendText(ctx, msg.ChatID, confirmation, nil)
}

func (r *Router) handleUnknownSelection(ctx context.Context, msg Message) error {
	tr, err := r.translator(ctx, msg.ChatID)
	if err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "Unknown language selection", "chat_id", msg.ChatID)
	return r.sendText(ctx, msg.ChatID, tr.T("unknown_language"), nil)
}

// handleAgentReply relays an agent's reply in the support group back to the
// chat that opened the ticket. An expired or unknown ticket is dropped
// silently; the agent gets no error.
func (r *Router) handleAgentReply(ctx context.Context, msg Message) error {
	originChatID, ok, err := r.store.GetTicket(ctx, msg.ReplyToID)
	if err != nil {
		return err
	}
	if !ok {
		r.logger.DebugContext(ctx, "No live ticket for agent reply, dropping",
			"forwarded_message_id", msg.ReplyToID)
		return nil
	}
	if msg.Text == "" {
		r.logger.DebugContext(ctx, "Agent reply has no text, dropping",
			"forwarded_message_id", msg.ReplyToID)
		return nil
	}

	r.logger.InfoContext(ctx, "Relaying agent reply",
		"forwarded_message_id", msg.ReplyToID, "origin_chat_id", originChatID)

	// Agent text goes back verbatim, untranslated.
	return r.sendText(ctx, originChatID, msg.Text, nil)
}

// handleNewTicket forwards a private message to the support group and
// records the correlation. The record is written only after the forward has
// succeeded, so a failed or timed-out forward leaves no state behind.
func (r *Router) handleNewTicket(ctx context.Context, msg Message) error {
	fctx, cancel := context.WithTimeout(ctx, r.forwardTimeout)
	defer cancel()

	forwardedID, err := r.transport.Forward(fctx, msg.ChatID, msg.ID, r.supportChatID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrForwardFailed, err)
	}

	if err := r.store.PutTicket(ctx, forwardedID, msg.ChatID); err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "Ticket opened",
		"origin_chat_id", msg.ChatID, "message_id", msg.ID, "forwarded_message_id", forwardedID)
	return nil
}

func (r *Router) handleUnknownCommand(ctx context.Context, msg Message) error {
	tr, err := r.translator(ctx, msg.ChatID)
	if err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "Unknown command",
		"chat_id", msg.ChatID, "command", msg.CommandName())
	return r.sendText(ctx, msg.ChatID, tr.T("unknown_command"), nil)
}

func (r *Router) sendText(ctx context.Context, chatID int64, text string, keyboard [][]string) error {
	if err := r.transport.SendText(ctx, chatID, text, keyboard); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return nil
}
