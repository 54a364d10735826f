// Package chatbot implements the chat command interface: a command router
// plus the per-chat multi-turn flows used to manage monitored wallets.
package chatbot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gabapcia/solwatch/internal/alerting"
	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/pkg/metrics"
	"github.com/gabapcia/solwatch/internal/pkg/validator"
	"github.com/gabapcia/solwatch/internal/walletregistry"

	"github.com/shopspring/decimal"
)

const recentTransactionsLimit = 5

// IncomingMessage is one inbound chat message.
type IncomingMessage struct {
	ChatID    int64
	MessageID int64 // zero when unknown
	Text      string
}

// Sender delivers replies. alerting.Service satisfies it.
type Sender interface {
	Send(ctx context.Context, msg alerting.Message) error
}

// Service handles inbound chat messages.
type Service interface {
	// HandleMessage routes msg and sends the reply to its chat. Messages of
	// the same chat are handled one at a time.
	//
	// Delivery failures are logged, not returned; the only error is the
	// context ending while waiting for the chat's previous turn.
	HandleMessage(ctx context.Context, msg IncomingMessage) error
}

type service struct {
	registry walletregistry.Service
	sender   Sender
	store    *StateStore
}

var _ Service = (*service)(nil)

// New creates the command dispatcher.
func New(registry walletregistry.Service, sender Sender, store *StateStore) *service {
	return &service{
		registry: registry,
		sender:   sender,
		store:    store,
	}
}

func (s *service) HandleMessage(ctx context.Context, msg IncomingMessage) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	ctx = logger.Derive(ctx, "chat.id", msg.ChatID)

	return s.store.WithChat(ctx, msg.ChatID, func(state *ConversationState) error {
		reply := s.handle(ctx, msg.ChatID, text, state)
		if reply == "" {
			return nil
		}

		out := alerting.Message{ChatID: msg.ChatID, Text: reply}
		if msg.MessageID != 0 {
			out.ReplyToID = &msg.MessageID
		}

		if err := s.sender.Send(ctx, out); err != nil {
			logger.Error(ctx, "error sending chat reply", "state", state.Type.String(), "error", err)
		}

		return nil
	})
}

// handle runs one turn and returns the reply text.
func (s *service) handle(ctx context.Context, chatID int64, text string, state *ConversationState) string {
	cmd, args := parseCommand(text)
	h, known := s.commands()[cmd]

	if cmd == "/cancel" {
		metrics.ChatCommands.WithLabelValues("cancel").Inc()
		if !state.Active() {
			return msgNothingToCancel
		}
		state.Reset()
		return msgCancelled
	}

	switch {
	case known:
		metrics.ChatCommands.WithLabelValues(strings.TrimPrefix(cmd, "/")).Inc()
	case state.Active():
		metrics.ChatCommands.WithLabelValues("flow_input").Inc()
	default:
		metrics.ChatCommands.WithLabelValues("unknown").Inc()
	}

	// A known command always starts over; anything else feeds the active flow.
	if known {
		state.Reset()
		return h(ctx, chatID, args, state)
	}

	if state.Active() {
		return s.continueFlow(ctx, chatID, text, state)
	}

	return msgNotImplemented
}

type commandHandler func(ctx context.Context, chatID int64, args string, state *ConversationState) string

func (s *service) commands() map[string]commandHandler {
	return map[string]commandHandler{
		"/start":     s.start,
		"/help":      s.help,
		"/add":       s.add,
		"/remove":    s.menu(ActionRemove),
		"/alert":     s.menu(ActionAlert),
		"/watch":     s.menu(ActionWatch),
		"/recent":    s.menu(ActionRecent),
		"/rename":    s.menu(ActionRename),
		"/list":      s.list,
		"/search":    s.search,
		"/stats":     s.stats,
		"/watchlist": s.watchlist,
		"/top":       s.top,
	}
}

// commandAliases maps the long command names to their short form.
var commandAliases = map[string]string{
	"/add_wallet":    "/add",
	"/remove_wallet": "/remove",
	"/rename_wallet": "/rename",
	"/list_wallets":  "/list",
	"/search_wallet": "/search",
	"/set_alert":     "/alert",
	"/recent_txs":    "/recent",
	"/top_wallets":   "/top",
}

// parseCommand splits a leading command token from its arguments. The token
// is lowercased and stripped of any @botname suffix. Text that does not start
// with a slash has no command.
func parseCommand(text string) (cmd, args string) {
	if !strings.HasPrefix(text, "/") {
		return "", text
	}

	token, rest, _ := strings.Cut(text, " ")
	token, _, _ = strings.Cut(strings.ToLower(token), "@")
	if alias, ok := commandAliases[token]; ok {
		token = alias
	}

	return token, strings.TrimSpace(rest)
}

func (s *service) failure(ctx context.Context, op string, err error) string {
	logger.Error(ctx, "chat command failed", "op", op, "error", err)
	return msgGenericFailure
}

func (s *service) start(ctx context.Context, chatID int64, args string, state *ConversationState) string {
	return msgWelcome + helpText
}

func (s *service) help(ctx context.Context, chatID int64, args string, state *ConversationState) string {
	return helpText
}

func (s *service) add(ctx context.Context, chatID int64, args string, state *ConversationState) string {
	state.Type = StateWaitingForWallet
	state.Action = ActionAdd

	if args == "" {
		return msgAskAddress
	}

	address, label, _ := strings.Cut(args, " ")
	reply := s.continueFlow(ctx, chatID, address, state)
	if state.Type != StateWaitingForName || strings.TrimSpace(label) == "" {
		return reply
	}

	return s.continueFlow(ctx, chatID, label, state)
}

// menu starts a flow that begins by picking one of the chat's wallets.
func (s *service) menu(action Action) commandHandler {
	return func(ctx context.Context, chatID int64, args string, state *ConversationState) string {
		wallets, err := s.registry.ListWallets(ctx, chatID)
		if err != nil {
			return s.failure(ctx, "list_wallets", err)
		}

		if len(wallets) == 0 {
			return msgNoWallets
		}

		state.Type = StateWaitingForWallet
		state.Action = action
		state.Wallets = wallets

		return formatMenu(action, wallets)
	}
}

func (s *service) list(ctx context.Context, chatID int64, args string, state *ConversationState) string {
	page := 1
	if n, err := strconv.Atoi(args); err == nil {
		page = n
	}

	p, err := s.registry.ListWalletsPage(ctx, chatID, page)
	if err != nil {
		return s.failure(ctx, "list_wallets_page", err)
	}

	if p.Total == 0 {
		return msgNoWallets
	}

	return formatPage(p)
}

func (s *service) search(ctx context.Context, chatID int64, args string, state *ConversationState) string {
	if args == "" {
		return msgSearchUsage
	}

	wallets, err := s.registry.SearchWallets(ctx, chatID, args)
	if err != nil {
		return s.failure(ctx, "search_wallets", err)
	}

	if len(wallets) == 0 {
		return msgNoSearchResult
	}

	return formatWalletList("🔍 Search results", 0, wallets)
}

func (s *service) stats(ctx context.Context, chatID int64, args string, state *ConversationState) string {
	st, err := s.registry.Stats(ctx, chatID)
	if err != nil {
		return s.failure(ctx, "stats", err)
	}

	return formatStats(st)
}

func (s *service) watchlist(ctx context.Context, chatID int64, args string, state *ConversationState) string {
	wallets, err := s.registry.Watchlist(ctx, chatID)
	if err != nil {
		return s.failure(ctx, "watchlist", err)
	}

	if len(wallets) == 0 {
		return msgEmptyWatchlist
	}

	return formatWalletList("⭐️ Watchlist", 0, wallets)
}

func (s *service) top(ctx context.Context, chatID int64, args string, state *ConversationState) string {
	activity, err := s.registry.TopWallets(ctx, chatID)
	if err != nil {
		return s.failure(ctx, "top_wallets", err)
	}

	if len(activity) == 0 {
		return msgNoActivity
	}

	return formatTop(activity)
}

// continueFlow feeds free text into the chat's active flow.
func (s *service) continueFlow(ctx context.Context, chatID int64, text string, state *ConversationState) string {
	switch state.Type {
	case StateWaitingForWallet:
		if state.Action == ActionAdd {
			return s.receiveAddress(text, state)
		}
		return s.receiveSelection(ctx, chatID, text, state)
	case StateWaitingForName:
		return s.receiveLabel(ctx, chatID, text, state)
	case StateWaitingForAmount:
		return s.receiveAmount(ctx, chatID, text, state)
	default:
		return msgNotImplemented
	}
}

func (s *service) receiveAddress(text string, state *ConversationState) string {
	address := strings.TrimSpace(text)
	if !validator.IsSolanaAddress(address) {
		return msgInvalidAddress
	}

	state.PendingAddress = address
	state.Type = StateWaitingForName
	return msgAskLabel
}

func (s *service) receiveSelection(ctx context.Context, chatID int64, text string, state *ConversationState) string {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 || n > len(state.Wallets) {
		return msgInvalidIndex
	}

	selected := state.Wallets[n-1]

	switch state.Action {
	case ActionRemove:
		state.Reset()
		if err := s.registry.RemoveWallet(ctx, chatID, selected.Address); err != nil {
			return s.walletFailure(ctx, "remove_wallet", err)
		}
		return formatRemoved(selected)

	case ActionWatch:
		state.Reset()
		watched, err := s.registry.ToggleWatch(ctx, chatID, selected.Address)
		if err != nil {
			return s.walletFailure(ctx, "toggle_watch", err)
		}
		return formatWatchToggled(selected, watched)

	case ActionRecent:
		state.Reset()
		txs, err := s.registry.RecentTransactions(ctx, chatID, selected.Address, recentTransactionsLimit)
		if err != nil {
			return s.failure(ctx, "recent_transactions", err)
		}
		if len(txs) == 0 {
			return msgNoTransactions
		}
		return formatTransactions(selected, txs)

	case ActionAlert:
		state.Selected = &selected
		state.Type = StateWaitingForAmount
		return formatAskAmount(selected)

	case ActionRename:
		state.Selected = &selected
		state.Type = StateWaitingForName
		return msgAskLabel

	default:
		state.Reset()
		return msgNotImplemented
	}
}

func (s *service) receiveLabel(ctx context.Context, chatID int64, text string, state *ConversationState) string {
	label := strings.TrimSpace(text)

	if state.Action == ActionRename && state.Selected != nil {
		err := s.registry.RenameWallet(ctx, chatID, state.Selected.Address, label)
		switch {
		case errors.Is(err, validator.ErrValidationFailed):
			return msgInvalidLabel
		case err != nil:
			state.Reset()
			return s.walletFailure(ctx, "rename_wallet", err)
		}

		renamed := *state.Selected
		renamed.Label = label
		state.Reset()
		return formatRenamed(renamed)
	}

	w, err := s.registry.AddWallet(ctx, chatID, state.PendingAddress, label)
	switch {
	case errors.Is(err, validator.ErrValidationFailed):
		return msgInvalidLabel
	case errors.Is(err, walletregistry.ErrWalletAlreadyRegistered):
		state.Reset()
		return msgAlreadyAdded
	case err != nil:
		return s.failure(ctx, "add_wallet", err)
	}

	state.Reset()
	return formatAdded(w)
}

func (s *service) receiveAmount(ctx context.Context, chatID int64, text string, state *ConversationState) string {
	if state.Selected == nil {
		state.Reset()
		return msgNotImplemented
	}
	selected := *state.Selected

	input := strings.TrimSpace(text)
	if strings.EqualFold(input, "off") {
		state.Reset()
		if err := s.registry.ClearAlertThreshold(ctx, chatID, selected.Address); err != nil {
			return s.walletFailure(ctx, "clear_alert_threshold", err)
		}
		return formatAlertCleared(selected)
	}

	amount, err := decimal.NewFromString(input)
	if err != nil || !amount.IsPositive() {
		return msgInvalidAmount
	}

	state.Reset()
	if err := s.registry.SetAlertThreshold(ctx, chatID, selected.Address, amount); err != nil {
		return s.walletFailure(ctx, "set_alert_threshold", err)
	}

	return formatAlertSet(selected, amount)
}

// walletFailure maps a wallet mutation error to its reply.
func (s *service) walletFailure(ctx context.Context, op string, err error) string {
	if errors.Is(err, walletregistry.ErrWalletNotFound) {
		return msgWalletGone
	}
	return s.failure(ctx, op, err)
}
