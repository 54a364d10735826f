package chatbot

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/gabapcia/solwatch/internal/walletregistry"

	"github.com/shopspring/decimal"
)

const helpText = `🔍 <b>Wallet monitor</b>

Basics:
/help - show this message
/start - start over
/cancel - abandon the current step

Wallets:
/add - monitor a new wallet
/remove - stop monitoring a wallet
/rename - change a wallet label
/list [page] - list monitored wallets
/search &lt;keyword&gt; - find wallets by label or address

Alerts and activity:
/alert - set the amount that triggers an alert
/watch - star or unstar a wallet
/watchlist - show starred wallets
/recent - latest transactions of a wallet
/stats - monitoring summary
/top - most active wallets`

const (
	msgWelcome         = "👋 Welcome!\n\n"
	msgNotImplemented  = "🚧 This command is not implemented yet.\n\nUse /help to see the available commands."
	msgGenericFailure  = "❌ Something went wrong, please try again later."
	msgNoWallets       = "📭 You are not monitoring any wallet yet. Use /add to start."
	msgCancelled       = "👌 Cancelled."
	msgNothingToCancel = "There is nothing to cancel."

	msgAskAddress     = "Send the Solana address you want to monitor."
	msgInvalidAddress = "❌ That is not a valid Solana address. Send a base58 address of 32 to 44 characters, or /cancel."
	msgAskLabel       = "Now send a label for this wallet (up to 64 characters)."
	msgInvalidLabel   = "❌ Labels must have between 1 and 64 characters. Try again, or /cancel."
	msgInvalidIndex   = "❌ Send the number of a wallet from the list, or /cancel."
	msgInvalidAmount  = "❌ Send a positive amount in SOL, for example <code>12.5</code>, or /cancel."
	msgAlreadyAdded   = "❌ This wallet is already being monitored in this chat."
	msgWalletGone     = "❌ That wallet is not monitored anymore."
	msgSearchUsage    = "Usage: /search &lt;keyword&gt;"
	msgNoSearchResult = "❌ No wallet matches your search."
	msgEmptyWatchlist = "📭 Your watchlist is empty. Use /watch to star a wallet."
	msgNoTransactions = "📭 No transactions recorded for this wallet yet."
	msgNoActivity     = "📭 No transactions recorded yet."
)

var menuPrompts = map[Action]string{
	ActionRemove: "Which wallet do you want to stop monitoring?",
	ActionAlert:  "Which wallet should get an alert threshold?",
	ActionWatch:  "Which wallet do you want to star or unstar?",
	ActionRecent: "Which wallet's transactions do you want to see?",
	ActionRename: "Which wallet do you want to rename?",
}

func watchIcon(w walletregistry.Wallet) string {
	if w.IsWatched {
		return "⭐️"
	}
	return "👁️"
}

func walletLine(n int, w walletregistry.Wallet) string {
	return fmt.Sprintf("%d. %s %s\n└─ <code>%s</code>", n, watchIcon(w), html.EscapeString(w.Label), w.Address)
}

func formatMenu(action Action, wallets []walletregistry.Wallet) string {
	lines := make([]string, len(wallets))
	for i, w := range wallets {
		lines[i] = walletLine(i+1, w)
	}

	return menuPrompts[action] + "\n\n" + strings.Join(lines, "\n\n") + "\n\nReply with the wallet number."
}

func formatWalletList(title string, offset int, wallets []walletregistry.Wallet) string {
	lines := make([]string, len(wallets))
	for i, w := range wallets {
		lines[i] = walletLine(offset+i+1, w)
		if w.HasThreshold() {
			lines[i] += "\n└─ alert at " + w.AlertThreshold.Decimal.String() + " SOL"
		}
	}

	return title + "\n\n" + strings.Join(lines, "\n\n")
}

func formatPage(p walletregistry.Page) string {
	title := fmt.Sprintf("📋 Monitored wallets (page %d/%d)", p.Number, p.TotalPages)
	body := formatWalletList(title, p.Offset(), p.Wallets)

	return body + fmt.Sprintf("\n\n%d wallets in total | /list &lt;page&gt; for more", p.Total)
}

func formatAdded(w walletregistry.Wallet) string {
	return fmt.Sprintf(
		"✅ Wallet added!\n\n📝 Label: %s\n🔑 Address: <code>%s</code>\n\nUse /alert to set an alert threshold or /watch to star it.",
		html.EscapeString(w.Label), w.Address,
	)
}

func formatTransactions(w walletregistry.Wallet, txs []walletregistry.Transaction) string {
	lines := make([]string, len(txs))
	for i, tx := range txs {
		lines[i] = fmt.Sprintf(
			"%d. %s SOL · %s\n└─ <a href=\"https://solscan.io/tx/%s\">%s</a>",
			i+1, tx.Amount.StringFixed(2), tx.Timestamp.UTC().Format("2006-01-02 15:04 UTC"),
			tx.Signature, shorten(tx.Signature),
		)
	}

	return fmt.Sprintf("📊 Latest transactions of %s\n\n%s", html.EscapeString(w.Label), strings.Join(lines, "\n\n"))
}

func formatStats(s walletregistry.Stats) string {
	last := "none"
	if s.LastTransactionAt != nil {
		last = s.LastTransactionAt.UTC().Format(time.DateTime) + " UTC"
	}

	return fmt.Sprintf(
		"📊 Monitoring summary\n\n👁️ Wallets: %d\n⭐️ Watched: %d\n📈 Transactions: %d\n📅 Today: %d\n🕒 Latest: %s",
		s.TotalWallets, s.WatchedWallets, s.TotalTransactions, s.TodayTransactions, last,
	)
}

func formatTop(activity []walletregistry.WalletActivity) string {
	lines := make([]string, len(activity))
	for i, a := range activity {
		lines[i] = fmt.Sprintf("%d. %s\n└─ %d transactions | %s SOL",
			i+1, html.EscapeString(a.Wallet.Label), a.TransactionCount, a.TotalVolume.StringFixed(2))
	}

	return "🏆 Most active wallets\n\n" + strings.Join(lines, "\n\n")
}

func shorten(s string) string {
	if len(s) <= 16 {
		return s
	}
	return s[:8] + "…" + s[len(s)-8:]
}

func formatRemoved(w walletregistry.Wallet) string {
	return fmt.Sprintf("✅ Stopped monitoring %s\n🔑 <code>%s</code>", html.EscapeString(w.Label), w.Address)
}

func formatRenamed(w walletregistry.Wallet) string {
	return fmt.Sprintf("✅ Wallet renamed!\n\n🔑 Address: <code>%s</code>\n📝 New label: %s", w.Address, html.EscapeString(w.Label))
}

func formatWatchToggled(w walletregistry.Wallet, watched bool) string {
	if watched {
		return fmt.Sprintf("⭐️ %s added to your watchlist.", html.EscapeString(w.Label))
	}
	return fmt.Sprintf("👁️ %s removed from your watchlist.", html.EscapeString(w.Label))
}

func formatAskAmount(w walletregistry.Wallet) string {
	current := "none"
	if w.HasThreshold() {
		current = w.AlertThreshold.Decimal.String() + " SOL"
	}

	return fmt.Sprintf(
		"Send the minimum amount in SOL that should trigger an alert for %s (current: %s).\n\nSend <code>off</code> to disable alerts.",
		html.EscapeString(w.Label), current,
	)
}

func formatAlertSet(w walletregistry.Wallet, amount decimal.Decimal) string {
	return fmt.Sprintf(
		"✅ Alert set!\n\n📝 Label: %s\n🔑 Address: <code>%s</code>\n💰 Threshold: %s SOL",
		html.EscapeString(w.Label), w.Address, amount.String(),
	)
}

func formatAlertCleared(w walletregistry.Wallet) string {
	return fmt.Sprintf("🔕 Alerts disabled for %s.", html.EscapeString(w.Label))
}
