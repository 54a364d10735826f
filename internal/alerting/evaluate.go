package alerting

import (
	"fmt"
	"html"
	"strings"

	"github.com/gabapcia/solwatch/internal/txingest"
	"github.com/gabapcia/solwatch/internal/walletregistry"
)

const explorerTxURL = "https://solscan.io/tx/"

// Evaluation is the threshold comparison for one (wallet, transaction) pair.
type Evaluation struct {
	Wallet      walletregistry.Wallet
	Transaction txingest.TransactionRecord
	Triggered   bool
}

// Evaluate compares the transaction amount with the wallet threshold.
// Wallets without a threshold never trigger.
func Evaluate(w walletregistry.Wallet, tx txingest.TransactionRecord) Evaluation {
	return Evaluation{
		Wallet:      w,
		Transaction: tx,
		Triggered:   w.HasThreshold() && tx.Amount.GreaterThanOrEqual(w.AlertThreshold.Decimal),
	}
}

// FormatAlert renders the HTML alert sent to the wallet's chat.
func FormatAlert(w walletregistry.Wallet, tx txingest.TransactionRecord) string {
	var b strings.Builder

	b.WriteString("🚨 <b>Large transaction alert</b>\n\n")
	fmt.Fprintf(&b, "Wallet: <b>%s</b> (<code>%s</code>)\n", html.EscapeString(w.Label), w.Address)
	fmt.Fprintf(&b, "Amount: %s SOL", tx.Amount.StringFixed(2))
	if tx.Direction != txingest.DirectionUnknown {
		fmt.Fprintf(&b, " (%s)", tx.Direction)
	}
	b.WriteString("\n")
	if tx.TokenMint != "" {
		fmt.Fprintf(&b, "Token: <code>%s</code>\n", html.EscapeString(tx.TokenMint))
	}
	fmt.Fprintf(&b, "\nDetails: %s%s", explorerTxURL, tx.Signature)

	return b.String()
}
