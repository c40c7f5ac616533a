package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"cerberuschain/internal/models"
)

// Stats are the overview card figures derived from a snapshot.
type Stats struct {
	WalletCount int `json:"wallet_count"`
	// TradeCount counts loaded trades and is capped at
	// TradeHistoryLimit, not a lifetime total.
	TradeCount   int             `json:"trade_count"`
	ActiveBots   int             `json:"active_bots"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}

// Aggregate derives the overview stats from a loaded snapshot.
func Aggregate(snap *Snapshot) Stats {
	return Stats{
		WalletCount:  len(snap.Wallets),
		TradeCount:   len(snap.Trades),
		ActiveBots:   ActiveBotCount(snap.Bots),
		TotalBalance: TotalBalance(snap.Wallets),
	}
}

// TotalBalance sums sol_balance over exactly the wallets passed in.
func TotalBalance(wallets []models.Wallet) decimal.Decimal {
	total := decimal.Zero
	for _, w := range wallets {
		total = total.Add(w.SolBalance)
	}
	return total
}

// ActiveBotCount counts bot configs with the active flag set.
func ActiveBotCount(bots []models.BotConfig) int {
	count := 0
	for _, b := range bots {
		if b.IsActive {
			count++
		}
	}
	return count
}

// FormatSOL renders an amount with four fixed decimals and the
// currency unit.
func FormatSOL(amount decimal.Decimal) string {
	return amount.StringFixed(4) + " SOL"
}

// FormatDate renders a timestamp the way the dashboard displays dates.
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006, 03:04 PM")
}
