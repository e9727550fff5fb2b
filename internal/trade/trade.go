package trade

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Coinify trade states.
const (
	StateAwaitingTransferIn = "awaiting_transfer_in"
	StateProcessing         = "processing"
	StateReviewing          = "reviewing"
	StateCompleted          = "completed"
	StateCompletedTest      = "completed_test"
	StateCancelled          = "cancelled"
	StateRejected           = "rejected"
	StateExpired            = "expired"
	StateRefunded           = "refunded"
)

// Trade is a buy or sell order placed through the exchange partner.
type Trade struct {
	ID                  int64           `yaml:"id"`
	State               string          `yaml:"state"`
	IsBuy               bool            `yaml:"is_buy"`
	CreatedAt           time.Time       `yaml:"created_at"`
	BTCAmount           decimal.Decimal `yaml:"btc_amount"`
	FiatAmount          decimal.Decimal `yaml:"fiat_amount"`
	FiatCurrency        string          `yaml:"fiat_currency"`
	Fee                 decimal.Decimal `yaml:"fee"`
	BankAccountNumber   string          `yaml:"bank_account_number,omitempty"`
	TradeSubscriptionID int64           `yaml:"trade_subscription_id,omitempty"`
}

// Subscription is a recurring buy order.
type Subscription struct {
	ID        int64      `yaml:"id"`
	Frequency string     `yaml:"frequency"`
	EndTime   *time.Time `yaml:"end_time,omitempty"`
	IsActive  bool       `yaml:"is_active"`
}

// IsPendingSell reports whether a sell is still waiting on funds to move.
func IsPendingSell(t Trade) bool {
	if t.IsBuy {
		return false
	}
	return t.State == StateAwaitingTransferIn || t.State == StateProcessing
}

// SubscriptionsFor returns the subscriptions linked to t.
func SubscriptionsFor(t Trade, subs []Subscription) []Subscription {
	var out []Subscription
	for _, s := range subs {
		if s.ID == t.TradeSubscriptionID {
			out = append(out, s)
		}
	}
	return out
}

// EffectiveState prefers a non-empty status override over the stored state.
func EffectiveState(t Trade, override string) string {
	if s := strings.ToLower(strings.TrimSpace(override)); s != "" {
		return s
	}
	return t.State
}
