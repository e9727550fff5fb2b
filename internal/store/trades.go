package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/FluidXR/lockboxctl/internal/trade"
)

// ErrTradeNotFound is returned when a trade id is not in the database.
var ErrTradeNotFound = errors.New("trade not found")

const tradeColumns = `id, state, is_buy, created_at, btc_amount, fiat_amount, fiat_currency, fee, bank_account_number, subscription_id`

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// UpsertTrade inserts or replaces a trade by id.
func (s *DB) UpsertTrade(t trade.Trade) error {
	return upsertTrade(s.db, t)
}

func upsertTrade(db execer, t trade.Trade) error {
	_, err := db.Exec(
		`INSERT INTO trades (`+tradeColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   state = excluded.state,
		   is_buy = excluded.is_buy,
		   created_at = excluded.created_at,
		   btc_amount = excluded.btc_amount,
		   fiat_amount = excluded.fiat_amount,
		   fiat_currency = excluded.fiat_currency,
		   fee = excluded.fee,
		   bank_account_number = excluded.bank_account_number,
		   subscription_id = excluded.subscription_id`,
		t.ID, t.State, t.IsBuy, t.CreatedAt.Unix(),
		t.BTCAmount.String(), t.FiatAmount.String(), t.FiatCurrency, t.Fee.String(),
		t.BankAccountNumber, t.TradeSubscriptionID,
	)
	if err != nil {
		return fmt.Errorf("upsert trade %d: %w", t.ID, err)
	}
	return nil
}

// GetTrade returns a single trade.
func (s *DB) GetTrade(id int64) (trade.Trade, error) {
	row := s.db.QueryRow(`SELECT `+tradeColumns+` FROM trades WHERE id = ?`, id)
	t, err := scanTrade(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return trade.Trade{}, fmt.Errorf("%w: %d", ErrTradeNotFound, id)
		}
		return trade.Trade{}, fmt.Errorf("get trade %d: %w", id, err)
	}
	return t, nil
}

// ListTrades returns all trades, newest first.
func (s *DB) ListTrades() ([]trade.Trade, error) {
	rows, err := s.db.Query(`SELECT ` + tradeColumns + ` FROM trades ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	defer rows.Close()

	var trades []trade.Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}

// UpsertSubscription inserts or replaces a subscription by id.
func (s *DB) UpsertSubscription(sub trade.Subscription) error {
	return upsertSubscription(s.db, sub)
}

func upsertSubscription(db execer, sub trade.Subscription) error {
	var end sql.NullInt64
	if sub.EndTime != nil {
		end = sql.NullInt64{Int64: sub.EndTime.Unix(), Valid: true}
	}
	_, err := db.Exec(
		`INSERT INTO subscriptions (id, frequency, end_time, is_active)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   frequency = excluded.frequency,
		   end_time = excluded.end_time,
		   is_active = excluded.is_active`,
		sub.ID, sub.Frequency, end, sub.IsActive,
	)
	if err != nil {
		return fmt.Errorf("upsert subscription %d: %w", sub.ID, err)
	}
	return nil
}

// ListSubscriptions returns every stored subscription ordered by id.
func (s *DB) ListSubscriptions() ([]trade.Subscription, error) {
	rows, err := s.db.Query(`SELECT id, frequency, end_time, is_active FROM subscriptions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []trade.Subscription
	for rows.Next() {
		var sub trade.Subscription
		var end sql.NullInt64
		if err := rows.Scan(&sub.ID, &sub.Frequency, &end, &sub.IsActive); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		if end.Valid {
			t := time.Unix(end.Int64, 0).UTC()
			sub.EndTime = &t
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(row scanner) (trade.Trade, error) {
	var t trade.Trade
	var created int64
	var btc, fiat, fee string
	if err := row.Scan(&t.ID, &t.State, &t.IsBuy, &created, &btc, &fiat, &t.FiatCurrency, &fee,
		&t.BankAccountNumber, &t.TradeSubscriptionID); err != nil {
		return t, err
	}
	t.CreatedAt = time.Unix(created, 0).UTC()

	var err error
	if t.BTCAmount, err = decimal.NewFromString(btc); err != nil {
		return t, fmt.Errorf("btc amount %q: %w", btc, err)
	}
	if t.FiatAmount, err = decimal.NewFromString(fiat); err != nil {
		return t, fmt.Errorf("fiat amount %q: %w", fiat, err)
	}
	if t.Fee, err = decimal.NewFromString(fee); err != nil {
		return t, fmt.Errorf("fee %q: %w", fee, err)
	}
	return t, nil
}
