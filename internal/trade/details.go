package trade

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout matches "MMMM D YYYY @ h:mm A", e.g. "March 7 2018 @ 4:05 PM".
const DateLayout = "January 2 2006 @ 3:04 PM"

const pendingSellFootnote = "*Please note: depending on your bank's transfer policies, you will see the funds reflected in your account within 1-2 days from the transfer."

// Amounts holds formatted trade totals.
type Amounts struct {
	BTCAmount string
	Total     string
}

// Row is one label/value line in a details table.
type Row struct {
	Label string
	Value string
	Color Color
}

// Table is a titled group of rows.
type Table struct {
	Title string
	Rows  []Row
}

// Recurring describes the subscription behind a recurring buy.
type Recurring struct {
	Summary string
	Notes   []string
}

// Details is the fully assembled trade view.
type Details struct {
	Title     string
	Header    Label
	Body      Label
	Tables    []Table
	Footnote  string
	Recurring *Recurring
}

// RenderDetails formats the bitcoin amount and the fiat total. Buys show what
// was paid including fees, sells show what will arrive after fees.
func RenderDetails(t Trade) Amounts {
	total := t.FiatAmount.Add(t.Fee)
	if !t.IsBuy {
		total = t.FiatAmount.Sub(t.Fee)
	}
	cur := strings.ToUpper(t.FiatCurrency)
	return Amounts{
		BTCAmount: t.BTCAmount.String() + " BTC",
		Total:     strings.TrimSpace(total.StringFixed(2) + " " + cur),
	}
}

// FormatDate renders t in loc. A nil loc means the local zone.
func FormatDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateLayout)
}

// BuildDetails assembles the view for trade t. A non-empty status overrides t.State.
func BuildDetails(t Trade, status string, subs []Subscription, loc *time.Location) Details {
	state := EffectiveState(t, status)
	amounts := RenderDetails(t)

	d := Details{
		Title:  "Sell Trade",
		Header: HeaderStatus(state),
		Body:   BodyStatus(state, t.IsBuy),
	}
	amountLabel, totalLabel := "Bitcoin Sold", "Total To Be Received"
	if t.IsBuy {
		d.Title = "Buy Trade"
		amountLabel, totalLabel = "Bitcoin Purchased", "Total Cost"
	}

	d.Tables = append(d.Tables, Table{
		Title: "Order Details",
		Rows: []Row{
			{Label: "Coinify Trade ID", Value: fmt.Sprintf("CNY-%d", t.ID)},
			{Label: "Date Initialized", Value: FormatDate(t.CreatedAt, loc)},
			{Label: amountLabel, Value: amounts.BTCAmount},
		},
	})

	payout := Table{Title: "Payout Details"}
	if !t.IsBuy {
		payout.Rows = append(payout.Rows, Row{Label: "Bank Account", Value: t.BankAccountNumber})
	}
	payout.Rows = append(payout.Rows, Row{Label: totalLabel, Value: amounts.Total, Color: ColorSuccess})
	d.Tables = append(d.Tables, payout)

	if IsPendingSell(t) {
		d.Footnote = pendingSellFootnote
	}

	if t.TradeSubscriptionID != 0 {
		d.Recurring = buildRecurring(SubscriptionsFor(t, subs), loc)
	}
	return d
}

func buildRecurring(subs []Subscription, loc *time.Location) *Recurring {
	r := &Recurring{
		Notes: []string{
			"You will receive an email each time an order is completed. You can check or cancel your orders at any time in the Order History tab.",
			"Note: The amount of bitcoin purchased will vary each time depending on the market price.",
		},
	}
	if len(subs) == 0 {
		r.Summary = "Recurring order"
		return r
	}
	s := subs[0]
	freq := s.Frequency
	if freq == "" {
		freq = "recurring"
	}
	summary := fmt.Sprintf("Repeats %s", strings.ToLower(freq))
	if s.EndTime != nil {
		summary += " until " + FormatDate(*s.EndTime, loc)
	} else {
		summary += " until you cancel"
	}
	if !s.IsActive {
		summary += " (cancelled)"
	}
	r.Summary = summary
	return r
}
