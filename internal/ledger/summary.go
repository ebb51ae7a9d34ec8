package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NoChange is the percentage-change text used when the opening balance is
// zero and no meaningful percentage exists.
const NoChange = "—"

// PointOfView is the account, or aggregate of visible accounts, against which
// signed transaction deltas are computed.
type PointOfView struct {
	accountID uuid.UUID
	visible   map[uuid.UUID]struct{}
}

// AccountPointOfView returns the point of view of a single account.
func AccountPointOfView(accountID uuid.UUID) PointOfView {
	return PointOfView{accountID: accountID}
}

// AggregatePointOfView returns the point of view of all visible accounts.
// With no visible accounts every account is covered, mirroring the fail-open
// account scope of the filter pipeline.
func AggregatePointOfView(accounts []Account, currency string) PointOfView {
	visible := VisibleAccounts(accounts, currency)

	ids := make(map[uuid.UUID]struct{}, len(visible))
	for _, a := range visible {
		ids[a.ID] = struct{}{}
	}

	return PointOfView{visible: ids}
}

// covers reports whether an account belongs to the point of view.
func (pov PointOfView) covers(accountID uuid.UUID) bool {
	if accountID == uuid.Nil {
		return false
	}

	if pov.accountID != uuid.Nil {
		return pov.accountID == accountID
	}

	if len(pov.visible) == 0 {
		return true
	}

	_, ok := pov.visible[accountID]
	return ok
}

// Delta returns the signed contribution of a transaction to the point of
// view's balance.
//
// Income adds the amount, expense subtracts it. A transfer subtracts from the
// source and adds to the destination; when the point of view covers both, or
// neither, the transfer nets to zero.
func Delta(t Transaction, pov PointOfView) decimal.Decimal {
	switch t.Type {
	case TypeIncome:
		if pov.covers(t.SourceAccountID) {
			return t.Amount
		}
	case TypeExpense:
		if pov.covers(t.SourceAccountID) {
			return t.Amount.Neg()
		}
	case TypeTransfer:
		source := pov.covers(t.SourceAccountID)
		destination := pov.covers(t.DestinationAccountID)

		switch {
		case source && destination:
			return decimal.Zero
		case source:
			return t.Amount.Neg()
		case destination:
			return t.Amount
		}
	}

	return decimal.Zero
}

// PeriodSummary is the financial summary of one period.
type PeriodSummary struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	NetChange      decimal.Decimal `json:"netChange"`
	Income         decimal.Decimal `json:"income"`
	Expense        decimal.Decimal `json:"expense"`
	PercentChange  string          `json:"percentChange"`
}

// Summarize computes the period summary for a point of view.
//
// The opening balance sums deltas over the full history strictly before the
// period start, not only over a filtered set, so that an account filter
// cannot shift balances. Transactions flagged as excluded from reports never
// contribute. Transactions with a zero date count as in-period rather than
// being dropped.
func Summarize(history []Transaction, period Period, pov PointOfView) PeriodSummary {
	start, end := period.Range()

	summary := PeriodSummary{
		OpeningBalance: decimal.Zero,
		NetChange:      decimal.Zero,
		Income:         decimal.Zero,
		Expense:        decimal.Zero,
	}

	for _, t := range history {
		if !t.Reportable() {
			continue
		}

		if !t.Date.IsZero() && t.Date.Before(start) {
			summary.OpeningBalance = summary.OpeningBalance.Add(Delta(t, pov))
			continue
		}

		if !t.Date.IsZero() && t.Date.After(end) {
			continue
		}

		summary.NetChange = summary.NetChange.Add(Delta(t, pov))

		switch t.Type {
		case TypeIncome:
			if pov.covers(t.SourceAccountID) {
				summary.Income = summary.Income.Add(t.Amount)
			}
		case TypeExpense:
			if pov.covers(t.SourceAccountID) {
				summary.Expense = summary.Expense.Add(t.Amount)
			}
		}
	}

	summary.ClosingBalance = summary.OpeningBalance.Add(summary.NetChange)
	summary.PercentChange = percentChange(summary.OpeningBalance, summary.ClosingBalance)

	return summary
}

// percentChange formats the relative balance change with an explicit sign.
// A zero opening balance has no meaningful percentage.
func percentChange(opening, closing decimal.Decimal) string {
	if opening.IsZero() {
		return NoChange
	}

	change := closing.Sub(opening).
		Div(opening.Abs()).
		Mul(decimal.NewFromInt(100)).
		Round(1)

	if change.IsNegative() {
		return change.String() + "%"
	}

	return "+" + change.String() + "%"
}

// DayGroup is the list of transactions of one calendar day with its subtotals.
type DayGroup struct {
	Date         time.Time       `json:"date"`
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	Net          decimal.Decimal `json:"net"`
	Transactions []Transaction   `json:"transactions"`
}

// GroupByDay buckets transactions by calendar day, newest day first.
//
// Inside a day, transactions are ordered by date descending and then by
// creation sequence descending, so the most recently created entry comes
// first. Transactions without a resolvable sequence sort last within their
// timestamp. Subtotals only include reportable transactions.
func GroupByDay(transactions []Transaction, pov PointOfView) []DayGroup {
	groups := make(map[time.Time]*DayGroup)

	for _, t := range transactions {
		day := t.Date.In(time.UTC).Truncate(24 * time.Hour)

		group, ok := groups[day]
		if !ok {
			group = &DayGroup{
				Date:    day,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
				Net:     decimal.Zero,
			}
			groups[day] = group
		}

		group.Transactions = append(group.Transactions, t)

		if !t.Reportable() {
			continue
		}

		group.Net = group.Net.Add(Delta(t, pov))

		switch t.Type {
		case TypeIncome:
			if pov.covers(t.SourceAccountID) {
				group.Income = group.Income.Add(t.Amount)
			}
		case TypeExpense:
			if pov.covers(t.SourceAccountID) {
				group.Expense = group.Expense.Add(t.Amount)
			}
		}
	}

	out := make([]DayGroup, 0, len(groups))
	for _, group := range groups {
		sort.SliceStable(group.Transactions, func(i, j int) bool {
			return transactionAfter(group.Transactions[i], group.Transactions[j])
		})
		out = append(out, *group)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	return out
}

// transactionAfter reports whether a sorts before b in the newest-first
// ordering of a day group.
func transactionAfter(a, b Transaction) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}

	aOrdinal, aOK := a.creationOrdinal()
	bOrdinal, bOK := b.creationOrdinal()

	if aOK != bOK {
		// entries without a sequence sort last
		return aOK
	}

	return aOrdinal > bOrdinal
}
