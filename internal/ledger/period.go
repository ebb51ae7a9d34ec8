package ledger

import (
	"sort"
	"time"

	"github.com/pocketledger/backend/internal/types"
)

// FutureKey is the period key for the synthetic bucket holding post-dated
// transactions.
const FutureKey = "future"

// futureEnd is the sentinel end of the future bucket.
var futureEnd = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// defaultPeriodWindow is the number of trailing months a period list covers
// when no baseline is configured and no older transactions exist.
const defaultPeriodWindow = 12

// Period is a calendar-month bucket, or the synthetic future bucket.
// Periods are value objects; Range is pure and can be called repeatedly.
type Period struct {
	Key   string      `json:"key"`
	Label string      `json:"label"`
	Month types.Month `json:"month,omitzero"`

	future bool
	now    time.Time
}

// MonthPeriod returns the period for a calendar month.
func MonthPeriod(m types.Month) Period {
	return Period{
		Key:   m.String(),
		Label: time.Time(m).Format("January 2006"),
		Month: m,
	}
}

// FuturePeriod returns the synthetic bucket for transactions dated after now.
func FuturePeriod(now time.Time) Period {
	return Period{
		Key:    FutureKey,
		Label:  "Future",
		future: true,
		now:    now,
	}
}

// IsFuture reports whether the period is the synthetic future bucket.
func (p Period) IsFuture() bool {
	return p.future
}

// Range returns the inclusive date range of the period.
func (p Period) Range() (start, end time.Time) {
	if p.future {
		year, month, day := p.now.In(time.UTC).Date()
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1), futureEnd
	}

	return p.Month.First(), p.Month.Last()
}

// Contains reports whether a time instant falls inside the period.
// Both range ends are inclusive.
func (p Period) Contains(t time.Time) bool {
	start, end := p.Range()
	return !t.Before(start) && !t.After(end)
}

// PeriodOptions configures BuildMonthlyPeriods.
type PeriodOptions struct {
	// Window is the number of trailing months to always include.
	// Zero means the default of 12.
	Window int

	// Baseline replaces the trailing window with a fixed starting month.
	Baseline types.Month
}

// BuildMonthlyPeriods returns the ordered list of periods to offer for
// reporting, oldest first.
//
// The list always covers a trailing window of months ending at the current
// month, plus the month of every transaction older than that window, so no
// transaction can fall outside every period. The synthetic future bucket is
// placed directly after the current month.
func BuildMonthlyPeriods(now time.Time, transactions []Transaction, opts PeriodOptions) []Period {
	current := types.MonthOf(now.In(time.UTC))

	first := current.AddDate(0, -(defaultPeriodWindow - 1))
	if opts.Window > 0 {
		first = current.AddDate(0, -(opts.Window - 1))
	}
	if !opts.Baseline.IsZero() && !opts.Baseline.After(current) {
		first = opts.Baseline
	}

	months := make(map[string]types.Month)
	for m := first; !m.After(current); m = m.AddDate(0, 1) {
		months[m.String()] = m
	}

	for _, t := range transactions {
		if t.Date.IsZero() {
			continue
		}

		if m := types.MonthOf(t.Date); m.Before(first) {
			months[m.String()] = m
		}
	}

	keys := make([]string, 0, len(months))
	for key := range months {
		keys = append(keys, key)
	}
	// YYYY-MM keys sort chronologically as strings
	sort.Strings(keys)

	periods := make([]Period, 0, len(keys)+1)
	for _, key := range keys {
		periods = append(periods, MonthPeriod(months[key]))

		if months[key].Equal(current) {
			periods = append(periods, FuturePeriod(now))
		}
	}

	// If the current month was not part of the list, the future bucket is
	// appended at the end.
	if !containsFuture(periods) {
		periods = append(periods, FuturePeriod(now))
	}

	return periods
}

func containsFuture(periods []Period) bool {
	for _, p := range periods {
		if p.future {
			return true
		}
	}

	return false
}

// FindPeriod returns the period with the given key.
func FindPeriod(periods []Period, key string) (Period, bool) {
	for _, p := range periods {
		if p.Key == key {
			return p, true
		}
	}

	return Period{}, false
}
