package ledger

import (
	"time"

	"github.com/google/uuid"
)

// DueInPeriod returns the active recurring definitions whose next occurrence
// falls inside the period's inclusive range.
//
// With an account selected, only definitions with that account as source or
// destination are kept.
func DueInPeriod(definitions []RecurringTransaction, period Period, accountID *uuid.UUID) []RecurringTransaction {
	due := make([]RecurringTransaction, 0, len(definitions))

	for _, definition := range definitions {
		if !definition.Active || definition.NextOccurrence.IsZero() {
			continue
		}

		if !period.Contains(definition.NextOccurrence) {
			continue
		}

		if accountID != nil && !definition.Touches(*accountID) {
			continue
		}

		due = append(due, definition)
	}

	return due
}

// NextDue returns the definition with the earliest next occurrence, or nil
// when none is given.
func NextDue(definitions []RecurringTransaction) *RecurringTransaction {
	var next *RecurringTransaction

	for i := range definitions {
		if definitions[i].NextOccurrence.IsZero() {
			continue
		}

		if next == nil || definitions[i].NextOccurrence.Before(next.NextOccurrence) {
			next = &definitions[i]
		}
	}

	return next
}

// NextAfter returns the occurrence following t for a frequency.
func NextAfter(frequency Frequency, t time.Time) time.Time {
	switch frequency {
	case FrequencyWeekly:
		return t.AddDate(0, 0, 7)
	case FrequencyBiweekly:
		return t.AddDate(0, 0, 14)
	default:
		return t.AddDate(0, 1, 0)
	}
}
