package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// DateRange is an inclusive date range.
type DateRange struct {
	From  time.Time
	Until time.Time
}

// Criteria is the full set of recognized transaction filters. The zero value
// matches everything.
type Criteria struct {
	// AccountID limits to transactions touching this account.
	// When nil, transactions touching any visible account are kept.
	AccountID *uuid.UUID

	// Range limits to transactions inside the inclusive date range.
	Range *DateRange

	// MinAmount and MaxAmount are raw amount texts as typed by the user.
	// A bound that does not parse is ignored.
	MinAmount string
	MaxAmount string

	// Categories limits to exact category labels. Empty means no filtering.
	Categories []string

	// Search is a case-insensitive substring matched against note, category,
	// location and participants.
	Search string
}

// Filter narrows transactions to those matching the criteria.
//
// The predicates are conjunctive and applied in a fixed order: account scope,
// date range, amount bounds, category set, free-text search. Transactions
// with a zero date are never excluded by the date range (fail-open), so a
// malformed date cannot hide a transaction.
func Filter(transactions []Transaction, accounts []Account, currency string, criteria Criteria) []Transaction {
	out := transactions

	out = filterAccountScope(out, accounts, currency, criteria.AccountID)

	if criteria.Range != nil {
		out = keep(out, failOpen(func(t Transaction) bool {
			return !t.Date.Before(criteria.Range.From) && !t.Date.After(criteria.Range.Until)
		}))
	}

	if lower, ok := ParseAmount(criteria.MinAmount); ok {
		out = keep(out, func(t Transaction) bool {
			return t.Amount.GreaterThanOrEqual(lower)
		})
	}

	if upper, ok := ParseAmount(criteria.MaxAmount); ok {
		out = keep(out, func(t Transaction) bool {
			return t.Amount.LessThanOrEqual(upper)
		})
	}

	if len(criteria.Categories) > 0 {
		out = keep(out, func(t Transaction) bool {
			return slices.Contains(criteria.Categories, t.Category)
		})
	}

	if search := strings.ToLower(strings.TrimSpace(criteria.Search)); search != "" {
		out = keep(out, func(t Transaction) bool {
			return matchesSearch(t, search)
		})
	}

	// Copy so that callers never alias the input slice
	if len(out) == len(transactions) {
		out = slices.Clone(out)
	}

	return out
}

// failOpen wraps a date-dependent predicate so that transactions with a zero
// date always pass. This is the single place implementing the fail-open
// policy for malformed dates.
func failOpen(pred func(Transaction) bool) func(Transaction) bool {
	return func(t Transaction) bool {
		if t.Date.IsZero() {
			return true
		}

		return pred(t)
	}
}

func filterAccountScope(transactions []Transaction, accounts []Account, currency string, accountID *uuid.UUID) []Transaction {
	if accountID != nil {
		return keep(transactions, func(t Transaction) bool {
			return t.Touches(*accountID)
		})
	}

	visible := VisibleAccounts(accounts, currency)
	if len(visible) == 0 {
		// Without a visible-account set there is nothing to scope against
		return transactions
	}

	ids := make(map[uuid.UUID]struct{}, len(visible))
	for _, a := range visible {
		ids[a.ID] = struct{}{}
	}

	return keep(transactions, func(t Transaction) bool {
		_, source := ids[t.SourceAccountID]
		_, destination := ids[t.DestinationAccountID]
		return source || destination
	})
}

func matchesSearch(t Transaction, search string) bool {
	if strings.Contains(strings.ToLower(t.Note), search) ||
		strings.Contains(strings.ToLower(t.Category), search) ||
		strings.Contains(strings.ToLower(t.Location), search) {
		return true
	}

	for _, participant := range t.Participants {
		if strings.Contains(strings.ToLower(participant), search) {
			return true
		}
	}

	return false
}

func keep(transactions []Transaction, pred func(Transaction) bool) []Transaction {
	out := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if pred(t) {
			out = append(out, t)
		}
	}

	return out
}
