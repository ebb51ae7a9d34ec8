// Package ledger implements the aggregation and reporting core.
//
// Every function in this package is pure: it takes an immutable snapshot of
// transactions, accounts and recurring definitions and returns derived values
// without touching storage or shared state. The surrounding application
// recomputes these functions whenever the underlying data changes.
package ledger

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType describes the direction of a transaction.
type TransactionType string

const (
	TypeIncome   TransactionType = "income"
	TypeExpense  TransactionType = "expense"
	TypeTransfer TransactionType = "transfer"
)

// Frequency is the schedule of a recurring transaction.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Transaction is a snapshot of a single booked transaction.
type Transaction struct {
	ID       string `json:"id"`
	Sequence uint64 `json:"sequence"` // monotonic creation sequence, 0 if unknown

	Date     time.Time       `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`

	SourceAccountID      uuid.UUID `json:"sourceAccountId"`
	DestinationAccountID uuid.UUID `json:"destinationAccountId"` // only set for transfers

	Participants       []string `json:"participants"`
	Location           string   `json:"location"`
	ExcludeFromReports bool     `json:"excludeFromReports"`
	Currency           string   `json:"currency"`
}

// Reportable reports whether the transaction contributes to totals and balances.
func (t Transaction) Reportable() bool {
	return !t.ExcludeFromReports
}

// Touches reports whether the account is the source or destination of the transaction.
func (t Transaction) Touches(accountID uuid.UUID) bool {
	return t.SourceAccountID == accountID || t.DestinationAccountID == accountID
}

// creationOrdinal returns the creation sequence of the transaction.
//
// Transactions created by this backend carry an explicit sequence. Snapshots
// built from foreign records may instead encode a numeric suffix in the ID,
// which is parsed as a fallback. The second return value is false when
// neither is available; such transactions sort after all others.
func (t Transaction) creationOrdinal() (uint64, bool) {
	if t.Sequence > 0 {
		return t.Sequence, true
	}

	i := len(t.ID)
	for i > 0 && t.ID[i-1] >= '0' && t.ID[i-1] <= '9' {
		i--
	}
	if i == len(t.ID) {
		return 0, false
	}

	ordinal, err := strconv.ParseUint(t.ID[i:], 10, 64)
	if err != nil {
		return 0, false
	}

	return ordinal, true
}

// Account is a snapshot of an account.
type Account struct {
	ID                uuid.UUID
	Name              string
	Currency          string
	Archived          bool
	ExcludeFromTotals bool
}

// Visible reports whether the account counts towards aggregate reports for
// the given reporting currency.
func (a Account) Visible(currency string) bool {
	return !a.Archived && !a.ExcludeFromTotals && a.Currency == currency
}

// UnknownAccountLabel is used when an account ID cannot be resolved.
const UnknownAccountLabel = "Unknown account"

// AccountName resolves an account ID to its name. A dangling ID resolves to
// UnknownAccountLabel instead of failing the report that displays it.
func AccountName(accounts []Account, id uuid.UUID) string {
	for _, a := range accounts {
		if a.ID == id {
			return a.Name
		}
	}

	return UnknownAccountLabel
}

// VisibleAccounts returns the accounts that count towards aggregate reports.
func VisibleAccounts(accounts []Account, currency string) []Account {
	visible := make([]Account, 0, len(accounts))
	for _, a := range accounts {
		if a.Visible(currency) {
			visible = append(visible, a)
		}
	}

	return visible
}

// RecurringTransaction is a snapshot of a recurring transaction definition.
type RecurringTransaction struct {
	ID       uuid.UUID       `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note"`
	Category string          `json:"category"`
	Type     TransactionType `json:"type"`

	SourceAccountID      uuid.UUID `json:"sourceAccountId"`
	DestinationAccountID uuid.UUID `json:"destinationAccountId"`

	Frequency      Frequency `json:"frequency"`
	NextOccurrence time.Time `json:"nextOccurrence"`
	Active         bool      `json:"active"`
}

// Touches reports whether the account is the source or destination of the definition.
func (r RecurringTransaction) Touches(accountID uuid.UUID) bool {
	return r.SourceAccountID == accountID || r.DestinationAccountID == accountID
}
