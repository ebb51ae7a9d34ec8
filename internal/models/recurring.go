package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecurringTransaction is a schedule from which concrete transactions are
// logged. The ledger core only reads the next occurrence; advancing it
// happens here.
type RecurringTransaction struct {
	DefaultModel

	Amount   decimal.Decimal        `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Note     string                 `json:"note"`
	Category string                 `json:"category"`
	Type     ledger.TransactionType `json:"type"`

	SourceAccountID      uuid.UUID  `json:"sourceAccountId"`
	SourceAccount        Account    `json:"-"`
	DestinationAccountID *uuid.UUID `json:"destinationAccountId"`
	DestinationAccount   *Account   `json:"-"`

	Frequency      ledger.Frequency `json:"frequency" example:"monthly"`
	NextOccurrence time.Time        `json:"nextOccurrence"`
	Active         bool             `json:"active"`
}

// BeforeSave validates the definition.
func (r *RecurringTransaction) BeforeSave(_ *gorm.DB) error {
	r.Note = strings.TrimSpace(r.Note)
	r.Category = strings.TrimSpace(r.Category)

	if !r.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	switch r.Type {
	case ledger.TypeIncome, ledger.TypeExpense, ledger.TypeTransfer:
	default:
		return ErrInvalidTransactionType
	}

	switch r.Frequency {
	case ledger.FrequencyWeekly, ledger.FrequencyBiweekly, ledger.FrequencyMonthly:
	default:
		return ErrInvalidFrequency
	}

	if r.NextOccurrence.IsZero() {
		r.NextOccurrence = time.Now().In(time.UTC)
	} else {
		r.NextOccurrence = r.NextOccurrence.In(time.UTC)
	}

	return nil
}

// AfterFind normalizes the next occurrence to UTC.
func (r *RecurringTransaction) AfterFind(tx *gorm.DB) error {
	_ = r.DefaultModel.AfterFind(tx)

	r.NextOccurrence = r.NextOccurrence.In(time.UTC)
	return nil
}

// LogOccurrence books the pending occurrence as a concrete transaction and
// advances the schedule by one frequency step.
func (r *RecurringTransaction) LogOccurrence(db *gorm.DB) (Transaction, error) {
	transaction := Transaction{
		Date:                 r.NextOccurrence,
		Amount:               r.Amount,
		Note:                 r.Note,
		Type:                 r.Type,
		Category:             r.Category,
		SourceAccountID:      r.SourceAccountID,
		DestinationAccountID: r.DestinationAccountID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}

		r.NextOccurrence = ledger.NextAfter(r.Frequency, r.NextOccurrence)
		return tx.Model(r).Update("next_occurrence", r.NextOccurrence).Error
	})

	return transaction, err
}

// Snapshot converts the definition into its immutable ledger representation.
func (r RecurringTransaction) Snapshot() ledger.RecurringTransaction {
	destination := uuid.Nil
	if r.DestinationAccountID != nil {
		destination = *r.DestinationAccountID
	}

	return ledger.RecurringTransaction{
		ID:                   r.ID,
		Amount:               r.Amount,
		Note:                 r.Note,
		Category:             r.Category,
		Type:                 r.Type,
		SourceAccountID:      r.SourceAccountID,
		DestinationAccountID: destination,
		Frequency:            r.Frequency,
		NextOccurrence:       r.NextOccurrence,
		Active:               r.Active,
	}
}

// RecurringSnapshots converts a list of definitions into ledger snapshots.
func RecurringSnapshots(definitions []RecurringTransaction) []ledger.RecurringTransaction {
	out := make([]ledger.RecurringTransaction, 0, len(definitions))
	for _, r := range definitions {
		out = append(out, r.Snapshot())
	}

	return out
}
