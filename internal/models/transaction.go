package models

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a single booked transaction.
//
// Income and expense transactions only have a source account. A transfer
// additionally has a destination account that must differ from the source.
type Transaction struct {
	DefaultModel

	// Sequence is a monotonic creation counter used to order transactions
	// created at the same instant.
	Sequence uint64 `json:"sequence" gorm:"index"`

	Date     time.Time              `json:"date"`
	Amount   decimal.Decimal        `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.03"`
	Note     string                 `json:"note" example:"Lunch"`
	Type     ledger.TransactionType `json:"type" example:"expense"`
	Category string                 `json:"category" example:"Food"`

	SourceAccountID      uuid.UUID  `json:"sourceAccountId"`
	SourceAccount        Account    `json:"-"`
	DestinationAccountID *uuid.UUID `json:"destinationAccountId"`
	DestinationAccount   *Account   `json:"-"`

	Participants       []string `json:"participants" gorm:"serializer:json"`
	Location           string   `json:"location"`
	ExcludeFromReports bool     `json:"excludeFromReports"`
	Currency           string   `json:"currency"` // optional override of the reporting currency
}

// BeforeSave validates the transaction and normalizes timestamps to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Note = strings.TrimSpace(t.Note)
	t.Category = strings.TrimSpace(t.Category)

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	switch t.Type {
	case ledger.TypeIncome, ledger.TypeExpense:
		if t.DestinationAccountID != nil {
			return ErrDestinationOnTransferOnly
		}
	case ledger.TypeTransfer:
		if t.SourceAccountID == uuid.Nil || t.DestinationAccountID == nil || *t.DestinationAccountID == uuid.Nil {
			return ErrTransferMissingResource
		}
		if *t.DestinationAccountID == t.SourceAccountID {
			return ErrTransferSameAccount
		}
	default:
		return ErrInvalidTransactionType
	}

	return nil
}

// BeforeCreate assigns the resource ID and the next creation sequence.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	if t.Sequence == 0 {
		var highest sql.NullInt64
		err := tx.Model(&Transaction{}).Select("MAX(sequence)").Scan(&highest).Error
		if err != nil {
			return err
		}

		t.Sequence = uint64(highest.Int64) + 1
	}

	return nil
}

// AfterFind normalizes the date to UTC.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	_ = t.DefaultModel.AfterFind(tx)

	t.Date = t.Date.In(time.UTC)
	return nil
}

// Snapshot converts the transaction into its immutable ledger representation.
func (t Transaction) Snapshot() ledger.Transaction {
	destination := uuid.Nil
	if t.DestinationAccountID != nil {
		destination = *t.DestinationAccountID
	}

	return ledger.Transaction{
		ID:                   t.ID.String(),
		Sequence:             t.Sequence,
		Date:                 t.Date,
		Amount:               t.Amount,
		Note:                 t.Note,
		Type:                 t.Type,
		Category:             t.Category,
		SourceAccountID:      t.SourceAccountID,
		DestinationAccountID: destination,
		Participants:         t.Participants,
		Location:             t.Location,
		ExcludeFromReports:   t.ExcludeFromReports,
		Currency:             t.Currency,
	}
}

// TransactionSnapshots converts a list of transactions into ledger snapshots.
func TransactionSnapshots(transactions []Transaction) []ledger.Transaction {
	out := make([]ledger.Transaction, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, t.Snapshot())
	}

	return out
}
