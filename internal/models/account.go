package models

import (
	"strings"
	"time"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents an asset account, e.g. a bank account or a wallet.
type Account struct {
	DefaultModel
	Name              string          `json:"name" gorm:"uniqueIndex" example:"Checking"`
	Note              string          `json:"note" example:"Main household account"`
	Currency          string          `json:"currency" example:"EUR"`
	InitialBalance    decimal.Decimal `json:"initialBalance" gorm:"type:DECIMAL(20,8)" example:"319.17"`
	Archived          bool            `json:"archived" example:"false"`
	ExcludeFromTotals bool            `json:"excludeFromTotals" example:"false"`
}

// BeforeSave trims whitespace and defaults the currency to the
// configured reporting currency.
func (a *Account) BeforeSave(tx *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)
	a.Currency = strings.ToUpper(strings.TrimSpace(a.Currency))

	if a.Currency == "" {
		settings, err := LoadSettings(tx)
		if err != nil {
			return err
		}
		a.Currency = settings.Currency
	}

	if len(a.Currency) != 3 {
		return ErrInvalidCurrency
	}

	return nil
}

// Transactions returns all transactions where the account is either the
// source or the destination.
func (a Account) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction

	err := db.
		Where(db.Where(Transaction{SourceAccountID: a.ID}).Or("destination_account_id = ?", a.ID)).
		Find(&transactions).Error

	return transactions, err
}

// Balance calculates the account balance at a point in time by applying the
// signed delta of every transaction up to and including that instant.
func (a Account) Balance(db *gorm.DB, at time.Time) (decimal.Decimal, error) {
	transactions, err := a.Transactions(db)
	if err != nil {
		return decimal.Zero, err
	}

	balance := a.InitialBalance
	pov := ledger.AccountPointOfView(a.ID)

	for _, t := range transactions {
		if !t.Date.IsZero() && t.Date.After(at) {
			continue
		}

		balance = balance.Add(ledger.Delta(t.Snapshot(), pov))
	}

	return balance, nil
}

// Snapshot converts the account into its immutable ledger representation.
func (a Account) Snapshot() ledger.Account {
	return ledger.Account{
		ID:                a.ID,
		Name:              a.Name,
		Currency:          a.Currency,
		Archived:          a.Archived,
		ExcludeFromTotals: a.ExcludeFromTotals,
	}
}

// AccountSnapshots converts a list of accounts into ledger snapshots.
func AccountSnapshots(accounts []Account) []ledger.Account {
	out := make([]ledger.Account, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.Snapshot())
	}

	return out
}
