package models_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestAccountTrimWhitespace() {
	account := suite.createTestAccount(models.Account{
		Name:     " Checking ",
		Note:     "  A note\t",
		Currency: " eur ",
	})

	assert.Equal(suite.T(), "Checking", account.Name)
	assert.Equal(suite.T(), "A note", account.Note)
	assert.Equal(suite.T(), "EUR", account.Currency)
}

func (suite *TestSuiteStandard) TestAccountDefaultCurrency() {
	account := suite.createTestAccount(models.Account{})

	// Without stored settings the default reporting currency applies
	assert.Equal(suite.T(), "EUR", account.Currency)
}

func (suite *TestSuiteStandard) TestAccountInvalidCurrency() {
	err := models.DB.Create(&models.Account{Name: "Broken", Currency: "EURO"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrInvalidCurrency)
}

func (suite *TestSuiteStandard) TestAccountNameUnique() {
	_ = suite.createTestAccount(models.Account{Name: "Twin"})

	err := models.DB.Create(&models.Account{Name: "Twin"}).Error
	assert.Error(suite.T(), err)
}

func (suite *TestSuiteStandard) TestAccountBalance() {
	account := suite.createTestAccount(models.Account{
		InitialBalance: decimal.NewFromInt(100),
	})
	other := suite.createTestAccount(models.Account{})

	_ = suite.createTestTransaction(models.Transaction{
		Date:            time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromInt(50),
		Type:            ledger.TypeIncome,
		SourceAccountID: account.ID,
	})

	_ = suite.createTestTransaction(models.Transaction{
		Date:            time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromInt(20),
		Type:            ledger.TypeExpense,
		SourceAccountID: account.ID,
	})

	_ = suite.createTestTransaction(models.Transaction{
		Date:                 time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		Amount:               decimal.NewFromInt(30),
		Type:                 ledger.TypeTransfer,
		SourceAccountID:      account.ID,
		DestinationAccountID: &other.ID,
	})

	tests := []struct {
		name string
		at   time.Time
		want decimal.Decimal
	}{
		{"before any transaction", time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(100)},
		{"after income", time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), decimal.NewFromInt(150)},
		{"after all transactions", time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(100)},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			balance, err := account.Balance(models.DB, tt.at)
			assert.NoError(t, err)
			assert.True(t, tt.want.Equal(balance), "expected %s, got %s", tt.want, balance)
		})
	}

	// The transfer arrives on the destination account
	balance, err := other.Balance(models.DB, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC))
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), decimal.NewFromInt(30).Equal(balance), "got %s", balance)
}
