package models_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestTransactionValidation() {
	account := suite.createTestAccount(models.Account{})
	other := suite.createTestAccount(models.Account{})

	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{
			"negative amount",
			models.Transaction{
				Amount:          decimal.NewFromInt(-1),
				Type:            ledger.TypeExpense,
				SourceAccountID: account.ID,
			},
			models.ErrAmountNotPositive,
		},
		{
			"zero amount",
			models.Transaction{
				Type:            ledger.TypeExpense,
				SourceAccountID: account.ID,
			},
			models.ErrAmountNotPositive,
		},
		{
			"unknown type",
			models.Transaction{
				Amount:          decimal.NewFromInt(1),
				Type:            ledger.TransactionType("refund"),
				SourceAccountID: account.ID,
			},
			models.ErrInvalidTransactionType,
		},
		{
			"destination on expense",
			models.Transaction{
				Amount:               decimal.NewFromInt(1),
				Type:                 ledger.TypeExpense,
				SourceAccountID:      account.ID,
				DestinationAccountID: &other.ID,
			},
			models.ErrDestinationOnTransferOnly,
		},
		{
			"transfer without destination",
			models.Transaction{
				Amount:          decimal.NewFromInt(1),
				Type:            ledger.TypeTransfer,
				SourceAccountID: account.ID,
			},
			models.ErrTransferMissingResource,
		},
		{
			"transfer to same account",
			models.Transaction{
				Amount:               decimal.NewFromInt(1),
				Type:                 ledger.TypeTransfer,
				SourceAccountID:      account.ID,
				DestinationAccountID: &account.ID,
			},
			models.ErrTransferSameAccount,
		},
		{
			"valid transfer",
			models.Transaction{
				Amount:               decimal.NewFromInt(1),
				Type:                 ledger.TypeTransfer,
				SourceAccountID:      account.ID,
				DestinationAccountID: &other.ID,
			},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.transaction).Error
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionDateDefaults() {
	account := suite.createTestAccount(models.Account{})

	transaction := suite.createTestTransaction(models.Transaction{
		Amount:          decimal.NewFromInt(10),
		Type:            ledger.TypeExpense,
		SourceAccountID: account.ID,
	})

	assert.False(suite.T(), transaction.Date.IsZero(), "unset date must default to now")
	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionSequenceMonotonic() {
	account := suite.createTestAccount(models.Account{})

	date := time.Date(2025, 5, 17, 9, 30, 0, 0, time.UTC)

	var previous uint64
	for i := 0; i < 3; i++ {
		transaction := suite.createTestTransaction(models.Transaction{
			Date:            date,
			Amount:          decimal.NewFromInt(5),
			Type:            ledger.TypeExpense,
			SourceAccountID: account.ID,
		})

		assert.Greater(suite.T(), transaction.Sequence, previous, "sequence must increase with every creation")
		previous = transaction.Sequence
	}
}

func (suite *TestSuiteStandard) TestTransactionSnapshot() {
	account := suite.createTestAccount(models.Account{})
	other := suite.createTestAccount(models.Account{})

	transaction := suite.createTestTransaction(models.Transaction{
		Date:                 time.Date(2025, 5, 17, 9, 30, 0, 0, time.UTC),
		Amount:               decimal.NewFromInt(25),
		Type:                 ledger.TypeTransfer,
		SourceAccountID:      account.ID,
		DestinationAccountID: &other.ID,
	})

	snapshot := transaction.Snapshot()

	assert.Equal(suite.T(), transaction.ID.String(), snapshot.ID)
	assert.Equal(suite.T(), transaction.Sequence, snapshot.Sequence)
	assert.Equal(suite.T(), other.ID, snapshot.DestinationAccountID)
	assert.True(suite.T(), snapshot.Touches(account.ID))
	assert.True(suite.T(), snapshot.Touches(other.ID))
	assert.False(suite.T(), snapshot.Touches(uuid.New()))
}

func (suite *TestSuiteStandard) TestTransactionNotFound() {
	err := models.DB.First(&models.Transaction{}, "id = ?", uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
