package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
)

func (suite *TestSuiteStandard) TestTransactionCreate() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", map[string]any{
		"date":            "2025-03-14T12:00:00Z",
		"amount":          "14.03",
		"note":            "Lunch",
		"type":            "expense",
		"category":        "Food",
		"sourceAccountId": account.ID,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "Lunch", response.Data.Note)
	assert.Equal(suite.T(), ledger.TypeExpense, response.Data.Type)
	assert.NotZero(suite.T(), response.Data.Sequence)
}

func (suite *TestSuiteStandard) TestTransactionCreateInvalid() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	tests := []struct {
		name string
		body map[string]any
	}{
		{
			"negative amount",
			map[string]any{"amount": "-5", "type": "expense", "sourceAccountId": account.ID},
		},
		{
			"invalid type",
			map[string]any{"amount": "5", "type": "refund", "sourceAccountId": account.ID},
		},
		{
			"transfer without destination",
			map[string]any{"amount": "5", "type": "transfer", "sourceAccountId": account.ID},
		},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", tt.body)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestTransactionFilters() {
	checking := suite.createTestAccount(models.Account{Name: "Checking"})
	savings := suite.createTestAccount(models.Account{Name: "Savings"})

	_ = suite.createTestTransaction(models.Transaction{
		Date:            time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromInt(10),
		Note:            "Groceries at REWE",
		Type:            ledger.TypeExpense,
		Category:        "Food",
		SourceAccountID: checking.ID,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Date:            time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromInt(2000),
		Note:            "Salary",
		Type:            ledger.TypeIncome,
		Category:        "Income",
		SourceAccountID: checking.ID,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Date:                 time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC),
		Amount:               decimal.NewFromInt(500),
		Note:                 "Saving up",
		Type:                 ledger.TypeTransfer,
		SourceAccountID:      checking.ID,
		DestinationAccountID: &savings.ID,
	})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"no filter", "", 3},
		{"date range", "?fromDate=2025-03-01&untilDate=2025-03-31", 2},
		{"inclusive upper bound", "?untilDate=2025-03-01", 1},
		{"amount lower bound", "?amountMin=400", 2},
		{"amount bounds with locale text", "?amountMin=1.500,00", 1},
		{"unparsable bound is ignored", "?amountMin=abc", 3},
		{"category", "?category=Food", 1},
		{"search note", "?search=rewe", 1},
		{"account scope includes transfers", fmt.Sprintf("?account=%s", savings.ID), 1},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions"+tt.query, nil)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.TransactionListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		assert.Len(suite.T(), response.Data, tt.count, tt.name)
	}
}

func (suite *TestSuiteStandard) TestTransactionFilterInvalidAccount() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?account=not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionUpdateNote() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})
	transaction := suite.createTestTransaction(models.Transaction{
		Amount:          decimal.NewFromInt(10),
		Note:            "Old note",
		Type:            ledger.TypeExpense,
		SourceAccountID: account.ID,
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.ID), map[string]any{
		"note": "New note",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var reloaded models.Transaction
	require.NoError(suite.T(), models.DB.First(&reloaded, "id = ?", transaction.ID).Error)
	assert.Equal(suite.T(), "New note", reloaded.Note)
	assert.True(suite.T(), decimal.NewFromInt(10).Equal(reloaded.Amount), "amount must be unchanged")
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})
	transaction := suite.createTestTransaction(models.Transaction{
		Amount:          decimal.NewFromInt(10),
		Type:            ledger.TypeExpense,
		SourceAccountID: account.ID,
	})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
