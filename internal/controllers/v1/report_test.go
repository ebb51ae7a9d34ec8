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

func (suite *TestSuiteStandard) TestPeriods() {
	reset := v1.SetClock(time.Date(2025, 11, 5, 12, 0, 0, 0, time.UTC))
	defer reset()

	account := suite.createTestAccount(models.Account{Name: "Checking"})

	// A transaction older than the default window forces its month into
	// the period list
	_ = suite.createTestTransaction(models.Transaction{
		Date:            time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromInt(5),
		Type:            ledger.TypeExpense,
		SourceAccountID: account.ID,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/periods", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PeriodListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// 12 trailing months, the old month, and the future bucket
	require.Len(suite.T(), response.Data, 14)
	assert.Equal(suite.T(), "2023-02", response.Data[0].Key)
	assert.Equal(suite.T(), "2024-12", response.Data[1].Key)
	assert.Equal(suite.T(), "2025-11", response.Data[len(response.Data)-2].Key)
	assert.Equal(suite.T(), "future", response.Data[len(response.Data)-1].Key)
}

func (suite *TestSuiteStandard) TestPeriodsInvalidBaseline() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/periods?baseline=March", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSummaryReport() {
	reset := v1.SetClock(time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC))
	defer reset()

	account := suite.createTestAccount(models.Account{Name: "Checking"})

	_ = suite.createTestTransaction(models.Transaction{
		Date:            time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromInt(80),
		Type:            ledger.TypeIncome,
		SourceAccountID: account.ID,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Date:            time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromInt(100),
		Type:            ledger.TypeIncome,
		SourceAccountID: account.ID,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Date:            time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromInt(40),
		Type:            ledger.TypeExpense,
		SourceAccountID: account.ID,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/reports/summary?period=2025-03", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SummaryReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	summary := response.Data.Summary
	assert.True(suite.T(), decimal.NewFromInt(80).Equal(summary.OpeningBalance), "got %s", summary.OpeningBalance)
	assert.True(suite.T(), decimal.NewFromInt(60).Equal(summary.NetChange), "got %s", summary.NetChange)
	assert.True(suite.T(), decimal.NewFromInt(140).Equal(summary.ClosingBalance), "got %s", summary.ClosingBalance)
	assert.Equal(suite.T(), "+75%", summary.PercentChange)

	// Two days with transactions, newest first
	require.Len(suite.T(), response.Data.Days, 2)
	assert.Equal(suite.T(), 8, response.Data.Days[0].Date.Day())
	assert.Equal(suite.T(), 5, response.Data.Days[1].Date.Day())
}

func (suite *TestSuiteStandard) TestSummaryReportDefaultsToCurrentMonth() {
	reset := v1.SetClock(time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC))
	defer reset()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/reports/summary", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SummaryReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "2025-03", response.Data.Period.Key)
	assert.Equal(suite.T(), ledger.NoChange, response.Data.Summary.PercentChange)
}

func (suite *TestSuiteStandard) TestSummaryReportInvalidPeriod() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/reports/summary?period=soon", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBreakdownReport() {
	reset := v1.SetClock(time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC))
	defer reset()

	account := suite.createTestAccount(models.Account{Name: "Checking"})

	_ = suite.createTestTransaction(models.Transaction{
		Date:            time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromInt(60),
		Type:            ledger.TypeExpense,
		Category:        "Food",
		SourceAccountID: account.ID,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Date:            time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromInt(40),
		Type:            ledger.TypeExpense,
		SourceAccountID: account.ID,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/reports/breakdown?period=2025-03", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BreakdownReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data.Expense, 2)
	assert.Equal(suite.T(), "Food", response.Data.Expense[0].Category)
	assert.Equal(suite.T(), 60, response.Data.Expense[0].Percentage)
	assert.Equal(suite.T(), ledger.FallbackCategory, response.Data.Expense[1].Category)
	assert.Equal(suite.T(), 40, response.Data.Expense[1].Percentage)

	assert.Empty(suite.T(), response.Data.Income)
}

func (suite *TestSuiteStandard) TestRecurringReport() {
	reset := v1.SetClock(time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC))
	defer reset()

	account := suite.createTestAccount(models.Account{Name: "Checking"})

	rent := suite.createTestRecurring(models.RecurringTransaction{
		Amount:          decimal.NewFromInt(1200),
		Note:            "Rent",
		Type:            ledger.TypeExpense,
		Frequency:       ledger.FrequencyMonthly,
		NextOccurrence:  time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC),
		SourceAccountID: account.ID,
		Active:          true,
	})
	_ = suite.createTestRecurring(models.RecurringTransaction{
		Amount:          decimal.NewFromInt(10),
		Note:            "Paused subscription",
		Type:            ledger.TypeExpense,
		Frequency:       ledger.FrequencyMonthly,
		NextOccurrence:  time.Date(2025, 3, 29, 0, 0, 0, 0, time.UTC),
		SourceAccountID: account.ID,
		Active:          false,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/reports/recurring?period=2025-03", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RecurringReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data.Due, 1)
	assert.Equal(suite.T(), "Rent", response.Data.Due[0].Note)

	require.NotNil(suite.T(), response.Data.NextDue)
	assert.Equal(suite.T(), rent.ID, response.Data.NextDue.ID)
}

func (suite *TestSuiteStandard) TestRecurringLog() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	recurring := suite.createTestRecurring(models.RecurringTransaction{
		Amount:          decimal.NewFromInt(1200),
		Note:            "Rent",
		Type:            ledger.TypeExpense,
		Frequency:       ledger.FrequencyMonthly,
		NextOccurrence:  time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC),
		SourceAccountID: account.ID,
		Active:          true,
	})

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/recurring/%s/log", recurring.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Rent", response.Data.Note)

	var reloaded models.RecurringTransaction
	require.NoError(suite.T(), models.DB.First(&reloaded, "id = ?", recurring.ID).Error)
	assert.Equal(suite.T(), time.Date(2025, 4, 28, 0, 0, 0, 0, time.UTC), reloaded.NextOccurrence)
}
