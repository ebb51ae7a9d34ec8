package v1_test

import (
	"fmt"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
)

const testStatement = `Date,Payee,Memo,Outflow,Inflow
2025-03-01,REWE Berlin,Weekly shopping,"23,47",
2025-03-02,Acme Corp,Salary,,"2.500,00"
`

func (suite *TestSuiteStandard) TestImport() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	require.NoError(suite.T(), models.DB.Create(&models.MatchRule{
		Priority: 1,
		Match:    "REWE*",
		Category: "Groceries",
	}).Error)

	body, headers := test.MultipartFile(suite.T(), "statement.csv", []byte(testStatement))

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/import?accountId=%s", account.ID), body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Equal(suite.T(), 2, response.Data.Count)
	assert.Equal(suite.T(), "Groceries", response.Data.Transactions[0].Category)
	assert.Equal(suite.T(), ledger.TypeIncome, response.Data.Transactions[1].Type)

	var count int64
	require.NoError(suite.T(), models.DB.Model(&models.Transaction{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(2), count)
}

func (suite *TestSuiteStandard) TestImportBrokenStatement() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	broken := "Date,Payee,Memo,Outflow,Inflow\n2025-03-01,Payee,Memo,,\n"
	body, headers := test.MultipartFile(suite.T(), "statement.csv", []byte(broken))

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/import?accountId=%s", account.ID), body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	// Nothing may be imported from a broken statement
	var count int64
	require.NoError(suite.T(), models.DB.Model(&models.Transaction{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestImportWrongSuffix() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	body, headers := test.MultipartFile(suite.T(), "statement.txt", []byte(testStatement))

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/import?accountId=%s", account.ID), body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestImportMissingAccount() {
	body, headers := test.MultipartFile(suite.T(), "statement.csv", []byte(testStatement))

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestImportUnknownAccount() {
	body, headers := test.MultipartFile(suite.T(), "statement.csv", []byte(testStatement))

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import?accountId=d7d44656-37b8-4293-b6eb-c6a0b0e74b69", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
