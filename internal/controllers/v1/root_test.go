package v1_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"

	"github.com/pocketledger/backend/test"
)

func (suite *TestSuiteStandard) TestGetRoot() {
	recorder := test.Request(suite.T(), http.MethodGet, "/", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	assert.Contains(suite.T(), recorder.Body.String(), "/v1")
}

func (suite *TestSuiteStandard) TestGetVersion() {
	recorder := test.Request(suite.T(), http.MethodGet, "/version", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	assert.Contains(suite.T(), recorder.Body.String(), "version")
}

func (suite *TestSuiteStandard) TestGetHealth() {
	recorder := test.Request(suite.T(), http.MethodGet, "/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestGetHealthDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	assert.Contains(suite.T(), recorder.Body.String(), "/v1/accounts")
	assert.Contains(suite.T(), recorder.Body.String(), "/v1/reports")
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/", "GET"},
		{"/version", "GET"},
		{"/healthz", "GET"},
		{"/v1", "GET"},
		{"/v1/accounts", "GET, POST"},
		{"/v1/transactions", "GET, POST"},
		{"/v1/recurring", "GET, POST"},
		{"/v1/match-rules", "GET, POST"},
		{"/v1/settings", "GET, PATCH"},
		{"/v1/periods", "GET"},
		{"/v1/reports/summary", "GET"},
		{"/v1/import", "POST"},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodOptions, tt.path, nil)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
		assert.Equal(suite.T(), tt.allow, recorder.Header().Get("allow"), tt.path)
	}
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	recorder := test.Request(suite.T(), http.MethodDelete, "/v1/settings", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
}
