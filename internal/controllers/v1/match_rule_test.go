package v1_test

import (
	"fmt"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
)

func (suite *TestSuiteStandard) TestMatchRuleCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/match-rules", map[string]any{
		"priority": 1,
		"match":    "REWE*",
		"category": "Groceries",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "REWE*", response.Data.Match)
}

func (suite *TestSuiteStandard) TestMatchRuleCreateEmptyMatch() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/match-rules", map[string]any{
		"match":    "  ",
		"category": "Groceries",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMatchRuleListOrdered() {
	require.NoError(suite.T(), models.DB.Create(&models.MatchRule{Priority: 2, Match: "B*", Category: "Second"}).Error)
	require.NoError(suite.T(), models.DB.Create(&models.MatchRule{Priority: 1, Match: "A*", Category: "First"}).Error)

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/match-rules", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "First", response.Data[0].Category)
}

func (suite *TestSuiteStandard) TestMatchRuleUpdate() {
	rule := models.MatchRule{Priority: 1, Match: "REWE*", Category: "Groceries"}
	require.NoError(suite.T(), models.DB.Create(&rule).Error)

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/match-rules/%s", rule.ID), map[string]any{
		"category": "Food",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Food", response.Data.Category)
	assert.Equal(suite.T(), "REWE*", response.Data.Match)
}

func (suite *TestSuiteStandard) TestMatchRuleDelete() {
	rule := models.MatchRule{Priority: 1, Match: "REWE*", Category: "Groceries"}
	require.NoError(suite.T(), models.DB.Create(&rule).Error)

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/match-rules/%s", rule.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/match-rules/%s", rule.ID), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
