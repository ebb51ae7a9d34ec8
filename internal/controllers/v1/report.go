package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/httperror"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
)

// RegisterPeriodRoutes registers the routes for reporting periods with
// the RouterGroup that is passed.
func RegisterPeriodRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPeriods)
	r.GET("", GetPeriods)
}

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", OptionsReport)
	r.GET("/summary", GetSummaryReport)

	r.OPTIONS("/breakdown", OptionsReport)
	r.GET("/breakdown", GetBreakdownReport)

	r.OPTIONS("/recurring", OptionsReport)
	r.GET("/recurring", GetRecurringReport)
}

type PeriodListResponse struct {
	Data []ledger.Period `json:"data"`
}

type SummaryReportResponse struct {
	Data SummaryReport `json:"data"`
}

// SummaryReport is the period summary together with the period's
// transactions grouped by day.
type SummaryReport struct {
	Period  ledger.Period        `json:"period"`
	Summary ledger.PeriodSummary `json:"summary"`
	Days    []ledger.DayGroup    `json:"days"`

	// Account is the name of the account the report is scoped to, if any
	Account string `json:"account,omitempty" example:"Checking"`
}

type BreakdownReportResponse struct {
	Data BreakdownReport `json:"data"`
}

// BreakdownReport ranks the categories of a period by summed amount,
// separately for income and expenses.
type BreakdownReport struct {
	Period  ledger.Period                   `json:"period"`
	Income  []ledger.CategoryBreakdownEntry `json:"income"`
	Expense []ledger.CategoryBreakdownEntry `json:"expense"`
}

type RecurringReportResponse struct {
	Data RecurringReport `json:"data"`
}

// RecurringReport lists the recurring definitions due in a period and the
// one due next overall.
type RecurringReport struct {
	Period  ledger.Period                 `json:"period"`
	Due     []ledger.RecurringTransaction `json:"due"`
	NextDue *ledger.RecurringTransaction  `json:"nextDue"`
}

// PeriodQueryFilter configures the period list.
type PeriodQueryFilter struct {
	Window   int    `form:"window"`
	Baseline string `form:"baseline"`
}

// ReportQueryFilter selects the period and optionally narrows a report to a
// single account.
type ReportQueryFilter struct {
	Period  string `form:"period"`
	Account string `form:"account"`
}

func (f ReportQueryFilter) accountID() (*uuid.UUID, error) {
	if f.Account == "" {
		return nil, nil
	}

	id, err := uuid.Parse(f.Account)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

// reportData is everything a report needs: the full transaction history as
// snapshots, the account snapshots and the settings.
type reportData struct {
	transactions []ledger.Transaction
	accounts     []ledger.Account
	settings     models.Settings
}

func loadReportData(c *gin.Context) (reportData, bool) {
	var transactions []models.Transaction
	if err := models.DB.Find(&transactions).Error; err != nil {
		httperror.Handler(c, err)
		return reportData{}, false
	}

	var accounts []models.Account
	if err := models.DB.Find(&accounts).Error; err != nil {
		httperror.Handler(c, err)
		return reportData{}, false
	}

	settings, err := models.LoadSettings(models.DB)
	if err != nil {
		httperror.Handler(c, err)
		return reportData{}, false
	}

	return reportData{
		transactions: models.TransactionSnapshots(transactions),
		accounts:     models.AccountSnapshots(accounts),
		settings:     settings,
	}, true
}

// resolvePeriod finds the period for the requested key. An empty key selects
// the current month.
func resolvePeriod(c *gin.Context, data reportData, key string) (ledger.Period, bool) {
	now := timeNow()

	periods := ledger.BuildMonthlyPeriods(now, data.transactions, ledger.PeriodOptions{})

	if key == "" {
		key = types.MonthOf(now).String()
	}

	period, ok := ledger.FindPeriod(periods, key)
	if !ok {
		// Allow months outside the generated list, e.g. a future month
		month, err := types.ParseMonth(key)
		if err != nil {
			httperror.InvalidMonth(c)
			return ledger.Period{}, false
		}

		period = ledger.MonthPeriod(month)
	}

	return period, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/periods [options]
func OptionsPeriods(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/summary [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List periods
// @Description	Returns the reporting periods covering all stored transactions, oldest first
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	PeriodListResponse
// @Failure		400			{object}	httperror.HTTPError
// @Failure		500			{object}	httperror.HTTPError
// @Param			window		query		int		false	"Number of trailing months, defaults to 12"
// @Param			baseline	query		string	false	"Fixed starting month as YYYY-MM"
// @Router			/v1/periods [get]
func GetPeriods(c *gin.Context) {
	var filter PeriodQueryFilter
	if err := c.Bind(&filter); err != nil {
		httperror.InvalidQueryString(c)
		return
	}

	opts := ledger.PeriodOptions{Window: filter.Window}

	if filter.Baseline != "" {
		baseline, err := types.ParseMonth(filter.Baseline)
		if err != nil {
			httperror.InvalidMonth(c)
			return
		}
		opts.Baseline = baseline
	}

	data, ok := loadReportData(c)
	if !ok {
		return
	}

	periods := ledger.BuildMonthlyPeriods(timeNow(), data.transactions, opts)

	c.JSON(http.StatusOK, PeriodListResponse{Data: periods})
}

// @Summary		Period summary
// @Description	Returns the financial summary of a period and its transactions grouped by day
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	SummaryReportResponse
// @Failure		400		{object}	httperror.HTTPError
// @Failure		500		{object}	httperror.HTTPError
// @Param			period	query		string	false	"Period key, YYYY-MM or \"future\". Defaults to the current month."
// @Param			account	query		string	false	"Report from the point of view of this account ID"
// @Router			/v1/reports/summary [get]
func GetSummaryReport(c *gin.Context) {
	var filter ReportQueryFilter
	if err := c.Bind(&filter); err != nil {
		httperror.InvalidQueryString(c)
		return
	}

	accountID, err := filter.accountID()
	if err != nil {
		httperror.InvalidUUID(c)
		return
	}

	data, ok := loadReportData(c)
	if !ok {
		return
	}

	period, ok := resolvePeriod(c, data, filter.Period)
	if !ok {
		return
	}

	pov := ledger.AggregatePointOfView(data.accounts, data.settings.Currency)

	var accountName string
	if accountID != nil {
		pov = ledger.AccountPointOfView(*accountID)
		accountName = ledger.AccountName(data.accounts, *accountID)
	}

	start, end := period.Range()
	inPeriod := ledger.Filter(data.transactions, data.accounts, data.settings.Currency, ledger.Criteria{
		AccountID: accountID,
		Range:     &ledger.DateRange{From: start, Until: end},
	})

	c.JSON(http.StatusOK, SummaryReportResponse{
		Data: SummaryReport{
			Period:  period,
			Summary: ledger.Summarize(data.transactions, period, pov),
			Days:    ledger.GroupByDay(inPeriod, pov),
			Account: accountName,
		},
	})
}

// @Summary		Category breakdown
// @Description	Returns the top categories of a period by summed amount, separately for income and expenses
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	BreakdownReportResponse
// @Failure		400		{object}	httperror.HTTPError
// @Failure		500		{object}	httperror.HTTPError
// @Param			period	query		string	false	"Period key, YYYY-MM or \"future\". Defaults to the current month."
// @Param			account	query		string	false	"Limit to transactions touching this account ID"
// @Router			/v1/reports/breakdown [get]
func GetBreakdownReport(c *gin.Context) {
	var filter ReportQueryFilter
	if err := c.Bind(&filter); err != nil {
		httperror.InvalidQueryString(c)
		return
	}

	accountID, err := filter.accountID()
	if err != nil {
		httperror.InvalidUUID(c)
		return
	}

	data, ok := loadReportData(c)
	if !ok {
		return
	}

	period, ok := resolvePeriod(c, data, filter.Period)
	if !ok {
		return
	}

	start, end := period.Range()
	inPeriod := ledger.Filter(data.transactions, data.accounts, data.settings.Currency, ledger.Criteria{
		AccountID: accountID,
		Range:     &ledger.DateRange{From: start, Until: end},
	})

	c.JSON(http.StatusOK, BreakdownReportResponse{
		Data: BreakdownReport{
			Period:  period,
			Income:  ledger.Breakdown(inPeriod, ledger.TypeIncome),
			Expense: ledger.Breakdown(inPeriod, ledger.TypeExpense),
		},
	})
}

// @Summary		Due recurring transactions
// @Description	Returns the recurring definitions due in a period, and the one due next overall
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	RecurringReportResponse
// @Failure		400		{object}	httperror.HTTPError
// @Failure		500		{object}	httperror.HTTPError
// @Param			period	query		string	false	"Period key, YYYY-MM or \"future\". Defaults to the current month."
// @Param			account	query		string	false	"Limit to definitions touching this account ID"
// @Router			/v1/reports/recurring [get]
func GetRecurringReport(c *gin.Context) {
	var filter ReportQueryFilter
	if err := c.Bind(&filter); err != nil {
		httperror.InvalidQueryString(c)
		return
	}

	accountID, err := filter.accountID()
	if err != nil {
		httperror.InvalidUUID(c)
		return
	}

	data, ok := loadReportData(c)
	if !ok {
		return
	}

	period, ok := resolvePeriod(c, data, filter.Period)
	if !ok {
		return
	}

	var recurring []models.RecurringTransaction
	if err := models.DB.Find(&recurring).Error; err != nil {
		httperror.Handler(c, err)
		return
	}

	definitions := models.RecurringSnapshots(recurring)
	due := ledger.DueInPeriod(definitions, period, accountID)

	c.JSON(http.StatusOK, RecurringReportResponse{
		Data: RecurringReport{
			Period:  period,
			Due:     due,
			NextDue: ledger.NextDue(due),
		},
	})
}
