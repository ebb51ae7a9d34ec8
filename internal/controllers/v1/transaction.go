package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/httperror"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

type TransactionResponse struct {
	Data models.Transaction `json:"data"`
}

type TransactionListResponse struct {
	Data []models.Transaction `json:"data"`
}

// TransactionQueryFilter contains the fields transactions can be filtered by.
// Amount bounds are raw texts as typed by the user, unparsable bounds are
// ignored.
type TransactionQueryFilter struct {
	Account   string   `form:"account"`
	FromDate  string   `form:"fromDate"`
	UntilDate string   `form:"untilDate"`
	AmountMin string   `form:"amountMin"`
	AmountMax string   `form:"amountMax"`
	Category  []string `form:"category"`
	Search    string   `form:"search"`
}

// criteria translates the query string into the filter criteria of the
// ledger core.
func (f TransactionQueryFilter) criteria() (ledger.Criteria, error) {
	criteria := ledger.Criteria{
		MinAmount:  f.AmountMin,
		MaxAmount:  f.AmountMax,
		Categories: f.Category,
		Search:     f.Search,
	}

	if f.Account != "" {
		id, err := uuid.Parse(f.Account)
		if err != nil {
			return criteria, err
		}
		criteria.AccountID = &id
	}

	if f.FromDate != "" || f.UntilDate != "" {
		dateRange := ledger.DateRange{
			From:  time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC),
			Until: time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC),
		}

		if f.FromDate != "" {
			from, err := parseDate(f.FromDate)
			if err != nil {
				return criteria, err
			}
			dateRange.From = from
		}

		if f.UntilDate != "" {
			until, err := parseDate(f.UntilDate)
			if err != nil {
				return criteria, err
			}
			// A date-only upper bound covers the whole day
			dateRange.Until = until.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}

		criteria.Range = &dateRange
	}

	return criteria, nil
}

// parseDate accepts a full timestamp or a plain date.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.In(time.UTC), nil
	}

	return time.Parse("2006-01-02", value)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create transaction
// @Description	Creates a new transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	httperror.HTTPError
// @Failure		500			{object}	httperror.HTTPError
// @Param			transaction	body		models.Transaction	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var transaction models.Transaction

	if err := httputil.BindData(c, &transaction); err != nil {
		httperror.Handler(c, err)
		return
	}

	if err := models.DB.Create(&transaction).Error; err != nil {
		httperror.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: transaction})
}

// @Summary		List transactions
// @Description	Returns the transactions matching all given filters
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	httperror.HTTPError
// @Failure		500			{object}	httperror.HTTPError
// @Param			account		query		string	false	"Limit to transactions touching this account ID"
// @Param			fromDate	query		string	false	"Earliest date, inclusive"
// @Param			untilDate	query		string	false	"Latest date, inclusive"
// @Param			amountMin	query		string	false	"Smallest amount, as amount text"
// @Param			amountMax	query		string	false	"Largest amount, as amount text"
// @Param			category	query		[]string	false	"Exact category labels"
// @Param			search		query		string	false	"Case-insensitive text search"
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		httperror.InvalidQueryString(c)
		return
	}

	criteria, err := filter.criteria()
	if err != nil {
		httperror.InvalidQueryString(c)
		return
	}

	var transactions []models.Transaction
	err = models.DB.Order("date DESC, sequence DESC").Find(&transactions).Error
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	var accounts []models.Account
	if err := models.DB.Find(&accounts).Error; err != nil {
		httperror.Handler(c, err)
		return
	}

	settings, err := models.LoadSettings(models.DB)
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	// The filter pipeline works on snapshots, map the matches back to
	// the stored resources
	byID := make(map[string]models.Transaction, len(transactions))
	for _, t := range transactions {
		byID[t.ID.String()] = t
	}

	matches := ledger.Filter(
		models.TransactionSnapshots(transactions),
		models.AccountSnapshots(accounts),
		settings.Currency,
		criteria,
	)

	data := make([]models.Transaction, 0, len(matches))
	for _, match := range matches {
		data = append(data, byID[match.ID])
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httperror.HTTPError
// @Failure		404	{object}	httperror.HTTPError
// @Failure		500	{object}	httperror.HTTPError
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httperror.InvalidUUID(c)
		return
	}

	transaction, ok := first[models.Transaction](c, models.DB, id)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: transaction})
}

// @Summary		Update transaction
// @Description	Updates a transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	httperror.HTTPError
// @Failure		404			{object}	httperror.HTTPError
// @Failure		500			{object}	httperror.HTTPError
// @Param			id			path		string				true	"ID of the transaction"
// @Param			transaction	body		models.Transaction	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httperror.InvalidUUID(c)
		return
	}

	transaction, ok := first[models.Transaction](c, models.DB, id)
	if !ok {
		return
	}

	updateFields, err := httputil.BodyFields(c, models.Transaction{})
	if err != nil {
		httperror.InvalidBody(c)
		return
	}

	var data models.Transaction
	if err := httputil.BindData(c, &data); err != nil {
		httperror.Handler(c, err)
		return
	}

	// Fields the body does not set are backfilled from the stored
	// transaction so that the validation hook sees the full picture
	if data.Amount.IsZero() {
		data.Amount = transaction.Amount
	}
	if data.Type == "" {
		data.Type = transaction.Type
	}
	if data.SourceAccountID == uuid.Nil {
		data.SourceAccountID = transaction.SourceAccountID
	}
	if data.DestinationAccountID == nil {
		data.DestinationAccountID = transaction.DestinationAccountID
	}

	err = models.DB.Model(&transaction).Select("", updateFields...).Updates(data).Error
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: transaction})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httperror.HTTPError
// @Failure		404	{object}	httperror.HTTPError
// @Failure		500	{object}	httperror.HTTPError
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httperror.InvalidUUID(c)
		return
	}

	transaction, ok := first[models.Transaction](c, models.DB, id)
	if !ok {
		return
	}

	if err := models.DB.Delete(&transaction).Error; err != nil {
		httperror.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
