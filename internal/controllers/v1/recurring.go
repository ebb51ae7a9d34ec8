package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/httperror"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterRecurringRoutes registers the routes for recurring transactions
// with the RouterGroup that is passed.
func RegisterRecurringRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRecurringList)
		r.GET("", GetRecurringTransactions)
		r.POST("", CreateRecurringTransaction)
	}

	// Recurring transaction with ID
	{
		r.OPTIONS("/:id", OptionsRecurringDetail)
		r.GET("/:id", GetRecurringTransaction)
		r.PATCH("/:id", UpdateRecurringTransaction)
		r.DELETE("/:id", DeleteRecurringTransaction)
	}

	// Logging an occurrence
	{
		r.OPTIONS("/:id/log", OptionsRecurringLog)
		r.POST("/:id/log", LogRecurringTransaction)
	}
}

type RecurringTransactionResponse struct {
	Data models.RecurringTransaction `json:"data"`
}

type RecurringTransactionListResponse struct {
	Data []models.RecurringTransaction `json:"data"`
}

// RecurringQueryFilter contains the fields recurring transactions can be
// filtered by.
type RecurringQueryFilter struct {
	Active   bool   `form:"active"`
	Category string `form:"category"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringTransactions
// @Success		204
// @Router			/v1/recurring [options]
func OptionsRecurringList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringTransactions
// @Success		204
// @Router			/v1/recurring/{id} [options]
func OptionsRecurringDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringTransactions
// @Success		204
// @Router			/v1/recurring/{id}/log [options]
func OptionsRecurringLog(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create recurring transaction
// @Description	Creates a new recurring transaction definition
// @Tags			RecurringTransactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	RecurringTransactionResponse
// @Failure		400			{object}	httperror.HTTPError
// @Failure		500			{object}	httperror.HTTPError
// @Param			recurring	body		models.RecurringTransaction	true	"RecurringTransaction"
// @Router			/v1/recurring [post]
func CreateRecurringTransaction(c *gin.Context) {
	var recurring models.RecurringTransaction

	if err := httputil.BindData(c, &recurring); err != nil {
		httperror.Handler(c, err)
		return
	}

	if err := models.DB.Create(&recurring).Error; err != nil {
		httperror.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, RecurringTransactionResponse{Data: recurring})
}

// @Summary		List recurring transactions
// @Description	Returns a list of recurring transaction definitions
// @Tags			RecurringTransactions
// @Produce		json
// @Success		200			{object}	RecurringTransactionListResponse
// @Failure		400			{object}	httperror.HTTPError
// @Failure		500			{object}	httperror.HTTPError
// @Param			active		query		bool	false	"Only active definitions"
// @Param			category	query		string	false	"Filter by category"
// @Router			/v1/recurring [get]
func GetRecurringTransactions(c *gin.Context) {
	var filter RecurringQueryFilter
	if err := c.Bind(&filter); err != nil {
		httperror.InvalidQueryString(c)
		return
	}

	var recurring []models.RecurringTransaction
	err := models.DB.
		Where(&models.RecurringTransaction{
			Active:   filter.Active,
			Category: filter.Category,
		}).
		Order("next_occurrence ASC").
		Find(&recurring).Error
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, RecurringTransactionListResponse{Data: recurring})
}

// @Summary		Get recurring transaction
// @Description	Returns a specific recurring transaction definition
// @Tags			RecurringTransactions
// @Produce		json
// @Success		200	{object}	RecurringTransactionResponse
// @Failure		400	{object}	httperror.HTTPError
// @Failure		404	{object}	httperror.HTTPError
// @Failure		500	{object}	httperror.HTTPError
// @Param			id	path		string	true	"ID of the recurring transaction"
// @Router			/v1/recurring/{id} [get]
func GetRecurringTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httperror.InvalidUUID(c)
		return
	}

	recurring, ok := first[models.RecurringTransaction](c, models.DB, id)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, RecurringTransactionResponse{Data: recurring})
}

// @Summary		Update recurring transaction
// @Description	Updates a recurring transaction definition. Only values to be updated need to be specified.
// @Tags			RecurringTransactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	RecurringTransactionResponse
// @Failure		400			{object}	httperror.HTTPError
// @Failure		404			{object}	httperror.HTTPError
// @Failure		500			{object}	httperror.HTTPError
// @Param			id			path		string						true	"ID of the recurring transaction"
// @Param			recurring	body		models.RecurringTransaction	true	"RecurringTransaction"
// @Router			/v1/recurring/{id} [patch]
func UpdateRecurringTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httperror.InvalidUUID(c)
		return
	}

	recurring, ok := first[models.RecurringTransaction](c, models.DB, id)
	if !ok {
		return
	}

	updateFields, err := httputil.BodyFields(c, models.RecurringTransaction{})
	if err != nil {
		httperror.InvalidBody(c)
		return
	}

	var data models.RecurringTransaction
	if err := httputil.BindData(c, &data); err != nil {
		httperror.Handler(c, err)
		return
	}

	// Fields the body does not set are backfilled from the stored
	// definition so that the validation hook sees the full picture
	if data.Amount.IsZero() {
		data.Amount = recurring.Amount
	}
	if data.Type == "" {
		data.Type = recurring.Type
	}
	if data.Frequency == "" {
		data.Frequency = recurring.Frequency
	}
	if data.SourceAccountID == uuid.Nil {
		data.SourceAccountID = recurring.SourceAccountID
	}
	if data.DestinationAccountID == nil {
		data.DestinationAccountID = recurring.DestinationAccountID
	}

	err = models.DB.Model(&recurring).Select("", updateFields...).Updates(data).Error
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, RecurringTransactionResponse{Data: recurring})
}

// @Summary		Delete recurring transaction
// @Description	Deletes a recurring transaction definition
// @Tags			RecurringTransactions
// @Success		204
// @Failure		400	{object}	httperror.HTTPError
// @Failure		404	{object}	httperror.HTTPError
// @Failure		500	{object}	httperror.HTTPError
// @Param			id	path		string	true	"ID of the recurring transaction"
// @Router			/v1/recurring/{id} [delete]
func DeleteRecurringTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httperror.InvalidUUID(c)
		return
	}

	recurring, ok := first[models.RecurringTransaction](c, models.DB, id)
	if !ok {
		return
	}

	if err := models.DB.Delete(&recurring).Error; err != nil {
		httperror.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Log occurrence
// @Description	Books the pending occurrence of the recurring transaction and advances its schedule by one frequency step
// @Tags			RecurringTransactions
// @Produce		json
// @Success		201	{object}	TransactionResponse
// @Failure		400	{object}	httperror.HTTPError
// @Failure		404	{object}	httperror.HTTPError
// @Failure		500	{object}	httperror.HTTPError
// @Param			id	path		string	true	"ID of the recurring transaction"
// @Router			/v1/recurring/{id}/log [post]
func LogRecurringTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httperror.InvalidUUID(c)
		return
	}

	recurring, ok := first[models.RecurringTransaction](c, models.DB, id)
	if !ok {
		return
	}

	transaction, err := recurring.LogOccurrence(models.DB)
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: transaction})
}
