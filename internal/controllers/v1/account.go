package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/httperror"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAccountList)
		r.GET("", GetAccounts)
		r.POST("", CreateAccount)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", OptionsAccountDetail)
		r.GET("/:id", GetAccount)
		r.PATCH("/:id", UpdateAccount)
		r.DELETE("/:id", DeleteAccount)
	}
}

// Account is the API representation of an account, with its current balance.
type Account struct {
	models.Account
	Balance decimal.Decimal `json:"balance" example:"1325.92"`
}

type AccountResponse struct {
	Data Account `json:"data"`
}

type AccountListResponse struct {
	Data []Account `json:"data"`
}

// AccountQueryFilter contains the fields accounts can be filtered by.
type AccountQueryFilter struct {
	Name     string `form:"name"`
	Currency string `form:"currency"`
	Archived bool   `form:"archived"`
}

func newAccount(c *gin.Context, account models.Account) (Account, bool) {
	balance, err := account.Balance(models.DB, time.Now().In(time.UTC))
	if err != nil {
		httperror.Handler(c, err)
		return Account{}, false
	}

	return Account{
		Account: account,
		Balance: balance,
	}, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts/{id} [options]
func OptionsAccountDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create account
// @Description	Creates a new account
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	AccountResponse
// @Failure		400		{object}	httperror.HTTPError
// @Failure		500		{object}	httperror.HTTPError
// @Param			account	body		models.Account	true	"Account"
// @Router			/v1/accounts [post]
func CreateAccount(c *gin.Context) {
	var account models.Account

	if err := httputil.BindData(c, &account); err != nil {
		httperror.Handler(c, err)
		return
	}

	if err := models.DB.Create(&account).Error; err != nil {
		httperror.Handler(c, err)
		return
	}

	data, ok := newAccount(c, account)
	if !ok {
		return
	}

	c.JSON(http.StatusCreated, AccountResponse{Data: data})
}

// @Summary		List accounts
// @Description	Returns a list of accounts
// @Tags			Accounts
// @Produce		json
// @Success		200			{object}	AccountListResponse
// @Failure		400			{object}	httperror.HTTPError
// @Failure		500			{object}	httperror.HTTPError
// @Param			name		query		string	false	"Filter by name"
// @Param			currency	query		string	false	"Filter by currency"
// @Param			archived	query		bool	false	"Only archived accounts"
// @Router			/v1/accounts [get]
func GetAccounts(c *gin.Context) {
	var filter AccountQueryFilter
	if err := c.Bind(&filter); err != nil {
		httperror.InvalidQueryString(c)
		return
	}

	var accounts []models.Account
	err := models.DB.
		Where(&models.Account{
			Name:     filter.Name,
			Currency: filter.Currency,
			Archived: filter.Archived,
		}).
		Order("name ASC").
		Find(&accounts).Error
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	data := make([]Account, 0, len(accounts))
	for _, account := range accounts {
		resource, ok := newAccount(c, account)
		if !ok {
			return
		}

		data = append(data, resource)
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: data})
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	httperror.HTTPError
// @Failure		404	{object}	httperror.HTTPError
// @Failure		500	{object}	httperror.HTTPError
// @Param			id	path		string	true	"ID of the account"
// @Router			/v1/accounts/{id} [get]
func GetAccount(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httperror.InvalidUUID(c)
		return
	}

	account, ok := first[models.Account](c, models.DB, id)
	if !ok {
		return
	}

	data, ok := newAccount(c, account)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Data: data})
}

// @Summary		Update account
// @Description	Updates an account. Only values to be updated need to be specified.
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Failure		400		{object}	httperror.HTTPError
// @Failure		404		{object}	httperror.HTTPError
// @Failure		500		{object}	httperror.HTTPError
// @Param			id		path		string			true	"ID of the account"
// @Param			account	body		models.Account	true	"Account"
// @Router			/v1/accounts/{id} [patch]
func UpdateAccount(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httperror.InvalidUUID(c)
		return
	}

	account, ok := first[models.Account](c, models.DB, id)
	if !ok {
		return
	}

	updateFields, err := httputil.BodyFields(c, models.Account{})
	if err != nil {
		httperror.InvalidBody(c)
		return
	}

	var data models.Account
	if err := httputil.BindData(c, &data); err != nil {
		httperror.Handler(c, err)
		return
	}

	err = models.DB.Model(&account).Select("", updateFields...).Updates(data).Error
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	resource, ok := newAccount(c, account)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Data: resource})
}

// @Summary		Delete account
// @Description	Deletes an account
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httperror.HTTPError
// @Failure		404	{object}	httperror.HTTPError
// @Failure		500	{object}	httperror.HTTPError
// @Param			id	path		string	true	"ID of the account"
// @Router			/v1/accounts/{id} [delete]
func DeleteAccount(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httperror.InvalidUUID(c)
		return
	}

	account, ok := first[models.Account](c, models.DB, id)
	if !ok {
		return
	}

	if err := models.DB.Delete(&account).Error; err != nil {
		httperror.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
