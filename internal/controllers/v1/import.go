package v1

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/httperror"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/importer"
	"github.com/pocketledger/backend/internal/models"
)

var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)

// RegisterImportRoutes registers the routes for imports with
// the RouterGroup that is passed.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", ImportStatement)
}

type ImportQuery struct {
	// ID of the account the statement belongs to
	AccountID string `form:"accountId" binding:"required"`
}

type ImportResponse struct {
	Data ImportResult `json:"data"`
}

// ImportResult reports what an import created.
type ImportResult struct {
	Count        int                  `json:"count" example:"17"`
	Transactions []models.Transaction `json:"transactions"`
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	return formFile.Open()
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import statement
// @Description	Imports a statement CSV for an account. Amounts are parsed as amount texts, categories are assigned from the match rules.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201			{object}	ImportResponse
// @Failure		400			{object}	httperror.HTTPError
// @Failure		404			{object}	httperror.HTTPError
// @Failure		500			{object}	httperror.HTTPError
// @Param			accountId	query		string	true	"ID of the account the statement belongs to"
// @Param			file		formData	file	true	"Statement CSV"
// @Router			/v1/import [post]
func ImportStatement(c *gin.Context) {
	var query ImportQuery
	if err := c.BindQuery(&query); err != nil {
		httperror.New(c, http.StatusBadRequest, errors.New("the accountId query parameter is required"))
		return
	}

	id, err := uuid.Parse(query.AccountID)
	if err != nil {
		httperror.InvalidUUID(c)
		return
	}

	account, ok := first[models.Account](c, models.DB, id)
	if !ok {
		return
	}

	file, err := getUploadedFile(c, ".csv")
	if err != nil {
		httperror.New(c, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	var rules []models.MatchRule
	if err := models.DB.Find(&rules).Error; err != nil {
		httperror.Handler(c, err)
		return
	}

	transactions, err := importer.Parse(file, account, rules)
	if err != nil {
		httperror.New(c, http.StatusBadRequest, err)
		return
	}

	// All lines are imported or none, a broken statement must not leave a
	// half-imported account behind
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		for i := range transactions {
			if err := tx.Create(&transactions[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, ImportResponse{
		Data: ImportResult{
			Count:        len(transactions),
			Transactions: transactions,
		},
	})
}
