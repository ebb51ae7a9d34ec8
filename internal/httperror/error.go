// Package httperror translates collaborator errors into HTTP responses.
package httperror

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/go-sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"there is no resource for the specified ID"`
}

// New writes an HTTPError response.
func New(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Error: err.Error(),
	})
}

// InvalidUUID writes the error response for an unparsable resource ID.
func InvalidUUID(c *gin.Context) {
	New(c, http.StatusBadRequest, errors.New("the specified resource ID is not a valid UUID"))
}

// InvalidQueryString writes the error response for an unparsable query string.
func InvalidQueryString(c *gin.Context) {
	New(c, http.StatusBadRequest, errors.New("the query string contains unparseable data, please check the values"))
}

// InvalidBody writes the error response for an unparsable request body.
func InvalidBody(c *gin.Context) {
	New(c, http.StatusBadRequest, errors.New("the body of your request contains invalid or un-parseable data, please check and try again"))
}

// InvalidMonth writes the error response for an unparsable period key.
func InvalidMonth(c *gin.Context) {
	New(c, http.StatusBadRequest, errors.New("could not parse the specified period, did you use the YYYY-MM format?"))
}

// Handler maps an error from the model layer to an HTTP response.
//
// Validation errors from model hooks map to 400, missing resources to 404.
// Unknown errors are logged with the request ID and answered with a generic
// 500 so that no internal detail leaks to the client.
func Handler(c *gin.Context, err error) {
	status := Status(err)

	if status == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		New(c, status, models.ErrGeneral)
		return
	}

	New(c, status, err)
}

// Status returns the HTTP status code appropriate for the error.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, models.ErrResourceNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound

	case errors.Is(err, models.ErrAmountNotPositive),
		errors.Is(err, models.ErrInvalidTransactionType),
		errors.Is(err, models.ErrTransferMissingResource),
		errors.Is(err, models.ErrTransferSameAccount),
		errors.Is(err, models.ErrDestinationOnTransferOnly),
		errors.Is(err, models.ErrInvalidFrequency),
		errors.Is(err, models.ErrInvalidCurrency),
		errors.Is(err, models.ErrInvalidLocale),
		errors.Is(err, models.ErrMatchRuleEmpty),
		errors.Is(err, models.ErrAccountNameNotUnique):
		return http.StatusBadRequest

	case reflect.TypeOf(err) == reflect.TypeOf(&sqlite.Error{}),
		strings.Contains(err.Error(), "constraint failed"):
		return http.StatusBadRequest

	case reflect.TypeOf(err) == reflect.TypeOf(&time.ParseError{}):
		return http.StatusBadRequest

	case errors.Is(err, httputil.ErrRequestBodyEmpty),
		reflect.TypeOf(err) == reflect.TypeOf(&json.SyntaxError{}),
		reflect.TypeOf(err) == reflect.TypeOf(&json.UnmarshalTypeError{}):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
