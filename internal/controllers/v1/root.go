// Package v1 implements the handlers for the v1 API.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/httperror"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"/docs/index.html"`
	Healthz string `json:"healthz" example:"/healthz"`
	Version string `json:"version" example:"/version"`
	Metrics string `json:"metrics" example:"/metrics"`
	V1      string `json:"v1" example:"/v1"`
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    "/docs/index.html",
			Healthz: "/healthz",
			Version: "/version",
			Metrics: "/metrics",
			V1:      "/v1",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// GetVersion returns the handler reporting the software version of the API.
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, VersionResponse{
			Data: VersionObject{
				Version: version,
			},
		})
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Liveness check
// @Description	Returns the health of the API and its database connection
// @Tags			General
// @Success		204
// @Failure		500
// @Router			/healthz [get]
func GetHealth(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}

	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func OptionsHealth(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Accounts     string `json:"accounts" example:"/v1/accounts"`
	Transactions string `json:"transactions" example:"/v1/transactions"`
	Recurring    string `json:"recurring" example:"/v1/recurring"`
	MatchRules   string `json:"matchRules" example:"/v1/match-rules"`
	Settings     string `json:"settings" example:"/v1/settings"`
	Periods      string `json:"periods" example:"/v1/periods"`
	Reports      string `json:"reports" example:"/v1/reports"`
	Import       string `json:"import" example:"/v1/import"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Accounts:     "/v1/accounts",
			Transactions: "/v1/transactions",
			Recurring:    "/v1/recurring",
			MatchRules:   "/v1/match-rules",
			Settings:     "/v1/settings",
			Periods:      "/v1/periods",
			Reports:      "/v1/reports",
			Import:       "/v1/import",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}

// first returns the resource with the given ID or translates the error.
func first[T any](c *gin.Context, db *gorm.DB, id any) (T, bool) {
	var resource T

	err := db.First(&resource, "id = ?", id).Error
	if err != nil {
		httperror.Handler(c, err)
		return resource, false
	}

	return resource, true
}
