package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/httperror"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterSettingsRoutes registers the routes for the settings with
// the RouterGroup that is passed.
func RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSettings)
	r.GET("", GetSettings)
	r.PATCH("", UpdateSettings)
}

type SettingsResponse struct {
	Data models.Settings `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get settings
// @Description	Returns the settings, or the defaults when none were saved yet
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	httperror.HTTPError
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	settings, err := models.LoadSettings(models.DB)
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: settings})
}

// @Summary		Update settings
// @Description	Updates the settings. Only values to be updated need to be specified.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	httperror.HTTPError
// @Failure		500			{object}	httperror.HTTPError
// @Param			settings	body		models.Settings	true	"Settings"
// @Router			/v1/settings [patch]
func UpdateSettings(c *gin.Context) {
	settings, err := models.LoadSettings(models.DB)
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	var data models.Settings
	if err := httputil.BindData(c, &data); err != nil {
		httperror.Handler(c, err)
		return
	}

	if data.Currency != "" {
		settings.Currency = data.Currency
	}
	if data.Locale != "" {
		settings.Locale = data.Locale
	}

	if err := models.DB.Save(&settings).Error; err != nil {
		httperror.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: settings})
}
