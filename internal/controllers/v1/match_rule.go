package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/httperror"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

// RegisterMatchRuleRoutes registers the routes for match rules with
// the RouterGroup that is passed.
func RegisterMatchRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMatchRuleList)
		r.GET("", GetMatchRules)
		r.POST("", CreateMatchRule)
	}

	// Match rule with ID
	{
		r.OPTIONS("/:id", OptionsMatchRuleDetail)
		r.GET("/:id", GetMatchRule)
		r.PATCH("/:id", UpdateMatchRule)
		r.DELETE("/:id", DeleteMatchRule)
	}
}

type MatchRuleResponse struct {
	Data models.MatchRule `json:"data"`
}

type MatchRuleListResponse struct {
	Data []models.MatchRule `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MatchRules
// @Success		204
// @Router			/v1/match-rules [options]
func OptionsMatchRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MatchRules
// @Success		204
// @Router			/v1/match-rules/{id} [options]
func OptionsMatchRuleDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create match rule
// @Description	Creates a new match rule
// @Tags			MatchRules
// @Accept			json
// @Produce		json
// @Success		201			{object}	MatchRuleResponse
// @Failure		400			{object}	httperror.HTTPError
// @Failure		500			{object}	httperror.HTTPError
// @Param			matchRule	body		models.MatchRule	true	"MatchRule"
// @Router			/v1/match-rules [post]
func CreateMatchRule(c *gin.Context) {
	var matchRule models.MatchRule

	if err := httputil.BindData(c, &matchRule); err != nil {
		httperror.Handler(c, err)
		return
	}

	if err := models.DB.Create(&matchRule).Error; err != nil {
		httperror.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, MatchRuleResponse{Data: matchRule})
}

// @Summary		List match rules
// @Description	Returns a list of match rules, ordered by priority
// @Tags			MatchRules
// @Produce		json
// @Success		200	{object}	MatchRuleListResponse
// @Failure		500	{object}	httperror.HTTPError
// @Router			/v1/match-rules [get]
func GetMatchRules(c *gin.Context) {
	var matchRules []models.MatchRule
	err := models.DB.Order("priority ASC, match ASC").Find(&matchRules).Error
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, MatchRuleListResponse{Data: matchRules})
}

// @Summary		Get match rule
// @Description	Returns a specific match rule
// @Tags			MatchRules
// @Produce		json
// @Success		200	{object}	MatchRuleResponse
// @Failure		400	{object}	httperror.HTTPError
// @Failure		404	{object}	httperror.HTTPError
// @Failure		500	{object}	httperror.HTTPError
// @Param			id	path		string	true	"ID of the match rule"
// @Router			/v1/match-rules/{id} [get]
func GetMatchRule(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httperror.InvalidUUID(c)
		return
	}

	matchRule, ok := first[models.MatchRule](c, models.DB, id)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, MatchRuleResponse{Data: matchRule})
}

// @Summary		Update match rule
// @Description	Updates a match rule. Only values to be updated need to be specified.
// @Tags			MatchRules
// @Accept			json
// @Produce		json
// @Success		200			{object}	MatchRuleResponse
// @Failure		400			{object}	httperror.HTTPError
// @Failure		404			{object}	httperror.HTTPError
// @Failure		500			{object}	httperror.HTTPError
// @Param			id			path		string				true	"ID of the match rule"
// @Param			matchRule	body		models.MatchRule	true	"MatchRule"
// @Router			/v1/match-rules/{id} [patch]
func UpdateMatchRule(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httperror.InvalidUUID(c)
		return
	}

	matchRule, ok := first[models.MatchRule](c, models.DB, id)
	if !ok {
		return
	}

	updateFields, err := httputil.BodyFields(c, models.MatchRule{})
	if err != nil {
		httperror.InvalidBody(c)
		return
	}

	var data models.MatchRule
	if err := httputil.BindData(c, &data); err != nil {
		httperror.Handler(c, err)
		return
	}

	// An unset pattern is backfilled so that the validation hook passes
	// on partial updates
	if data.Match == "" {
		data.Match = matchRule.Match
	}

	err = models.DB.Model(&matchRule).Select("", updateFields...).Updates(data).Error
	if err != nil {
		httperror.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, MatchRuleResponse{Data: matchRule})
}

// @Summary		Delete match rule
// @Description	Deletes a match rule
// @Tags			MatchRules
// @Success		204
// @Failure		400	{object}	httperror.HTTPError
// @Failure		404	{object}	httperror.HTTPError
// @Failure		500	{object}	httperror.HTTPError
// @Param			id	path		string	true	"ID of the match rule"
// @Router			/v1/match-rules/{id} [delete]
func DeleteMatchRule(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httperror.InvalidUUID(c)
		return
	}

	matchRule, ok := first[models.MatchRule](c, models.DB, id)
	if !ok {
		return
	}

	if err := models.DB.Delete(&matchRule).Error; err != nil {
		httperror.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
