package controllers

import (
	"log"
	"net/http"
	"strings"

	"outfitapi/models"
	"outfitapi/recommender"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

type RecommendationController struct {
	Engine *recommender.Engine
}

func (controller *RecommendationController) RecommendationRoutes(g *echo.Group) {
	g.POST("", controller.Recommend)
}

func (controller *RecommendationController) Recommend(c echo.Context) error {
	var req models.RecommendationIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": validationMessage(err)})
	}
	if strings.TrimSpace(req.Occasion) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "occasion is required"})
	}
	if ownerID := strings.TrimSpace(req.OwnerID); ownerID != "" && !validOwnerID(ownerID) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid owner_id"})
	}

	outfit, err := controller.Engine.Recommend(c.Request().Context(), recommendationRequest(c, req))
	if err != nil {
		sentry.CaptureException(err)
		log.Printf("[Recommend] failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not load your closet, please try again"})
	}
	return c.JSON(http.StatusOK, outfit)
}

// recommendationRequest maps the body onto an engine request. temp_c is read
// only when temperature is absent, a body owner_id only for anonymous calls.
func recommendationRequest(c echo.Context, req models.RecommendationIn) recommender.Request {
	ownerID := currentOwner(c)
	if !isAuthenticated(c) && strings.TrimSpace(req.OwnerID) != "" {
		ownerID = strings.TrimSpace(req.OwnerID)
	}
	temperature := req.Temperature
	if temperature == nil {
		temperature = req.TempC
	}
	return recommender.Request{
		OwnerID:  ownerID,
		Occasion: req.Occasion,
		Weather: recommender.Weather{
			TemperatureC: temperature,
			Raining:      req.Raining,
		},
	}
}
