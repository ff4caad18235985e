package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"urbanscribe/internal/models/request_models"
	"urbanscribe/internal/services"
	"urbanscribe/pkg/utils"
)

type JourneyController struct {
	journeyService services.JourneyServiceInterface
}

func NewJourneyController(journeyService services.JourneyServiceInterface) *JourneyController {
	return &JourneyController{
		journeyService: journeyService,
	}
}

// GenerateJourney godoc
// @Summary Generate a journey
// @Description Generate a journey (narrative, route, destinations) from a free-text query and the client's location
// @Tags Journey
// @Accept json
// @Produce json
// @Param request body request_models.GenerateJourneyRequest true "Query and current location"
// @Success 200 {object} response_models.Journey
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/generate-journey [post]
func (j *JourneyController) GenerateJourney(c *gin.Context) {
	var req request_models.GenerateJourneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query is required")
		return
	}
	if req.Location == nil {
		utils.RespondError(c, http.StatusBadRequest, "Location is required")
		return
	}

	journey, err := j.journeyService.GenerateJourney(c.Request.Context(), req.Query, *req.Location)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, journey)
}
