package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"urbanscribe/internal/models/response_models"
)

type PingController struct {
	message string
}

func NewPingController(message string) *PingController {
	return &PingController{message: message}
}

// Ping godoc
// @Summary Liveness probe
// @Produce json
// @Success 200 {object} response_models.PingResponse
// @Router /api/ping [get]
func (p *PingController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, response_models.PingResponse{Message: p.message})
}
