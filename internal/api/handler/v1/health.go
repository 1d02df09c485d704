package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haamee/haamee-api/internal/api/handler/v1/response"
)

// HandleHealthcheck godoc
// @Summary      Check server health
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.HealthcheckResponse
// @Router       /health [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.HealthcheckResponse{
		Status:  "OK",
		Message: "Haamee Server Running",
	})
}
