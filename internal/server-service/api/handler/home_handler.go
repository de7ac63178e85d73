package handler

import (
	"net/http"

	"server-dashboard/internal/server-service/api/dto/response"

	"github.com/gin-gonic/gin"
)

const APIVersion = "1.0.0"

func APIInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.APIInfoResponse{
			Message: "Server Dashboard API",
			Version: APIVersion,
			Endpoints: map[string]string{
				"servers": "/api/servers",
				"monitor": "/api/monitor",
				"pods":    "/api/pods",
			},
		})
	}
}
