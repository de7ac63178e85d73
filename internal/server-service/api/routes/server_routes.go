package routes

import (
	"server-dashboard/internal/server-service/api/handler"

	"github.com/gin-gonic/gin"
)

func AddServerRoutes(r *gin.Engine, handler handler.ServerHandler) {
	serverRoutes := r.Group("/api/servers")
	serverRoutes.GET("", handler.GetServers())
	serverRoutes.POST("", handler.CreateServer())
	serverRoutes.POST("/refresh", handler.RefreshServers())
	serverRoutes.POST("/report", handler.ReportServersInformation())
	serverRoutes.GET("/export/csv", handler.ExportServersToCSV())
	serverRoutes.GET("/export/xlsx", handler.ExportServersToExcel())
	serverRoutes.GET("/:id", handler.GetServerById())
	serverRoutes.PUT("/:id", handler.UpdateServer())
	serverRoutes.DELETE("/:id", handler.DeleteServer())
	serverRoutes.POST("/:id/check", handler.CheckServer())
	serverRoutes.GET("/:id/version", handler.GetServerVersion())
	serverRoutes.GET("/:id/uptime", handler.GetServerUptimePercentage())
}

func AddMonitorRoutes(r *gin.Engine, handler handler.MonitorHandler) {
	monitorRoutes := r.Group("/api/monitor")
	monitorRoutes.GET("/status", handler.GetStatus())
	monitorRoutes.PUT("/interval", handler.SetInterval())
}

func AddPodRoutes(r *gin.Engine, handler handler.PodHandler) {
	podRoutes := r.Group("/api/pods")
	podRoutes.GET("/pods", handler.GetPods())
	podRoutes.GET("/pods/:name", handler.GetPodByName())
	podRoutes.GET("/summary", handler.GetPodsSummary())
	podRoutes.GET("/namespace", handler.GetNamespace())
	podRoutes.GET("/info", handler.GetInfo())
	podRoutes.GET("/export/csv", handler.ExportPodsToCSV())
}

func AddHomeRoutes(r *gin.Engine) {
	r.GET("/", handler.APIInfo())
}
