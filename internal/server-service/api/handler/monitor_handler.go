package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"server-dashboard/internal/scheduler/scheduler"
	"server-dashboard/internal/server-service/api/dto/request"
	"server-dashboard/internal/server-service/api/dto/response"
	apperrors "server-dashboard/internal/server-service/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MonitorHandler interface {
	GetStatus() gin.HandlerFunc
	SetInterval() gin.HandlerFunc
}

type monitorHandler struct {
	logger  Logger
	monitor scheduler.Monitor
}

func newMonitorStatusResponse(status scheduler.MonitorStatus) response.MonitorStatusResponse {
	return response.MonitorStatusResponse{
		IsRunning:     status.IsRunning,
		CheckInterval: status.CheckInterval.Milliseconds(),
		NextCheck:     status.NextCheck,
	}
}

func (m *monitorHandler) GetStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.Success(newMonitorStatusResponse(m.monitor.Status()), ""))
	}
}

func (m *monitorHandler) SetInterval() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.IntervalRequest
		if !bindJSON(c, &req) {
			return
		}
		interval := time.Duration(*req.Interval) * time.Millisecond
		if err := m.monitor.SetInterval(interval); err != nil {
			switch {
			case errors.Is(err, apperrors.ErrInvalidInterval):
				c.JSON(http.StatusBadRequest, response.Failure("Invalid interval"))
			default:
				err = fmt.Errorf("MonitorHandler.SetInterval: %w", err)
				m.logger.LoggingError(c, err, "failed to set monitor interval", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Failure(msgInternalServerError))
			}
			return
		}
		c.JSON(http.StatusOK, response.Success(newMonitorStatusResponse(m.monitor.Status()), "Monitor interval updated"))
	}
}

func NewMonitorHandler(logger Logger, monitor scheduler.Monitor) MonitorHandler {
	return &monitorHandler{
		logger:  logger,
		monitor: monitor,
	}
}
