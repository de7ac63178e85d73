package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"server-dashboard/internal/server-service/api/dto/request"
	"server-dashboard/internal/server-service/api/dto/response"
	apperrors "server-dashboard/internal/server-service/errors"
	"server-dashboard/internal/server-service/model"
	"server-dashboard/internal/server-service/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	msgInvalidRequestBody  = "Invalid request body"
	msgInvalidServerID     = "Invalid server ID"
	msgNameRequired        = "The name field is required"
	msgInvalidServerType   = "Invalid server type"
	msgHealthcheckRequired = "Healthcheck is required for Other type"
	msgURLAlreadyExists    = "Server with this URL already exists"
	msgServerNotFound      = "Server not found"
	msgInternalServerError = "Internal server error"
	msgServiceUnavailable  = "Service is not configured"
)

type ServerHandler interface {
	GetServers() gin.HandlerFunc
	CreateServer() gin.HandlerFunc
	GetServerById() gin.HandlerFunc
	UpdateServer() gin.HandlerFunc
	DeleteServer() gin.HandlerFunc
	CheckServer() gin.HandlerFunc
	GetServerVersion() gin.HandlerFunc
	GetServerUptimePercentage() gin.HandlerFunc
	RefreshServers() gin.HandlerFunc
	ExportServersToCSV() gin.HandlerFunc
	ExportServersToExcel() gin.HandlerFunc
	ReportServersInformation() gin.HandlerFunc
}

type serverHandler struct {
	logger        Logger
	serverService service.ServerService
}

func formatValidationError(err validator.FieldError) string {
	field := strings.ToLower(err.Field())
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", field)
	case "url":
		return "Invalid URL format"
	case "max":
		return fmt.Sprintf("The %s field must be at most %s characters", field, err.Param())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", field)
	case "datetime":
		return fmt.Sprintf("The %s field is not a valid datetime, use YYYY-MM-DD format", field)
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", field, err.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be less than or equal to %s", field, err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", field, err.Tag())
	}
}

// bindJSON writes the 400 response itself and reports whether the handler may continue.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	var validatorError validator.ValidationErrors
	if errors.As(err, &validatorError) {
		c.JSON(http.StatusBadRequest, response.Failure(formatValidationError(validatorError[0])))
	} else {
		c.JSON(http.StatusBadRequest, response.Failure(msgInvalidRequestBody))
	}
	return false
}

func parseServerID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, response.Failure(msgInvalidServerID))
		return 0, false
	}
	return uint(id), true
}

func serverFromRequest(req request.ServerRequest) (model.Server, error) {
	serverType, err := model.ParseServerType(req.Type)
	if err != nil {
		return model.Server{}, apperrors.ErrInvalidServerType
	}
	return model.Server{
		Name:        req.Name,
		URL:         req.URL,
		Type:        serverType,
		Healthcheck: req.Healthcheck,
	}, nil
}

func (s *serverHandler) GetServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		servers, err := s.serverService.GetServers(c)
		if err != nil {
			err = fmt.Errorf("ServerHandler.GetServers: %w", err)
			s.logger.LoggingError(c, err, "failed to get servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Failure(msgInternalServerError))
			return
		}
		c.JSON(http.StatusOK, response.Success(response.NewServerInfoResponses(servers), ""))
	}
}

func (s *serverHandler) CreateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ServerRequest
		if !bindJSON(c, &req) {
			return
		}
		newServer, err := serverFromRequest(req)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Failure(msgInvalidServerType))
			return
		}
		res, err := s.serverService.CreateServer(c, newServer)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNameRequired):
				c.JSON(http.StatusBadRequest, response.Failure(msgNameRequired))
			case errors.Is(err, apperrors.ErrInvalidServerType):
				c.JSON(http.StatusBadRequest, response.Failure(msgInvalidServerType))
			case errors.Is(err, apperrors.ErrHealthcheckRequired):
				c.JSON(http.StatusBadRequest, response.Failure(msgHealthcheckRequired))
			case errors.Is(err, apperrors.ErrServerURLAlreadyExists):
				c.JSON(http.StatusConflict, response.Failure(msgURLAlreadyExists))
			default:
				err = fmt.Errorf("ServerHandler.CreateServer: %w", err)
				s.logger.LoggingError(c, err, "failed to create server", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Failure(msgInternalServerError))
			}
			return
		}
		c.JSON(http.StatusCreated, response.Success(response.NewServerInfoResponse(res), "Server created successfully"))
	}
}

func (s *serverHandler) GetServerById() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseServerID(c)
		if !ok {
			return
		}
		server, err := s.serverService.GetServerById(c, id)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Failure(msgServerNotFound))
			default:
				err = fmt.Errorf("ServerHandler.GetServerById: %w", err)
				s.logger.LoggingError(c, err, fmt.Sprintf("failed to get server %d", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Failure(msgInternalServerError))
			}
			return
		}
		c.JSON(http.StatusOK, response.Success(response.NewServerInfoResponse(server), ""))
	}
}

func (s *serverHandler) UpdateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseServerID(c)
		if !ok {
			return
		}
		var req request.ServerRequest
		if !bindJSON(c, &req) {
			return
		}
		updatedData, err := serverFromRequest(req)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Failure(msgInvalidServerType))
			return
		}
		updatedServer, err := s.serverService.UpdateServer(c, id, updatedData)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNameRequired):
				c.JSON(http.StatusBadRequest, response.Failure(msgNameRequired))
			case errors.Is(err, apperrors.ErrInvalidServerType):
				c.JSON(http.StatusBadRequest, response.Failure(msgInvalidServerType))
			case errors.Is(err, apperrors.ErrHealthcheckRequired):
				c.JSON(http.StatusBadRequest, response.Failure(msgHealthcheckRequired))
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Failure(msgServerNotFound))
			case errors.Is(err, apperrors.ErrServerURLAlreadyExists):
				c.JSON(http.StatusConflict, response.Failure(msgURLAlreadyExists))
			default:
				err = fmt.Errorf("ServerHandler.UpdateServer: %w", err)
				s.logger.LoggingError(c, err, fmt.Sprintf("failed to update server %d", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Failure(msgInternalServerError))
			}
			return
		}
		c.JSON(http.StatusOK, response.Success(response.NewServerInfoResponse(updatedServer), "Server updated successfully"))
	}
}

func (s *serverHandler) DeleteServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseServerID(c)
		if !ok {
			return
		}
		err := s.serverService.DeleteServer(c, id)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Failure(msgServerNotFound))
			default:
				err = fmt.Errorf("ServerHandler.DeleteServer: %w", err)
				s.logger.LoggingError(c, err, fmt.Sprintf("failed to delete server %d", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Failure(msgInternalServerError))
			}
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (s *serverHandler) CheckServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseServerID(c)
		if !ok {
			return
		}
		server, err := s.serverService.CheckServer(c, id)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Failure(msgServerNotFound))
			default:
				err = fmt.Errorf("ServerHandler.CheckServer: %w", err)
				s.logger.LoggingError(c, err, fmt.Sprintf("failed to check server %d", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Failure(msgInternalServerError))
			}
			return
		}
		c.JSON(http.StatusOK, response.Success(response.NewServerInfoResponse(server), ""))
	}
}

func (s *serverHandler) GetServerVersion() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseServerID(c)
		if !ok {
			return
		}
		version, err := s.serverService.GetServerVersion(c, id)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Failure(msgServerNotFound))
			default:
				err = fmt.Errorf("ServerHandler.GetServerVersion: %w", err)
				s.logger.LoggingError(c, err, fmt.Sprintf("failed to get version of server %d", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Failure(msgInternalServerError))
			}
			return
		}
		c.JSON(http.StatusOK, response.Success(response.VersionResponse{Version: version}, ""))
	}
}

func (s *serverHandler) GetServerUptimePercentage() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseServerID(c)
		if !ok {
			return
		}
		endTime := time.Now()
		startTime := endTime.Add(-24 * time.Hour)
		var err error
		if v := c.Query("start_time"); v != "" {
			if startTime, err = time.Parse(time.RFC3339, v); err != nil {
				c.JSON(http.StatusBadRequest, response.Failure("Invalid start time"))
				return
			}
		}
		if v := c.Query("end_time"); v != "" {
			if endTime, err = time.Parse(time.RFC3339, v); err != nil {
				c.JSON(http.StatusBadRequest, response.Failure("Invalid end time"))
				return
			}
		}
		if !endTime.After(startTime) {
			c.JSON(http.StatusBadRequest, response.Failure("Invalid end time"))
			return
		}
		res, err := s.serverService.GetServerUptimePercentage(c, id, startTime, endTime)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Failure(msgServerNotFound))
			case errors.Is(err, apperrors.ErrServiceUnavailable):
				c.JSON(http.StatusServiceUnavailable, response.Failure(msgServiceUnavailable))
			default:
				err = fmt.Errorf("ServerHandler.GetServerUptimePercentage: %w", err)
				s.logger.LoggingError(c, err, fmt.Sprintf("failed to get uptime percentage of server %d from %s to %s", id, startTime, endTime), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Failure(msgInternalServerError))
			}
			return
		}
		c.JSON(http.StatusOK, response.Success(response.UptimeResponse{
			ServerID:         id,
			StartTime:        startTime,
			EndTime:          endTime,
			UptimePercentage: res,
		}, ""))
	}
}

func (s *serverHandler) RefreshServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.serverService.RefreshServers(c); err != nil {
			err = fmt.Errorf("ServerHandler.RefreshServers: %w", err)
			s.logger.LoggingError(c, err, "failed to refresh servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Failure(msgInternalServerError))
			return
		}
		c.JSON(http.StatusOK, response.Success(nil, "Servers refreshed"))
	}
}

func (s *serverHandler) ExportServersToCSV() gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := s.serverService.ExportServersToCSV(c)
		if err != nil {
			err = fmt.Errorf("ServerHandler.ExportServersToCSV: %w", err)
			s.logger.LoggingError(c, err, "failed to export servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Failure(msgInternalServerError))
			return
		}
		c.Header("Content-Disposition", `attachment; filename="servers.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", b)
	}
}

func (s *serverHandler) ExportServersToExcel() gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := s.serverService.ExportServersToExcel(c)
		if err != nil {
			err = fmt.Errorf("ServerHandler.ExportServersToExcel: %w", err)
			s.logger.LoggingError(c, err, "failed to export servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Failure(msgInternalServerError))
			return
		}
		c.Header("Content-Disposition", `attachment; filename="servers.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", b)
	}
}

func (s *serverHandler) ReportServersInformation() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ReportRequest
		if !bindJSON(c, &req) {
			return
		}
		endTime := time.Now()
		startTime := endTime.Add(-24 * time.Hour)
		var err error
		if req.StartDate != "" {
			if startTime, err = time.Parse("2006-01-02", req.StartDate); err != nil {
				c.JSON(http.StatusBadRequest, response.Failure("Invalid start date"))
				return
			}
		}
		if req.EndDate != "" {
			if endTime, err = time.Parse("2006-01-02", req.EndDate); err != nil {
				c.JSON(http.StatusBadRequest, response.Failure("Invalid end date"))
				return
			}
			endTime = endTime.AddDate(0, 0, 1)
		}
		if !endTime.After(startTime) {
			c.JSON(http.StatusBadRequest, response.Failure("Invalid end date"))
			return
		}
		err = s.serverService.ReportServersInformation(c, startTime, endTime, []string{req.Email})
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServiceUnavailable):
				c.JSON(http.StatusServiceUnavailable, response.Failure(msgServiceUnavailable))
			default:
				err = fmt.Errorf("ServerHandler.ReportServersInformation: %w", err)
				s.logger.LoggingError(c, err, "failed to report servers", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Failure(msgInternalServerError))
			}
			return
		}
		c.JSON(http.StatusOK, response.Success(nil, "Report sent successfully"))
	}
}

func NewServerHandler(logger Logger, serverService service.ServerService) ServerHandler {
	return &serverHandler{
		logger:        logger,
		serverService: serverService,
	}
}
