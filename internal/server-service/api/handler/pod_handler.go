package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"server-dashboard/internal/server-service/api/dto/response"
	apperrors "server-dashboard/internal/server-service/errors"
	"server-dashboard/internal/server-service/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgPodNotFound     = "Pod not found"
	podExportTimestamp = "20060102_150405"
)

type PodHandler interface {
	GetPods() gin.HandlerFunc
	GetPodsSummary() gin.HandlerFunc
	GetPodByName() gin.HandlerFunc
	GetNamespace() gin.HandlerFunc
	GetInfo() gin.HandlerFunc
	ExportPodsToCSV() gin.HandlerFunc
}

type podHandler struct {
	logger     Logger
	podService service.PodService
}

func (p *podHandler) failure(c *gin.Context, err error, method string, msg string) {
	switch {
	case errors.Is(err, apperrors.ErrPodNotFound):
		c.JSON(http.StatusNotFound, response.Failure(msgPodNotFound))
	case errors.Is(err, apperrors.ErrServiceUnavailable):
		c.JSON(http.StatusServiceUnavailable, response.Failure(msgServiceUnavailable))
	default:
		err = fmt.Errorf("PodHandler.%s: %w", method, err)
		p.logger.LoggingError(c, err, msg, zap.ErrorLevel)
		c.JSON(http.StatusInternalServerError, response.Failure(msgInternalServerError))
	}
}

func (p *podHandler) GetPods() gin.HandlerFunc {
	return func(c *gin.Context) {
		pods, err := p.podService.GetPods(c)
		if err != nil {
			p.failure(c, err, "GetPods", "failed to list pods")
			return
		}
		c.JSON(http.StatusOK, response.Success(response.NewPodInfoResponses(pods), ""))
	}
}

func (p *podHandler) GetPodsSummary() gin.HandlerFunc {
	return func(c *gin.Context) {
		pods, err := p.podService.GetPods(c)
		if err != nil {
			p.failure(c, err, "GetPodsSummary", "failed to list pods")
			return
		}
		c.JSON(http.StatusOK, response.Success(response.NewPodSummaryResponses(pods), ""))
	}
}

func (p *podHandler) GetPodByName() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		pod, err := p.podService.GetPodByName(c, name)
		if err != nil {
			p.failure(c, err, "GetPodByName", fmt.Sprintf("failed to get pod %s", name))
			return
		}
		c.JSON(http.StatusOK, response.Success(response.NewPodInfoResponse(pod), ""))
	}
}

func (p *podHandler) GetNamespace() gin.HandlerFunc {
	return func(c *gin.Context) {
		namespace, err := p.podService.GetNamespace()
		if err != nil {
			p.failure(c, err, "GetNamespace", "failed to get namespace")
			return
		}
		c.JSON(http.StatusOK, response.Success(response.NamespaceResponse{Namespace: namespace}, ""))
	}
}

// GetInfo reports a disabled integration as an empty inventory instead of an error.
func (p *podHandler) GetInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		info := response.PodsInfoResponse{
			Enabled:   p.podService.Enabled(),
			Pods:      []response.PodInfoResponse{},
			Timestamp: time.Now().UTC(),
		}
		if info.Enabled {
			namespace, err := p.podService.GetNamespace()
			if err != nil {
				p.failure(c, err, "GetInfo", "failed to get namespace")
				return
			}
			pods, err := p.podService.GetPods(c)
			if err != nil {
				p.failure(c, err, "GetInfo", "failed to list pods")
				return
			}
			info.Namespace = namespace
			info.Pods = response.NewPodInfoResponses(pods)
			info.TotalPods = len(pods)
		}
		c.JSON(http.StatusOK, response.Success(info, ""))
	}
}

func (p *podHandler) ExportPodsToCSV() gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := p.podService.ExportPodsToCSV(c)
		if err != nil {
			p.failure(c, err, "ExportPodsToCSV", "failed to export pods")
			return
		}
		filename := fmt.Sprintf("pods_%s.csv", time.Now().Format(podExportTimestamp))
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", b)
	}
}

func NewPodHandler(logger Logger, podService service.PodService) PodHandler {
	return &podHandler{
		logger:     logger,
		podService: podService,
	}
}
