package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	apperrors "server-dashboard/internal/server-service/errors"
	"server-dashboard/internal/server-service/model"
	"server-dashboard/internal/server-service/repository"

	"go.uber.org/zap"
)

//go:generate mockgen -source=pod_service.go -destination=../mocks/service/mock_pod_service.go -package=mockservice

var podExportHeaders = []string{"Name", "Version", "MS Branch", "Config Branch", "GC Options", "Port", "Replicas", "CPU Request", "Memory Request", "Creation Date"}

type PodService interface {
	Enabled() bool
	GetNamespace() (string, error)
	// GetPods returns running pods grouped by application name and image version.
	GetPods(ctx context.Context) ([]model.PodInfo, error)
	GetPodByName(ctx context.Context, name string) (model.PodInfo, error)
	ExportPodsToCSV(ctx context.Context) ([]byte, error)
}

type podService struct {
	podRepository repository.PodRepository
	logger        *zap.Logger
}

func (p *podService) Enabled() bool {
	return p.podRepository != nil
}

func (p *podService) GetNamespace() (string, error) {
	if p.podRepository == nil {
		return "", fmt.Errorf("PodService.GetNamespace: %w", apperrors.ErrServiceUnavailable)
	}
	return p.podRepository.Namespace(), nil
}

func (p *podService) runningPods(ctx context.Context) ([]model.PodInfo, error) {
	if p.podRepository == nil {
		return nil, apperrors.ErrServiceUnavailable
	}
	pods, err := p.podRepository.GetRunningPods(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]model.PodInfo, 0, len(pods))
	for _, pod := range pods {
		infos = append(infos, podInfoFromPod(pod))
	}
	return infos, nil
}

func (p *podService) GetPods(ctx context.Context) ([]model.PodInfo, error) {
	pods, err := p.runningPods(ctx)
	if err != nil {
		return nil, fmt.Errorf("PodService.GetPods: %w", err)
	}
	grouped := groupPods(pods)
	p.logger.Debug("listed running pods", zap.Int("pods", len(pods)), zap.Int("groups", len(grouped)))
	return grouped, nil
}

// GetPodByName matches either the application name or the pod name.
func (p *podService) GetPodByName(ctx context.Context, name string) (model.PodInfo, error) {
	pods, err := p.runningPods(ctx)
	if err != nil {
		return model.PodInfo{}, fmt.Errorf("PodService.GetPodByName: %w", err)
	}
	for _, pod := range groupPods(pods) {
		if pod.Name == name {
			return pod, nil
		}
	}
	for _, pod := range pods {
		if pod.PodName == name {
			return pod, nil
		}
	}
	return model.PodInfo{}, fmt.Errorf("PodService.GetPodByName: %w", apperrors.ErrPodNotFound)
}

func (p *podService) ExportPodsToCSV(ctx context.Context) ([]byte, error) {
	pods, err := p.GetPods(ctx)
	if err != nil {
		return nil, fmt.Errorf("PodService.ExportPodsToCSV: %w", err)
	}
	b, err := generatePodsCSV(pods)
	if err != nil {
		return nil, fmt.Errorf("PodService.ExportPodsToCSV: %w", err)
	}
	return b, nil
}

func podExportRow(pod model.PodInfo) []string {
	creationDate := ""
	if !pod.CreationDate.IsZero() {
		creationDate = pod.CreationDate.Format(exportTimeLayout)
	}
	return []string{
		pod.Name,
		pod.Version,
		pod.MSBranch,
		pod.ConfigBranch,
		pod.GCOptions,
		pod.Ports,
		strconv.Itoa(pod.Replicas),
		pod.CPURequest,
		pod.MemoryRequest,
		creationDate,
	}
}

func generatePodsCSV(pods []model.PodInfo) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = csvSeparator
	if err := w.Write(podExportHeaders); err != nil {
		return nil, err
	}
	for _, pod := range pods {
		if err := w.Write(podExportRow(pod)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func NewPodService(podRepository repository.PodRepository, logger *zap.Logger) PodService {
	return &podService{
		podRepository: podRepository,
		logger:        logger,
	}
}
