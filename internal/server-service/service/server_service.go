package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	health_checker "server-dashboard/internal/health-checker"
	"server-dashboard/internal/scheduler/scheduler"
	apperrors "server-dashboard/internal/server-service/errors"
	"server-dashboard/internal/server-service/model"
	"server-dashboard/internal/server-service/repository"
	"server-dashboard/pkg/mail"

	"go.uber.org/zap"
)

//go:generate mockgen -source=server_service.go -destination=../mocks/service/mock_server_service.go -package=mockservice

type ServerService interface {
	CreateServer(ctx context.Context, server model.Server) (model.Server, error)
	GetServers(ctx context.Context) ([]model.Server, error)
	GetServerById(ctx context.Context, id uint) (model.Server, error)
	UpdateServer(ctx context.Context, id uint, updatedServerData model.Server) (model.Server, error)
	DeleteServer(ctx context.Context, id uint) error
	// CheckServer probes the server right away and returns it with the fresh status.
	CheckServer(ctx context.Context, id uint) (model.Server, error)
	RefreshServers(ctx context.Context) error
	GetServerVersion(ctx context.Context, id uint) (string, error)
	GetServerUptimePercentage(ctx context.Context, id uint, startDate time.Time, endDate time.Time) (float64, error)
	ExportServersToCSV(ctx context.Context) ([]byte, error)
	ExportServersToExcel(ctx context.Context) ([]byte, error)
	ReportServersInformation(ctx context.Context, startDate time.Time, endDate time.Time, mails []string) error
}

type serverService struct {
	serverRepository      repository.ServerRepository
	healthCheckRepository repository.HealthCheckRepository
	monitor               scheduler.Monitor
	checker               health_checker.Checker
	mailSender            mail.Sender
	logger                *zap.Logger
}

func validateServer(server model.Server) error {
	if strings.TrimSpace(server.Name) == "" {
		return apperrors.ErrServerNameRequired
	}
	if !server.Type.IsValid() {
		return apperrors.ErrInvalidServerType
	}
	if server.Type == model.ServerTypeOther && strings.TrimSpace(server.Healthcheck) == "" {
		return apperrors.ErrHealthcheckRequired
	}
	return nil
}

func (s *serverService) CreateServer(ctx context.Context, server model.Server) (model.Server, error) {
	if err := validateServer(server); err != nil {
		return server, fmt.Errorf("ServerService.CreateServer: %w", err)
	}
	server.ID = 0
	server.Status = model.ServerStatusUnknown
	server.Version = ""
	server.LastChecked = nil
	createdServer, err := s.serverRepository.CreateServer(ctx, server)
	if err != nil {
		return server, fmt.Errorf("ServerService.CreateServer: %w", err)
	}
	return createdServer, nil
}

func (s *serverService) GetServers(ctx context.Context) ([]model.Server, error) {
	servers, err := s.serverRepository.GetServers(ctx)
	if err != nil {
		return nil, fmt.Errorf("ServerService.GetServers: %w", err)
	}
	return servers, nil
}

func (s *serverService) GetServerById(ctx context.Context, id uint) (model.Server, error) {
	server, err := s.serverRepository.GetServerById(ctx, id)
	if err != nil {
		return model.Server{}, fmt.Errorf("ServerService.GetServerById: %w", err)
	}
	return server, nil
}

func (s *serverService) UpdateServer(ctx context.Context, id uint, updatedServerData model.Server) (model.Server, error) {
	if err := validateServer(updatedServerData); err != nil {
		return model.Server{}, fmt.Errorf("ServerService.UpdateServer: %w", err)
	}
	updatedServer, err := s.serverRepository.UpdateServer(ctx, id, updatedServerData)
	if err != nil {
		return model.Server{}, fmt.Errorf("ServerService.UpdateServer: %w", err)
	}
	return updatedServer, nil
}

func (s *serverService) DeleteServer(ctx context.Context, id uint) error {
	err := s.serverRepository.DeleteServerById(ctx, id)
	if err != nil {
		return fmt.Errorf("ServerService.DeleteServer: %w", err)
	}
	return nil
}

func (s *serverService) CheckServer(ctx context.Context, id uint) (model.Server, error) {
	server, err := s.serverRepository.GetServerById(ctx, id)
	if err != nil {
		return model.Server{}, fmt.Errorf("ServerService.CheckServer: %w", err)
	}
	return s.monitor.CheckServer(ctx, server), nil
}

func (s *serverService) RefreshServers(ctx context.Context) error {
	if err := s.monitor.CheckAll(ctx); err != nil {
		return fmt.Errorf("ServerService.RefreshServers: %w", err)
	}
	return nil
}

// GetServerVersion returns an empty version when the exporter cannot be reached, the stored version is kept in that case.
func (s *serverService) GetServerVersion(ctx context.Context, id uint) (string, error) {
	server, err := s.serverRepository.GetServerById(ctx, id)
	if err != nil {
		return "", fmt.Errorf("ServerService.GetServerVersion: %w", err)
	}
	version, err := s.checker.GetServerVersion(ctx, server)
	if err != nil {
		s.logger.Warn("failed to discover server version",
			zap.Uint("server_id", server.ID),
			zap.String("server_type", string(server.Type)),
			zap.Error(fmt.Errorf("ServerService.GetServerVersion: %w", err)))
		return "", nil
	}
	if version != "" && version != server.Version {
		if err = s.serverRepository.UpdateServerVersion(ctx, id, version); err != nil {
			return "", fmt.Errorf("ServerService.GetServerVersion: %w", err)
		}
	}
	return version, nil
}

func (s *serverService) GetServerUptimePercentage(ctx context.Context, id uint, startDate time.Time, endDate time.Time) (float64, error) {
	if s.healthCheckRepository == nil {
		return 0, fmt.Errorf("ServerService.GetServerUptimePercentage: %w", apperrors.ErrServiceUnavailable)
	}
	if _, err := s.serverRepository.GetServerById(ctx, id); err != nil {
		return 0, fmt.Errorf("ServerService.GetServerUptimePercentage: %w", err)
	}
	res, err := s.healthCheckRepository.GetServerUptimePercentage(ctx, id, startDate, endDate)
	if err != nil {
		return 0, fmt.Errorf("ServerService.GetServerUptimePercentage: %w", err)
	}
	return res, nil
}

func (s *serverService) ExportServersToCSV(ctx context.Context) ([]byte, error) {
	servers, err := s.serverRepository.GetServers(ctx)
	if err != nil {
		return nil, fmt.Errorf("ServerService.ExportServersToCSV: %w", err)
	}
	b, err := generateCSV(servers)
	if err != nil {
		return nil, fmt.Errorf("ServerService.ExportServersToCSV: %w", err)
	}
	return b, nil
}

func (s *serverService) ExportServersToExcel(ctx context.Context) ([]byte, error) {
	servers, err := s.serverRepository.GetServers(ctx)
	if err != nil {
		return nil, fmt.Errorf("ServerService.ExportServersToExcel: %w", err)
	}
	b, err := generateExcelBytes(servers)
	if err != nil {
		return nil, fmt.Errorf("ServerService.ExportServersToExcel: %w", err)
	}
	return b, nil
}

// inventoryHealthInformation counts the current statuses when no probe history is available.
func inventoryHealthInformation(servers []model.Server) repository.ServersHealthInformation {
	info := repository.ServersHealthInformation{
		TotalServersCnt: len(servers),
	}
	for _, server := range servers {
		if server.Status == model.ServerStatusOnline {
			info.OnlineServersCnt++
		} else {
			info.OfflineServersCnt++
		}
	}
	if info.TotalServersCnt > 0 {
		info.AverageUptimePercentage = float64(info.OnlineServersCnt) * 100 / float64(info.TotalServersCnt)
	}
	return info
}

func (s *serverService) ReportServersInformation(ctx context.Context, startDate time.Time, endDate time.Time, mails []string) error {
	if s.mailSender == nil {
		return fmt.Errorf("ServerService.ReportServersInformation: %w", apperrors.ErrServiceUnavailable)
	}
	servers, err := s.serverRepository.GetServers(ctx)
	if err != nil {
		return fmt.Errorf("ServerService.ReportServersInformation: %w", err)
	}
	var serversInfo repository.ServersHealthInformation
	if s.healthCheckRepository != nil {
		serversInfo, err = s.healthCheckRepository.GetAllServersHealthInformation(ctx, startDate, endDate)
		if err != nil {
			return fmt.Errorf("ServerService.ReportServersInformation: %w", err)
		}
	} else {
		serversInfo = inventoryHealthInformation(servers)
	}
	attachment, err := generateExcelBytes(servers)
	if err != nil {
		return fmt.Errorf("ServerService.ReportServersInformation: %w", err)
	}
	err = s.mailSender.SendMail(mail.Message{
		To:       mails,
		Subject:  fmt.Sprintf("Servers Status Report From %s To %s", startDate.Format(exportTimeLayout), endDate.Add(-1*time.Second).Format(exportTimeLayout)),
		HTMLBody: generateHTMLBody(serversInfo),
		TextBody: generateTextMailBody(serversInfo),
		Attachments: []mail.Attachment{
			{
				Name:    "servers.xlsx",
				Content: bytes.NewReader(attachment),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ServerService.ReportServersInformation: %w", err)
	}
	return nil
}

func generateTextMailBody(serversInfo repository.ServersHealthInformation) string {
	return fmt.Sprintf(
		"--- SUMMARY ---\n"+
			"Total Servers: %d\n"+
			"Online: %d\n"+
			"Offline: %d\n\n"+
			"Average Uptime Across All Servers: %.2f%%",
		serversInfo.TotalServersCnt,
		serversInfo.OnlineServersCnt,
		serversInfo.OfflineServersCnt,
		serversInfo.AverageUptimePercentage,
	)
}

func generateHTMLBody(serversInfo repository.ServersHealthInformation) string {
	htmlFormat := `
<body>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Total Servers:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Online Servers:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Offline Servers:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Average Uptime Percentage:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%.2f%%</td>
        </tr>
    </table>
    <p>The full inventory is attached.</p>
</body>`

	return fmt.Sprintf(htmlFormat,
		serversInfo.TotalServersCnt,
		serversInfo.OnlineServersCnt,
		serversInfo.OfflineServersCnt,
		serversInfo.AverageUptimePercentage,
	)
}

func NewServerService(serverRepository repository.ServerRepository, healthCheckRepository repository.HealthCheckRepository, monitor scheduler.Monitor, checker health_checker.Checker, mailSender mail.Sender, logger *zap.Logger) ServerService {
	return &serverService{
		serverRepository:      serverRepository,
		healthCheckRepository: healthCheckRepository,
		monitor:               monitor,
		checker:               checker,
		mailSender:            mailSender,
		logger:                logger,
	}
}
