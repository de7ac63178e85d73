package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "server-dashboard/internal/server-service/errors"
	"server-dashboard/internal/server-service/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=server_repository.go -destination=../mocks/repository/mock_server_repository.go -package=mockrepository

type ServerRepository interface {
	CreateServer(ctx context.Context, server model.Server) (model.Server, error)
	GetServers(ctx context.Context) ([]model.Server, error)
	GetServerById(ctx context.Context, serverId uint) (model.Server, error)
	UpdateServer(ctx context.Context, serverId uint, updatedData model.Server) (model.Server, error)
	UpdateServerStatus(ctx context.Context, serverId uint, status string, checkedAt time.Time) error
	UpdateServerVersion(ctx context.Context, serverId uint, version string) error
	DeleteServerById(ctx context.Context, serverId uint) error
}

type serverRepository struct {
	db *gorm.DB
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (s *serverRepository) CreateServer(ctx context.Context, server model.Server) (model.Server, error) {
	result := s.db.WithContext(ctx).Create(&server)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return server, fmt.Errorf("ServerRepository.CreateServer: %w", apperrors.ErrServerURLAlreadyExists)
		}
		return server, fmt.Errorf("ServerRepository.CreateServer: %w", result.Error)
	}
	return server, nil
}

// GetServers returns every server, newest first.
func (s *serverRepository) GetServers(ctx context.Context) ([]model.Server, error) {
	servers := make([]model.Server, 0)
	result := s.db.WithContext(ctx).Order("created_at desc").Find(&servers)
	if result.Error != nil {
		return nil, fmt.Errorf("ServerRepository.GetServers: %w", result.Error)
	}
	return servers, nil
}

func (s *serverRepository) GetServerById(ctx context.Context, serverId uint) (model.Server, error) {
	var server model.Server
	result := s.db.WithContext(ctx).First(&server, "id = ?", serverId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return server, fmt.Errorf("ServerRepository.GetServerById: %w", apperrors.ErrServerNotFound)
		}
		return server, fmt.Errorf("ServerRepository.GetServerById: %w", result.Error)
	}
	return server, nil
}

// UpdateServer overwrites the user editable fields, so an empty healthcheck clears the stored one.
func (s *serverRepository) UpdateServer(ctx context.Context, serverId uint, updatedData model.Server) (model.Server, error) {
	var server model.Server
	result := s.db.WithContext(ctx).Model(&server).Clauses(clause.Returning{}).Where("id = ?", serverId).Updates(map[string]interface{}{
		"name":        updatedData.Name,
		"url":         updatedData.URL,
		"type":        string(updatedData.Type),
		"healthcheck": updatedData.Healthcheck,
	})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return server, fmt.Errorf("ServerRepository.UpdateServer: %w", apperrors.ErrServerURLAlreadyExists)
		}
		return server, fmt.Errorf("ServerRepository.UpdateServer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return server, fmt.Errorf("ServerRepository.UpdateServer: %w", apperrors.ErrServerNotFound)
	}
	return server, nil
}

// UpdateServerStatus records a probe outcome without touching updated_at.
func (s *serverRepository) UpdateServerStatus(ctx context.Context, serverId uint, status string, checkedAt time.Time) error {
	result := s.db.WithContext(ctx).Model(&model.Server{}).Where("id = ?", serverId).UpdateColumns(map[string]interface{}{
		"status":       status,
		"last_checked": checkedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.UpdateServerStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServerRepository.UpdateServerStatus: %w", apperrors.ErrServerNotFound)
	}
	return nil
}

func (s *serverRepository) UpdateServerVersion(ctx context.Context, serverId uint, version string) error {
	result := s.db.WithContext(ctx).Model(&model.Server{}).Where("id = ?", serverId).Update("version", version)
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.UpdateServerVersion: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServerRepository.UpdateServerVersion: %w", apperrors.ErrServerNotFound)
	}
	return nil
}

func (s *serverRepository) DeleteServerById(ctx context.Context, serverId uint) error {
	result := s.db.WithContext(ctx).Where("id = ?", serverId).Delete(&model.Server{})
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.DeleteServerById: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServerRepository.DeleteServerById: %w", apperrors.ErrServerNotFound)
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Server{}); err != nil {
		return fmt.Errorf("repository.Migrate: %w", err)
	}
	return nil
}

func NewServerRepository(db *gorm.DB) ServerRepository {
	return &serverRepository{
		db: db,
	}
}
