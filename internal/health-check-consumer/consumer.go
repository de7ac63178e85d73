package health_check_consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"server-dashboard/internal/server-service/model"
	"server-dashboard/internal/server-service/repository"
	"server-dashboard/pkg/infra"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var errMissingServerID = errors.New("health check event has no server id")

type HealthCheckConsumer interface {
	Start()
	Stop()
}

// healthCheckConsumer indexes probe events into the health check store.
// Offsets of unreadable events are committed so they are not redelivered.
type healthCheckConsumer struct {
	kafkaReader     infra.KafkaReader
	healthCheckRepo repository.HealthCheckRepository
	logger          *zap.Logger
}

func (h *healthCheckConsumer) commit(m kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.kafkaReader.CommitMessages(ctx, m); err != nil {
		err = fmt.Errorf("healthCheckConsumer.commit: %w", err)
		h.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err), zap.Int64("offset", m.Offset))
	}
}

func decodeHealthCheck(value []byte) (model.HealthCheck, error) {
	var event model.HealthCheck
	if err := json.Unmarshal(value, &event); err != nil {
		return event, err
	}
	if event.ServerID == 0 {
		return event, errMissingServerID
	}
	return event, nil
}

func (h *healthCheckConsumer) Start() {
	go func() {
		for {
			m, err := h.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("healthCheckConsumer.Start: %w", err)
				h.logger.Log(zap.ErrorLevel, "failed to fetch message", zap.Error(err))
				continue
			}
			if m.Value == nil {
				h.commit(m)
				continue
			}
			event, err := decodeHealthCheck(m.Value)
			if err != nil {
				err = fmt.Errorf("healthCheckConsumer.Start: %w", err)
				h.logger.Log(zap.ErrorLevel, "failed to decode health check event", zap.Error(err), zap.Int64("offset", m.Offset))
				h.commit(m)
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			err = h.healthCheckRepo.IndexHealthCheck(ctx, event)
			cancel()
			if err != nil {
				err = fmt.Errorf("healthCheckConsumer.Start: %w", err)
				h.logger.Log(zap.ErrorLevel, "failed to index health check", zap.Error(err), zap.Uint("server_id", event.ServerID))
				continue
			}
			h.commit(m)
		}
	}()
}

func (h *healthCheckConsumer) Stop() {
	if err := h.kafkaReader.Close(); err != nil {
		h.logger.Warn("failed to close kafka reader", zap.Error(err))
	}
}

func NewHealthCheckConsumer(reader infra.KafkaReader, healthCheckRepo repository.HealthCheckRepository, logger *zap.Logger) HealthCheckConsumer {
	return &healthCheckConsumer{
		kafkaReader:     reader,
		healthCheckRepo: healthCheckRepo,
		logger:          logger,
	}
}
