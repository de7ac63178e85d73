package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"server-dashboard/internal/server-service/model"
	"server-dashboard/pkg/infra"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=publisher.go -destination=../../server-service/mocks/scheduler/mock_publisher.go -package=mockscheduler

type HealthCheckPublisher interface {
	Publish(ctx context.Context, healthCheck model.HealthCheck) error
	Close() error
}

type kafkaPublisher struct {
	kafka infra.KafkaWriter
}

// Publish keys messages by server id so the checks of one server stay ordered in a partition.
func (k *kafkaPublisher) Publish(ctx context.Context, healthCheck model.HealthCheck) error {
	b, err := json.Marshal(healthCheck)
	if err != nil {
		return fmt.Errorf("HealthCheckPublisher.Publish: %w", err)
	}
	err = k.kafka.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(healthCheck.ServerID), 10)),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("HealthCheckPublisher.Publish: %w", err)
	}
	return nil
}

func (k *kafkaPublisher) Close() error {
	return k.kafka.Close()
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, model.HealthCheck) error {
	return nil
}

func (nopPublisher) Close() error {
	return nil
}

func NewKafkaPublisher(writer infra.KafkaWriter) HealthCheckPublisher {
	return &kafkaPublisher{
		kafka: writer,
	}
}

// NewNopPublisher is used when no kafka brokers are configured.
func NewNopPublisher() HealthCheckPublisher {
	return nopPublisher{}
}
