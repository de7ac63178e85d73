package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrServerNotFound         = errors.New("server not found")
	ErrServerNameRequired     = errors.New("server name is required")
	ErrServerURLAlreadyExists = errors.New("server with this url already exists")
	ErrInvalidServerType      = errors.New("invalid server type")
	ErrHealthcheckRequired    = errors.New("healthcheck is required for other type")
	ErrInvalidInterval        = errors.New("invalid monitor interval")
	ErrServiceUnavailable     = errors.New("service is not configured")
	ErrPodNotFound            = errors.New("pod not found")
)

type ElasticSearchError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ElasticSearchError) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Reason)
}

func NewElasticSearchError(statusCode int, errType string, reason string) error {
	return &ElasticSearchError{
		StatusCode: statusCode,
		Type:       errType,
		Reason:     reason,
	}
}
