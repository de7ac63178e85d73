package health_checker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	probeUserAgent = "ServerMonitor/1.0"
	probeAccept    = "application/json, text/plain, */*"

	// metrics pages of the exporters are small, anything above this is not an exporter
	maxMetricsBodySize = 4 << 20
)

type ServerClient interface {
	GetServerHealthCheck(ctx context.Context, serverURL string, healthcheck string) (HealthCheckResponse, error)
	GetMetrics(ctx context.Context, metricsURL string) (string, error)
}

type serverClient struct {
	client *http.Client
}

// joinHealthcheckURL appends the healthcheck path to the server url, adding http:// when the url has no scheme.
func joinHealthcheckURL(serverURL string, healthcheck string) string {
	if !strings.Contains(serverURL, "://") {
		serverURL = "http://" + serverURL
	}
	if healthcheck == "" {
		return serverURL
	}
	serverURL = strings.TrimSuffix(serverURL, "/")
	if !strings.HasPrefix(healthcheck, "/") {
		healthcheck = "/" + healthcheck
	}
	return serverURL + healthcheck
}

// GetServerHealthCheck return error when failed to create *http.Request, error received when execute request is in HealthCheckResponse.Error
func (s *serverClient) GetServerHealthCheck(ctx context.Context, serverURL string, healthcheck string) (HealthCheckResponse, error) {
	requestUrl := joinHealthcheckURL(serverURL, healthcheck)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
	if err != nil {
		return HealthCheckResponse{}, fmt.Errorf("ServerClient.GetServerHealthCheck creating request: %w", err)
	}
	req.Header.Set("User-Agent", probeUserAgent)
	req.Header.Set("Accept", probeAccept)

	resp, err := s.client.Do(req)
	if err != nil {
		return HealthCheckResponse{
			Error:     err,
			Timestamp: time.Now(),
		}, nil
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	return HealthCheckResponse{
		StatusCode: resp.StatusCode,
		Timestamp:  time.Now(),
	}, nil
}

func (s *serverClient) GetMetrics(ctx context.Context, metricsURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, metricsURL, nil)
	if err != nil {
		return "", fmt.Errorf("ServerClient.GetMetrics creating request: %w", err)
	}
	req.Header.Set("User-Agent", probeUserAgent)
	req.Header.Set("Accept", "text/plain")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ServerClient.GetMetrics: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("ServerClient.GetMetrics: %w", &UnexpectedStatusError{StatusCode: resp.StatusCode})
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxMetricsBodySize))
	if err != nil {
		return "", fmt.Errorf("ServerClient.GetMetrics reading body: %w", err)
	}
	return string(b), nil
}

type HealthCheckResponse struct {
	StatusCode int
	Error      error
	Timestamp  time.Time
}

type UnexpectedStatusError struct {
	StatusCode int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.StatusCode)
}

func NewServerClient(requestTimeout time.Duration) ServerClient {
	return &serverClient{
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}
