package health_checker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"server-dashboard/internal/server-service/model"
)

//go:generate mockgen -source=checker.go -destination=../server-service/mocks/health-checker/mock_checker.go -package=mockhealthchecker

var ErrMissingProbe = errors.New("no probe registered for server type")

// ProbeResult is the outcome of one probe. Error is set whenever Status is offline.
type ProbeResult struct {
	Status     string
	StatusCode int
	Latency    time.Duration
	Timestamp  time.Time
	Error      error
}

type Checker interface {
	// Probe never fails, an unreachable server is reported as offline.
	Probe(ctx context.Context, server model.Server) ProbeResult
	// GetServerVersion scrapes the exporter of the server. Types without an exporter return an empty version.
	GetServerVersion(ctx context.Context, server model.Server) (string, error)
}

type probeFunc func(ctx context.Context, server model.Server) ProbeResult

type checker struct {
	serverClient ServerClient
	tcpClient    TCPClient
	probes       map[model.ServerType]probeFunc
}

var defaultPorts = map[model.ServerType]int{
	model.ServerTypePostgres:   5432,
	model.ServerTypeRedis:      6379,
	model.ServerTypeKafka:      9092,
	model.ServerTypeAstraLinux: 22,
}

func verifyProbes(probes map[model.ServerType]probeFunc) error {
	for _, t := range model.ServerTypes {
		if _, ok := probes[t]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingProbe, t)
		}
	}
	return nil
}

func offline(start time.Time, err error) ProbeResult {
	now := time.Now()
	return ProbeResult{
		Status:    model.ServerStatusOffline,
		Latency:   now.Sub(start),
		Timestamp: now,
		Error:     err,
	}
}

func (c *checker) tcpProbe(defaultPort int) probeFunc {
	return func(ctx context.Context, server model.Server) ProbeResult {
		start := time.Now()
		address, err := tcpAddress(server.URL, defaultPort)
		if err != nil {
			return offline(start, fmt.Errorf("Checker.tcpProbe: %w", err))
		}
		if err = c.tcpClient.Dial(ctx, address); err != nil {
			return offline(start, fmt.Errorf("Checker.tcpProbe: %w", err))
		}
		now := time.Now()
		return ProbeResult{
			Status:    model.ServerStatusOnline,
			Latency:   now.Sub(start),
			Timestamp: now,
		}
	}
}

func (c *checker) httpProbe(ctx context.Context, server model.Server) ProbeResult {
	start := time.Now()
	res, err := c.serverClient.GetServerHealthCheck(ctx, server.URL, server.Healthcheck)
	if err != nil {
		return offline(start, fmt.Errorf("Checker.httpProbe: %w", err))
	}
	if res.Error != nil {
		return offline(start, fmt.Errorf("Checker.httpProbe: %w", res.Error))
	}
	result := ProbeResult{
		Status:     model.ServerStatusOnline,
		StatusCode: res.StatusCode,
		Latency:    res.Timestamp.Sub(start),
		Timestamp:  res.Timestamp,
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		result.Status = model.ServerStatusOffline
		result.Error = &UnexpectedStatusError{StatusCode: res.StatusCode}
	}
	return result
}

func (c *checker) Probe(ctx context.Context, server model.Server) ProbeResult {
	probe, ok := c.probes[server.Type]
	if !ok {
		return offline(time.Now(), fmt.Errorf("Checker.Probe: %w: %s", ErrMissingProbe, server.Type))
	}
	return probe(ctx, server)
}

func NewChecker(serverClient ServerClient, tcpClient TCPClient) (Checker, error) {
	c := &checker{
		serverClient: serverClient,
		tcpClient:    tcpClient,
	}
	c.probes = map[model.ServerType]probeFunc{
		model.ServerTypePostgres:   c.tcpProbe(defaultPorts[model.ServerTypePostgres]),
		model.ServerTypeRedis:      c.tcpProbe(defaultPorts[model.ServerTypeRedis]),
		model.ServerTypeKafka:      c.tcpProbe(defaultPorts[model.ServerTypeKafka]),
		model.ServerTypeAstraLinux: c.tcpProbe(defaultPorts[model.ServerTypeAstraLinux]),
		model.ServerTypeOther:      c.httpProbe,
	}
	if err := verifyProbes(c.probes); err != nil {
		return nil, fmt.Errorf("NewChecker: %w", err)
	}
	return c, nil
}
