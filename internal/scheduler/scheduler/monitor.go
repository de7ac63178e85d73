package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	health_checker "server-dashboard/internal/health-checker"
	apperrors "server-dashboard/internal/server-service/errors"
	"server-dashboard/internal/server-service/model"
	"server-dashboard/internal/server-service/repository"

	"go.uber.org/zap"
)

//go:generate mockgen -source=monitor.go -destination=../../server-service/mocks/scheduler/mock_monitor.go -package=mockscheduler

const (
	defaultInterval = 30 * time.Second
	defaultTimeout  = 10 * time.Second
)

type MonitorStatus struct {
	IsRunning     bool
	CheckInterval time.Duration
	NextCheck     *time.Time
}

type Config struct {
	Interval time.Duration
	Timeout  time.Duration
	// MaxConcurrency caps the probes running at once during a sweep, 0 means unbounded.
	MaxConcurrency int
}

type Monitor interface {
	// Start runs a sweep immediately and then one every interval until Stop is called or ctx is done.
	Start(ctx context.Context)
	// Stop cancels in-flight probes and returns without waiting for them.
	Stop()
	Status() MonitorStatus
	SetInterval(interval time.Duration) error
	CheckAll(ctx context.Context) error
	CheckServer(ctx context.Context, server model.Server) model.Server
}

type monitor struct {
	serverRepo     repository.ServerRepository
	checker        health_checker.Checker
	publisher      HealthCheckPublisher
	logger         *zap.Logger
	timeout        time.Duration
	maxConcurrency int

	mu        sync.Mutex
	running   bool
	interval  time.Duration
	cancel    context.CancelFunc
	ticker    *time.Ticker
	nextCheck time.Time

	lastCheckMu sync.Mutex
	lastCheck   map[uint]time.Time
}

func (m *monitor) Start(ctx context.Context) {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		m.logger.Info("server monitoring is already running")
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.running = true
	m.ticker = time.NewTicker(m.interval)
	m.nextCheck = time.Now().Add(m.interval)
	ticker := m.ticker
	interval := m.interval
	m.mu.Unlock()

	m.logger.Info("starting server monitoring", zap.Duration("interval", interval))
	go m.run(runCtx, ticker)
}

func (m *monitor) run(ctx context.Context, ticker *time.Ticker) {
	m.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			m.stopped(ticker)
			return
		case <-ticker.C:
			m.mu.Lock()
			m.nextCheck = time.Now().Add(m.interval)
			m.mu.Unlock()
			m.sweep(ctx)
		}
	}
}

// stopped clears the running state when the parent context ends the run without a Stop call.
func (m *monitor) stopped(ticker *time.Ticker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running || m.ticker != ticker {
		return
	}
	m.cancel()
	ticker.Stop()
	m.running = false
	m.cancel = nil
	m.nextCheck = time.Time{}
	m.logger.Info("server monitoring stopped, context done")
}

func (m *monitor) sweep(ctx context.Context) {
	if err := m.CheckAll(ctx); err != nil {
		m.logger.Error("failed to check servers", zap.Error(err))
	}
}

func (m *monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		m.logger.Info("server monitoring is not running")
		return
	}
	m.cancel()
	m.ticker.Stop()
	m.running = false
	m.cancel = nil
	m.nextCheck = time.Time{}
	m.logger.Info("server monitoring stopped")
}

func (m *monitor) Status() MonitorStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	status := MonitorStatus{
		IsRunning:     m.running,
		CheckInterval: m.interval,
	}
	if m.running {
		next := m.nextCheck
		status.NextCheck = &next
	}
	return status
}

func (m *monitor) SetInterval(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("Monitor.SetInterval: %w", apperrors.ErrInvalidInterval)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interval = interval
	if m.running {
		m.ticker.Reset(interval)
		m.nextCheck = time.Now().Add(interval)
	}
	m.logger.Info("server monitoring interval changed", zap.Duration("interval", interval))
	return nil
}

func (m *monitor) CheckAll(ctx context.Context) error {
	servers, err := m.serverRepo.GetServers(ctx)
	if err != nil {
		return fmt.Errorf("Monitor.CheckAll: %w", err)
	}
	m.forgetRemoved(servers)
	if len(servers) == 0 {
		m.logger.Debug("no servers to monitor")
		return nil
	}
	m.logger.Debug("checking servers", zap.Int("count", len(servers)))

	var sem chan struct{}
	if m.maxConcurrency > 0 {
		sem = make(chan struct{}, m.maxConcurrency)
	}
	var wg sync.WaitGroup
	for _, server := range servers {
		if sem != nil {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				wg.Wait()
				return nil
			}
		}
		wg.Add(1)
		go func(server model.Server) {
			defer wg.Done()
			if sem != nil {
				defer func() { <-sem }()
			}
			m.CheckServer(ctx, server)
		}(server)
	}
	wg.Wait()
	return nil
}

// forgetRemoved drops last check times of servers that are no longer registered.
func (m *monitor) forgetRemoved(servers []model.Server) {
	registered := make(map[uint]struct{}, len(servers))
	for _, server := range servers {
		registered[server.ID] = struct{}{}
	}
	m.lastCheckMu.Lock()
	defer m.lastCheckMu.Unlock()
	for id := range m.lastCheck {
		if _, ok := registered[id]; !ok {
			delete(m.lastCheck, id)
		}
	}
}

// sinceLastCheck returns the time elapsed since the previous check of the server, or the interval for a first check.
func (m *monitor) sinceLastCheck(serverID uint, checkedAt time.Time) time.Duration {
	m.lastCheckMu.Lock()
	defer m.lastCheckMu.Unlock()
	last, ok := m.lastCheck[serverID]
	m.lastCheck[serverID] = checkedAt
	if !ok || checkedAt.Before(last) {
		m.mu.Lock()
		defer m.mu.Unlock()
		return m.interval
	}
	return checkedAt.Sub(last)
}

// CheckServer probes one server and records the outcome. A probe cut short by ctx cancellation is discarded.
func (m *monitor) CheckServer(ctx context.Context, server model.Server) model.Server {
	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	res := m.checker.Probe(probeCtx, server)
	cancel()
	if ctx.Err() != nil {
		return server
	}

	checkedAt := res.Timestamp
	if checkedAt.IsZero() {
		checkedAt = time.Now()
	}
	if err := m.serverRepo.UpdateServerStatus(ctx, server.ID, res.Status, checkedAt); err != nil {
		m.logger.Error("failed to update server status", zap.Uint("server_id", server.ID), zap.Error(fmt.Errorf("Monitor.CheckServer: %w", err)))
	}
	server.Status = res.Status
	server.LastChecked = &checkedAt

	fields := []zap.Field{
		zap.Uint("server_id", server.ID),
		zap.String("server_name", server.Name),
		zap.String("server_type", string(server.Type)),
		zap.String("status", res.Status),
		zap.Int64("latency_ms", res.Latency.Milliseconds()),
	}
	if server.Healthcheck != "" {
		fields = append(fields, zap.String("healthcheck", server.Healthcheck))
	}
	if res.Status == model.ServerStatusOnline {
		m.logger.Info("server checked", fields...)
	} else {
		m.logger.Warn("server checked", append(fields, zap.Error(res.Error))...)
	}

	healthCheck := model.HealthCheck{
		ServerID:                       server.ID,
		ServerName:                     server.Name,
		ServerType:                     string(server.Type),
		Status:                         res.Status,
		Timestamp:                      checkedAt,
		LatencyMs:                      res.Latency.Milliseconds(),
		IntervalSinceLastHealthCheckMs: m.sinceLastCheck(server.ID, checkedAt).Milliseconds(),
	}
	if res.Status == model.ServerStatusOnline {
		healthCheck.StatusNumeric = 1
	}
	if res.Error != nil {
		healthCheck.Error = res.Error.Error()
	}
	publishCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	if err := m.publisher.Publish(publishCtx, healthCheck); err != nil {
		m.logger.Warn("failed to publish health check", zap.Uint("server_id", server.ID), zap.Error(fmt.Errorf("Monitor.CheckServer: %w", err)))
	}
	return server
}

func NewMonitor(serverRepo repository.ServerRepository, checker health_checker.Checker, publisher HealthCheckPublisher, logger *zap.Logger, cfg Config) Monitor {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if publisher == nil {
		publisher = NewNopPublisher()
	}
	return &monitor{
		serverRepo:     serverRepo,
		checker:        checker,
		publisher:      publisher,
		logger:         logger,
		timeout:        cfg.Timeout,
		maxConcurrency: cfg.MaxConcurrency,
		interval:       cfg.Interval,
		lastCheck:      make(map[uint]time.Time),
	}
}
