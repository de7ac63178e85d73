package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	health_checker "server-dashboard/internal/health-checker"
	"server-dashboard/internal/scheduler/scheduler"
	apperrors "server-dashboard/internal/server-service/errors"
	mockhealthchecker "server-dashboard/internal/server-service/mocks/health-checker"
	mockrepository "server-dashboard/internal/server-service/mocks/repository"
	mockscheduler "server-dashboard/internal/server-service/mocks/scheduler"
	"server-dashboard/internal/server-service/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var mockServers = []model.Server{
	{ID: 1, Name: "billing", URL: "http://billing.local", Type: model.ServerTypeOther, Healthcheck: "/health", Status: model.ServerStatusUnknown},
	{ID: 2, Name: "primary db", URL: "postgres://db.local:5432", Type: model.ServerTypePostgres, Status: model.ServerStatusOnline},
	{ID: 3, Name: "cache", URL: "redis://cache.local", Type: model.ServerTypeRedis, Status: model.ServerStatusOffline},
}

type monitorMocks struct {
	repo      *mockrepository.MockServerRepository
	checker   *mockhealthchecker.MockChecker
	publisher *mockscheduler.MockHealthCheckPublisher
}

func newTestMonitor(t *testing.T, cfg scheduler.Config) (scheduler.Monitor, monitorMocks) {
	ctrl := gomock.NewController(t)
	mocks := monitorMocks{
		repo:      mockrepository.NewMockServerRepository(ctrl),
		checker:   mockhealthchecker.NewMockChecker(ctrl),
		publisher: mockscheduler.NewMockHealthCheckPublisher(ctrl),
	}
	m := scheduler.NewMonitor(mocks.repo, mocks.checker, mocks.publisher, zap.NewNop(), cfg)
	return m, mocks
}

func TestMonitor_CheckServer(t *testing.T) {
	checkedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	probeErr := errors.New("connection refused")

	testCases := []struct {
		name           string
		server         model.Server
		setupMocks     func(m monitorMocks, published *model.HealthCheck)
		expectedStatus string
		expectedEvent  model.HealthCheck
	}{
		{
			name:   "Success Online server is persisted and published",
			server: mockServers[0],
			setupMocks: func(m monitorMocks, published *model.HealthCheck) {
				gomock.InOrder(
					m.checker.EXPECT().Probe(gomock.Any(), mockServers[0]).Return(health_checker.ProbeResult{
						Status:     model.ServerStatusOnline,
						StatusCode: 200,
						Latency:    15 * time.Millisecond,
						Timestamp:  checkedAt,
					}),
					m.repo.EXPECT().UpdateServerStatus(gomock.Any(), uint(1), model.ServerStatusOnline, checkedAt).Return(nil),
					m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, hc model.HealthCheck) error {
						*published = hc
						return nil
					}),
				)
			},
			expectedStatus: model.ServerStatusOnline,
			expectedEvent: model.HealthCheck{
				ServerID:                       1,
				ServerName:                     "billing",
				ServerType:                     "Other",
				Status:                         model.ServerStatusOnline,
				StatusNumeric:                  1,
				Timestamp:                      checkedAt,
				LatencyMs:                      15,
				IntervalSinceLastHealthCheckMs: 60000,
			},
		},
		{
			name:   "Success Offline server carries the probe error",
			server: mockServers[1],
			setupMocks: func(m monitorMocks, published *model.HealthCheck) {
				gomock.InOrder(
					m.checker.EXPECT().Probe(gomock.Any(), mockServers[1]).Return(health_checker.ProbeResult{
						Status:    model.ServerStatusOffline,
						Latency:   3 * time.Millisecond,
						Timestamp: checkedAt,
						Error:     probeErr,
					}),
					m.repo.EXPECT().UpdateServerStatus(gomock.Any(), uint(2), model.ServerStatusOffline, checkedAt).Return(nil),
					m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, hc model.HealthCheck) error {
						*published = hc
						return nil
					}),
				)
			},
			expectedStatus: model.ServerStatusOffline,
			expectedEvent: model.HealthCheck{
				ServerID:                       2,
				ServerName:                     "primary db",
				ServerType:                     "Postgres",
				Status:                         model.ServerStatusOffline,
				StatusNumeric:                  0,
				Timestamp:                      checkedAt,
				LatencyMs:                      3,
				Error:                          "connection refused",
				IntervalSinceLastHealthCheckMs: 60000,
			},
		},
		{
			name:   "Failure Persist error is logged and the event is still published",
			server: mockServers[2],
			setupMocks: func(m monitorMocks, published *model.HealthCheck) {
				gomock.InOrder(
					m.checker.EXPECT().Probe(gomock.Any(), mockServers[2]).Return(health_checker.ProbeResult{
						Status:    model.ServerStatusOnline,
						Timestamp: checkedAt,
					}),
					m.repo.EXPECT().UpdateServerStatus(gomock.Any(), uint(3), model.ServerStatusOnline, checkedAt).Return(apperrors.ErrServerNotFound),
					m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, hc model.HealthCheck) error {
						*published = hc
						return errors.New("kafka is down")
					}),
				)
			},
			expectedStatus: model.ServerStatusOnline,
			expectedEvent: model.HealthCheck{
				ServerID:                       3,
				ServerName:                     "cache",
				ServerType:                     "Redis",
				Status:                         model.ServerStatusOnline,
				StatusNumeric:                  1,
				Timestamp:                      checkedAt,
				IntervalSinceLastHealthCheckMs: 60000,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, mocks := newTestMonitor(t, scheduler.Config{Interval: time.Minute, Timeout: time.Second})
			var published model.HealthCheck
			tc.setupMocks(mocks, &published)

			res := m.CheckServer(context.Background(), tc.server)

			assert.Equal(t, tc.expectedStatus, res.Status)
			require.NotNil(t, res.LastChecked)
			assert.Equal(t, checkedAt, *res.LastChecked)
			assert.Equal(t, tc.expectedEvent, published)
		})
	}
}

func TestMonitor_CheckServer_IntervalSinceLastCheck(t *testing.T) {
	m, mocks := newTestMonitor(t, scheduler.Config{Interval: time.Minute, Timeout: time.Second})
	first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(45 * time.Second)

	var intervals []int64
	gomock.InOrder(
		mocks.checker.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(health_checker.ProbeResult{Status: model.ServerStatusOnline, Timestamp: first}),
		mocks.repo.EXPECT().UpdateServerStatus(gomock.Any(), uint(1), model.ServerStatusOnline, first).Return(nil),
		mocks.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, hc model.HealthCheck) error {
			intervals = append(intervals, hc.IntervalSinceLastHealthCheckMs)
			return nil
		}),
		mocks.checker.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(health_checker.ProbeResult{Status: model.ServerStatusOnline, Timestamp: second}),
		mocks.repo.EXPECT().UpdateServerStatus(gomock.Any(), uint(1), model.ServerStatusOnline, second).Return(nil),
		mocks.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, hc model.HealthCheck) error {
			intervals = append(intervals, hc.IntervalSinceLastHealthCheckMs)
			return nil
		}),
	)

	m.CheckServer(context.Background(), mockServers[0])
	m.CheckServer(context.Background(), mockServers[0])

	assert.Equal(t, []int64{60000, 45000}, intervals)
}

func TestMonitor_CheckAll_ForgetsRemovedServers(t *testing.T) {
	m, mocks := newTestMonitor(t, scheduler.Config{Interval: time.Hour, Timeout: time.Second})
	first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	again := first.Add(10 * time.Second)

	var intervals []int64
	record := func(_ context.Context, hc model.HealthCheck) error {
		intervals = append(intervals, hc.IntervalSinceLastHealthCheckMs)
		return nil
	}
	gomock.InOrder(
		mocks.repo.EXPECT().GetServers(gomock.Any()).Return(mockServers[:1], nil),
		mocks.checker.EXPECT().Probe(gomock.Any(), mockServers[0]).Return(health_checker.ProbeResult{Status: model.ServerStatusOnline, Timestamp: first}),
		mocks.repo.EXPECT().UpdateServerStatus(gomock.Any(), uint(1), model.ServerStatusOnline, first).Return(nil),
		mocks.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(record),
		mocks.repo.EXPECT().GetServers(gomock.Any()).Return([]model.Server{}, nil),
		mocks.repo.EXPECT().GetServers(gomock.Any()).Return(mockServers[:1], nil),
		mocks.checker.EXPECT().Probe(gomock.Any(), mockServers[0]).Return(health_checker.ProbeResult{Status: model.ServerStatusOnline, Timestamp: again}),
		mocks.repo.EXPECT().UpdateServerStatus(gomock.Any(), uint(1), model.ServerStatusOnline, again).Return(nil),
		mocks.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(record),
	)

	require.NoError(t, m.CheckAll(context.Background()))
	require.NoError(t, m.CheckAll(context.Background()))
	require.NoError(t, m.CheckAll(context.Background()))

	// the server vanished in between, so its second check counts as a first one
	assert.Equal(t, []int64{3600000, 3600000}, intervals)
}

func TestMonitor_CheckServer_CancelledProbeIsDiscarded(t *testing.T) {
	m, mocks := newTestMonitor(t, scheduler.Config{Interval: time.Minute, Timeout: time.Second})
	ctx, cancel := context.WithCancel(context.Background())

	mocks.checker.EXPECT().Probe(gomock.Any(), mockServers[0]).DoAndReturn(func(probeCtx context.Context, _ model.Server) health_checker.ProbeResult {
		cancel()
		<-probeCtx.Done()
		return health_checker.ProbeResult{Status: model.ServerStatusOffline, Timestamp: time.Now(), Error: probeCtx.Err()}
	})

	res := m.CheckServer(ctx, mockServers[0])

	assert.Equal(t, mockServers[0], res)
}

func TestMonitor_CheckServer_ProbeTimeout(t *testing.T) {
	m, mocks := newTestMonitor(t, scheduler.Config{Interval: time.Minute, Timeout: 20 * time.Millisecond})

	gomock.InOrder(
		mocks.checker.EXPECT().Probe(gomock.Any(), mockServers[1]).DoAndReturn(func(probeCtx context.Context, _ model.Server) health_checker.ProbeResult {
			deadline, ok := probeCtx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(20*time.Millisecond), deadline, 20*time.Millisecond)
			<-probeCtx.Done()
			return health_checker.ProbeResult{Status: model.ServerStatusOffline, Timestamp: time.Now(), Error: probeCtx.Err()}
		}),
		mocks.repo.EXPECT().UpdateServerStatus(gomock.Any(), uint(2), model.ServerStatusOffline, gomock.Any()).Return(nil),
		mocks.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil),
	)

	res := m.CheckServer(context.Background(), mockServers[1])

	assert.Equal(t, model.ServerStatusOffline, res.Status)
}

func TestMonitor_CheckAll(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(m monitorMocks)
		expectError bool
	}{
		{
			name: "Success Every server is probed",
			setupMocks: func(m monitorMocks) {
				m.repo.EXPECT().GetServers(gomock.Any()).Return(mockServers, nil)
				for _, s := range mockServers {
					m.checker.EXPECT().Probe(gomock.Any(), s).Return(health_checker.ProbeResult{Status: model.ServerStatusOnline, Timestamp: time.Now()})
					m.repo.EXPECT().UpdateServerStatus(gomock.Any(), s.ID, model.ServerStatusOnline, gomock.Any()).Return(nil)
				}
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(len(mockServers))
			},
		},
		{
			name: "Success One failing persist does not stop the others",
			setupMocks: func(m monitorMocks) {
				m.repo.EXPECT().GetServers(gomock.Any()).Return(mockServers[:2], nil)
				m.checker.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(health_checker.ProbeResult{Status: model.ServerStatusOffline, Timestamp: time.Now()}).Times(2)
				m.repo.EXPECT().UpdateServerStatus(gomock.Any(), uint(1), gomock.Any(), gomock.Any()).Return(errors.New("db timeout"))
				m.repo.EXPECT().UpdateServerStatus(gomock.Any(), uint(2), gomock.Any(), gomock.Any()).Return(nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)
			},
		},
		{
			name: "Success No servers",
			setupMocks: func(m monitorMocks) {
				m.repo.EXPECT().GetServers(gomock.Any()).Return([]model.Server{}, nil)
			},
		},
		{
			name: "Failure GetServers returns error",
			setupMocks: func(m monitorMocks) {
				m.repo.EXPECT().GetServers(gomock.Any()).Return(nil, errors.New("db connection failed"))
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, mocks := newTestMonitor(t, scheduler.Config{Interval: time.Minute, Timeout: time.Second})
			tc.setupMocks(mocks)

			err := m.CheckAll(context.Background())

			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMonitor_CheckAll_MaxConcurrency(t *testing.T) {
	m, mocks := newTestMonitor(t, scheduler.Config{Interval: time.Minute, Timeout: time.Second, MaxConcurrency: 1})

	var inFlight, maxInFlight int32
	mocks.repo.EXPECT().GetServers(gomock.Any()).Return(mockServers, nil)
	mocks.checker.EXPECT().Probe(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ model.Server) health_checker.ProbeResult {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			current := atomic.LoadInt32(&maxInFlight)
			if n <= current || atomic.CompareAndSwapInt32(&maxInFlight, current, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return health_checker.ProbeResult{Status: model.ServerStatusOnline, Timestamp: time.Now()}
	}).Times(len(mockServers))
	mocks.repo.EXPECT().UpdateServerStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(len(mockServers))
	mocks.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(len(mockServers))

	require.NoError(t, m.CheckAll(context.Background()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&maxInFlight))
}

func TestMonitor_StatusAndSetInterval(t *testing.T) {
	m, _ := newTestMonitor(t, scheduler.Config{Interval: 30 * time.Second, Timeout: time.Second})

	status := m.Status()
	assert.False(t, status.IsRunning)
	assert.Equal(t, 30*time.Second, status.CheckInterval)
	assert.Nil(t, status.NextCheck)

	assert.ErrorIs(t, m.SetInterval(0), apperrors.ErrInvalidInterval)
	assert.ErrorIs(t, m.SetInterval(-time.Second), apperrors.ErrInvalidInterval)
	assert.Equal(t, 30*time.Second, m.Status().CheckInterval)

	require.NoError(t, m.SetInterval(5*time.Second))
	assert.Equal(t, 5*time.Second, m.Status().CheckInterval)
}

func TestMonitor_DefaultConfig(t *testing.T) {
	m, _ := newTestMonitor(t, scheduler.Config{})
	assert.Equal(t, 30*time.Second, m.Status().CheckInterval)
}

func TestMonitor_StartStop(t *testing.T) {
	m, mocks := newTestMonitor(t, scheduler.Config{Interval: time.Hour, Timeout: time.Second})

	swept := make(chan struct{}, 1)
	mocks.repo.EXPECT().GetServers(gomock.Any()).DoAndReturn(func(context.Context) ([]model.Server, error) {
		swept <- struct{}{}
		return []model.Server{}, nil
	}).Times(1)

	m.Start(context.Background())
	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("first sweep did not run immediately")
	}

	status := m.Status()
	assert.True(t, status.IsRunning)
	require.NotNil(t, status.NextCheck)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *status.NextCheck, time.Minute)

	// already running
	m.Start(context.Background())

	m.Stop()
	status = m.Status()
	assert.False(t, status.IsRunning)
	assert.Nil(t, status.NextCheck)

	// already stopped
	m.Stop()
}

func TestMonitor_ParentContextCancelled(t *testing.T) {
	m, mocks := newTestMonitor(t, scheduler.Config{Interval: time.Hour, Timeout: time.Second})

	swept := make(chan struct{}, 2)
	mocks.repo.EXPECT().GetServers(gomock.Any()).DoAndReturn(func(context.Context) ([]model.Server, error) {
		swept <- struct{}{}
		return []model.Server{}, nil
	}).Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	m.Start(ctx)
	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("first sweep did not run immediately")
	}

	cancel()
	assert.Eventually(t, func() bool {
		return !m.Status().IsRunning
	}, time.Second, 5*time.Millisecond)
	assert.Nil(t, m.Status().NextCheck)

	m.Start(context.Background())
	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("monitor did not restart after its context was cancelled")
	}
	assert.True(t, m.Status().IsRunning)
	m.Stop()
}

func TestMonitor_TickerSweeps(t *testing.T) {
	m, mocks := newTestMonitor(t, scheduler.Config{Interval: 20 * time.Millisecond, Timeout: time.Second})

	var sweeps int32
	mocks.repo.EXPECT().GetServers(gomock.Any()).DoAndReturn(func(context.Context) ([]model.Server, error) {
		atomic.AddInt32(&sweeps, 1)
		return []model.Server{}, nil
	}).MinTimes(3)

	m.Start(context.Background())
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&sweeps) >= 3
	}, 2*time.Second, 10*time.Millisecond)
	m.Stop()
}

func TestMonitor_StopCancelsInFlightProbes(t *testing.T) {
	m, mocks := newTestMonitor(t, scheduler.Config{Interval: time.Hour, Timeout: 10 * time.Second})

	probing := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	mocks.repo.EXPECT().GetServers(gomock.Any()).Return(mockServers[:1], nil)
	mocks.checker.EXPECT().Probe(gomock.Any(), mockServers[0]).DoAndReturn(func(probeCtx context.Context, _ model.Server) health_checker.ProbeResult {
		defer wg.Done()
		close(probing)
		<-probeCtx.Done()
		return health_checker.ProbeResult{Status: model.ServerStatusOffline, Timestamp: time.Now(), Error: probeCtx.Err()}
	})

	m.Start(context.Background())
	select {
	case <-probing:
	case <-time.After(time.Second):
		t.Fatal("probe did not start")
	}

	stopped := make(chan struct{})
	go func() {
		m.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("stop blocked on in-flight probe")
	}
	wg.Wait()
	// the cancelled probe must not be persisted, UpdateServerStatus has no expectation
	time.Sleep(20 * time.Millisecond)
}
