package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	health_checker "server-dashboard/internal/health-checker"
	"server-dashboard/internal/scheduler/scheduler"
	"server-dashboard/internal/server-service/api/handler"
	"server-dashboard/internal/server-service/api/routes"
	"server-dashboard/internal/server-service/config"
	"server-dashboard/internal/server-service/repository"
	"server-dashboard/internal/server-service/service"
	"server-dashboard/pkg/infra"
	"server-dashboard/pkg/logger"
	"server-dashboard/pkg/mail"
	"server-dashboard/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger("server-dashboard", appConfig.Server.LogLevel, fileSyncer)
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	//set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()
	if err = repository.Migrate(db); err != nil {
		zapLogger.Fatal("failed to migrate database", zap.Error(err))
	}

	serverRepo := repository.NewServerRepository(db)

	// optional redis cache
	if appConfig.Redis.Enabled() {
		redisClient, e := infra.NewRedisConnection(infra.RedisConfig{
			Host:     appConfig.Redis.Host,
			Port:     appConfig.Redis.Port,
			Password: appConfig.Redis.Password,
		})
		if e != nil {
			zapLogger.Warn("failed to connect to redis, server cache disabled", zap.Error(e))
		} else {
			zapLogger.Info("connected to redis successfully")
			defer redisClient.Close()
			serverRepo = repository.NewCachedServerRepository(redisClient, serverRepo, appConfig.Redis.CacheTTL, zapLogger)
		}
	}

	// optional elasticsearch
	var healthCheckRepo repository.HealthCheckRepository
	if appConfig.Elasticsearch.Enabled() {
		esClient, e := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
			Addresses: appConfig.Elasticsearch.Addresses,
		})
		if e != nil {
			zapLogger.Warn("failed to connect to elasticsearch, uptime queries disabled", zap.Error(e))
		} else {
			zapLogger.Info("connected to elasticsearch successfully")
			healthCheckRepo = repository.NewHealthCheckRepository(esClient)
		}
	}

	// optional kubernetes pod inventory
	var podRepo repository.PodRepository
	if appConfig.Kubernetes.Enabled {
		k8sClient, namespace, e := infra.NewKubernetesConnection(infra.KubernetesConfig{
			Kubeconfig: appConfig.Kubernetes.Kubeconfig,
			Namespace:  appConfig.Kubernetes.Namespace,
		})
		if e != nil {
			zapLogger.Warn("failed to connect to kubernetes, pod inventory disabled", zap.Error(e))
		} else {
			zapLogger.Info("connected to kubernetes successfully", zap.String("namespace", namespace))
			podRepo = repository.NewPodRepository(k8sClient, namespace)
		}
	}

	// optional kafka publisher
	publisher := scheduler.NewNopPublisher()
	if appConfig.Kafka.Enabled() {
		publisher = scheduler.NewKafkaPublisher(infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.ProducerTopic))
		zapLogger.Info("publishing health checks to kafka", zap.Strings("brokers", appConfig.Kafka.Brokers), zap.String("topic", appConfig.Kafka.ProducerTopic))
	}
	defer func() {
		if e := publisher.Close(); e != nil {
			zapLogger.Error("failed to close health check publisher", zap.Error(e))
		}
	}()

	var mailSender mail.Sender
	if appConfig.Mail.Enabled() {
		mailSender = mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)
	}

	// set up monitor
	checker, err := health_checker.NewChecker(
		health_checker.NewServerClient(appConfig.Monitor.TimeoutDuration()),
		health_checker.NewTCPClient())
	if err != nil {
		zapLogger.Fatal("failed to create health checker", zap.Error(err))
	}
	monitor := scheduler.NewMonitor(serverRepo, checker, publisher, zapLogger, scheduler.Config{
		Interval:       appConfig.Monitor.IntervalDuration(),
		Timeout:        appConfig.Monitor.TimeoutDuration(),
		MaxConcurrency: appConfig.Monitor.MaxConcurrency,
	})
	monitorCtx, stopMonitorCtx := context.WithCancel(context.Background())
	defer stopMonitorCtx()
	monitor.Start(monitorCtx)

	// set up dependencies
	serverService := service.NewServerService(serverRepo, healthCheckRepo, monitor, checker, mailSender, zapLogger)
	handlerLogger := handler.NewLogger(zapLogger)
	serverHandler := handler.NewServerHandler(handlerLogger, serverService)
	monitorHandler := handler.NewMonitorHandler(handlerLogger, monitor)
	podHandler := handler.NewPodHandler(handlerLogger, service.NewPodService(podRepo, zapLogger))

	// Create cronjob for daily report
	cronJob := cron.New()
	if mailSender != nil && len(appConfig.Report.Recipients) > 0 {
		_, err = cronJob.AddFunc(appConfig.Report.Cron, func() {
			ctx2, cancel2 := context.WithTimeout(context.Background(), 30*time.Second)
			zapLogger.Info("cronjob called")
			e := serverService.ReportServersInformation(ctx2, time.Now().Add(-time.Hour*24), time.Now(), appConfig.Report.Recipients)
			cancel2()
			if e != nil {
				zapLogger.Error("failed to generate daily report", zap.Error(e))
			}
		})
		if err != nil {
			zapLogger.Fatal("failed to create cron job for daily report", zap.Error(err))
		}
	}
	cronJob.Start()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	m := middleware.NewHTTPMiddleware(appConfig.Server.CORSOrigin)
	r.Use(gin.Recovery(), m.RequestID(), m.CORS())

	routes.AddHomeRoutes(r)
	routes.AddServerRoutes(r, serverHandler)
	routes.AddMonitorRoutes(r, monitorHandler)
	routes.AddPodRoutes(r, podHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	monitor.Stop()
	<-cronJob.Stop().Done()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
