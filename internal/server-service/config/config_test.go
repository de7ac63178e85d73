package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"server-dashboard/internal/server-service/config"
)

var managedEnv = []string{
	"SERVER_PORT", "LOG_LEVEL", "CORS_ORIGIN",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_DB", "POSTGRES_USER", "POSTGRES_PASSWORD",
	"MONITOR_INTERVAL", "MONITOR_TIMEOUT", "MONITOR_MAX_CONCURRENCY",
	"REDIS_HOST", "REDIS_CACHE_TTL", "KAFKA_BROKERS", "KAFKA_PRODUCER_TOPIC",
	"MAIL_HOST", "MAIL_EMAIL", "REPORT_RECIPIENTS",
	"KUBERNETES_ENABLED", "KUBERNETES_NAMESPACE",
}

var _ = Describe("Config", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())
		for _, key := range managedEnv {
			os.Unsetenv(key)
		}
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
		for _, key := range managedEnv {
			os.Unsetenv(key)
		}
	})

	Describe("LoadConfig", func() {
		Context("without env file and environment", func() {
			It("should apply defaults", func() {
				cfg, err := config.LoadConfig(filepath.Join(tempDir, "missing.env"))
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Server.Port).To(Equal("3001"))
				Expect(cfg.Server.CORSOrigin).To(Equal("*"))
				Expect(cfg.Postgres.Port).To(Equal(5432))
				Expect(cfg.Monitor.IntervalDuration()).To(Equal(30 * time.Second))
				Expect(cfg.Monitor.TimeoutDuration()).To(Equal(10 * time.Second))
				Expect(cfg.Monitor.MaxConcurrency).To(BeZero())
			})

			It("should leave optional infrastructure disabled", func() {
				cfg, err := config.LoadConfig(filepath.Join(tempDir, "missing.env"))
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Redis.Enabled()).To(BeFalse())
				Expect(cfg.Kafka.Enabled()).To(BeFalse())
				Expect(cfg.Elasticsearch.Enabled()).To(BeFalse())
				Expect(cfg.Mail.Enabled()).To(BeFalse())
				Expect(cfg.Kubernetes.Enabled).To(BeFalse())
			})
		})

		Context("with env file", func() {
			BeforeEach(func() {
				content := "POSTGRES_HOST=db.internal\nMONITOR_INTERVAL=5000\nKAFKA_BROKERS=k1:9092,k2:9092\nREDIS_HOST=cache\nREDIS_CACHE_TTL=3s\nKUBERNETES_ENABLED=true\nKUBERNETES_NAMESPACE=payments\n"
				err := os.WriteFile(filepath.Join(tempDir, ".env"), []byte(content), 0644)
				Expect(err).NotTo(HaveOccurred())
			})

			It("should read values from the file", func() {
				cfg, err := config.LoadConfig(filepath.Join(tempDir, ".env"))
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Postgres.Host).To(Equal("db.internal"))
				Expect(cfg.Monitor.IntervalDuration()).To(Equal(5 * time.Second))
				Expect(cfg.Kafka.Brokers).To(Equal([]string{"k1:9092", "k2:9092"}))
				Expect(cfg.Redis.Enabled()).To(BeTrue())
				Expect(cfg.Redis.CacheTTL).To(Equal(3 * time.Second))
				Expect(cfg.Kubernetes.Enabled).To(BeTrue())
				Expect(cfg.Kubernetes.Namespace).To(Equal("payments"))
			})
		})

		Context("with invalid values", func() {
			It("should reject a monitor interval below one second", func() {
				os.Setenv("MONITOR_INTERVAL", "500")
				_, err := config.LoadConfig(filepath.Join(tempDir, "missing.env"))
				Expect(err).To(HaveOccurred())
			})

			It("should reject a monitor interval above one day", func() {
				os.Setenv("MONITOR_INTERVAL", "86400001")
				_, err := config.LoadConfig(filepath.Join(tempDir, "missing.env"))
				Expect(err).To(HaveOccurred())
			})

			It("should reject a timeout above one day", func() {
				os.Setenv("MONITOR_TIMEOUT", "18446744073710")
				_, err := config.LoadConfig(filepath.Join(tempDir, "missing.env"))
				Expect(err).To(HaveOccurred())
			})

			It("should reject a cache ttl longer than the monitor interval", func() {
				os.Setenv("REDIS_HOST", "cache")
				os.Setenv("REDIS_CACHE_TTL", "5m")
				_, err := config.LoadConfig(filepath.Join(tempDir, "missing.env"))
				Expect(err).To(HaveOccurred())
			})

			It("should reject an unknown log level", func() {
				os.Setenv("LOG_LEVEL", "verbose")
				_, err := config.LoadConfig(filepath.Join(tempDir, "missing.env"))
				Expect(err).To(HaveOccurred())
			})

			It("should reject a non numeric timeout", func() {
				os.Setenv("MONITOR_TIMEOUT", "ten")
				_, err := config.LoadConfig(filepath.Join(tempDir, "missing.env"))
				Expect(err).To(HaveOccurred())
			})

			It("should reject mail settings without a sender address", func() {
				os.Setenv("MAIL_HOST", "smtp.example.com")
				_, err := config.LoadConfig(filepath.Join(tempDir, "missing.env"))
				Expect(err).To(HaveOccurred())
			})

			It("should reject malformed report recipients", func() {
				os.Setenv("REPORT_RECIPIENTS", "ops@example.com,not-an-email")
				_, err := config.LoadConfig(filepath.Join(tempDir, "missing.env"))
				Expect(err).To(HaveOccurred())
			})
		})
	})
})
