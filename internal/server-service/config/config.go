package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
	LogLevelFatal = "fatal"
)

type AppConfig struct {
	Server        ServerConfig
	Postgres      PostgresConfig
	Monitor       MonitorConfig
	Redis         RedisConfig
	Kafka         KafkaConfig
	Elasticsearch ElasticsearchConfig
	Mail          MailConfig
	Report        ReportConfig
	Kubernetes    KubernetesConfig
}

type ServerConfig struct {
	Port       string `envconfig:"SERVER_PORT" default:"3001"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile    string `envconfig:"LOG_FILE" default:"./log/server-dashboard.log"`
	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"*"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User     string `envconfig:"POSTGRES_USER" default:"postgres"`
	Password string `envconfig:"POSTGRES_PASSWORD"`
	DBName   string `envconfig:"POSTGRES_DB" default:"server_dashboard"`
}

// maxMonitorMillis bounds millisecond settings to one day.
const maxMonitorMillis = 24 * 60 * 60 * 1000

// MonitorConfig values are milliseconds.
type MonitorConfig struct {
	Interval       int `envconfig:"MONITOR_INTERVAL" default:"30000"`
	Timeout        int `envconfig:"MONITOR_TIMEOUT" default:"10000"`
	MaxConcurrency int `envconfig:"MONITOR_MAX_CONCURRENCY" default:"0"`
}

func (m MonitorConfig) IntervalDuration() time.Duration {
	return time.Duration(m.Interval) * time.Millisecond
}

func (m MonitorConfig) TimeoutDuration() time.Duration {
	return time.Duration(m.Timeout) * time.Millisecond
}

type RedisConfig struct {
	Host     string        `envconfig:"REDIS_HOST"`
	Port     int           `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"15s"`
}

func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

type KafkaConfig struct {
	Brokers       []string `envconfig:"KAFKA_BROKERS"`
	ProducerTopic string   `envconfig:"KAFKA_PRODUCER_TOPIC" default:"health_checks"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES"`
}

func (e ElasticsearchConfig) Enabled() bool {
	return len(e.Addresses) > 0
}

type MailConfig struct {
	Email    string `envconfig:"MAIL_EMAIL"`
	Password string `envconfig:"MAIL_PASSWORD"`
	Host     string `envconfig:"MAIL_HOST"`
	Port     int    `envconfig:"MAIL_PORT" default:"587"`
}

func (m MailConfig) Enabled() bool {
	return m.Host != ""
}

type ReportConfig struct {
	Cron       string   `envconfig:"REPORT_CRON" default:"0 0 * * *"`
	Recipients []string `envconfig:"REPORT_RECIPIENTS"`
}

type KubernetesConfig struct {
	Enabled    bool   `envconfig:"KUBERNETES_ENABLED" default:"false"`
	Kubeconfig string `envconfig:"KUBECONFIG"`
	Namespace  string `envconfig:"KUBERNETES_NAMESPACE"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c AppConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Server, validation.By(func(value interface{}) error {
			sc := value.(ServerConfig)
			return validation.ValidateStruct(&sc,
				validation.Field(&sc.Port, validation.Required, is.Port),
				validation.Field(&sc.LogLevel, validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError, LogLevelFatal)),
				validation.Field(&sc.LogFile, validation.Required),
				validation.Field(&sc.CORSOrigin, validation.Required),
			)
		})),
		validation.Field(&c.Postgres, validation.By(func(value interface{}) error {
			pc := value.(PostgresConfig)
			return validation.ValidateStruct(&pc,
				validation.Field(&pc.Host, validation.Required),
				validation.Field(&pc.Port, validation.Required, validation.Min(1), validation.Max(65535)),
				validation.Field(&pc.User, validation.Required),
				validation.Field(&pc.DBName, validation.Required),
			)
		})),
		validation.Field(&c.Monitor, validation.By(func(value interface{}) error {
			mc := value.(MonitorConfig)
			return validation.ValidateStruct(&mc,
				validation.Field(&mc.Interval, validation.Required, validation.Min(1000), validation.Max(maxMonitorMillis)),
				validation.Field(&mc.Timeout, validation.Required, validation.Min(1), validation.Max(maxMonitorMillis)),
				validation.Field(&mc.MaxConcurrency, validation.Min(0)),
			)
		})),
		validation.Field(&c.Redis, validation.By(func(value interface{}) error {
			rc := value.(RedisConfig)
			return validation.ValidateStruct(&rc,
				validation.Field(&rc.CacheTTL, validation.When(rc.Enabled(),
					validation.Required,
					validation.Max(c.Monitor.IntervalDuration()).Error("must not exceed the monitor interval"))),
			)
		})),
		validation.Field(&c.Kafka, validation.By(func(value interface{}) error {
			kc := value.(KafkaConfig)
			return validation.ValidateStruct(&kc,
				validation.Field(&kc.ProducerTopic, validation.When(kc.Enabled(), validation.Required)),
			)
		})),
		validation.Field(&c.Mail, validation.By(func(value interface{}) error {
			mc := value.(MailConfig)
			return validation.ValidateStruct(&mc,
				validation.Field(&mc.Email, validation.When(mc.Enabled(), validation.Required, is.EmailFormat)),
				validation.Field(&mc.Port, validation.When(mc.Enabled(), validation.Required, validation.Min(1), validation.Max(65535))),
			)
		})),
		validation.Field(&c.Report, validation.By(func(value interface{}) error {
			rc := value.(ReportConfig)
			return validation.ValidateStruct(&rc,
				validation.Field(&rc.Cron, validation.Required),
				validation.Field(&rc.Recipients, validation.Each(is.EmailFormat)),
			)
		})),
	)
}
