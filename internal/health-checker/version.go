package health_checker

import (
	"context"
	"fmt"
	"net"
	"regexp"
	"strconv"

	"server-dashboard/internal/server-service/model"
)

type versionStrategy struct {
	metricsPort int
	pattern     *regexp.Regexp
	format      func(raw string) string
}

var postgresShortVersionPattern = regexp.MustCompile(`^(PostgreSQL \d+\.\d+)`)

// Types missing from this map have no exporter and report an empty version.
var versionStrategies = map[model.ServerType]versionStrategy{
	model.ServerTypePostgres: {
		metricsPort: 9134,
		pattern:     regexp.MustCompile(`(?i)pg_static\{[^}]*version="([^"]+)"`),
		format: func(raw string) string {
			if m := postgresShortVersionPattern.FindStringSubmatch(raw); m != nil {
				return m[1]
			}
			return raw
		},
	},
	model.ServerTypeRedis: {
		metricsPort: 9121,
		pattern:     regexp.MustCompile(`(?i)redis_instance_info\{[^}]*redis_version="([^"]+)"`),
		format: func(raw string) string {
			return "Redis " + raw
		},
	},
	model.ServerTypeKafka: {
		metricsPort: 7171,
		pattern:     regexp.MustCompile(`(?i)vtb_kafka_component\{[^}]*component_version="([^"]+)"`),
		format: func(raw string) string {
			return "Kafka " + raw
		},
	},
}

func metricsURL(serverURL string, metricsPort int) (string, error) {
	host, _, err := hostAndPort(serverURL, metricsPort)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("http://%s/metrics", net.JoinHostPort(host, strconv.Itoa(metricsPort))), nil
}

// parseVersion returns an empty string when the metrics page has no version sample.
func (v versionStrategy) parseVersion(metrics string) string {
	m := v.pattern.FindStringSubmatch(metrics)
	if m == nil {
		return ""
	}
	return v.format(m[1])
}

func (c *checker) GetServerVersion(ctx context.Context, server model.Server) (string, error) {
	strategy, ok := versionStrategies[server.Type]
	if !ok {
		return "", nil
	}
	u, err := metricsURL(server.URL, strategy.metricsPort)
	if err != nil {
		return "", fmt.Errorf("Checker.GetServerVersion: %w", err)
	}
	metrics, err := c.serverClient.GetMetrics(ctx, u)
	if err != nil {
		return "", fmt.Errorf("Checker.GetServerVersion: %w", err)
	}
	return strategy.parseVersion(metrics), nil
}
