package model

import "time"

type HealthCheck struct {
	ServerID                       uint      `json:"server_id"`
	ServerName                     string    `json:"server_name"`
	ServerType                     string    `json:"server_type"`
	Status                         string    `json:"status"`
	StatusNumeric                  int       `json:"status_numeric"` // 1 for online, 0 otherwise
	Timestamp                      time.Time `json:"timestamp"`
	LatencyMs                      int64     `json:"latency_ms"`
	Error                          string    `json:"error,omitempty"`
	IntervalSinceLastHealthCheckMs int64     `json:"interval_since_last_health_check_ms"`
}
