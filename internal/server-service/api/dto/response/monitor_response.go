package response

import "time"

type MonitorStatusResponse struct {
	IsRunning bool `json:"isRunning"`
	// CheckInterval is in milliseconds.
	CheckInterval int64      `json:"checkInterval"`
	NextCheck     *time.Time `json:"nextCheck"`
}

type UptimeResponse struct {
	ServerID         uint      `json:"serverId"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	UptimePercentage float64   `json:"uptimePercentage"`
}

type VersionResponse struct {
	Version string `json:"version"`
}

type APIInfoResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
