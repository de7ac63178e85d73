package response

import (
	"time"

	"server-dashboard/internal/server-service/model"
)

type ServerInfoResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	URL         string     `json:"url"`
	Type        string     `json:"type"`
	Healthcheck string     `json:"healthcheck"`
	Status      string     `json:"status"`
	Version     string     `json:"version"`
	LastChecked *time.Time `json:"lastChecked"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// storedTime renders t the way Postgres returns it: UTC with microsecond precision.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func NewServerInfoResponse(server model.Server) ServerInfoResponse {
	var lastChecked *time.Time
	if server.LastChecked != nil {
		t := storedTime(*server.LastChecked)
		lastChecked = &t
	}
	return ServerInfoResponse{
		ID:          server.ID,
		Name:        server.Name,
		URL:         server.URL,
		Type:        string(server.Type),
		Healthcheck: server.Healthcheck,
		Status:      server.Status,
		Version:     server.Version,
		LastChecked: lastChecked,
		CreatedAt:   storedTime(server.CreatedAt),
		UpdatedAt:   storedTime(server.UpdatedAt),
	}
}

func NewServerInfoResponses(servers []model.Server) []ServerInfoResponse {
	res := make([]ServerInfoResponse, 0, len(servers))
	for _, server := range servers {
		res = append(res, NewServerInfoResponse(server))
	}
	return res
}
