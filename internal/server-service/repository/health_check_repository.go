package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "server-dashboard/internal/server-service/errors"
	"server-dashboard/internal/server-service/model"

	"github.com/elastic/go-elasticsearch/v9"
)

//go:generate mockgen -source=health_check_repository.go -destination=../mocks/repository/mock_health_check_repository.go -package=mockrepository

type ServersHealthInformation struct {
	TotalServersCnt         int
	OnlineServersCnt        int
	OfflineServersCnt       int
	AverageUptimePercentage float64
}

type HealthCheckRepository interface {
	IndexHealthCheck(ctx context.Context, healthCheck model.HealthCheck) error
	// GetServerUptimePercentage returns the share of time in [startTime, endTime) the server was online, from 0 to 100.
	GetServerUptimePercentage(ctx context.Context, serverID uint, startTime time.Time, endTime time.Time) (float64, error)
	GetAllServersHealthInformation(ctx context.Context, startTime time.Time, endTime time.Time) (ServersHealthInformation, error)
}

const esHealthCheckIndexName = "health_checks"

type healthCheckRepository struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

func decodeEsError(statusCode int, body *json.Decoder) error {
	var e esErrorResponse
	if err := body.Decode(&e); err != nil {
		return fmt.Errorf("decode err response: %w", err)
	}
	return apperrors.NewElasticSearchError(statusCode, e.Error.Type, e.Error.Reason)
}

func weightedUptimeAgg() map[string]interface{} {
	return map[string]interface{}{
		"weighted_avg": map[string]interface{}{
			"value": map[string]interface{}{
				"field": "status_numeric",
			},
			"weight": map[string]interface{}{
				"field": "interval_since_last_health_check_ms",
			},
		},
	}
}

func (h *healthCheckRepository) IndexHealthCheck(ctx context.Context, healthCheck model.HealthCheck) error {
	b, err := json.Marshal(healthCheck)
	if err != nil {
		return fmt.Errorf("HealthCheckRepo.IndexHealthCheck encode document: %w", err)
	}
	res, err := h.es.Index(
		esHealthCheckIndexName,
		bytes.NewReader(b),
		h.es.Index.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("HealthCheckRepo.IndexHealthCheck: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("HealthCheckRepo.IndexHealthCheck: %w", decodeEsError(res.StatusCode, json.NewDecoder(res.Body)))
	}
	return nil
}

type esServersHealthResponse struct {
	Aggregations struct {
		AvgUptimePercentage struct {
			Value float64 `json:"value"`
		} `json:"avg_uptime_percentage"`
		Servers struct {
			Buckets []struct {
				Key         uint `json:"key"`
				LatestCheck struct {
					Hits struct {
						Hits []struct {
							Source struct {
								Status string `json:"status"`
							} `json:"_source"`
						} `json:"hits"`
					} `json:"hits"`
				} `json:"latest_check"`
			} `json:"buckets"`
		} `json:"servers"`
	} `json:"aggregations"`
}

// GetAllServersHealthInformation counts servers by the status of their latest check in the window.
func (h *healthCheckRepository) GetAllServersHealthInformation(ctx context.Context, startTime time.Time, endTime time.Time) (ServersHealthInformation, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{
					"gte": startTime,
					"lt":  endTime,
				},
			},
		},
		"aggs": map[string]interface{}{
			"avg_uptime_percentage": weightedUptimeAgg(),
			"servers": map[string]interface{}{
				"terms": map[string]interface{}{
					"field": "server_id",
					"size":  10000,
				},
				"aggs": map[string]interface{}{
					"latest_check": map[string]interface{}{
						"top_hits": map[string]interface{}{
							"size": 1,
							"sort": []map[string]interface{}{
								{
									"timestamp": map[string]interface{}{
										"order": "desc",
									},
								},
							},
							"_source": map[string]interface{}{
								"includes": "status",
							},
						},
					},
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return ServersHealthInformation{}, fmt.Errorf("HealthCheckRepo.GetAllServersHealthInformation encode query: %w", err)
	}
	res, err := h.es.Search(
		h.es.Search.WithContext(ctx),
		h.es.Search.WithIndex(esHealthCheckIndexName),
		h.es.Search.WithBody(&buf))
	if err != nil {
		return ServersHealthInformation{}, fmt.Errorf("HealthCheckRepo.GetAllServersHealthInformation: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return ServersHealthInformation{}, fmt.Errorf("HealthCheckRepo.GetAllServersHealthInformation: %w", decodeEsError(res.StatusCode, json.NewDecoder(res.Body)))
	}

	var serversHealthRes esServersHealthResponse
	if err = json.NewDecoder(res.Body).Decode(&serversHealthRes); err != nil {
		return ServersHealthInformation{}, fmt.Errorf("HealthCheckRepo.GetAllServersHealthInformation decode response body: %w", err)
	}
	serversHealth := ServersHealthInformation{
		TotalServersCnt:         len(serversHealthRes.Aggregations.Servers.Buckets),
		AverageUptimePercentage: serversHealthRes.Aggregations.AvgUptimePercentage.Value * 100,
	}
	for _, bucket := range serversHealthRes.Aggregations.Servers.Buckets {
		hits := bucket.LatestCheck.Hits.Hits
		if len(hits) > 0 && hits[0].Source.Status == model.ServerStatusOnline {
			serversHealth.OnlineServersCnt++
		} else {
			serversHealth.OfflineServersCnt++
		}
	}
	return serversHealth, nil
}

type esUptimePercentageResponse struct {
	Aggregations struct {
		UptimePercentage struct {
			Value float64 `json:"value"`
		} `json:"uptime_percentage"`
	} `json:"aggregations"`
}

func (h *healthCheckRepository) GetServerUptimePercentage(ctx context.Context, serverID uint, startTime time.Time, endTime time.Time) (float64, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []map[string]interface{}{
					{
						"term": map[string]interface{}{
							"server_id": serverID,
						},
					},
					{
						"range": map[string]interface{}{
							"timestamp": map[string]interface{}{
								"gte": startTime,
								"lt":  endTime,
							},
						},
					},
				},
			},
		},
		"aggs": map[string]interface{}{
			"uptime_percentage": weightedUptimeAgg(),
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return 0, fmt.Errorf("HealthCheckRepo.GetServerUptimePercentage encode query: %w", err)
	}
	res, err := h.es.Search(
		h.es.Search.WithContext(ctx),
		h.es.Search.WithIndex(esHealthCheckIndexName),
		h.es.Search.WithBody(&buf))
	if err != nil {
		return 0, fmt.Errorf("HealthCheckRepo.GetServerUptimePercentage: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, fmt.Errorf("HealthCheckRepo.GetServerUptimePercentage: %w", decodeEsError(res.StatusCode, json.NewDecoder(res.Body)))
	}

	var uptimeResponse esUptimePercentageResponse
	if err = json.NewDecoder(res.Body).Decode(&uptimeResponse); err != nil {
		return 0, fmt.Errorf("HealthCheckRepo.GetServerUptimePercentage decode response: %w", err)
	}
	return uptimeResponse.Aggregations.UptimePercentage.Value * 100, nil
}

func NewHealthCheckRepository(esClient *elasticsearch.Client) HealthCheckRepository {
	return &healthCheckRepository{
		es: esClient,
	}
}
