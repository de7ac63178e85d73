package infra

import (
	"context"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"
)

type ElasticsearchConfig struct {
	Addresses []string
}

// NewElasticSearchConnection returns a client only once the cluster answers a ping.
func NewElasticSearchConnection(cfg ElasticsearchConfig) (*elasticsearch.Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
	})
	if err != nil {
		return nil, fmt.Errorf("infra.NewElasticSearchConnection: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	res, err := es.Ping(es.Ping.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("infra.NewElasticSearchConnection ping %v: %w", cfg.Addresses, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("infra.NewElasticSearchConnection ping %v: %s", cfg.Addresses, res.Status())
	}
	return es, nil
}
