package database

import (
	"fmt"

	"github.com/beaconhq/beacon-backend/internal/config"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/rs/zerolog"
)

// NewElasticClient connects to the Elasticsearch cluster and verifies it
// responds to an info request.
func NewElasticClient(cfg *config.Config, log zerolog.Logger) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.ElasticURL},
		Username:  cfg.ElasticUser,
		Password:  cfg.ElasticPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("connect to cluster: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("cluster returned error: %s", res.String())
	}

	log.Info().
		Str("url", cfg.ElasticURL).
		Msg("Elasticsearch connected")

	return client, nil
}
