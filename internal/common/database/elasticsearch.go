// internal/common/database/elasticsearch.go
package database

import (
	"context"
	"fmt"
	"time"

	"internmatch/internal/common/config"

	"github.com/elastic/go-elasticsearch/v8"
)

const defaultPostingIndex = "postings"

// ElasticsearchClient wraps the Elasticsearch client together with the
// posting index it serves.
type ElasticsearchClient struct {
	Client       *elasticsearch.Client
	PostingIndex string
}

// NewElasticsearch creates a client for the posting search cluster.
// Transient gateway errors are retried by the transport itself.
func NewElasticsearch(cfg config.ElasticsearchConfig) (*ElasticsearchClient, error) {
	esCfg := elasticsearch.Config{
		Addresses:     cfg.Addresses,
		RetryOnStatus: []int{502, 503, 504},
		MaxRetries:    3,
	}

	if cfg.Username != "" {
		esCfg.Username = cfg.Username
		esCfg.Password = cfg.Password
	}

	es, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	index := cfg.PostingIndex
	if index == "" {
		index = defaultPostingIndex
	}

	return &ElasticsearchClient{Client: es, PostingIndex: index}, nil
}

// Ping tests the Elasticsearch connection.
func (c *ElasticsearchClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := c.Client.Ping(
		c.Client.Ping.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("elasticsearch ping failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch ping error: %s", res.Status())
	}

	return nil
}
