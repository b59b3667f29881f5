// internal/common/database/elasticsearch.go
package database

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	"tribunal-workers/internal/common/config"
)

// ElasticsearchClient wraps the Elasticsearch client
type ElasticsearchClient struct {
	Client *elasticsearch.Client
}

func NewElasticsearch(cfg config.ElasticsearchConfig) (*ElasticsearchClient, error) {
	esCfg := elasticsearch.Config{
		Addresses: cfg.Addresses,
	}
	if cfg.Username != "" {
		esCfg.Username = cfg.Username
		esCfg.Password = cfg.Password
	}

	es, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}
	return &ElasticsearchClient{Client: es}, nil
}

func (c *ElasticsearchClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := c.Client.Ping(c.Client.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("elasticsearch ping failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch ping error: %s", res.Status())
	}
	return nil
}

// OutcomeIndexMapping keeps identifiers and codes as keywords so reports can
// aggregate on them.
const OutcomeIndexMapping = `{
  "mappings": {
    "properties": {
      "evaluationId":       {"type": "keyword"},
      "caseId":             {"type": "keyword"},
      "benefit":            {"type": "keyword"},
      "generated":          {"type": "boolean"},
      "valid":              {"type": "boolean"},
      "pointsTotal":        {"type": "integer"},
      "pointsConditionId":  {"type": "keyword"},
      "outcomeConditionId": {"type": "keyword"},
      "award":              {"type": "keyword"},
      "scenario":           {"type": "keyword"},
      "entitled":           {"type": "boolean"},
      "validationErrors":   {"type": "text"},
      "descriptors":        {"type": "object", "enabled": false},
      "evaluatedAt":        {"type": "date"}
    }
  }
}`

// EnsureIndex creates index with mapping unless it already exists.
func EnsureIndex(ctx context.Context, es *elasticsearch.Client, index, mapping string) error {
	res, err := es.Indices.Exists([]string{index}, es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("check index %s: %w", index, err)
	}
	res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
	default:
		return fmt.Errorf("check index %s: %s", index, res.Status())
	}

	res, err = es.Indices.Create(index,
		es.Indices.Create.WithContext(ctx),
		es.Indices.Create.WithBody(strings.NewReader(mapping)),
	)
	if err != nil {
		return fmt.Errorf("create index %s: %w", index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		// a concurrent worker may have created it first
		if strings.Contains(string(body), "resource_already_exists_exception") {
			return nil
		}
		return fmt.Errorf("create index %s: %s", index, res.Status())
	}
	return nil
}
