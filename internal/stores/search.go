// internal/stores/search.go
package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"internmatch/internal/common/logger"
	"internmatch/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// SearchStore queries the posting search index. The recommendation flow
// ranks a candidate against every active posting, which is served from
// Elasticsearch rather than Postgres to keep the hot path off the
// transactional store.
type SearchStore struct {
	client *elasticsearch.Client
	index  string
	logger logger.Logger
}

func NewSearchStore(client *elasticsearch.Client, index string, log logger.Logger) *SearchStore {
	return &SearchStore{client: client, index: index, logger: log}
}

// ActivePostings returns up to maxResults postings with status "active".
func (s *SearchStore) ActivePostings(ctx context.Context, maxResults int) ([]*models.Posting, error) {
	queryBody := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []interface{}{
					map[string]interface{}{
						"term": map[string]interface{}{"status.keyword": models.PostingStatusActive},
					},
				},
			},
		},
		"size": maxResults,
	}

	body, _ := json.Marshal(queryBody)
	req := esapi.SearchRequest{
		Index: []string{s.index},
		Body:  strings.NewReader(string(body)),
	}

	res, err := req.Do(ctx, s.client)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch: search failed: %s", res.String())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	postings := make([]*models.Posting, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		var p models.Posting
		if err := json.Unmarshal(hit.Source, &p); err != nil {
			s.logger.Warn("skipping malformed posting document", map[string]interface{}{
				"error": err,
			})
			continue
		}
		postings = append(postings, &p)
	}

	return postings, nil
}
