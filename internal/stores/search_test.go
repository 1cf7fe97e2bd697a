// internal/stores/search_test.go
package stores

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"internmatch/internal/common/logger"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
)

type fakeTransport struct {
	response string
	status   int
}

func (t *fakeTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: t.status,
		Body:       io.NopCloser(strings.NewReader(t.response)),
		Header:     http.Header{"X-Elastic-Product": []string{"Elasticsearch"}, "Content-Type": []string{"application/json"}},
	}, nil
}

func newFakeSearchStore(t *testing.T, response string, status int) *SearchStore {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{"http://localhost:9200"},
		Transport: &fakeTransport{response: response, status: status},
	})
	assert.NoError(t, err)
	return NewSearchStore(client, "postings", logger.NewNoOpLogger())
}

func TestSearchStore_ActivePostings(t *testing.T) {
	response := `{
		"hits": {
			"hits": [
				{"_source": {"id": "post-001", "title": "Backend Intern", "status": "active", "skillsRequired": ["python"]}},
				{"_source": {"id": "post-002", "title": "Data Intern", "status": "active", "remoteOk": true}}
			]
		}
	}`
	store := newFakeSearchStore(t, response, http.StatusOK)

	postings, err := store.ActivePostings(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, postings, 2)
	assert.Equal(t, "post-001", postings[0].ID)
	assert.Equal(t, []string{"python"}, postings[0].SkillsRequired)
	assert.True(t, postings[1].RemoteOK)
}

func TestSearchStore_ActivePostings_SearchError(t *testing.T) {
	store := newFakeSearchStore(t, `{"error": "shard failure"}`, http.StatusInternalServerError)

	_, err := store.ActivePostings(context.Background(), 10)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "search failed")
}

func TestSearchStore_ActivePostings_Empty(t *testing.T) {
	store := newFakeSearchStore(t, `{"hits": {"hits": []}}`, http.StatusOK)

	postings, err := store.ActivePostings(context.Background(), 10)
	assert.NoError(t, err)
	assert.Empty(t, postings)
}
