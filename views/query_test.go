package views

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	values := url.Values{
		"search":   {"dell"},
		"status":   {"Active"},
		"location": {"Head Office"},
		"ignored":  {"x"},
		"sort":     {"assetName"},
		"dir":      {"descending"},
	}

	q := ParseQuery(values, "status", "location")

	assert.Equal(t, "dell", q.Search)
	assert.Equal(t, map[string]string{"status": "Active", "location": "Head Office"}, q.Filters)
	assert.Equal(t, Sort{Key: "assetName", Direction: Descending}, q.Sort)
}

func TestParseQueryDefaults(t *testing.T) {
	q := ParseQuery(url.Values{}, "status")
	assert.Empty(t, q.Search)
	assert.Empty(t, q.Filters)
	assert.Empty(t, q.Sort.Key)
}

func TestParseQueryShortDescAlias(t *testing.T) {
	q := ParseQuery(url.Values{"sort": {"userId"}, "dir": {"desc"}})
	assert.Equal(t, Descending, q.Sort.Direction)
}

func TestParseQueryDirectionDefaultsToAscending(t *testing.T) {
	q := ParseQuery(url.Values{"sort": {"userId"}})
	assert.Equal(t, Ascending, q.Sort.Direction)
}
