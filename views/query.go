package views

import (
	"net/url"
)

// ParseQuery builds a Query from request query parameters. Only the named
// filter fields are honoured; unknown parameters are ignored. Sort
// direction defaults to ascending, with "descending"/"desc" flipping it.
func ParseQuery(values url.Values, filterFields ...string) Query {
	q := Query{
		Search:  values.Get("search"),
		Filters: map[string]string{},
	}

	for _, field := range filterFields {
		if v := values.Get(field); v != "" {
			q.Filters[field] = v
		}
	}

	if key := values.Get("sort"); key != "" {
		dir := Ascending
		switch values.Get("dir") {
		case string(Descending), "desc":
			dir = Descending
		}
		q.Sort = Sort{Key: key, Direction: dir}
	}

	return q
}
