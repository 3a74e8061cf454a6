// Package views holds the list projection pipeline shared by every list
// screen (assets, users, assignments) and the assignment enrichment that
// joins assignments against users and assets. Everything here is pure:
// no store access, inputs are never mutated.
package views

import (
	"sort"
	"strings"
	"time"
)

type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// FilterAll is the filter value meaning "no constraint on this field".
const FilterAll = "All"

type Sort struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction"`
}

// Query is one screen's view state: free-text search, exact-match filters
// over enumerated fields, and an optional single-key sort.
type Query struct {
	Search  string            `json:"search"`
	Filters map[string]string `json:"filters"`
	Sort    Sort              `json:"sort"`
}

// Fields is one record flattened for searching, filtering and sorting.
// Values are strings, numbers or times; absent optional fields are simply
// left out of the map and never match.
type Fields map[string]interface{}

// Project applies search, then equality filters, then a stable sort, and
// returns a new slice. Both filter stages must complete before the sort so
// the sort sees the fully reduced set. An empty sort key, or a key no
// surviving record carries, leaves the input order untouched.
func Project[T any](items []T, q Query, view func(T) Fields, searchKeys []string) []T {
	out := make([]T, 0, len(items))
	flat := make([]Fields, 0, len(items))

	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, item := range items {
		f := view(item)
		if !matchesSearch(f, search, searchKeys) {
			continue
		}
		if !matchesFilters(f, q.Filters) {
			continue
		}
		out = append(out, item)
		flat = append(flat, f)
	}

	sortProjected(out, flat, q.Sort)
	return out
}

func matchesSearch(f Fields, search string, keys []string) bool {
	if search == "" {
		return true
	}
	for _, key := range keys {
		s, ok := f[key].(string)
		if !ok || s == "" {
			continue
		}
		if strings.Contains(strings.ToLower(s), search) {
			return true
		}
	}
	return false
}

func matchesFilters(f Fields, filters map[string]string) bool {
	for field, want := range filters {
		if want == "" || want == FilterAll {
			continue
		}
		s, _ := f[field].(string)
		if s != want {
			return false
		}
	}
	return true
}

func sortProjected[T any](items []T, flat []Fields, s Sort) {
	if s.Key == "" {
		return
	}

	present := false
	for _, f := range flat {
		if _, ok := f[s.Key]; ok {
			present = true
			break
		}
	}
	if !present {
		// unknown key: keep pre-sort order
		return
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		c := compareValues(flat[idx[i]][s.Key], flat[idx[j]][s.Key])
		if s.Direction == Descending {
			c = -c
		}
		return c < 0
	})

	reordered := make([]T, len(items))
	for i, k := range idx {
		reordered[i] = items[k]
	}
	copy(items, reordered)
}

// compareValues orders two field values using the natural ordering of
// their type. A missing value sorts before any present one.
func compareValues(a, b interface{}) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}

	af, aNum := asFloat(a)
	bf, bNum := asFloat(b)
	if aNum && bNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	as, _ := a.(string)
	bs, _ := b.(string)
	return strings.Compare(as, bs)
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
