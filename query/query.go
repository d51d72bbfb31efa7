// Package query implements the generic filter-and-search machinery shared by
// the list and search endpoints: free-text search over string leaves,
// dotted-path field filters, and pagination. Matching operates on the JSON
// form of an entity so that nested metadata, settings, and preferences are
// handled uniformly regardless of the concrete entity type.
package query

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// Doc is one search candidate: an entity together with its serialized JSON.
// The JSON is produced once per request so repeated filter and search passes
// do not re-marshal.
type Doc[T any] struct {
	Entity T
	JSON   string
}

// DocOf serializes an entity into a Doc.
func DocOf[T any](entity T) (Doc[T], error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return Doc[T]{}, err
	}
	return Doc[T]{Entity: entity, JSON: string(raw)}, nil
}

// Docs serializes a slice of entities.
func Docs[T any](entities []T) ([]Doc[T], error) {
	docs := make([]Doc[T], 0, len(entities))
	for _, e := range entities {
		d, err := DocOf(e)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// MatchText reports whether the case-insensitive substring term occurs in any
// string-valued field of the document, recursing into nested objects and
// arrays. Numeric, boolean, and null leaves never match. An empty term
// matches everything.
func (d Doc[T]) MatchText(term string) bool {
	if term == "" {
		return true
	}
	return matchValue(gjson.Parse(d.JSON), strings.ToLower(term))
}

func matchValue(v gjson.Result, term string) bool {
	switch v.Type {
	case gjson.String:
		return strings.Contains(strings.ToLower(v.Str), term)
	case gjson.JSON:
		found := false
		v.ForEach(func(_, child gjson.Result) bool {
			if matchValue(child, term) {
				found = true
				return false
			}
			return true
		})
		return found
	default:
		return false
	}
}

// MatchFilters reports whether the document satisfies every filter. A key
// without a dot addresses a top-level field; a dotted key descends one
// segment at a time through nested objects, failing when any intermediate is
// missing or not an object. Segments are compared as literal keys, so gjson
// path syntax in user input ("na*e", "@this", numeric array indexes) carries
// no meaning. A missing path excludes the document. Values match by
// case-insensitive substring containment on the string form of the resolved
// value, not equality; "ent" matches "enterprise". This permissiveness is
// inherited behavior, not an accident.
func (d Doc[T]) MatchFilters(filters map[string]string) bool {
	root := gjson.Parse(d.JSON)
	for path, want := range filters {
		got, ok := lookup(root, path)
		if !ok {
			return false
		}
		if !strings.Contains(strings.ToLower(got.String()), strings.ToLower(want)) {
			return false
		}
	}
	return true
}

// lookup resolves a dotted path by exact key comparison at each level.
func lookup(v gjson.Result, path string) (gjson.Result, bool) {
	for _, segment := range strings.Split(path, ".") {
		if !v.IsObject() {
			return gjson.Result{}, false
		}
		found := false
		var next gjson.Result
		v.ForEach(func(key, value gjson.Result) bool {
			if key.String() == segment {
				next = value
				found = true
				return false
			}
			return true
		})
		if !found {
			return gjson.Result{}, false
		}
		v = next
	}
	return v, true
}

// Select applies text search then field filters, in that order, and returns
// the surviving entities.
func Select[T any](docs []Doc[T], term string, filters map[string]string) []T {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		if !d.MatchText(term) {
			continue
		}
		if !d.MatchFilters(filters) {
			continue
		}
		out = append(out, d.Entity)
	}
	return out
}

// Result is one page of items plus pagination metadata.
type Result[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices items for the 1-based page. A page past the end yields an
// empty Items slice with Total unchanged. Callers are expected to have
// normalized page and perPage already (see NormalizePage).
func Paginate[T any](items []T, page, perPage int) *Result[T] {
	total := len(items)
	start := (page - 1) * perPage
	end := start + perPage

	var pageItems []T
	if start < total {
		if end > total {
			end = total
		}
		pageItems = items[start:end]
	} else {
		pageItems = []T{}
	}

	return &Result[T]{
		Items:      pageItems,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: (total + perPage - 1) / perPage,
	}
}

// NormalizePage clamps page and perPage to sane values: page >= 1, perPage
// between 1 and maxPerPage, with fallback defaults for out-of-range input.
func NormalizePage(page, perPage, defaultPerPage, maxPerPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}
