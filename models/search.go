package models

// Search type selectors for the advanced search endpoint.
const (
	SearchTypeAll           = "all"
	SearchTypeOrganizations = "organizations"
	SearchTypeUsers         = "users"
	SearchTypeProfiles      = "profiles"
)

// SearchParams carries the parsed advanced-search request.
type SearchParams struct {
	Query   string
	Type    string
	Filters map[string]string
	Page    int
	PerPage int
}

// SearchItem is one multi-entity search hit, tagged with the kind it came
// from so callers can tell a matching organization from a matching user.
type SearchItem struct {
	Kind   Kind        `json:"kind"`
	Entity interface{} `json:"entity"`
}
