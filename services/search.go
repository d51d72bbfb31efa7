package services

import (
	"encoding/json"
	"fmt"

	"mockapi-backend/models"
	"mockapi-backend/query"
	"mockapi-backend/repository"
	"mockapi-backend/utils/logger"
)

// SearchService runs the multi-entity search: text query and field filters
// applied per kind, matches tagged with their originating kind, then one
// pagination pass over the combined sequence.
type SearchService struct {
	repo   repository.SearchRepositoryInterface
	config *models.Config
	logger logger.Logger
}

func NewSearchService(repo repository.SearchRepositoryInterface, cfg *models.Config, log logger.Logger) *SearchService {
	return &SearchService{
		repo:   repo,
		config: cfg,
		logger: log,
	}
}

// ParseFilters decodes the filters query parameter. An empty string means no
// filters; anything that is not a JSON object fails the whole request.
func ParseFilters(raw string) (map[string]string, error) {
	if raw == "" {
		return nil, nil
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, models.NewMalformedFilterError(
			"Parameter 'filters' must be a valid JSON object: %v", err)
	}

	filters := make(map[string]string, len(decoded))
	for key, value := range decoded {
		filters[key] = fmt.Sprint(value)
	}
	return filters, nil
}

func (s *SearchService) Search(params *models.SearchParams) (*query.Result[*models.SearchItem], error) {
	if err := validateSearchType(params.Type); err != nil {
		return nil, err
	}

	var combined []*models.SearchItem

	// Kinds are searched independently and concatenated in a fixed order:
	// organizations, users, profiles.
	if params.Type == models.SearchTypeAll || params.Type == models.SearchTypeOrganizations {
		docs, err := query.Docs(s.repo.ListOrganizations())
		if err != nil {
			return nil, err
		}
		for _, org := range query.Select(docs, params.Query, params.Filters) {
			combined = append(combined, &models.SearchItem{Kind: models.KindOrganization, Entity: org})
		}
	}

	if params.Type == models.SearchTypeAll || params.Type == models.SearchTypeUsers {
		docs, err := query.Docs(s.repo.ListUsers())
		if err != nil {
			return nil, err
		}
		for _, user := range query.Select(docs, params.Query, params.Filters) {
			combined = append(combined, &models.SearchItem{Kind: models.KindUser, Entity: user})
		}
	}

	if params.Type == models.SearchTypeAll || params.Type == models.SearchTypeProfiles {
		docs, err := query.Docs(s.repo.ListProfiles())
		if err != nil {
			return nil, err
		}
		for _, profile := range query.Select(docs, params.Query, params.Filters) {
			combined = append(combined, &models.SearchItem{Kind: models.KindProfile, Entity: profile})
		}
	}

	page, perPage := query.NormalizePage(params.Page, params.PerPage, s.config.DefaultPerPage, s.config.MaxPerPage)
	return query.Paginate(combined, page, perPage), nil
}

func validateSearchType(searchType string) error {
	switch searchType {
	case models.SearchTypeAll, models.SearchTypeOrganizations, models.SearchTypeUsers, models.SearchTypeProfiles:
		return nil
	default:
		return models.NewValidationError("type",
			"Parameter 'type' must be one of: all, organizations, users, profiles")
	}
}
