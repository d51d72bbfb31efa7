package services

import (
	"testing"

	"mockapi-backend/models"
	"mockapi-backend/repository"
	"mockapi-backend/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// SearchServiceTestSuite drives the multi-entity search against a real
// store populated with a small fixed dataset.
type SearchServiceTestSuite struct {
	suite.Suite
	search *SearchService
	stats  *StatsService
}

func (suite *SearchServiceTestSuite) SetupTest() {
	log := logger.NewLogger("error", "text")
	cfg := &models.Config{DefaultPerPage: 10, MaxPerPage: 100}
	store := repository.NewStore(log)

	_, _ = store.CreateOrganization(&models.Organization{ID: "ORG001", Name: "Tech Labs", Type: "enterprise"})
	_, _ = store.CreateOrganization(&models.Organization{ID: "ORG002", Name: "Food Co", Type: "startup"})
	_, _ = store.CreateUser(&models.User{ID: "USER001", Name: "Tech Lead", Email: "lead@techlabs.com", OrganizationID: "ORG001"})
	_, _ = store.CreateUser(&models.User{ID: "USER002", Name: "Chef", Email: "chef@foodco.com", OrganizationID: "ORG002"})
	_, _ = store.CreateProfile(&models.Profile{ID: "PROF001", Name: "Techie Profile",
		Settings: map[string]interface{}{"theme": "dark"}})

	suite.search = NewSearchService(store, cfg, log)
	suite.stats = NewStatsService(store, log)
}

func TestSearchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SearchServiceTestSuite))
}

// TestSearchAllKindsTagged runs a text query across every kind and checks
// each hit is tagged with its originating kind, organizations first.
func (suite *SearchServiceTestSuite) TestSearchAllKindsTagged() {
	result, err := suite.search.Search(&models.SearchParams{Query: "Tech", Type: models.SearchTypeAll})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, result.Total)
	assert.Equal(suite.T(), models.KindOrganization, result.Items[0].Kind)
	assert.Equal(suite.T(), models.KindUser, result.Items[1].Kind)
	assert.Equal(suite.T(), models.KindProfile, result.Items[2].Kind)
}

func (suite *SearchServiceTestSuite) TestSearchSingleKind() {
	result, err := suite.search.Search(&models.SearchParams{Query: "Tech", Type: models.SearchTypeUsers})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, result.Total)
	assert.Equal(suite.T(), models.KindUser, result.Items[0].Kind)
}

func (suite *SearchServiceTestSuite) TestSearchCaseInsensitive() {
	result, err := suite.search.Search(&models.SearchParams{Query: "tech", Type: models.SearchTypeOrganizations})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, result.Total)
}

func (suite *SearchServiceTestSuite) TestSearchWithFilters() {
	result, err := suite.search.Search(&models.SearchParams{
		Type:    models.SearchTypeOrganizations,
		Filters: map[string]string{"type": "startup"},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, result.Total)
	org := result.Items[0].Entity.(*models.Organization)
	assert.Equal(suite.T(), "ORG002", org.ID)
}

func (suite *SearchServiceTestSuite) TestSearchInvalidType() {
	result, err := suite.search.Search(&models.SearchParams{Type: "widgets"})

	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), models.ErrorKindValidation, models.KindOfError(err))
	assert.Equal(suite.T(), "type", models.FieldOfError(err))
}

func (suite *SearchServiceTestSuite) TestSearchNoMatches() {
	result, err := suite.search.Search(&models.SearchParams{Query: "zzz-nothing", Type: models.SearchTypeAll})

	assert.NoError(suite.T(), err)
	assert.Zero(suite.T(), result.Total)
	assert.NotNil(suite.T(), result.Items)
}

// TestSearchPaginationSpansKinds checks pagination runs once over the
// combined sequence, not per kind.
func (suite *SearchServiceTestSuite) TestSearchPaginationSpansKinds() {
	page1, err := suite.search.Search(&models.SearchParams{Query: "Tech", Type: models.SearchTypeAll, Page: 1, PerPage: 2})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), page1.Items, 2)
	assert.Equal(suite.T(), 2, page1.TotalPages)

	page2, err := suite.search.Search(&models.SearchParams{Query: "Tech", Type: models.SearchTypeAll, Page: 2, PerPage: 2})
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), page2.Items, 1)
	assert.Equal(suite.T(), models.KindProfile, page2.Items[0].Kind)
}

func (suite *SearchServiceTestSuite) TestParseFilters() {
	filters, err := ParseFilters(`{"type":"startup","active":true}`)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "startup", filters["type"])
	assert.Equal(suite.T(), "true", filters["active"])

	filters, err = ParseFilters("")
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), filters)

	_, err = ParseFilters("{not json")
	assert.Equal(suite.T(), models.ErrorKindMalformedFilter, models.KindOfError(err))

	_, err = ParseFilters(`["a","b"]`)
	assert.Equal(suite.T(), models.ErrorKindMalformedFilter, models.KindOfError(err))
}

func (suite *SearchServiceTestSuite) TestStatsCollect() {
	stats := suite.stats.Collect()

	assert.Equal(suite.T(), 2, stats.Organizations.Total)
	assert.Equal(suite.T(), 1, stats.Organizations.ByType["enterprise"])
	assert.Equal(suite.T(), 1, stats.Organizations.ByType["startup"])
	assert.Equal(suite.T(), 2, stats.Users.Total)
	assert.Equal(suite.T(), 1, stats.Users.ByOrganization["ORG001"])
	assert.Equal(suite.T(), 1, stats.Profiles.Total)
}
