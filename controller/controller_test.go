package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"mockapi-backend/models"
	"mockapi-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const testToken = "test-token"

// ControllerTestSuite drives the full HTTP surface end to end: real store,
// real services, real cache, routed through the production middleware chain.
type ControllerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func testConfig() *models.Config {
	return &models.Config{
		AppName:                    "Mock API Backend",
		AppVersion:                 "1.0.0",
		AppBuild:                   "test",
		AppEnv:                     "test",
		AuthToken:                  testToken,
		CORSOrigins:                []string{"*"},
		RateLimitRequestsPerMinute: 10000,
		RateLimitSearchPerMinute:   10000,
		RateLimitBatchPerMinute:    10000,
		RateLimitSystemPerMinute:   10000,
		CacheTTLSeconds:            60,
		MaxPerPage:                 100,
		DefaultPerPage:             10,
	}
}

func (suite *ControllerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	suite.router = gin.New()
	c := NewController(context.Background(), cfg, logger.NewLogger("error", "text"))
	c.Routes(cfg, suite.router)
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (suite *ControllerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		assert.NoError(suite.T(), err)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer "+testToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ControllerTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var payload map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &payload)
	assert.NoError(suite.T(), err)
	return payload
}

func (suite *ControllerTestSuite) createOrganization(name, orgType string) string {
	w := suite.request(http.MethodPost, "/api/organizations", map[string]interface{}{
		"name": name,
		"type": orgType,
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	data := suite.decode(w)["data"].(map[string]interface{})
	return data["id"].(string)
}

// --- Auth ---

func (suite *ControllerTestSuite) TestDataEndpointsRequireToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/organizations", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "AuthenticationError")
}

func (suite *ControllerTestSuite) TestSystemEndpointsAreOpen() {
	for _, path := range []string{"/", "/api/health", "/api/version"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)
		assert.Equal(suite.T(), http.StatusOK, w.Code, path)
	}
}

func (suite *ControllerTestSuite) TestStatsRequiresToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	w = suite.request(http.MethodGet, "/api/stats", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// --- Organizations ---

func (suite *ControllerTestSuite) TestOrganizationCRUD() {
	id := suite.createOrganization("Acme Corp", "enterprise")
	assert.Regexp(suite.T(), `^ORG\d{3,}$`, id)

	w := suite.request(http.MethodGet, "/api/organizations/"+id, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data := suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), "Acme Corp", data["name"])
	assert.Equal(suite.T(), float64(0), data["total_users"])

	w = suite.request(http.MethodPut, "/api/organizations/"+id, map[string]interface{}{
		"name": "Acme Renamed",
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data = suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), "Acme Renamed", data["name"])
	assert.Equal(suite.T(), "enterprise", data["type"])

	w = suite.request(http.MethodDelete, "/api/organizations/"+id, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/api/organizations/"+id, nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ControllerTestSuite) TestOrganizationValidationMapsTo400() {
	w := suite.request(http.MethodPost, "/api/organizations", map[string]interface{}{
		"type": "enterprise",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	payload := suite.decode(w)
	errInfo := payload["error"].(map[string]interface{})
	assert.Equal(suite.T(), "ValidationError", errInfo["type"])
	assert.Equal(suite.T(), "name", errInfo["field"])
}

func (suite *ControllerTestSuite) TestDuplicateIDMapsTo409() {
	w := suite.request(http.MethodPost, "/api/organizations", map[string]interface{}{
		"id": "ORG500", "name": "First", "type": "startup",
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	w = suite.request(http.MethodPost, "/api/organizations", map[string]interface{}{
		"id": "ORG500", "name": "Second", "type": "startup",
	})
	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "DuplicateError")
}

func (suite *ControllerTestSuite) TestDeleteReferencedOrganizationMapsTo400() {
	orgID := suite.createOrganization("Held", "startup")

	w := suite.request(http.MethodPost, "/api/users", map[string]interface{}{
		"name": "Holder", "email": "holder@example.com", "organization_id": orgID,
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	w = suite.request(http.MethodDelete, "/api/organizations/"+orgID, nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "ReferenceError")
}

func (suite *ControllerTestSuite) TestMalformedBodyMapsTo400() {
	req := httptest.NewRequest(http.MethodPost, "/api/organizations", bytes.NewBufferString("{not json"))
	req.Header.Set("Authorization", "Bearer "+testToken)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Request body must contain valid JSON")
}

// --- Users ---

func (suite *ControllerTestSuite) TestUserGetEmbedsOrganization() {
	orgID := suite.createOrganization("Employer", "enterprise")

	w := suite.request(http.MethodPost, "/api/users", map[string]interface{}{
		"name": "Alice", "email": "alice@example.com", "organization_id": orgID,
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	userID := suite.decode(w)["data"].(map[string]interface{})["id"].(string)

	w = suite.request(http.MethodGet, "/api/users/"+userID, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data := suite.decode(w)["data"].(map[string]interface{})
	org := data["organization"].(map[string]interface{})
	assert.Equal(suite.T(), orgID, org["id"])
}

func (suite *ControllerTestSuite) TestUserDanglingOrganizationMapsTo400() {
	w := suite.request(http.MethodPost, "/api/users", map[string]interface{}{
		"name": "Bob", "email": "bob@example.com", "organization_id": "ORG999",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "ReferenceError")
}

func (suite *ControllerTestSuite) TestDuplicateEmailMapsTo409() {
	w := suite.request(http.MethodPost, "/api/users", map[string]interface{}{
		"name": "Carol", "email": "carol@example.com",
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	w = suite.request(http.MethodPost, "/api/users", map[string]interface{}{
		"name": "Other Carol", "email": "carol@example.com",
	})
	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// --- Lists, filters, cache ---

func (suite *ControllerTestSuite) TestListFiltersAndPagination() {
	for i := 0; i < 5; i++ {
		suite.createOrganization(fmt.Sprintf("Tech %d", i), "enterprise")
	}
	suite.createOrganization("Other", "startup")

	w := suite.request(http.MethodGet, "/api/organizations?type=enterprise&per_page=2&page=2", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	data := suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(5), data["total"])
	assert.Equal(suite.T(), float64(2), data["page"])
	assert.Equal(suite.T(), float64(3), data["total_pages"])
	assert.Len(suite.T(), data["items"].([]interface{}), 2)
}

// TestNoStaleReadAfterMutation creates, lists (populating the cache),
// mutates, and lists again: the second list must observe the mutation.
func (suite *ControllerTestSuite) TestNoStaleReadAfterMutation() {
	suite.createOrganization("Cached Org", "startup")

	w := suite.request(http.MethodGet, "/api/organizations", nil)
	data := suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(1), data["total"])

	suite.createOrganization("Second Org", "startup")

	w = suite.request(http.MethodGet, "/api/organizations", nil)
	data = suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(2), data["total"])
}

// --- Search ---

func (suite *ControllerTestSuite) TestAdvancedSearch() {
	suite.createOrganization("Tech Labs", "enterprise")
	w := suite.request(http.MethodPost, "/api/users", map[string]interface{}{
		"name": "Tech Lead", "email": "lead@example.com",
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	w = suite.request(http.MethodGet, "/api/search/advanced?q=Tech&type=all", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	data := suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(2), data["total"])
	items := data["items"].([]interface{})
	first := items[0].(map[string]interface{})
	assert.Equal(suite.T(), "organization", first["kind"])
}

func (suite *ControllerTestSuite) TestAdvancedSearchInvalidType() {
	w := suite.request(http.MethodGet, "/api/search/advanced?type=widgets", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "ValidationError")
}

func (suite *ControllerTestSuite) TestAdvancedSearchMalformedFilters() {
	w := suite.request(http.MethodGet, "/api/search/advanced?filters=%7Bnot-json", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "MalformedFilterError")
}

// --- Batch ---

func (suite *ControllerTestSuite) TestBatchPartialFailure() {
	suite.createOrganization("Existing", "startup")

	w := suite.request(http.MethodPost, "/api/batch/organizations", map[string]interface{}{
		"operations": []map[string]interface{}{
			{"action": "create", "data": map[string]interface{}{"name": "One", "type": "startup"}},
			{"action": "create", "data": map[string]interface{}{"id": "ORG001", "name": "Clash", "type": "startup"}},
			{"action": "create", "data": map[string]interface{}{"name": "Three", "type": "startup"}},
		},
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	data := suite.decode(w)["data"].(map[string]interface{})
	summary := data["summary"].(map[string]interface{})
	assert.Equal(suite.T(), float64(3), summary["total"])
	assert.Equal(suite.T(), float64(2), summary["successful"])
	assert.Equal(suite.T(), float64(1), summary["failed"])

	results := data["results"].([]interface{})
	second := results[1].(map[string]interface{})
	assert.Equal(suite.T(), "error", second["status"])
	assert.Contains(suite.T(), second["error"], "Operation 2:")
}

func (suite *ControllerTestSuite) TestBatchRejectsEmptyOperations() {
	w := suite.request(http.MethodPost, "/api/batch/users", map[string]interface{}{
		"operations": []map[string]interface{}{},
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// --- System ---

func (suite *ControllerTestSuite) TestStatsPayload() {
	suite.createOrganization("Stat Org", "enterprise")
	w := suite.request(http.MethodPost, "/api/users", map[string]interface{}{
		"name": "Stat User", "email": "stat@example.com", "organization_id": "ORG001",
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	w = suite.request(http.MethodGet, "/api/stats", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	data := suite.decode(w)["data"].(map[string]interface{})
	orgs := data["organizations"].(map[string]interface{})
	assert.Equal(suite.T(), float64(1), orgs["total"])
	byType := orgs["by_type"].(map[string]interface{})
	assert.Equal(suite.T(), float64(1), byType["enterprise"])

	users := data["users"].(map[string]interface{})
	byOrg := users["by_organization"].(map[string]interface{})
	assert.Equal(suite.T(), float64(1), byOrg["ORG001"])
}

func (suite *ControllerTestSuite) TestIndexListsEndpoints() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	payload := suite.decode(w)
	assert.Equal(suite.T(), "running", payload["status"])
	endpoints := payload["endpoints"].(map[string]interface{})
	assert.Equal(suite.T(), "/api/organizations", endpoints["organizations"])
	assert.Equal(suite.T(), "/api/search/advanced", endpoints["search"])
}

func (suite *ControllerTestSuite) TestRequestIDHeaderPresent() {
	w := suite.request(http.MethodGet, "/api/health", nil)
	assert.NotEmpty(suite.T(), w.Header().Get("X-Request-ID"))
}
