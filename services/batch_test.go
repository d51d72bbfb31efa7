package services

import (
	"testing"

	"mockapi-backend/models"
	"mockapi-backend/repository"
	"mockapi-backend/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// BatchServiceTestSuite drives the batch orchestrator against a real store
// so ordered operations can observe each other's effects.
type BatchServiceTestSuite struct {
	suite.Suite
	store *repository.Store
	batch *BatchService
}

func (suite *BatchServiceTestSuite) SetupTest() {
	log := logger.NewLogger("error", "text")
	cfg := &models.Config{DefaultPerPage: 10, MaxPerPage: 100}

	suite.store = repository.NewStore(log)
	orgs := NewOrganizationService(suite.store, cfg, log)
	users := NewUserService(suite.store, cfg, log)
	profiles := NewProfileService(suite.store, cfg, log)
	suite.batch = NewBatchService(orgs, users, profiles, log)
}

func TestBatchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BatchServiceTestSuite))
}

// TestRunPartialFailure submits three creates where the middle one collides
// on id: the batch reports 2 successes and 1 error, in input order, and the
// two successful entities exist afterwards.
func (suite *BatchServiceTestSuite) TestRunPartialFailure() {
	_, err := suite.store.CreateOrganization(&models.Organization{
		ID: "ORG001", Name: "Existing", Type: "startup",
	})
	assert.NoError(suite.T(), err)

	resp, err := suite.batch.Run(models.KindOrganization, []models.BatchOperation{
		{Action: "create", Data: map[string]interface{}{"name": "First", "type": "startup"}},
		{Action: "create", Data: map[string]interface{}{"id": "ORG001", "name": "Clash", "type": "startup"}},
		{Action: "create", Data: map[string]interface{}{"name": "Third", "type": "enterprise"}},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, resp.Summary.Total)
	assert.Equal(suite.T(), 2, resp.Summary.Successful)
	assert.Equal(suite.T(), 1, resp.Summary.Failed)

	assert.Equal(suite.T(), "success", resp.Results[0].Status)
	assert.Equal(suite.T(), "error", resp.Results[1].Status)
	assert.Equal(suite.T(), "success", resp.Results[2].Status)
	assert.Contains(suite.T(), resp.Results[1].Error, "Operation 2:")
	assert.Contains(suite.T(), resp.Results[1].Error, "already exists")

	assert.Len(suite.T(), suite.store.ListOrganizations(), 3)
}

// TestRunLaterOperationSeesEarlierCreate checks strict ordering: an update in
// the same batch can target an id created two operations earlier.
func (suite *BatchServiceTestSuite) TestRunLaterOperationSeesEarlierCreate() {
	resp, err := suite.batch.Run(models.KindOrganization, []models.BatchOperation{
		{Action: "create", Data: map[string]interface{}{"id": "ORG010", "name": "Fresh", "type": "startup"}},
		{Action: "update", Data: map[string]interface{}{"id": "ORG010", "name": "Renamed"}},
		{Action: "delete", Data: map[string]interface{}{"id": "ORG010"}},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, resp.Summary.Successful)

	updated := resp.Results[1].Data.(*models.Organization)
	assert.Equal(suite.T(), "Renamed", updated.Name)
	assert.Empty(suite.T(), suite.store.ListOrganizations())
}

func (suite *BatchServiceTestSuite) TestRunValidationFailureIsPerItem() {
	resp, err := suite.batch.Run(models.KindUser, []models.BatchOperation{
		{Action: "create", Data: map[string]interface{}{"name": "Alice", "email": "bad-email"}},
		{Action: "create", Data: map[string]interface{}{"name": "Bob", "email": "bob@example.com"}},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Summary.Failed)
	assert.Contains(suite.T(), resp.Results[0].Error, "Operation 1:")
	assert.Contains(suite.T(), resp.Results[0].Error, "valid email address")
	assert.Equal(suite.T(), "success", resp.Results[1].Status)
}

func (suite *BatchServiceTestSuite) TestRunUnknownAction() {
	resp, err := suite.batch.Run(models.KindProfile, []models.BatchOperation{
		{Action: "upsert", Data: map[string]interface{}{"name": "P"}},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Summary.Failed)
	assert.Contains(suite.T(), resp.Results[0].Error, "must be one of: create, update, delete")
}

func (suite *BatchServiceTestSuite) TestRunUpdateWithoutID() {
	resp, err := suite.batch.Run(models.KindProfile, []models.BatchOperation{
		{Action: "update", Data: map[string]interface{}{"name": "No Target"}},
	})

	assert.NoError(suite.T(), err)
	assert.Contains(suite.T(), resp.Results[0].Error, "'data.id' is required")
}

func (suite *BatchServiceTestSuite) TestRunRejectsEmptyAndOversizedBatches() {
	_, err := suite.batch.Run(models.KindOrganization, nil)
	assert.Equal(suite.T(), models.ErrorKindValidation, models.KindOfError(err))

	ops := make([]models.BatchOperation, models.MaxBatchOperations+1)
	for i := range ops {
		ops[i] = models.BatchOperation{Action: "create", Data: map[string]interface{}{"name": "x", "type": "startup"}}
	}
	_, err = suite.batch.Run(models.KindOrganization, ops)
	assert.Equal(suite.T(), models.ErrorKindValidation, models.KindOfError(err))
	assert.Contains(suite.T(), err.Error(), "50")
}

func (suite *BatchServiceTestSuite) TestRunMalformedDataShape() {
	resp, err := suite.batch.Run(models.KindProfile, []models.BatchOperation{
		{Action: "create", Data: map[string]interface{}{"name": "P", "settings": "not-an-object"}},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Summary.Failed)
	assert.Contains(suite.T(), resp.Results[0].Error, "Operation 1:")
}
