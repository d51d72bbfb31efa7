package services

import (
	"encoding/json"
	"fmt"

	"mockapi-backend/models"
	"mockapi-backend/utils/logger"
)

// BatchService applies a bounded ordered list of operations against the
// live store via the per-kind services. Operations run strictly in order,
// so a later item can reference an id an earlier item just created. Each
// outcome is recorded independently; one failure neither aborts nor rolls
// back the rest.
type BatchService struct {
	organizations OrganizationServiceInterface
	users         UserServiceInterface
	profiles      ProfileServiceInterface
	logger        logger.Logger
}

func NewBatchService(orgs OrganizationServiceInterface, users UserServiceInterface, profiles ProfileServiceInterface, log logger.Logger) *BatchService {
	return &BatchService{
		organizations: orgs,
		users:         users,
		profiles:      profiles,
		logger:        log,
	}
}

func (s *BatchService) Run(kind models.Kind, operations []models.BatchOperation) (*models.BatchResponse, error) {
	if len(operations) == 0 {
		return nil, models.NewValidationError("operations", "Field 'operations' cannot be empty")
	}
	if len(operations) > models.MaxBatchOperations {
		return nil, models.NewValidationError("operations",
			"Batch operations limited to %d items per request", models.MaxBatchOperations)
	}

	results := make([]models.BatchResult, 0, len(operations))
	summary := models.BatchSummary{Total: len(operations)}

	for i, op := range operations {
		entity, err := s.apply(kind, op)
		if err != nil {
			summary.Failed++
			results = append(results, models.BatchResult{
				Status: "error",
				Error:  fmt.Sprintf("Operation %d: %s", i+1, err.Error()),
			})
			continue
		}
		summary.Successful++
		results = append(results, models.BatchResult{Status: "success", Data: entity})
	}

	s.logger.Infof("batch %s: %d/%d operations succeeded", kind, summary.Successful, summary.Total)
	return &models.BatchResponse{Results: results, Summary: summary}, nil
}

func (s *BatchService) apply(kind models.Kind, op models.BatchOperation) (interface{}, error) {
	switch op.Action {
	case models.BatchActionCreate:
		return s.create(kind, op.Data)
	case models.BatchActionUpdate:
		return s.update(kind, op.Data)
	case models.BatchActionDelete:
		id, err := dataID(op.Data)
		if err != nil {
			return nil, err
		}
		return nil, s.delete(kind, id)
	default:
		return nil, models.NewValidationError("action",
			"Field 'action' must be one of: create, update, delete")
	}
}

func (s *BatchService) create(kind models.Kind, data map[string]interface{}) (interface{}, error) {
	switch kind {
	case models.KindOrganization:
		var in models.OrganizationInput
		if err := decodeData(data, &in); err != nil {
			return nil, err
		}
		return s.organizations.CreateOrganization(&in)
	case models.KindUser:
		var in models.UserInput
		if err := decodeData(data, &in); err != nil {
			return nil, err
		}
		return s.users.CreateUser(&in)
	case models.KindProfile:
		var in models.ProfileInput
		if err := decodeData(data, &in); err != nil {
			return nil, err
		}
		return s.profiles.CreateProfile(&in)
	}
	return nil, models.NewValidationError("", "Invalid entity kind: %s", kind)
}

func (s *BatchService) update(kind models.Kind, data map[string]interface{}) (interface{}, error) {
	id, err := dataID(data)
	if err != nil {
		return nil, err
	}

	switch kind {
	case models.KindOrganization:
		var upd models.OrganizationUpdate
		if err := decodeData(data, &upd); err != nil {
			return nil, err
		}
		return s.organizations.UpdateOrganization(id, &upd)
	case models.KindUser:
		var upd models.UserUpdate
		if err := decodeData(data, &upd); err != nil {
			return nil, err
		}
		return s.users.UpdateUser(id, &upd)
	case models.KindProfile:
		var upd models.ProfileUpdate
		if err := decodeData(data, &upd); err != nil {
			return nil, err
		}
		return s.profiles.UpdateProfile(id, &upd)
	}
	return nil, models.NewValidationError("", "Invalid entity kind: %s", kind)
}

func (s *BatchService) delete(kind models.Kind, id string) error {
	switch kind {
	case models.KindOrganization:
		return s.organizations.DeleteOrganization(id)
	case models.KindUser:
		return s.users.DeleteUser(id)
	case models.KindProfile:
		return s.profiles.DeleteProfile(id)
	}
	return models.NewValidationError("", "Invalid entity kind: %s", kind)
}

// decodeData converts a free-form data object into a typed payload. A field
// of the wrong shape (e.g. settings as a string) fails here with a
// validation error.
func decodeData(data map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return models.NewValidationError("data", "Field 'data' must be a valid object")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return models.NewValidationError("data", "Field 'data' is malformed: %v", err)
	}
	return nil
}

// dataID extracts the target id for update and delete operations.
func dataID(data map[string]interface{}) (string, error) {
	id, ok := data["id"].(string)
	if !ok || id == "" {
		return "", models.NewValidationError("id", "Field 'data.id' is required for this action")
	}
	return id, nil
}
