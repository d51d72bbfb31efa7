package services

import (
	"strings"

	"mockapi-backend/models"
	"mockapi-backend/query"
	"mockapi-backend/repository"
	"mockapi-backend/utils/logger"
)

// OrganizationService validates organization payloads and drives the store.
type OrganizationService struct {
	repo   repository.OrganizationRepositoryInterface
	config *models.Config
	logger logger.Logger
}

func NewOrganizationService(repo repository.OrganizationRepositoryInterface, cfg *models.Config, log logger.Logger) *OrganizationService {
	return &OrganizationService{
		repo:   repo,
		config: cfg,
		logger: log,
	}
}

func (s *OrganizationService) CreateOrganization(in *models.OrganizationInput) (*models.Organization, error) {
	if err := s.validateCreateOrganization(in); err != nil {
		return nil, err
	}

	return s.repo.CreateOrganization(&models.Organization{
		ID:       in.ID,
		Name:     in.Name,
		Type:     in.Type,
		Metadata: in.Metadata,
	})
}

// validateCreateOrganization runs the field checks in order; the first
// failure wins so the caller gets one unambiguous message.
func (s *OrganizationService) validateCreateOrganization(in *models.OrganizationInput) error {
	if in == nil {
		return models.NewValidationError("", "Request body must contain valid JSON")
	}

	if err := validateName(in.Name, false); err != nil {
		return err
	}

	if strings.TrimSpace(in.Type) == "" {
		return models.NewValidationError("type", "Field 'type' is required and cannot be empty")
	}
	if err := validateOrganizationType(in.Type); err != nil {
		return err
	}

	if in.ID != "" && !models.OrganizationIDPattern.MatchString(in.ID) {
		return models.NewValidationError("id",
			"Field 'id' must follow format 'ORG###' (e.g., 'ORG001', 'ORG123')")
	}

	return nil
}

func (s *OrganizationService) validateUpdateOrganization(upd *models.OrganizationUpdate) error {
	if upd == nil {
		return models.NewValidationError("", "Request body must contain valid JSON")
	}

	if upd.Name != nil {
		if err := validateName(*upd.Name, true); err != nil {
			return err
		}
	}
	if upd.Type != nil {
		if err := validateOrganizationType(*upd.Type); err != nil {
			return err
		}
	}
	return nil
}

func validateOrganizationType(orgType string) error {
	for _, valid := range models.OrganizationTypes {
		if orgType == valid {
			return nil
		}
	}
	return models.NewValidationError("type",
		"Field 'type' must be one of: %s", strings.Join(models.OrganizationTypes, ", "))
}

// validateName enforces the shared name constraints: non-empty unless the
// field is optional, and at most 100 characters.
func validateName(name string, isUpdate bool) error {
	if strings.TrimSpace(name) == "" {
		if isUpdate {
			return models.NewValidationError("name", "Field 'name' must be a non-empty string")
		}
		return models.NewValidationError("name", "Field 'name' is required and cannot be empty")
	}
	if len(name) > 100 {
		return models.NewValidationError("name", "Field 'name' must be 100 characters or less")
	}
	return nil
}

// GetOrganization returns the organization together with its dependent
// users.
func (s *OrganizationService) GetOrganization(id string) (*models.OrganizationDetail, error) {
	org, err := s.repo.GetOrganization(id)
	if err != nil {
		return nil, err
	}

	users := s.repo.UsersByOrganization(id)
	if users == nil {
		users = []*models.User{}
	}
	return &models.OrganizationDetail{
		Organization: *org,
		Users:        users,
		TotalUsers:   len(users),
	}, nil
}

// ListOrganizations applies field filters and pagination over the live
// collection.
func (s *OrganizationService) ListOrganizations(filters map[string]string, page, perPage int) (*query.Result[*models.Organization], error) {
	docs, err := query.Docs(s.repo.ListOrganizations())
	if err != nil {
		return nil, err
	}

	matched := query.Select(docs, "", filters)
	page, perPage = query.NormalizePage(page, perPage, s.config.DefaultPerPage, s.config.MaxPerPage)
	return query.Paginate(matched, page, perPage), nil
}

func (s *OrganizationService) UpdateOrganization(id string, upd *models.OrganizationUpdate) (*models.Organization, error) {
	if err := s.validateUpdateOrganization(upd); err != nil {
		return nil, err
	}
	return s.repo.UpdateOrganization(id, upd)
}

func (s *OrganizationService) DeleteOrganization(id string) error {
	return s.repo.DeleteOrganization(id)
}
