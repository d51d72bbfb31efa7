package services

import (
	"mockapi-backend/models"
	"mockapi-backend/query"
	"mockapi-backend/repository"
	"mockapi-backend/utils/logger"
)

// ProfileService validates profile payloads and drives the store.
type ProfileService struct {
	repo   repository.ProfileRepositoryInterface
	config *models.Config
	logger logger.Logger
}

func NewProfileService(repo repository.ProfileRepositoryInterface, cfg *models.Config, log logger.Logger) *ProfileService {
	return &ProfileService{
		repo:   repo,
		config: cfg,
		logger: log,
	}
}

func (s *ProfileService) CreateProfile(in *models.ProfileInput) (*models.Profile, error) {
	if err := s.validateCreateProfile(in); err != nil {
		return nil, err
	}

	return s.repo.CreateProfile(&models.Profile{
		ID:          in.ID,
		Name:        in.Name,
		Settings:    in.Settings,
		Preferences: in.Preferences,
		Metadata:    in.Metadata,
	})
}

// Settings and preferences arrive as typed maps, so "must be a JSON object"
// is already enforced at decode time; only name and id remain to check.
func (s *ProfileService) validateCreateProfile(in *models.ProfileInput) error {
	if in == nil {
		return models.NewValidationError("", "Request body must contain valid JSON")
	}

	if err := validateName(in.Name, false); err != nil {
		return err
	}

	if in.ID != "" && !models.ProfileIDPattern.MatchString(in.ID) {
		return models.NewValidationError("id",
			"Field 'id' must follow format 'PROF###' (e.g., 'PROF001', 'PROF123')")
	}

	return nil
}

func (s *ProfileService) validateUpdateProfile(upd *models.ProfileUpdate) error {
	if upd == nil {
		return models.NewValidationError("", "Request body must contain valid JSON")
	}
	if upd.Name != nil {
		if err := validateName(*upd.Name, true); err != nil {
			return err
		}
	}
	return nil
}

func (s *ProfileService) GetProfile(id string) (*models.Profile, error) {
	return s.repo.GetProfile(id)
}

func (s *ProfileService) ListProfiles(filters map[string]string, page, perPage int) (*query.Result[*models.Profile], error) {
	docs, err := query.Docs(s.repo.ListProfiles())
	if err != nil {
		return nil, err
	}

	matched := query.Select(docs, "", filters)
	page, perPage = query.NormalizePage(page, perPage, s.config.DefaultPerPage, s.config.MaxPerPage)
	return query.Paginate(matched, page, perPage), nil
}

func (s *ProfileService) UpdateProfile(id string, upd *models.ProfileUpdate) (*models.Profile, error) {
	if err := s.validateUpdateProfile(upd); err != nil {
		return nil, err
	}
	return s.repo.UpdateProfile(id, upd)
}

func (s *ProfileService) DeleteProfile(id string) error {
	return s.repo.DeleteProfile(id)
}
