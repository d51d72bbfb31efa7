package services

import (
	"regexp"
	"strings"

	"mockapi-backend/models"
	"mockapi-backend/query"
	"mockapi-backend/repository"
	"mockapi-backend/utils/logger"
)

// emailPattern is a pragmatic syntax check, not an RFC 5322 validator.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// UserService validates user payloads and drives the store. Email
// uniqueness and the organization reference are enforced by the store under
// its write lock; this layer owns the purely syntactic checks.
type UserService struct {
	repo   repository.UserRepositoryInterface
	config *models.Config
	logger logger.Logger
}

func NewUserService(repo repository.UserRepositoryInterface, cfg *models.Config, log logger.Logger) *UserService {
	return &UserService{
		repo:   repo,
		config: cfg,
		logger: log,
	}
}

func (s *UserService) CreateUser(in *models.UserInput) (*models.User, error) {
	if err := s.validateCreateUser(in); err != nil {
		return nil, err
	}

	return s.repo.CreateUser(&models.User{
		ID:             in.ID,
		Name:           in.Name,
		Email:          in.Email,
		OrganizationID: in.OrganizationID,
		ProfileID:      in.ProfileID,
		Metadata:       in.Metadata,
	})
}

func (s *UserService) validateCreateUser(in *models.UserInput) error {
	if in == nil {
		return models.NewValidationError("", "Request body must contain valid JSON")
	}

	if err := validateName(in.Name, false); err != nil {
		return err
	}

	if strings.TrimSpace(in.Email) == "" {
		return models.NewValidationError("email", "Field 'email' is required and cannot be empty")
	}
	if !isValidEmail(in.Email) {
		return models.NewValidationError("email", "Field 'email' must be a valid email address")
	}

	if in.ID != "" && !models.UserIDPattern.MatchString(in.ID) {
		return models.NewValidationError("id",
			"Field 'id' must follow format 'USER###' (e.g., 'USER001', 'USER123')")
	}

	return nil
}

func (s *UserService) validateUpdateUser(upd *models.UserUpdate) error {
	if upd == nil {
		return models.NewValidationError("", "Request body must contain valid JSON")
	}

	if upd.Name != nil {
		if err := validateName(*upd.Name, true); err != nil {
			return err
		}
	}
	if upd.Email != nil && !isValidEmail(*upd.Email) {
		return models.NewValidationError("email", "Field 'email' must be a valid email address")
	}
	return nil
}

// GetUser returns the user with the referenced organization embedded when
// one is set.
func (s *UserService) GetUser(id string) (*models.UserDetail, error) {
	user, err := s.repo.GetUser(id)
	if err != nil {
		return nil, err
	}

	detail := &models.UserDetail{User: *user}
	if user.OrganizationID != "" {
		// The reference is checked at write time, but the organization may
		// have been deleted after its last dependent moved away and back in
		// a race; tolerate a missing one.
		if org, err := s.repo.GetOrganization(user.OrganizationID); err == nil {
			detail.Organization = org
		}
	}
	return detail, nil
}

func (s *UserService) ListUsers(filters map[string]string, page, perPage int) (*query.Result[*models.User], error) {
	docs, err := query.Docs(s.repo.ListUsers())
	if err != nil {
		return nil, err
	}

	matched := query.Select(docs, "", filters)
	page, perPage = query.NormalizePage(page, perPage, s.config.DefaultPerPage, s.config.MaxPerPage)
	return query.Paginate(matched, page, perPage), nil
}

func (s *UserService) UpdateUser(id string, upd *models.UserUpdate) (*models.User, error) {
	if err := s.validateUpdateUser(upd); err != nil {
		return nil, err
	}
	return s.repo.UpdateUser(id, upd)
}

func (s *UserService) DeleteUser(id string) error {
	return s.repo.DeleteUser(id)
}
