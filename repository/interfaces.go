package repository

import "mockapi-backend/models"

// OrganizationRepositoryInterface defines the contract for organization
// store operations
type OrganizationRepositoryInterface interface {
	CreateOrganization(org *models.Organization) (*models.Organization, error)
	GetOrganization(id string) (*models.Organization, error)
	ListOrganizations() []*models.Organization
	UpdateOrganization(id string, upd *models.OrganizationUpdate) (*models.Organization, error)
	DeleteOrganization(id string) error
	UsersByOrganization(orgID string) []*models.User
}

// UserRepositoryInterface defines the contract for user store operations
type UserRepositoryInterface interface {
	CreateUser(user *models.User) (*models.User, error)
	GetUser(id string) (*models.User, error)
	ListUsers() []*models.User
	UpdateUser(id string, upd *models.UserUpdate) (*models.User, error)
	DeleteUser(id string) error
	GetOrganization(id string) (*models.Organization, error)
}

// ProfileRepositoryInterface defines the contract for profile store operations
type ProfileRepositoryInterface interface {
	CreateProfile(profile *models.Profile) (*models.Profile, error)
	GetProfile(id string) (*models.Profile, error)
	ListProfiles() []*models.Profile
	UpdateProfile(id string, upd *models.ProfileUpdate) (*models.Profile, error)
	DeleteProfile(id string) error
}

// SearchRepositoryInterface is the read surface the search and stats
// services need across all three kinds.
type SearchRepositoryInterface interface {
	ListOrganizations() []*models.Organization
	ListUsers() []*models.User
	ListProfiles() []*models.Profile
}

var (
	_ OrganizationRepositoryInterface = (*Store)(nil)
	_ UserRepositoryInterface         = (*Store)(nil)
	_ ProfileRepositoryInterface      = (*Store)(nil)
	_ SearchRepositoryInterface       = (*Store)(nil)
)
