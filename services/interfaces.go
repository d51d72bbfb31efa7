package services

import (
	"mockapi-backend/models"
	"mockapi-backend/query"
)

// OrganizationServiceInterface defines the contract for organization
// operations exposed to the controllers
type OrganizationServiceInterface interface {
	CreateOrganization(in *models.OrganizationInput) (*models.Organization, error)
	GetOrganization(id string) (*models.OrganizationDetail, error)
	ListOrganizations(filters map[string]string, page, perPage int) (*query.Result[*models.Organization], error)
	UpdateOrganization(id string, upd *models.OrganizationUpdate) (*models.Organization, error)
	DeleteOrganization(id string) error
}

// UserServiceInterface defines the contract for user operations
type UserServiceInterface interface {
	CreateUser(in *models.UserInput) (*models.User, error)
	GetUser(id string) (*models.UserDetail, error)
	ListUsers(filters map[string]string, page, perPage int) (*query.Result[*models.User], error)
	UpdateUser(id string, upd *models.UserUpdate) (*models.User, error)
	DeleteUser(id string) error
}

// ProfileServiceInterface defines the contract for profile operations
type ProfileServiceInterface interface {
	CreateProfile(in *models.ProfileInput) (*models.Profile, error)
	GetProfile(id string) (*models.Profile, error)
	ListProfiles(filters map[string]string, page, perPage int) (*query.Result[*models.Profile], error)
	UpdateProfile(id string, upd *models.ProfileUpdate) (*models.Profile, error)
	DeleteProfile(id string) error
}

// SearchServiceInterface defines the contract for the multi-entity search
type SearchServiceInterface interface {
	Search(params *models.SearchParams) (*query.Result[*models.SearchItem], error)
}

// BatchServiceInterface defines the contract for the batch orchestrator
type BatchServiceInterface interface {
	Run(kind models.Kind, operations []models.BatchOperation) (*models.BatchResponse, error)
}

// StatsServiceInterface defines the contract for the stats aggregation
type StatsServiceInterface interface {
	Collect() *models.Stats
}
