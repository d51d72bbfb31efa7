package services

import (
	"mockapi-backend/models"
	"mockapi-backend/repository"
	"mockapi-backend/utils/logger"
)

// StatsService aggregates live counts across the three collections.
type StatsService struct {
	repo   repository.SearchRepositoryInterface
	logger logger.Logger
}

func NewStatsService(repo repository.SearchRepositoryInterface, log logger.Logger) *StatsService {
	return &StatsService{
		repo:   repo,
		logger: log,
	}
}

func (s *StatsService) Collect() *models.Stats {
	orgs := s.repo.ListOrganizations()
	users := s.repo.ListUsers()
	profiles := s.repo.ListProfiles()

	byType := make(map[string]int)
	for _, org := range orgs {
		byType[org.Type]++
	}

	byOrganization := make(map[string]int)
	for _, user := range users {
		if user.OrganizationID != "" {
			byOrganization[user.OrganizationID]++
		}
	}

	return &models.Stats{
		Organizations: models.OrganizationStats{
			Total:  len(orgs),
			ByType: byType,
		},
		Users: models.UserStats{
			Total:          len(users),
			ByOrganization: byOrganization,
		},
		Profiles: models.ProfileStats{
			Total: len(profiles),
		},
	}
}
