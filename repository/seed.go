package repository

import (
	"fmt"
	"time"

	"mockapi-backend/models"
)

// Seed populates the store with the sample dataset used for integration
// testing: 10 organizations, 10 users per organization, and one profile per
// user carrying deeply nested settings and preferences. Intended for an
// empty store at startup.
func (s *Store) Seed() {
	s.mu.Lock()
	now := time.Now().UTC()

	for i := 1; i <= 10; i++ {
		orgID := fmt.Sprintf("ORG%03d", i)
		s.organizations[orgID] = &models.Organization{
			ID:        orgID,
			Name:      fmt.Sprintf("Test Organization %d", i),
			Type:      "test",
			Metadata:  sampleMetadata(),
			CreatedAt: now,
			UpdatedAt: now,
		}
		noteID(orgID, "ORG", &s.orgSeq)

		for j := 1; j <= 10; j++ {
			seq := (i-1)*10 + j
			userID := fmt.Sprintf("USER%03d", seq)
			profileID := fmt.Sprintf("PROF%03d", seq)

			s.profiles[profileID] = &models.Profile{
				ID:          profileID,
				Name:        fmt.Sprintf("Test Profile %d-%d", i, j),
				Settings:    nestedObject(10),
				Preferences: samplePreferences(j),
				Metadata:    sampleMetadata(),
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			noteID(profileID, "PROF", &s.profileSeq)

			s.users[userID] = &models.User{
				ID:             userID,
				Name:           fmt.Sprintf("Test User %d-%d", i, j),
				Email:          fmt.Sprintf("test%d_%d@example.com", i, j),
				OrganizationID: orgID,
				ProfileID:      profileID,
				Metadata:       sampleMetadata(),
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			noteID(userID, "USER", &s.userSeq)
		}
	}
	s.mu.Unlock()

	s.logger.Infof("seeded sample data: %d organizations, %d users, %d profiles",
		len(s.organizations), len(s.users), len(s.profiles))
}

func samplePreferences(n int) map[string]interface{} {
	theme := "light"
	if n%2 == 0 {
		theme = "dark"
	}
	return map[string]interface{}{
		"theme":    theme,
		"language": "en",
		"notifications": map[string]interface{}{
			"email": true,
			"push":  n%2 == 0,
		},
	}
}

func sampleMetadata() map[string]interface{} {
	return map[string]interface{}{
		"created_at": "2024-01-01T00:00:00Z",
		"updated_at": "2024-01-01T00:00:00Z",
		"version":    "1.0.0",
	}
}

// nestedObject builds an object nested to the given depth, exercising the
// query engine's recursive matching in tests and demos.
func nestedObject(depth int) map[string]interface{} {
	if depth == 1 {
		return map[string]interface{}{
			"data":     fmt.Sprintf("Level %d data", depth),
			"metadata": sampleMetadata(),
		}
	}
	return map[string]interface{}{
		fmt.Sprintf("level%d", depth): nestedObject(depth - 1),
		"metadata":                    sampleMetadata(),
	}
}
