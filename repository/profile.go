package repository

import (
	"time"

	"mockapi-backend/models"
)

// CreateProfile inserts a new profile under the store write lock.
func (s *Store) CreateProfile(profile *models.Profile) (*models.Profile, error) {
	s.mu.Lock()
	if profile.ID == "" {
		profile.ID = nextID("PROF", &s.profileSeq)
	} else {
		if _, exists := s.profiles[profile.ID]; exists {
			s.mu.Unlock()
			return nil, models.NewDuplicateError("Profile with ID '%s' already exists", profile.ID)
		}
		noteID(profile.ID, "PROF", &s.profileSeq)
	}

	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	stored := *profile
	s.profiles[profile.ID] = &stored
	s.mu.Unlock()

	s.logger.Debugf("created profile %s", profile.ID)
	s.invalidate(models.KindProfile)
	return profile, nil
}

// GetProfile returns the profile with the given id.
func (s *Store) GetProfile(id string) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[id]
	if !ok {
		return nil, models.NewNotFoundError(models.KindProfile, id)
	}
	c := *profile
	return &c, nil
}

// ListProfiles returns all profiles ordered by id.
func (s *Store) ListProfiles() []*models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Profile, 0, len(s.profiles))
	for _, id := range sortedIDs(s.profiles) {
		c := *s.profiles[id]
		out = append(out, &c)
	}
	return out
}

// UpdateProfile merges the provided fields into the stored profile.
func (s *Store) UpdateProfile(id string, upd *models.ProfileUpdate) (*models.Profile, error) {
	s.mu.Lock()
	profile, ok := s.profiles[id]
	if !ok {
		s.mu.Unlock()
		return nil, models.NewNotFoundError(models.KindProfile, id)
	}

	if upd.Name != nil {
		profile.Name = *upd.Name
	}
	if upd.Settings != nil {
		profile.Settings = mergeMetadata(profile.Settings, upd.Settings)
	}
	if upd.Preferences != nil {
		profile.Preferences = mergeMetadata(profile.Preferences, upd.Preferences)
	}
	if upd.Metadata != nil {
		profile.Metadata = mergeMetadata(profile.Metadata, upd.Metadata)
	}
	profile.UpdatedAt = time.Now().UTC()

	c := *profile
	s.mu.Unlock()

	s.invalidate(models.KindProfile)
	return &c, nil
}

// DeleteProfile removes a profile.
func (s *Store) DeleteProfile(id string) error {
	s.mu.Lock()
	if _, ok := s.profiles[id]; !ok {
		s.mu.Unlock()
		return models.NewNotFoundError(models.KindProfile, id)
	}
	delete(s.profiles, id)
	s.mu.Unlock()

	s.logger.Debugf("deleted profile %s", id)
	s.invalidate(models.KindProfile)
	return nil
}
