package repository

import (
	"time"

	"mockapi-backend/models"
)

// CreateUser inserts a new user. Duplicate id, duplicate email, and the
// organization reference check all run under the same write lock as the
// insert.
func (s *Store) CreateUser(user *models.User) (*models.User, error) {
	s.mu.Lock()
	if user.ID == "" {
		user.ID = nextID("USER", &s.userSeq)
	} else {
		if _, exists := s.users[user.ID]; exists {
			s.mu.Unlock()
			return nil, models.NewDuplicateError("User with ID '%s' already exists", user.ID)
		}
		noteID(user.ID, "USER", &s.userSeq)
	}

	if owner := s.emailOwner(user.Email, user.ID); owner != "" {
		s.mu.Unlock()
		return nil, models.NewDuplicateError("Email '%s' is already in use by another user", user.Email)
	}

	if user.OrganizationID != "" {
		if _, ok := s.organizations[user.OrganizationID]; !ok {
			s.mu.Unlock()
			return nil, models.NewReferenceError(
				"Organization with ID '%s' does not exist", user.OrganizationID)
		}
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	s.users[user.ID] = &stored
	s.mu.Unlock()

	s.logger.Debugf("created user %s", user.ID)
	s.invalidate(models.KindUser)
	return user, nil
}

// emailOwner returns the id of the user holding email, excluding excludeID.
// Comparison is case-sensitive exact match. Caller must hold s.mu.
func (s *Store) emailOwner(email, excludeID string) string {
	for id, u := range s.users {
		if u.Email == email && id != excludeID {
			return id
		}
	}
	return ""
}

// GetUser returns the user with the given id.
func (s *Store) GetUser(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, models.NewNotFoundError(models.KindUser, id)
	}
	c := *user
	return &c, nil
}

// ListUsers returns all users ordered by id.
func (s *Store) ListUsers() []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.User, 0, len(s.users))
	for _, id := range sortedIDs(s.users) {
		c := *s.users[id]
		out = append(out, &c)
	}
	return out
}

// UpdateUser merges the provided fields into the stored user. Email
// uniqueness and the organization reference are re-checked under the lock
// when those fields change.
func (s *Store) UpdateUser(id string, upd *models.UserUpdate) (*models.User, error) {
	s.mu.Lock()
	user, ok := s.users[id]
	if !ok {
		s.mu.Unlock()
		return nil, models.NewNotFoundError(models.KindUser, id)
	}

	if upd.Email != nil && *upd.Email != user.Email {
		if owner := s.emailOwner(*upd.Email, id); owner != "" {
			s.mu.Unlock()
			return nil, models.NewDuplicateError("Email '%s' is already in use by another user", *upd.Email)
		}
	}
	if upd.OrganizationID != nil && *upd.OrganizationID != "" {
		if _, ok := s.organizations[*upd.OrganizationID]; !ok {
			s.mu.Unlock()
			return nil, models.NewReferenceError(
				"Organization with ID '%s' does not exist", *upd.OrganizationID)
		}
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.OrganizationID != nil {
		// Empty string clears the reference.
		user.OrganizationID = *upd.OrganizationID
	}
	if upd.Metadata != nil {
		user.Metadata = mergeMetadata(user.Metadata, upd.Metadata)
	}
	user.UpdatedAt = time.Now().UTC()

	c := *user
	s.mu.Unlock()

	s.invalidate(models.KindUser)
	return &c, nil
}

// DeleteUser removes a user.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	if _, ok := s.users[id]; !ok {
		s.mu.Unlock()
		return models.NewNotFoundError(models.KindUser, id)
	}
	delete(s.users, id)
	s.mu.Unlock()

	s.logger.Debugf("deleted user %s", id)
	s.invalidate(models.KindUser)
	return nil
}
