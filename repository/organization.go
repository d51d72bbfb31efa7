package repository

import (
	"time"

	"mockapi-backend/models"
)

// CreateOrganization inserts a new organization. The duplicate-id check and
// the insert run under one write lock.
func (s *Store) CreateOrganization(org *models.Organization) (*models.Organization, error) {
	s.mu.Lock()
	if org.ID == "" {
		org.ID = nextID("ORG", &s.orgSeq)
	} else {
		if _, exists := s.organizations[org.ID]; exists {
			s.mu.Unlock()
			return nil, models.NewDuplicateError("Organization with ID '%s' already exists", org.ID)
		}
		noteID(org.ID, "ORG", &s.orgSeq)
	}

	now := time.Now().UTC()
	org.CreatedAt = now
	org.UpdatedAt = now

	stored := *org
	s.organizations[org.ID] = &stored
	s.mu.Unlock()

	s.logger.Debugf("created organization %s", org.ID)
	s.invalidate(models.KindOrganization)
	return org, nil
}

// GetOrganization returns the organization with the given id.
func (s *Store) GetOrganization(id string) (*models.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	org, ok := s.organizations[id]
	if !ok {
		return nil, models.NewNotFoundError(models.KindOrganization, id)
	}
	c := *org
	return &c, nil
}

// ListOrganizations returns all organizations ordered by id.
func (s *Store) ListOrganizations() []*models.Organization {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Organization, 0, len(s.organizations))
	for _, id := range sortedIDs(s.organizations) {
		c := *s.organizations[id]
		out = append(out, &c)
	}
	return out
}

// UpdateOrganization merges the provided fields into the stored organization.
// Omitted fields are preserved, so applying the same update twice is
// idempotent apart from the updated_at timestamp.
func (s *Store) UpdateOrganization(id string, upd *models.OrganizationUpdate) (*models.Organization, error) {
	s.mu.Lock()
	org, ok := s.organizations[id]
	if !ok {
		s.mu.Unlock()
		return nil, models.NewNotFoundError(models.KindOrganization, id)
	}

	if upd.Name != nil {
		org.Name = *upd.Name
	}
	if upd.Type != nil {
		org.Type = *upd.Type
	}
	if upd.Metadata != nil {
		org.Metadata = mergeMetadata(org.Metadata, upd.Metadata)
	}
	org.UpdatedAt = time.Now().UTC()

	c := *org
	s.mu.Unlock()

	s.invalidate(models.KindOrganization)
	return &c, nil
}

// DeleteOrganization removes an organization. Deletion is rejected while any
// user still references the organization; dependents must be deleted or
// reassigned first.
func (s *Store) DeleteOrganization(id string) error {
	s.mu.Lock()
	if _, ok := s.organizations[id]; !ok {
		s.mu.Unlock()
		return models.NewNotFoundError(models.KindOrganization, id)
	}

	dependents := 0
	for _, u := range s.users {
		if u.OrganizationID == id {
			dependents++
		}
	}
	if dependents > 0 {
		s.mu.Unlock()
		return models.NewReferenceError(
			"Organization '%s' still has %d user(s) referencing it", id, dependents)
	}

	delete(s.organizations, id)
	s.mu.Unlock()

	s.logger.Debugf("deleted organization %s", id)
	s.invalidate(models.KindOrganization)
	return nil
}

// UsersByOrganization returns all users referencing the organization,
// ordered by id.
func (s *Store) UsersByOrganization(orgID string) []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.User
	for _, id := range sortedIDs(s.users) {
		if s.users[id].OrganizationID == orgID {
			c := *s.users[id]
			out = append(out, &c)
		}
	}
	return out
}

// mergeMetadata overlays incoming keys on the existing metadata map without
// mutating either input.
func mergeMetadata(existing, incoming map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(existing)+len(incoming))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range incoming {
		merged[k] = v
	}
	return merged
}
