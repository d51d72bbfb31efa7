package models

import (
	"regexp"
	"time"
)

// Kind identifies one of the three entity collections.
type Kind string

const (
	KindOrganization Kind = "organization"
	KindUser         Kind = "user"
	KindProfile      Kind = "profile"
)

// ID format patterns. Client-supplied ids must match the pattern of their
// kind; generated ids always do.
var (
	OrganizationIDPattern = regexp.MustCompile(`^ORG\d{3,}$`)
	UserIDPattern         = regexp.MustCompile(`^USER\d{3,}$`)
	ProfileIDPattern      = regexp.MustCompile(`^PROF\d{3,}$`)
)

// OrganizationType values accepted for Organization.Type.
var OrganizationTypes = []string{"test", "enterprise", "startup", "nonprofit", "government"}

// Organization represents an organization in the system
type Organization struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Type      string                 `json:"type"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// OrganizationInput is the create payload for organizations. ID is optional;
// when omitted the store assigns the next free one.
type OrganizationInput struct {
	ID       string                 `json:"id,omitempty"`
	Name     string                 `json:"name"`
	Type     string                 `json:"type"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// OrganizationUpdate is a partial update; nil fields are left untouched.
type OrganizationUpdate struct {
	Name     *string                `json:"name,omitempty"`
	Type     *string                `json:"type,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// OrganizationDetail is the GET-by-id shape: the organization plus its
// dependent users.
type OrganizationDetail struct {
	Organization
	Users      []*User `json:"users"`
	TotalUsers int     `json:"total_users"`
}

// User represents a user in the system. OrganizationID is a weak reference:
// it must resolve at write time but carries no ownership.
type User struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	OrganizationID string                 `json:"organization_id,omitempty"`
	ProfileID      string                 `json:"profile_id,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// UserInput is the create payload for users.
type UserInput struct {
	ID             string                 `json:"id,omitempty"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	OrganizationID string                 `json:"organization_id,omitempty"`
	ProfileID      string                 `json:"profile_id,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// UserUpdate is a partial update; nil fields are left untouched. Setting
// OrganizationID to the empty string clears the reference.
type UserUpdate struct {
	Name           *string                `json:"name,omitempty"`
	Email          *string                `json:"email,omitempty"`
	OrganizationID *string                `json:"organization_id,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// UserDetail is the GET-by-id shape: the user plus the referenced
// organization when one is set.
type UserDetail struct {
	User
	Organization *Organization `json:"organization,omitempty"`
}

// Profile represents a profile with free-form nested settings and preferences.
type Profile struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Settings    map[string]interface{} `json:"settings,omitempty"`
	Preferences map[string]interface{} `json:"preferences,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// ProfileInput is the create payload for profiles.
type ProfileInput struct {
	ID          string                 `json:"id,omitempty"`
	Name        string                 `json:"name"`
	Settings    map[string]interface{} `json:"settings,omitempty"`
	Preferences map[string]interface{} `json:"preferences,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// ProfileUpdate is a partial update; nil fields are left untouched.
type ProfileUpdate struct {
	Name        *string                `json:"name,omitempty"`
	Settings    map[string]interface{} `json:"settings,omitempty"`
	Preferences map[string]interface{} `json:"preferences,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}
