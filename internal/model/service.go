package model

import "time"

// Service is an agency offering listed in the services section.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Tagline     string    `json:"tagline"`
	IconURL     string    `json:"iconUrl"`
	Description *string   `json:"description,omitempty"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ServicePatch holds the fields of a PUT body; nil fields are left unchanged.
type ServicePatch struct {
	Name        *string `json:"name"`
	Tagline     *string `json:"tagline"`
	IconURL     *string `json:"iconUrl"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

// Apply copies the non-nil fields of the patch onto s.
func (sp ServicePatch) Apply(s *Service) {
	if sp.Name != nil {
		s.Name = *sp.Name
	}
	if sp.Tagline != nil {
		s.Tagline = *sp.Tagline
	}
	if sp.IconURL != nil {
		s.IconURL = *sp.IconURL
	}
	if sp.Description != nil {
		d := *sp.Description
		s.Description = &d
	}
	if sp.Order != nil {
		s.Order = *sp.Order
	}
}
