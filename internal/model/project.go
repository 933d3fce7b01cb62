package model

import "time"

// Project defaults applied on create when the caller leaves a field empty.
const (
	DefaultLayoutType  = "grid"
	DefaultAccentColor = "#000000"
)

// Project is a portfolio entry shown in the work section.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Year        *string   `json:"year,omitempty"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
	LayoutType  string    `json:"layoutType"` // "grid" | "featured" | "list"
	AccentColor string    `json:"accentColor"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectPatch holds the fields of a PUT body; nil fields are left unchanged.
type ProjectPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	Category    *string   `json:"category"`
	Year        *string   `json:"year"`
	Tags        *[]string `json:"tags"`
	Featured    *bool     `json:"featured"`
	LayoutType  *string   `json:"layoutType"`
	AccentColor *string   `json:"accentColor"`
}

// Apply copies the non-nil fields of the patch onto p.
func (pp ProjectPatch) Apply(p *Project) {
	if pp.Title != nil {
		p.Title = *pp.Title
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.ImageURL != nil {
		p.ImageURL = *pp.ImageURL
	}
	if pp.Category != nil {
		p.Category = *pp.Category
	}
	if pp.Year != nil {
		y := *pp.Year
		p.Year = &y
	}
	if pp.Tags != nil {
		p.Tags = append([]string(nil), (*pp.Tags)...)
	}
	if pp.Featured != nil {
		p.Featured = *pp.Featured
	}
	if pp.LayoutType != nil {
		p.LayoutType = *pp.LayoutType
	}
	if pp.AccentColor != nil {
		p.AccentColor = *pp.AccentColor
	}
}

// ApplyDefaults fills the optional fields the create endpoint may omit.
func (p *Project) ApplyDefaults() {
	if p.LayoutType == "" {
		p.LayoutType = DefaultLayoutType
	}
	if p.AccentColor == "" {
		p.AccentColor = DefaultAccentColor
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}
