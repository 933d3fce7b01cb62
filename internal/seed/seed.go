// Package seed loads demo catalog content and the initial admin account.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kuchnahi/backend/internal/model"
	"github.com/kuchnahi/backend/internal/repository"
	"github.com/kuchnahi/backend/pkg/auth"
)

//go:embed seed.yaml
var defaultSeed []byte

// Data is the decoded seed file.
type Data struct {
	Projects []Project `yaml:"projects"`
	Services []Service `yaml:"services"`
	Admin    *Admin    `yaml:"admin"`
}

type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	ImageURL    string   `yaml:"imageUrl"`
	Category    string   `yaml:"category"`
	Year        string   `yaml:"year"`
	Tags        []string `yaml:"tags"`
	Featured    bool     `yaml:"featured"`
	LayoutType  string   `yaml:"layoutType"`
	AccentColor string   `yaml:"accentColor"`
}

type Service struct {
	Name        string `yaml:"name"`
	Tagline     string `yaml:"tagline"`
	IconURL     string `yaml:"iconUrl"`
	Description string `yaml:"description"`
	Order       int    `yaml:"order"`
}

// Admin carries a plain-text password; it is hashed before it is stored.
type Admin struct {
	Email    string `yaml:"email"`
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
}

// Default returns the embedded demo data.
func Default() (*Data, error) {
	return Load(bytes.NewReader(defaultSeed))
}

// LoadFile reads seed data from path.
func LoadFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes YAML seed data. Unknown keys are rejected.
func Load(r io.Reader) (*Data, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var d Data
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return &d, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Data) validate() error {
	for i, p := range d.Projects {
		if p.Title == "" || p.Description == "" || p.ImageURL == "" || p.Category == "" {
			return fmt.Errorf("seed project %d: title, description, imageUrl and category are required", i)
		}
	}
	for i, s := range d.Services {
		if s.Name == "" || s.Tagline == "" || s.IconURL == "" {
			return fmt.Errorf("seed service %d: name, tagline and iconUrl are required", i)
		}
	}
	if d.Admin != nil && (d.Admin.Email == "" || d.Admin.Password == "") {
		return errors.New("seed admin: email and password are required")
	}
	return nil
}

// Result counts what a run wrote.
type Result struct {
	Projects int
	Services int
	Admin    bool
}

// Seeder writes Data through the repositories.
type Seeder struct {
	clear    func(ctx context.Context) error
	projects repository.ProjectRepository
	services repository.ServiceRepository
	admins   repository.AdminRepository
}

// New creates a Seeder. clear empties projects, services and inquiries.
func New(clear func(ctx context.Context) error, projects repository.ProjectRepository, services repository.ServiceRepository, admins repository.AdminRepository) *Seeder {
	return &Seeder{clear: clear, projects: projects, services: services, admins: admins}
}

// Run clears existing content, inserts d and upserts the admin.
func (s *Seeder) Run(ctx context.Context, d *Data) (Result, error) {
	var res Result
	if err := s.clear(ctx); err != nil {
		return res, fmt.Errorf("clear content: %w", err)
	}

	for _, sp := range d.Projects {
		p := &model.Project{
			Title:       sp.Title,
			Description: sp.Description,
			ImageURL:    sp.ImageURL,
			Category:    sp.Category,
			Tags:        sp.Tags,
			Featured:    sp.Featured,
			LayoutType:  sp.LayoutType,
			AccentColor: sp.AccentColor,
		}
		if sp.Year != "" {
			y := sp.Year
			p.Year = &y
		}
		p.ApplyDefaults()
		if err := s.projects.Create(ctx, p); err != nil {
			return res, fmt.Errorf("create project %q: %w", sp.Title, err)
		}
		res.Projects++
	}

	for _, ss := range d.Services {
		svc := &model.Service{
			Name:    ss.Name,
			Tagline: ss.Tagline,
			IconURL: ss.IconURL,
			Order:   ss.Order,
		}
		if ss.Description != "" {
			desc := ss.Description
			svc.Description = &desc
		}
		if err := s.services.Create(ctx, svc); err != nil {
			return res, fmt.Errorf("create service %q: %w", ss.Name, err)
		}
		res.Services++
	}

	if d.Admin != nil {
		hash, err := auth.HashPassword(d.Admin.Password)
		if err != nil {
			return res, fmt.Errorf("hash admin password: %w", err)
		}
		admin := &model.Admin{Email: d.Admin.Email, Name: d.Admin.Name, PasswordHash: hash}
		if err := s.admins.Upsert(ctx, admin); err != nil {
			return res, fmt.Errorf("upsert admin: %w", err)
		}
		res.Admin = true
	}

	slog.Info("seed complete", "projects", res.Projects, "services", res.Services, "admin", res.Admin)
	return res, nil
}
