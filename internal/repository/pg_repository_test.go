package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/kuchnahi/backend/internal/model"
)

// setupTestDB starts PostgreSQL in a container, applies migrations and
// returns a pool. Skipped unless TEST_INTEGRATION is set.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("skipping integration test: TEST_INTEGRATION not set")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		postgres.WithDatabase("kuchnahi_test"),
		postgres.WithUsername("kuchnahi"),
		postgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}
	if err := Migrate(dsn); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	pool, err := NewPool(ctx, dsn)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestPgRepositories(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	t.Run("inquiry lifecycle", func(t *testing.T) {
		repo := NewPgInquiryRepository(pool)

		empty, err := repo.List(ctx, model.InquiryFilter{})
		if err != nil {
			t.Fatalf("List empty: %v", err)
		}
		if len(empty) != 0 {
			t.Fatalf("expected empty list, got %d", len(empty))
		}

		first := &model.Inquiry{Email: "a@b.com", Message: "first inquiry body", Status: model.InquiryUnread}
		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("Create: %v", err)
		}
		second := &model.Inquiry{Email: "a@b.com", Message: "first inquiry body", Status: model.InquiryUnread}
		if err := repo.Create(ctx, second); err != nil {
			t.Fatalf("Create duplicate: %v", err)
		}
		if first.ID == "" || first.ID == second.ID {
			t.Fatalf("expected two distinct ids, got %q and %q", first.ID, second.ID)
		}

		list, err := repo.List(ctx, model.InquiryFilter{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(list) != 2 || list[0].ID != second.ID {
			t.Fatalf("expected newest first, got %+v", list)
		}

		updated, err := repo.UpdateStatus(ctx, first.ID, model.InquiryRead)
		if err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
		if updated.Status != model.InquiryRead || updated.Email != first.Email || !updated.CreatedAt.Equal(first.CreatedAt) {
			t.Errorf("unexpected update result: %+v", updated)
		}

		read, _ := repo.List(ctx, model.InquiryFilter{Status: model.InquiryRead})
		if len(read) != 1 || read[0].ID != first.ID {
			t.Errorf("status filter: %+v", read)
		}

		if _, err := repo.UpdateStatus(ctx, "00000000-0000-0000-0000-000000000000", model.InquiryRead); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("project crud", func(t *testing.T) {
		repo := NewPgProjectRepository(pool)
		year := "2023"
		p := &model.Project{
			Title: "Chromor", Description: "Color and tech", ImageURL: "/images/chromor.jpg",
			Category: "Tech", Year: &year, Tags: []string{"Design", "Development"},
		}
		p.ApplyDefaults()
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}

		title := "Chromor Reloaded"
		got, err := repo.Update(ctx, p.ID, model.ProjectPatch{Title: &title})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.Title != title || got.Category != "Tech" || len(got.Tags) != 2 || got.LayoutType != "grid" {
			t.Errorf("unexpected patched project: %+v", got)
		}

		if err := repo.Delete(ctx, p.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := repo.GetByID(ctx, p.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
		if err := repo.Delete(ctx, p.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound on second delete, got %v", err)
		}
	})

	t.Run("service ordering", func(t *testing.T) {
		repo := NewPgServiceRepository(pool)
		for i, name := range []string{"Marketing", "Branding"} {
			s := &model.Service{Name: name, Tagline: "t", IconURL: "/i.png", Order: 2 - i}
			if err := repo.Create(ctx, s); err != nil {
				t.Fatalf("Create: %v", err)
			}
		}
		list, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(list) != 2 || list[0].Name != "Branding" {
			t.Errorf("expected order ascending, got %+v", list)
		}

		desc := "Brand strategy"
		order := 5
		got, err := repo.Update(ctx, list[0].ID, model.ServicePatch{Description: &desc, Order: &order})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.Name != "Branding" || got.Order != 5 || got.Description == nil || *got.Description != desc {
			t.Errorf("unexpected patched service: %+v", got)
		}
		if _, err := repo.Update(ctx, "00000000-0000-0000-0000-000000000000", model.ServicePatch{Order: &order}); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if _, err := repo.Update(ctx, "not-a-uuid", model.ServicePatch{Order: &order}); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound for malformed id, got %v", err)
		}
	})

	t.Run("admin upsert", func(t *testing.T) {
		repo := NewPgAdminRepository(pool)
		a := &model.Admin{Email: "Admin@Kuchnahi.com", Name: "Admin", PasswordHash: "h1"}
		if err := repo.Upsert(ctx, a); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
		a2 := &model.Admin{Email: "admin@kuchnahi.com", Name: "Admin User", PasswordHash: "h2"}
		if err := repo.Upsert(ctx, a2); err != nil {
			t.Fatalf("Upsert again: %v", err)
		}
		if a2.ID != a.ID {
			t.Errorf("expected same admin id, got %q and %q", a.ID, a2.ID)
		}
		found, err := repo.FindByEmail(ctx, "ADMIN@kuchnahi.com")
		if err != nil {
			t.Fatalf("FindByEmail: %v", err)
		}
		if found.PasswordHash != "h2" || found.Name != "Admin User" {
			t.Errorf("unexpected admin: %+v", found)
		}
	})

	t.Run("clear content", func(t *testing.T) {
		if err := ClearContent(ctx, pool); err != nil {
			t.Fatalf("ClearContent: %v", err)
		}
		list, _ := NewPgInquiryRepository(pool).List(ctx, model.InquiryFilter{})
		if len(list) != 0 {
			t.Errorf("expected inquiries cleared, got %d", len(list))
		}
	})
}
