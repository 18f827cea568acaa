package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/danielmtz/paleta/internal/models"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// TestCreateSelection_RoundTrip ensures a saved selection comes back with an
// assigned ID, a timestamp, and every field intact.
func TestCreateSelection_RoundTrip(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateSelection(ctx, &models.Selection{
		BrandHex:  "#123456",
		AccentHex: "#ec4899",
		TokenName: "pink-500",
		Mode:      models.SelectionModeAuto,
	})
	if err != nil {
		t.Fatalf("CreateSelection: %v", err)
	}

	if created.ID == 0 {
		t.Error("CreateSelection returned zero ID")
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreateSelection returned zero CreatedAt")
	}
	if created.BrandHex != "#123456" || created.AccentHex != "#ec4899" ||
		created.TokenName != "pink-500" || created.Mode != models.SelectionModeAuto {
		t.Errorf("CreateSelection round-trip mismatch: %+v", created)
	}
}

// TestGetLatestSelection ensures the newest selection for a brand wins and
// an unknown brand yields nil without an error.
func TestGetLatestSelection(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	if _, err := repo.CreateSelection(ctx, &models.Selection{
		BrandHex: "#111111", AccentHex: "#aaaaaa", Mode: models.SelectionModeManual,
	}); err != nil {
		t.Fatalf("CreateSelection: %v", err)
	}
	if _, err := repo.CreateSelection(ctx, &models.Selection{
		BrandHex: "#111111", AccentHex: "#bbbbbb", Mode: models.SelectionModeManual,
	}); err != nil {
		t.Fatalf("CreateSelection: %v", err)
	}

	latest, err := repo.GetLatestSelection(ctx, "#111111")
	if err != nil {
		t.Fatalf("GetLatestSelection: %v", err)
	}
	if latest == nil || latest.AccentHex != "#bbbbbb" {
		t.Errorf("GetLatestSelection = %+v, want accent #bbbbbb", latest)
	}

	none, err := repo.GetLatestSelection(ctx, "#222222")
	if err != nil {
		t.Fatalf("GetLatestSelection for unknown brand: %v", err)
	}
	if none != nil {
		t.Errorf("GetLatestSelection for unknown brand = %+v, want nil", none)
	}
}

// TestGetSelectionsByBrand_ScopedToBrand ensures selections for other brand
// colors never leak into the result.
func TestGetSelectionsByBrand_ScopedToBrand(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	for _, s := range []*models.Selection{
		{BrandHex: "#111111", AccentHex: "#aaaaaa", Mode: models.SelectionModeManual},
		{BrandHex: "#222222", AccentHex: "#bbbbbb", Mode: models.SelectionModeAuto},
		{BrandHex: "#111111", AccentHex: "#cccccc", Mode: models.SelectionModeAuto},
	} {
		if _, err := repo.CreateSelection(ctx, s); err != nil {
			t.Fatalf("CreateSelection: %v", err)
		}
	}

	got, err := repo.GetSelectionsByBrand(ctx, "#111111")
	if err != nil {
		t.Fatalf("GetSelectionsByBrand: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetSelectionsByBrand returned %d selections, want 2", len(got))
	}
	for _, s := range got {
		if s.BrandHex != "#111111" {
			t.Errorf("selection for wrong brand leaked: %+v", s)
		}
	}
}

// TestDeleteSelection ensures removal by ID.
func TestDeleteSelection(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateSelection(ctx, &models.Selection{
		BrandHex: "#111111", AccentHex: "#aaaaaa", Mode: models.SelectionModeManual,
	})
	if err != nil {
		t.Fatalf("CreateSelection: %v", err)
	}

	if err := repo.DeleteSelection(ctx, created.ID); err != nil {
		t.Fatalf("DeleteSelection: %v", err)
	}

	remaining, err := repo.GetSelectionsByBrand(ctx, "#111111")
	if err != nil {
		t.Fatalf("GetSelectionsByBrand: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("selection still present after delete: %+v", remaining)
	}
}

// TestMigrations_RejectsUnknownMode ensures the schema CHECK constraint
// blocks modes outside auto/manual.
// Edge case: a future caller invents a third mode without a migration.
func TestMigrations_RejectsUnknownMode(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.CreateSelection(ctx, &models.Selection{
		BrandHex: "#111111", AccentHex: "#aaaaaa", Mode: "telepathic",
	})
	if err == nil {
		t.Fatal("CreateSelection with unknown mode succeeded, want CHECK failure")
	}
}
