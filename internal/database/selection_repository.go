package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/danielmtz/paleta/internal/models"
)

// Repository is the SQLite-backed implementation of SelectionRepository.
type Repository struct {
	db *sql.DB
}

// NewRepository wraps an initialized database handle.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateSelection inserts a new saved selection and returns it with its
// assigned ID and timestamp.
func (r *Repository) CreateSelection(ctx context.Context, selection *models.Selection) (*models.Selection, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO selections (brand_hex, accent_hex, token_name, mode) VALUES (?, ?, ?, ?)`,
		selection.BrandHex, selection.AccentHex, selection.TokenName, selection.Mode,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.getSelectionByID(ctx, int(id))
}

// GetSelectionsByBrand retrieves every saved selection for a brand color,
// newest first.
func (r *Repository) GetSelectionsByBrand(ctx context.Context, brandHex string) ([]*models.Selection, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, brand_hex, accent_hex, token_name, mode, created_at
		 FROM selections WHERE brand_hex = ? ORDER BY created_at DESC, id DESC`,
		brandHex,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var selections []*models.Selection
	for rows.Next() {
		selection := &models.Selection{}
		if err := rows.Scan(
			&selection.ID, &selection.BrandHex, &selection.AccentHex,
			&selection.TokenName, &selection.Mode, &selection.CreatedAt,
		); err != nil {
			return nil, err
		}
		selections = append(selections, selection)
	}

	return selections, rows.Err()
}

// GetLatestSelection retrieves the most recent selection for a brand color.
// Returns nil (no error) when none has been saved yet.
func (r *Repository) GetLatestSelection(ctx context.Context, brandHex string) (*models.Selection, error) {
	selection := &models.Selection{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, brand_hex, accent_hex, token_name, mode, created_at
		 FROM selections WHERE brand_hex = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		brandHex,
	).Scan(
		&selection.ID, &selection.BrandHex, &selection.AccentHex,
		&selection.TokenName, &selection.Mode, &selection.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return selection, nil
}

// DeleteSelection removes a saved selection by ID.
func (r *Repository) DeleteSelection(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM selections WHERE id = ?`, id)
	return err
}

func (r *Repository) getSelectionByID(ctx context.Context, id int) (*models.Selection, error) {
	selection := &models.Selection{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, brand_hex, accent_hex, token_name, mode, created_at FROM selections WHERE id = ?`,
		id,
	).Scan(
		&selection.ID, &selection.BrandHex, &selection.AccentHex,
		&selection.TokenName, &selection.Mode, &selection.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return selection, nil
}
