package database

import (
	"context"

	"github.com/danielmtz/paleta/internal/models"
)

// SelectionReader defines read operations for saved accent selections.
type SelectionReader interface {
	GetSelectionsByBrand(ctx context.Context, brandHex string) ([]*models.Selection, error)
	GetLatestSelection(ctx context.Context, brandHex string) (*models.Selection, error)
}

// SelectionWriter defines write operations for saved accent selections.
type SelectionWriter interface {
	CreateSelection(ctx context.Context, selection *models.Selection) (*models.Selection, error)
	DeleteSelection(ctx context.Context, id int) error
}

// SelectionRepository combines all selection operations.
type SelectionRepository interface {
	SelectionReader
	SelectionWriter
}
