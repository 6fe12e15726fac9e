package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/assana/cms/models"
	"github.com/assana/cms/pkg"
)

// sqliteAssetRepo, AssetRepository interface'inin SQLite implementasyonu.
type sqliteAssetRepo struct {
	db *sql.DB
}

// NewSQLiteAssetRepo, constructor — interface döner (Dependency Inversion).
func NewSQLiteAssetRepo(db *sql.DB) AssetRepository {
	return &sqliteAssetRepo{db: db}
}

func (r *sqliteAssetRepo) Create(ctx context.Context, asset *models.Asset) error {
	query := `
		INSERT INTO assets (id, filename, disk_name, file_url, file_size, mime_type)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		asset.ID,
		asset.Filename,
		asset.DiskName,
		asset.FileURL,
		asset.FileSize,
		asset.MimeType,
	).Scan(&asset.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return nil
}

func (r *sqliteAssetRepo) GetByID(ctx context.Context, id string) (*models.Asset, error) {
	query := `
		SELECT id, filename, disk_name, file_url, file_size, mime_type, created_at
		FROM assets WHERE id = ?`

	a := &models.Asset{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Filename, &a.DiskName, &a.FileURL, &a.FileSize, &a.MimeType, &a.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset by id: %w", err)
	}

	return a, nil
}

func (r *sqliteAssetRepo) ListOlderThan(ctx context.Context, cutoff time.Time) ([]models.Asset, error) {
	query := `
		SELECT id, filename, disk_name, file_url, file_size, mime_type, created_at
		FROM assets WHERE created_at < ? ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, cutoff.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(
			&a.ID, &a.Filename, &a.DiskName, &a.FileURL, &a.FileSize, &a.MimeType, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset rows: %w", err)
	}

	return assets, nil
}

func (r *sqliteAssetRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}
