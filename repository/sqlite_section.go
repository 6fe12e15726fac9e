package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/assana/cms/database"
	"github.com/assana/cms/models"
	"github.com/assana/cms/pkg"
)

// sqliteSectionRepo, SectionRepository interface'inin SQLite implementasyonu.
// Döküman JSON text olarak saklanır — SQLite tarafında şema yoktur,
// marshal/unmarshal bu katmanda yapılır.
type sqliteSectionRepo struct {
	db *sql.DB
}

// NewSQLiteSectionRepo, constructor — interface döner (Dependency Inversion).
func NewSQLiteSectionRepo(db *sql.DB) SectionRepository {
	return &sqliteSectionRepo{db: db}
}

func (r *sqliteSectionRepo) Get(ctx context.Context, pageKey, sectionKey string) (*models.Section, error) {
	query := `
		SELECT page_key, section_key, document, updated_at
		FROM sections WHERE page_key = ? AND section_key = ?`

	var raw string
	s := &models.Section{}
	err := r.db.QueryRowContext(ctx, query, pageKey, sectionKey).Scan(
		&s.PageKey, &s.SectionKey, &raw, &s.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get section: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), &s.Document); err != nil {
		return nil, fmt.Errorf("failed to decode section document: %w", err)
	}

	return s, nil
}

// Replace, dökümanı bütün olarak upsert eder ve kaydedilen canonical halini
// döner. Yazma ve geri okuma tek transaction içindedir — araya giren başka
// bir yazma, dönen "canonical" dökümanın yazılandan farklı olmasına yol açamaz.
func (r *sqliteSectionRepo) Replace(ctx context.Context, pageKey, sectionKey string, doc models.Document) (*models.Section, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: document is not serializable: %v", pkg.ErrBadRequest, err)
	}

	var stored string
	s := &models.Section{}

	err = database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		upsert := `
			INSERT INTO sections (page_key, section_key, document, updated_at)
			VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(page_key, section_key)
			DO UPDATE SET document = excluded.document, updated_at = CURRENT_TIMESTAMP`

		if _, err := tx.ExecContext(ctx, upsert, pageKey, sectionKey, string(raw)); err != nil {
			return fmt.Errorf("failed to upsert section: %w", err)
		}

		readback := `
			SELECT page_key, section_key, document, updated_at
			FROM sections WHERE page_key = ? AND section_key = ?`

		if err := tx.QueryRowContext(ctx, readback, pageKey, sectionKey).Scan(
			&s.PageKey, &s.SectionKey, &stored, &s.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to read back section: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(stored), &s.Document); err != nil {
		return nil, fmt.Errorf("failed to decode stored document: %w", err)
	}

	return s, nil
}

func (r *sqliteSectionRepo) ListByPage(ctx context.Context, pageKey string) ([]models.Section, error) {
	query := `
		SELECT page_key, section_key, document, updated_at
		FROM sections WHERE page_key = ? ORDER BY section_key ASC`

	rows, err := r.db.QueryContext(ctx, query, pageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	defer rows.Close()

	var sections []models.Section
	for rows.Next() {
		var s models.Section
		var raw string
		if err := rows.Scan(&s.PageKey, &s.SectionKey, &raw, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan section row: %w", err)
		}
		if err := json.Unmarshal([]byte(raw), &s.Document); err != nil {
			return nil, fmt.Errorf("failed to decode section document: %w", err)
		}
		sections = append(sections, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating section rows: %w", err)
	}

	return sections, nil
}

// CountReferencing, URL'i döküman gövdesinde geçiren section sayısını döner.
// LIKE ile substring araması yeterli — URL'ler benzersiz uuid prefix taşır,
// yanlış pozitif pratikte mümkün değildir.
func (r *sqliteSectionRepo) CountReferencing(ctx context.Context, url string) (int, error) {
	query := `SELECT COUNT(*) FROM sections WHERE document LIKE '%' || ? || '%'`

	var count int
	if err := r.db.QueryRowContext(ctx, query, url).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count references: %w", err)
	}

	return count, nil
}
