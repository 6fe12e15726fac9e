package repository

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assana/cms/database"
	"github.com/assana/cms/models"
	"github.com/assana/cms/pkg"
)

// newTestDB, geçici bir dosyada migration'ları çalıştırılmış gerçek bir
// SQLite veritabanı açar. modernc.org/sqlite pure-Go olduğundan testler
// cgo olmadan da çalışır.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	migrations, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), migrations)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestSQLiteSectionRepo_GetNotFound(t *testing.T) {
	repo := NewSQLiteSectionRepo(newTestDB(t).Conn)

	_, err := repo.Get(context.Background(), "home", "no-such-section")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestSQLiteSectionRepo_ReplaceUpsertsAndReadsBack(t *testing.T) {
	repo := NewSQLiteSectionRepo(newTestDB(t).Conn)
	ctx := context.Background()

	doc := models.Document{
		"title": "Welcome",
		"items": []any{"a", "b"},
		"meta":  map[string]any{"order": float64(1)},
	}

	section, err := repo.Replace(ctx, "home", "banner", doc)
	require.NoError(t, err)
	assert.Equal(t, "home", section.PageKey)
	assert.Equal(t, "banner", section.SectionKey)
	assert.Equal(t, "Welcome", section.Document.String("title"))
	assert.False(t, section.UpdatedAt.IsZero())

	// Round-trip: canonical okuma yazılanla aynı içeriği verir.
	got, err := repo.Get(ctx, "home", "banner")
	require.NoError(t, err)
	assert.Equal(t, section.Document, got.Document)

	// İkinci Replace insert değil update'tir.
	updated, err := repo.Replace(ctx, "home", "banner", models.Document{"title": "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Document.String("title"))
	_, ok := updated.Document["items"]
	assert.False(t, ok, "replace is whole-document, old fields must not survive")
}

func TestSQLiteSectionRepo_ListByPage(t *testing.T) {
	repo := NewSQLiteSectionRepo(newTestDB(t).Conn)
	ctx := context.Background()

	_, err := repo.Replace(ctx, "about", "hero", models.Document{"title": "A"})
	require.NoError(t, err)
	_, err = repo.Replace(ctx, "about", "team", models.Document{"title": "B"})
	require.NoError(t, err)
	_, err = repo.Replace(ctx, "contact", "main", models.Document{"title": "C"})
	require.NoError(t, err)

	sections, err := repo.ListByPage(ctx, "about")
	require.NoError(t, err)
	assert.Len(t, sections, 2)
}

func TestSQLiteSectionRepo_CountReferencing(t *testing.T) {
	repo := NewSQLiteSectionRepo(newTestDB(t).Conn)
	ctx := context.Background()

	url := "/api/uploads/3f2a9c1e-77aa-4a40-9a57-1f2d3e4a5b6c_photo.png"

	_, err := repo.Replace(ctx, "home", "banner", models.Document{"image": url})
	require.NoError(t, err)
	_, err = repo.Replace(ctx, "home", "faq", models.Document{
		"items": []any{map[string]any{"image": url}},
	})
	require.NoError(t, err)
	_, err = repo.Replace(ctx, "home", "video", models.Document{"image": "/api/uploads/other.png"})
	require.NoError(t, err)

	count, err := repo.CountReferencing(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.CountReferencing(ctx, "/api/uploads/unused.png")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSQLiteAssetRepo_Lifecycle(t *testing.T) {
	repo := NewSQLiteAssetRepo(newTestDB(t).Conn)
	ctx := context.Background()

	asset := &models.Asset{
		ID:       "11111111-2222-3333-4444-555555555555",
		Filename: "photo.png",
		DiskName: "11111111-2222-3333-4444-555555555555_photo.png",
		FileURL:  "/api/uploads/11111111-2222-3333-4444-555555555555_photo.png",
		FileSize: 1234,
		MimeType: "image/png",
	}

	require.NoError(t, repo.Create(ctx, asset))
	assert.False(t, asset.CreatedAt.IsZero(), "created_at is assigned by the database")

	got, err := repo.GetByID(ctx, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, asset.DiskName, got.DiskName)

	require.NoError(t, repo.Delete(ctx, asset.ID))
	_, err = repo.GetByID(ctx, asset.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, asset.ID), pkg.ErrNotFound)
}
