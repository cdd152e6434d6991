package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/linkdeck/linkdeck/internal/db/models"
	"github.com/linkdeck/linkdeck/internal/page"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Document{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func sampleDocument() *page.Document {
	d := &page.Document{
		Profile: page.Profile{
			Name:        "Me",
			Description: "my links",
			Theme: page.Theme{
				BackgroundColor: "#fff",
				TextColor:       "#000",
				ButtonColor:     "#000",
				ButtonTextColor: "#fff",
				ButtonStyle:     "pill",
			},
		},
		Links: []page.Item{
			{ID: "1", Type: page.ItemTypeLink, Title: "A", URL: "https://a", Enabled: true},
		},
		SiteTitle: "mine",
	}
	d.Normalize()

	return d
}

// roundTrip verifies the load/save/load contract shared by all backends.
func roundTrip(t *testing.T, s Store) {
	t.Helper()

	ctx := context.Background()

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound, "empty backend must report ErrNotFound")

	want := sampleDocument()
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got, "load after save must return an equal document")

	// full-document overwrite, last writer wins
	want.SiteTitle = "changed"
	require.NoError(t, s.Save(ctx, want))

	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "changed", got.SiteTitle)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "links.json")
	roundTrip(t, NewFileStore(path))

	// no stray temp file after a save
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestDBStoreRoundTrip(t *testing.T) {
	roundTrip(t, NewDBStore(setupTestDB(t)))
}

func TestFileStoreCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o640))

	_, err := NewFileStore(path).Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFileStoreNormalizesLegacyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	legacy := `{
        "profile": {"name": "Me", "theme": {}},
        "links": [],
        "adCode": "<div>legacy ad</div>",
        "faviconPngUrl": "/uploads/favicon/f.png"
    }`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o640))

	doc, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, page.TrustedHTML("<div>legacy ad</div>"), doc.CustomBodyCode)
	assert.Equal(t, "/uploads/favicon/f.png", doc.FaviconURL)
	assert.Empty(t, doc.AdCode)
	assert.Empty(t, doc.FaviconPNGURL)
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("degrades to bundled default", func(t *testing.T) {
		s := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

		doc := LoadOrDefault(context.Background(), s)
		require.NotNil(t, doc)
		assert.Equal(t, page.Default(), doc)
	})

	t.Run("returns stored document when present", func(t *testing.T) {
		s := NewFileStore(filepath.Join(t.TempDir(), "links.json"))
		want := sampleDocument()
		require.NoError(t, s.Save(context.Background(), want))

		assert.Equal(t, want, LoadOrDefault(context.Background(), s))
	})
}
