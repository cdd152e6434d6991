package document

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/linkdeck/linkdeck/internal/db/models"
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

func TestGet(t *testing.T) {
	testCases := []struct {
		name          string
		useDB         bool
		seed          []byte
		expectedError error
		expectedData  string
	}{
		{
			name:          "nil database",
			useDB:         false,
			expectedError: ErrDBNil,
		},
		{
			name:          "no document yet",
			useDB:         true,
			expectedError: ErrDocumentNotFound,
		},
		{
			name:         "successful get",
			useDB:        true,
			seed:         []byte(`{"profile":{"name":"Me"},"links":[]}`),
			expectedData: `{"profile":{"name":"Me"},"links":[]}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var db *gorm.DB
			if tc.useDB {
				db = setupTestDB(t)
			}

			if tc.seed != nil {
				_, err := Set(db, tc.seed)
				require.NoError(t, err, "failed to seed test data")
			}

			doc, err := Get(db)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, doc)
			} else {
				require.NoError(t, err)
				require.NotNil(t, doc)
				assert.Equal(t, models.SettingsDocumentID, doc.ID)
				assert.JSONEq(t, tc.expectedData, string(doc.Data))
			}
		})
	}
}

func TestSet(t *testing.T) {
	t.Run("nil database", func(t *testing.T) {
		doc, err := Set(nil, []byte(`{}`))
		require.ErrorIs(t, err, ErrDBNil)
		assert.Nil(t, doc)
	})

	t.Run("empty payload", func(t *testing.T) {
		db := setupTestDB(t)

		doc, err := Set(db, nil)
		require.ErrorIs(t, err, ErrDocumentEmpty)
		assert.Nil(t, doc)
	})

	t.Run("upsert overwrites the single row", func(t *testing.T) {
		db := setupTestDB(t)

		_, err := Set(db, []byte(`{"v":1}`))
		require.NoError(t, err)

		_, err = Set(db, []byte(`{"v":2}`))
		require.NoError(t, err)

		var count int64
		require.NoError(t, db.Model(&models.Document{}).Count(&count).Error)
		assert.EqualValues(t, 1, count, "saves must never create a second row")

		doc, err := Get(db)
		require.NoError(t, err)
		assert.JSONEq(t, `{"v":2}`, string(doc.Data))
	})
}
