package daemon

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkdeck/linkdeck/internal/page"
	"github.com/linkdeck/linkdeck/internal/store"
)

func TestSeed(t *testing.T) {
	st := store.NewFileStore(filepath.Join(t.TempDir(), "links.json"))

	seed(st)

	doc, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, page.Default().Profile.Name, doc.Profile.Name)
}

func TestSeedKeepsExistingDocument(t *testing.T) {
	st := store.NewFileStore(filepath.Join(t.TempDir(), "links.json"))

	existing := page.Default()
	existing.Profile.Name = "Existing"
	require.NoError(t, st.Save(context.Background(), existing))

	seed(st)

	doc, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Existing", doc.Profile.Name)
}
