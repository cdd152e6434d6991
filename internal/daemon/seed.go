package daemon

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/linkdeck/linkdeck/internal/page"
	"github.com/linkdeck/linkdeck/internal/store"
)

// seed writes the bundled sample document on first start so the public page
// and the editor have something to show before the first save.
func seed(st store.Store) {
	_, err := st.Load(context.Background())
	if err == nil {
		return
	}

	if !errors.Is(err, store.ErrNotFound) {
		log.Error().Err(err).Msg("seed check failed")
		return
	}

	if err := st.Save(context.Background(), page.Default()); err != nil {
		log.Error().Err(err).Msg("failed to seed default document")
		return
	}

	log.Info().Msg("seeded default document")
}
