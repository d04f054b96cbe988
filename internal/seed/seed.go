// Package seed prepares the document store for first use.
package seed

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/anvesh/placementcell/internal/docstore"
)

// EnsureCollections creates an empty document for every collection that
// has no file yet, so legacy tooling pointed at the same directory sees
// well-formed JSON from the start. Existing files are left untouched.
func EnsureCollections(store *docstore.Store, lgr zerolog.Logger) error {
	collections := []string{
		docstore.CollectionStudents,
		docstore.CollectionCompanies,
		docstore.CollectionNotifications,
		docstore.CollectionQueries,
		docstore.CollectionResponses,
	}

	for _, collection := range collections {
		path := store.Path(collection)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return err
		}

		if err := store.Save(collection, []struct{}{}); err != nil {
			return err
		}
		lgr.Info().Str("collection", collection).Str("path", path).Msg("Created empty collection file")
	}

	return nil
}
