package storage

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"github.com/smartbudget/backend/internal/config"
	"google.golang.org/api/option"
)

// Select establishes the store for this process.
//
// When a Firestore project is configured, a connection is attempted
// and verified with a write/delete round trip. On any failure the
// seeded in-memory store is returned instead. The decision is made
// once, the caller holds on to the returned store for the lifetime of
// the process.
func Select(ctx context.Context, cfg config.Config) Store {
	if cfg.FirestoreProjectID == "" {
		log.Warn().Msg("FIRESTORE_PROJECT_ID is not set, using the in-memory store. Data will not persist.")
		return NewMemoryStore().Seed()
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.FirestoreProjectID, opts...)
	if err != nil {
		log.Warn().Err(err).Msg("Firestore client could not be created, using the in-memory store. Data will not persist.")
		return NewMemoryStore().Seed()
	}

	store := NewFirestoreStore(client)
	if err := store.probe(ctx); err != nil {
		_ = client.Close()
		log.Warn().Err(err).Msg("Firestore connection check failed, using the in-memory store. Data will not persist.")
		return NewMemoryStore().Seed()
	}

	log.Info().Str("project", cfg.FirestoreProjectID).Msg("connected to Firestore")
	return store
}
