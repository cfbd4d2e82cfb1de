package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"sidehustle/internal/model"
	"sidehustle/internal/repository"
)

// CreatedBy marks entries written by the seeder.
const CreatedBy = "init-script"

// Run creates the catalog indexes and inserts SampleEntries when the collection is
// empty. It returns how many entries were inserted; a non-empty collection is left alone.
func Run(ctx context.Context, repo repository.EntryRepository) (int, error) {
	if err := repo.EnsureIndexes(ctx); err != nil {
		return 0, err
	}

	count, err := repo.Count(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Ctx(ctx).Info().Int64("existing", count).Msg("catalog already has entries, skipping seed")
		return 0, nil
	}

	inserted, err := repo.InsertMany(ctx, Entries(time.Now().UTC()))
	if err != nil {
		return 0, fmt.Errorf("seed entries: %w", err)
	}

	log.Ctx(ctx).Info().Int("inserted", inserted).Msg("catalog seeded")
	return inserted, nil
}

// Entries returns fresh copies of SampleEntries stamped with now.
func Entries(now time.Time) []model.Entry {
	entries := make([]model.Entry, len(SampleEntries))
	for i, e := range SampleEntries {
		e.Status = model.StatusPublished
		e.CreatedAt = &now
		e.UpdatedAt = &now
		e.CreatedBy = CreatedBy
		entries[i] = e
	}
	return entries
}
