package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"sidehustle/internal/config"
	"sidehustle/internal/db"
	"sidehustle/internal/logger"
	"sidehustle/internal/repository"
	"sidehustle/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.LogLevel)

	ctx := context.Background()

	// Connect to database
	client, err := db.NewMongo(ctx, cfg.MongoURI, cfg.StoreTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()
	log.Info().Str("database", cfg.MongoDatabase).Msg("connected to database")

	coll := client.Database(cfg.MongoDatabase).Collection(db.CollectionSideHustles)
	inserted, err := seed.Run(ctx, repository.NewEntryRepository(coll))
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	if inserted == 0 {
		log.Info().Msg("catalog already has entries; empty the collection to reseed")
		return
	}
	log.Info().Int("inserted", inserted).Msg("seed completed successfully")
}
