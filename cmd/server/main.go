package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"clubsim/internal/config"
	fxmodules "clubsim/internal/fx"
	"clubsim/internal/game"
	"clubsim/internal/server"
	"clubsim/internal/store"
)

const shutdownTimeout = 5 * time.Second

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(restoreCampaign),
		fx.Invoke(runServer),
	).Run()
}

// restoreCampaign loads a saved campaign into memory, if one exists.
func restoreCampaign(campaign *game.Campaign, snapshots *store.SnapshotStore, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	snapshot, err := snapshots.Load(ctx)
	if errors.Is(err, store.ErrNoSnapshot) {
		logger.Info().Msg("no saved campaign, waiting for new-game request")
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to load saved campaign")
		return
	}
	if err := campaign.Restore(snapshot); err != nil {
		logger.Error().Err(err).Msg("saved campaign is corrupt, starting fresh")
	}
}

func runServer(
	lc fx.Lifecycle,
	apiServer *server.Server,
	snapshots *store.SnapshotStore,
	cfg *config.Config,
	db *sql.DB,
	logger zerolog.Logger,
) {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:     c.Handler(apiServer.Router()),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown failed")
				return err
			}

			snapshots.Close()
			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing database connection")
			}

			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}
