package fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"clubsim/internal/config"
	"clubsim/internal/game"
	"clubsim/internal/logger"
	"clubsim/internal/server"
	"clubsim/internal/sim"
	"clubsim/internal/store"
)

// ProvideRNG seeds the campaign's random source. A zero SIM_SEED means a
// fresh wall-clock seed per process, anything else gives a reproducible
// campaign.
func ProvideRNG(cfg *config.Config) *sim.Source {
	if cfg.SimSeed != 0 {
		return sim.NewSource(cfg.SimSeed)
	}
	return sim.NewTimeSource()
}

// ProvideCampaign wires the campaign with its saver and notifier.
func ProvideCampaign(log zerolog.Logger, cfg *config.Config, rng *sim.Source, snapshots *store.SnapshotStore, toasts *server.ToastBuffer) *game.Campaign {
	return game.New(log, rng, cfg.LeagueSize, snapshots, toasts)
}

// applyLogLevel tightens or loosens the bootstrap logger once the
// configuration is available.
func applyLogLevel(log zerolog.Logger, cfg *config.Config) {
	logger.ApplyLevel(log, cfg.LogLevel)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Invoke(applyLogLevel),
	fx.Provide(store.NewDB),
	fx.Provide(store.NewSnapshotStore),
	fx.Provide(server.NewToastBuffer),
	fx.Provide(ProvideRNG),
	fx.Provide(ProvideCampaign),
	fx.Provide(server.NewServer),
)
