// Package daemon wires configuration, database, backend connection and the
// orchestration service together and runs them until the context ends.
package daemon

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/hatchswap/hatchswapd/backend"
	"github.com/hatchswap/hatchswapd/config"
	"github.com/hatchswap/hatchswapd/database"
	"github.com/hatchswap/hatchswapd/rates"
	"github.com/hatchswap/hatchswapd/rates/data"
	"github.com/hatchswap/hatchswapd/service"
)

func Start(ctx context.Context, cfg *config.Config, db *database.Database) error {
	log.Info("Starting hatchswapd")

	client, err := backend.NewClient(afero.NewOsFs(), cfg.Backend)
	if err != nil {
		return err
	}

	if err := client.Connect(ctx); err != nil {
		client.Disconnect()

		return fmt.Errorf("could not connect to backend: %w", err)
	}

	feeProvider := rates.NewFeeProvider(client)
	rateProvider := rates.NewProvider(data.NewProvider(), feeProvider, cfg.RateUpdateInterval, cfg.Currencies)

	swapService := service.New(cfg, client, db, db, db, rateProvider, feeProvider)
	swapService.RegisterListener(lifecycleLogger())

	if err := swapService.Init(ctx); err != nil {
		client.Disconnect()

		return fmt.Errorf("could not initialize service: %w", err)
	}

	<-ctx.Done()

	log.Info("Shutting down hatchswapd")
	rateProvider.Stop()
	client.Disconnect()

	return nil
}

// lifecycleLogger is the default swap event subscriber. API layers register
// their own listeners for client notifications.
func lifecycleLogger() service.Listener {
	return service.Listener{
		Update: func(update service.SwapUpdate) {
			log.WithFields(log.Fields{
				"id":      update.ID,
				"status":  update.Status,
				"reverse": update.IsReverse,
			}).Debug("Swap status update")
		},
		Successful: func(outcome service.SwapOutcome) {
			if outcome.Swap != nil {
				log.Infof("Swap %s completed successfully", outcome.Swap.ID)
			} else if outcome.ReverseSwap != nil {
				log.Infof("Reverse swap %s completed successfully", outcome.ReverseSwap.ID)
			}
		},
		Failed: func(outcome service.SwapOutcome, reason string) {
			id := ""
			if outcome.Swap != nil {
				id = outcome.Swap.ID
			} else if outcome.ReverseSwap != nil {
				id = outcome.ReverseSwap.ID
			}

			log.Warnf("Swap %s failed: %s", id, reason)
		},
		ChannelBackup: func(currency, backup string) {
			log.Infof("Got new channel backup for %s (%d bytes)", currency, len(backup))
		},
	}
}
