package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"shoplist/internal/config"
	"shoplist/internal/money"
	"shoplist/internal/repository"
	"shoplist/internal/service"
	"shoplist/internal/tax"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

// AppContext holds what every command needs to reach the list.
type AppContext struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Service service.ListService
	Tax     tax.Table
	Out     io.Writer
	Err     io.Writer
	store   repository.SlotStore
}

// NewAppContext loads configuration, opens the configured slot store and
// restores the saved list.
func NewAppContext(ctx context.Context, cmd *cli.Command) (*AppContext, error) {
	if err := config.LoadEnvFile(cmd.String("env")); err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	errOut := cmd.Root().ErrWriter
	if errOut == nil {
		errOut = os.Stderr
	}
	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}

	logger := config.NewLoggerTo(cfg.Logger, errOut)

	store, err := repository.NewSlotStore(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	snapshots := repository.NewSnapshotRepository(store, cfg.Storage.Namespace, logger)
	table := tax.Default()

	return &AppContext{
		Config:  cfg,
		Logger:  logger,
		Service: service.NewListService(ctx, snapshots, table, logger),
		Tax:     table,
		Out:     out,
		Err:     errOut,
		store:   store,
	}, nil
}

// Close releases the slot store.
func (ac *AppContext) Close() {
	if err := ac.store.Close(); err != nil {
		ac.Logger.Error().Err(err).Msg("failed to close slot store")
	}
}

// Money formats amount in the configured display currency.
func (ac *AppContext) Money(amount float64) string {
	return money.Format(amount, ac.Config.Display.Currency)
}
