package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/utils/clock"

	"bankist/internal/config"
	"bankist/internal/directory"
	"bankist/internal/logger"
	"bankist/internal/scheduler"
	"bankist/internal/session"
	"bankist/internal/view"
)

// @title           Bankist API
// @version         1.0
// @description     Bankist is a demo bank: log in, move money between in-memory accounts and request loans while an inactivity timer runs.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var appConfig *config.Config

	root := &cobra.Command{
		Use:           "bankist",
		Short:         "Demo bank with a session timer, transfers and delayed loans",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			appConfig = cfg
			return nil
		},
	}

	root.AddCommand(
		newServeCmd(func() *config.Config { return appConfig }),
		newTUICmd(func() *config.Config { return appConfig }),
	)
	return root
}

// bank is one session's worth of wiring.
type bank struct {
	scheduler  *scheduler.Scheduler
	directory  *directory.Directory
	controller *session.Controller
	screen     *view.Screen
}

func newBank(cfg *config.Config, clk clock.PassiveClock) (*bank, error) {
	accounts, err := directory.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	sched := scheduler.New(clk)
	dir := directory.New(accounts, sched, clk, cfg.LoanDelay)
	for _, acc := range dir.Accounts() {
		logger.Get().Debugw("account loaded", "id", acc.ID, "username", acc.Username, "movements", len(acc.Movements))
	}
	screen := view.NewScreen()
	ctrl := session.NewController(dir, sched, clk, screen, session.Options{
		Ticks:        cfg.CountdownTicks(),
		TickInterval: cfg.TickInterval,
	})

	return &bank{
		scheduler:  sched,
		directory:  dir,
		controller: ctrl,
		screen:     screen,
	}, nil
}
