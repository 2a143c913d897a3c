package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"k8s.io/utils/clock"

	"bankist/internal/config"
	"bankist/internal/logger"
	"bankist/internal/tui"
)

func newTUICmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Use the bank from the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			appConfig := cfg()
			logger.InitFile(appConfig.Env, appConfig.LogFile)
			defer logger.Sync()

			clk := clock.RealClock{}
			b, err := newBank(appConfig, clk)
			if err != nil {
				return err
			}

			model := tui.New(b.controller, b.screen, clk, appConfig.TickInterval)
			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}
