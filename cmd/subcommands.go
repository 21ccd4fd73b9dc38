package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"exrconf/internal/cli"
	"exrconf/internal/config"
	"exrconf/internal/layout"
	"exrconf/internal/tui/preview"
)

var historyLimit int

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Print the master configuration template",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), layout.MasterConfig.Format())
		return err
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse the generated files without writing them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := config.Load(vp)
		if err != nil {
			return err
		}
		m, err := preview.Build(def)
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previous generation runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		items, err := store.List(historyLimit)
		if err != nil {
			return err
		}
		cli.PrintHistory(cmd.OutOrStdout(), items)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum runs to show (0 = all)")
}
