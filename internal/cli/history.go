package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"SignalScout/internal/display"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			limit, _ := cmd.Flags().GetInt("limit")
			runs, err := app.recorder.RecentRuns(limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				display.Info("no recorded runs yet")
				return nil
			}
			fmt.Println(display.RenderRuns(runs))
			return nil
		},
	}
	cmd.Flags().Int("limit", 10, "number of runs to show")
	return cmd
}
