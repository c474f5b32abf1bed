package cmd

import (
	"wiring-guard/feature/drift"
	"wiring-guard/feature/drift/checks"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the check whenever the source or an asset directory changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = logg.Sync() }()

		svc := drift.NewService(afero.NewOsFs(), checks.DefaultLayout(), logg)
		return drift.NewWatcher(svc, ".", cmd.OutOrStdout(), logg).Run(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(watchCmd)
}
