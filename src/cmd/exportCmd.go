package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/simivar/thol-objects-exporter/src/app"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [objectsDir]",
	Short: "Exports THOL object definitions and their sprite references as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info().Msg("THOL objects export running")

		objectsDir := resolveObjectsDir(args)

		// Update the global so downstream helpers/logs stay consistent
		ObjectsPath = objectsDir

		objects, stats, err := app.CollectObjects(objectsDir)
		if err != nil {
			return err
		}

		if err := app.WriteObjects(cmd.OutOrStdout(), objects); err != nil {
			return err
		}

		log.Info().
			Int("objects", stats.Parsed).
			Int("failed", stats.Failed).
			Msg("THOL objects export finished")
		return nil
	},
}
