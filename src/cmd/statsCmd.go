package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/simivar/thol-objects-exporter/src/app"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats [objectsDir]",
	Short: "Summarizes sprite usage across the THOL objects directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info().Msg("THOL objects stats running")

		objectsDir := resolveObjectsDir(args)
		ObjectsPath = objectsDir

		objects, stats, err := app.CollectObjects(objectsDir)
		if err != nil {
			return err
		}

		totalRefs := 0
		unique := make(map[uint64]struct{})
		for _, obj := range objects {
			for _, id := range obj.SpriteIDs() {
				totalRefs++
				unique[id] = struct{}{}
			}
		}

		log.Info().
			Int("objects", stats.Parsed).
			Int("failed", stats.Failed).
			Int("spriteRefs", totalRefs).
			Int("uniqueSprites", len(unique)).
			Msg("THOL objects stats finished")
		return nil
	},
}
