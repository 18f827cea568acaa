package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielmtz/paleta/internal/config"
	"github.com/danielmtz/paleta/internal/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the HTML palette preview without opening the picker",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.BrandColor == "" {
			return fmt.Errorf("no brand color configured; set brand_color in the config first")
		}

		loaded, err := tokenSource(cfg).Load()
		if err != nil {
			return fmt.Errorf("failed to load tokens: %w", err)
		}

		file, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer file.Close()

		if err := export.WriteHTML(file, cfg.BrandColor, loaded); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "wrote", exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "paleta-preview.html", "output file")
	rootCmd.AddCommand(exportCmd)
}
