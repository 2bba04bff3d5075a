package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/crapshack/crapdash/internal/sources/homepage"
	"github.com/crapshack/crapdash/internal/utils"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the raw configuration document as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		if exportOutput == "" {
			return m.Export(cmd.OutOrStdout())
		}

		out := exportOutput
		if out == "auto" {
			out = fmt.Sprintf("config-%s.json", time.Now().Format("2006-01-02"))
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer utils.Close(f)
		if err := m.Export(f); err != nil {
			return err
		}
		cmd.Printf("exported configuration to %s\n", out)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <services.yaml>",
	Short: "Import categories and services from a Homepage services.yaml",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		cfg, err := homepage.NewLoader(args[0]).Load()
		if err != nil {
			return err
		}
		entries, err := homepage.NewMapper().Map(cfg)
		if err != nil {
			return err
		}
		res, err := m.ImportHomepage(entries)
		if err != nil {
			return reportErr(cmd, err)
		}
		cmd.Printf("imported %d categories, %d services (%d skipped)\n",
			res.Categories, res.Services, res.Skipped)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", `output file ("auto" for config-YYYY-MM-DD.json, empty for stdout)`)
	rootCmd.AddCommand(exportCmd, importCmd)
}
