// Package cli implements the crapdash admin commands. Every command
// drives the configuration store directly on local files; there is no
// server to talk to.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crapshack/crapdash/internal/assets"
	"github.com/crapshack/crapdash/internal/config"
	"github.com/crapshack/crapdash/internal/dashboard"
	"github.com/crapshack/crapdash/internal/logger"
	"github.com/crapshack/crapdash/internal/store"
	"github.com/crapshack/crapdash/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "crapdash",
	Short: "Manage the crapdash dashboard configuration",
	Long: `crapdash maintains a self-hosted service dashboard configuration:
categories, services, app title and uploaded icons, persisted as a
single JSON document plus a flat icons directory.

Paths are taken from CRAPDASH_* environment variables (or a .env file);
the defaults are data/config.json and data/icons.`,
	SilenceUsage: true,
}

// Execute runs the root command. Called by main.
func Execute() error {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"crapdash {{.Version}} (commit=%s, built=%s)\n", version.Commit, version.BuildDate))
	return rootCmd.Execute()
}

// newManager builds the full operation stack from the environment.
func newManager() (*dashboard.Manager, error) {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	st := store.New(cfg.ConfigFile, log)
	icons, err := assets.NewManager(cfg.IconsDir, log)
	if err != nil {
		return nil, err
	}
	return dashboard.New(st, icons, log), nil
}

// reportErr prints validation errors one per line so the user can fix
// them together; other errors pass through to cobra.
func reportErr(cmd *cobra.Command, err error) error {
	if verrs, ok := dashboard.ValidationErrors(err); ok {
		for _, fe := range verrs {
			cmd.PrintErrf("invalid %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("validation failed")
	}
	return err
}
