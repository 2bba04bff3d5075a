package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crapshack/crapdash/internal/validate"
)

var (
	settingsTitle     string
	settingsClearLogo bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Update app title and logo",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("title") && !settingsClearLogo {
			return fmt.Errorf("nothing to update, pass --title and/or --clear-logo")
		}
		m, err := newManager()
		if err != nil {
			return err
		}
		in := validate.SettingsInput{RemoveLogo: settingsClearLogo}
		if cmd.Flags().Changed("title") {
			in.Title = &settingsTitle
		}
		if err := m.UpdateSettings(in); err != nil {
			return reportErr(cmd, err)
		}
		cmd.Println("updated settings")
		return nil
	},
}

var settingsLogoCmd = &cobra.Command{
	Use:   "logo <file>",
	Short: "Upload the app logo image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		file := args[0]
		mime, ok := validate.MIMEForExtension(file)
		if !ok {
			return fmt.Errorf("unsupported image extension: %s", file)
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read logo file: %w", err)
		}
		relPath, err := m.UploadAppLogo(data, mime, file)
		if err != nil {
			return reportErr(cmd, err)
		}
		cmd.Printf("stored logo at %s\n", relPath)
		return nil
	},
}

func init() {
	settingsCmd.Flags().StringVar(&settingsTitle, "title", "", "app title (empty unsets it)")
	settingsCmd.Flags().BoolVar(&settingsClearLogo, "clear-logo", false, "remove the app logo and its file")

	settingsCmd.AddCommand(settingsLogoCmd)
	rootCmd.AddCommand(settingsCmd)
}
