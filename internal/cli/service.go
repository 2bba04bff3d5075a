package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crapshack/crapdash/internal/domain"
	"github.com/crapshack/crapdash/internal/validate"
)

var (
	serviceID       string
	serviceName     string
	serviceDesc     string
	serviceURL      string
	serviceCategory string
	serviceIconName string
	serviceEmoji    string
	serviceInactive bool
)

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Manage dashboard services",
}

var serviceListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List services in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		var services []domain.Service
		if serviceCategory != "" {
			services, err = m.ServicesByCategory(serviceCategory)
		} else {
			services, err = m.Services()
		}
		if err != nil {
			return err
		}
		for _, svc := range services {
			state := "active"
			if !svc.Active {
				state = "hidden"
			}
			cmd.Printf("%s\t%s\t%s\t%s\t%s\n", svc.ID, svc.Name, svc.CategoryID, svc.URL, state)
		}
		return nil
	},
}

var serviceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a service",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		in, err := serviceInputFromFlags()
		if err != nil {
			return err
		}
		in.ID = serviceID
		created, err := m.CreateService(in)
		if err != nil {
			return reportErr(cmd, err)
		}
		cmd.Printf("created service %s\n", created.ID)
		return nil
	},
}

var serviceUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a service's mutable fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		in, err := serviceInputFromFlags()
		if err != nil {
			return err
		}
		updated, err := m.UpdateService(args[0], in)
		if err != nil {
			return reportErr(cmd, err)
		}
		cmd.Printf("updated service %s\n", updated.ID)
		return nil
	},
}

var serviceRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a service and its uploaded icon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		if err := m.DeleteService(args[0]); err != nil {
			return reportErr(cmd, err)
		}
		cmd.Printf("deleted service %s\n", args[0])
		return nil
	},
}

var serviceReorderCmd = &cobra.Command{
	Use:   "reorder <id>...",
	Short: "Rewrite one category's service order",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if serviceCategory == "" {
			return fmt.Errorf("--category is required")
		}
		m, err := newManager()
		if err != nil {
			return err
		}
		if err := m.ReorderServices(serviceCategory, args); err != nil {
			return reportErr(cmd, err)
		}
		cmd.Printf("reordered services in %s\n", serviceCategory)
		return nil
	},
}

var serviceIconCmd = &cobra.Command{
	Use:   "icon <id> <file>",
	Short: "Upload an icon image for a service",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		id, file := args[0], args[1]
		mime, ok := validate.MIMEForExtension(file)
		if !ok {
			return fmt.Errorf("unsupported image extension: %s", file)
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read icon file: %w", err)
		}
		relPath, err := m.UploadServiceIcon(id, data, mime, file)
		if err != nil {
			return reportErr(cmd, err)
		}
		cmd.Printf("stored icon at %s\n", relPath)
		return nil
	},
}

func serviceInputFromFlags() (validate.ServiceInput, error) {
	icon, err := iconFromFlags(serviceIconName, serviceEmoji)
	if err != nil {
		return validate.ServiceInput{}, err
	}
	active := !serviceInactive
	return validate.ServiceInput{
		Name:        serviceName,
		Description: serviceDesc,
		URL:         serviceURL,
		CategoryID:  serviceCategory,
		Icon:        icon,
		Active:      &active,
	}, nil
}

func init() {
	serviceAddCmd.Flags().StringVar(&serviceID, "id", "", "explicit service id (generated when empty)")
	for _, c := range []*cobra.Command{serviceAddCmd, serviceUpdateCmd} {
		c.Flags().StringVar(&serviceName, "name", "", "display name")
		c.Flags().StringVar(&serviceDesc, "desc", "", "short description")
		c.Flags().StringVar(&serviceURL, "url", "", "absolute URL")
		c.Flags().StringVar(&serviceCategory, "category", "", "owning category id")
		c.Flags().StringVar(&serviceIconName, "icon-name", "", "symbolic icon name")
		c.Flags().StringVar(&serviceEmoji, "emoji", "", "emoji icon")
		c.Flags().BoolVar(&serviceInactive, "hidden", false, "hide the service on the dashboard")
		_ = c.MarkFlagRequired("name")
		_ = c.MarkFlagRequired("desc")
		_ = c.MarkFlagRequired("url")
		_ = c.MarkFlagRequired("category")
	}
	serviceListCmd.Flags().StringVar(&serviceCategory, "category", "", "filter by category id")
	serviceReorderCmd.Flags().StringVar(&serviceCategory, "category", "", "category whose services to reorder")

	serviceCmd.AddCommand(serviceListCmd, serviceAddCmd, serviceUpdateCmd, serviceRmCmd, serviceReorderCmd, serviceIconCmd)
	rootCmd.AddCommand(serviceCmd)
}
