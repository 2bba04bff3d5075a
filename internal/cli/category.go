package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crapshack/crapdash/internal/domain"
	"github.com/crapshack/crapdash/internal/validate"
)

var (
	categoryID       string
	categoryName     string
	categoryIconName string
	categoryEmoji    string
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage dashboard categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List categories in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		categories, err := m.Categories()
		if err != nil {
			return err
		}
		for _, cat := range categories {
			icon := "-"
			if cat.Icon != nil {
				icon = fmt.Sprintf("%s:%s", cat.Icon.Type, cat.Icon.Value)
			}
			cmd.Printf("%s\t%s\t%s\n", cat.ID, cat.Name, icon)
		}
		return nil
	},
}

var categoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a category",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		icon, err := iconFromFlags(categoryIconName, categoryEmoji)
		if err != nil {
			return err
		}
		created, err := m.CreateCategory(validate.CategoryInput{
			ID:   categoryID,
			Name: categoryName,
			Icon: icon,
		})
		if err != nil {
			return reportErr(cmd, err)
		}
		cmd.Printf("created category %s\n", created.ID)
		return nil
	},
}

var categoryUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a category's name or icon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		icon, err := iconFromFlags(categoryIconName, categoryEmoji)
		if err != nil {
			return err
		}
		updated, err := m.UpdateCategory(args[0], validate.CategoryInput{
			Name: categoryName,
			Icon: icon,
		})
		if err != nil {
			return reportErr(cmd, err)
		}
		cmd.Printf("updated category %s\n", updated.ID)
		return nil
	},
}

var categoryRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a category (blocked while services reference it)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		if err := m.DeleteCategory(args[0]); err != nil {
			return reportErr(cmd, err)
		}
		cmd.Printf("deleted category %s\n", args[0])
		return nil
	},
}

var categoryReorderCmd = &cobra.Command{
	Use:   "reorder <id>...",
	Short: "Rewrite the category order (all ids, in the new order)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		if err := m.ReorderCategories(args); err != nil {
			return reportErr(cmd, err)
		}
		cmd.Println("reordered categories")
		return nil
	},
}

// iconFromFlags builds an optional icon from --icon-name / --emoji.
func iconFromFlags(iconName, emoji string) (*domain.IconConfig, error) {
	if iconName != "" && emoji != "" {
		return nil, fmt.Errorf("--icon-name and --emoji are mutually exclusive")
	}
	switch {
	case iconName != "":
		return &domain.IconConfig{Type: domain.IconTypeIcon, Value: iconName}, nil
	case emoji != "":
		return &domain.IconConfig{Type: domain.IconTypeEmoji, Value: emoji}, nil
	default:
		return nil, nil
	}
}

func init() {
	categoryAddCmd.Flags().StringVar(&categoryID, "id", "", "explicit category id (generated when empty)")
	for _, c := range []*cobra.Command{categoryAddCmd, categoryUpdateCmd} {
		c.Flags().StringVar(&categoryName, "name", "", "display name")
		c.Flags().StringVar(&categoryIconName, "icon-name", "", "symbolic icon name")
		c.Flags().StringVar(&categoryEmoji, "emoji", "", "emoji icon")
		_ = c.MarkFlagRequired("name")
	}

	categoryCmd.AddCommand(categoryListCmd, categoryAddCmd, categoryUpdateCmd, categoryRmCmd, categoryReorderCmd)
	rootCmd.AddCommand(categoryCmd)
}
