package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListRolesCmd creates the listRoles command
func ListRolesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listRoles",
		Short: "List all role tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			roles := app.Store.ListRoles()

			fmt.Printf("\nFound %d roles:\n\n", len(roles))
			for _, role := range roles {
				fmt.Printf("- %s\n", role)
			}

			return nil
		},
	}
}

// AddRoleCmd creates the addRole command
func AddRoleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addRole <role>",
		Short: "Add a role tag (duplicates are ignored)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roles := app.Store.AddRole(args[0])
			fmt.Printf("\n✓ Roles: %d\n", len(roles))
			return nil
		},
	}
}

// RemoveRoleCmd creates the removeRole command
func RemoveRoleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeRole <role>",
		Short: "Remove a role tag (existing employees and shifts keep theirs)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roles := app.Store.RemoveRole(args[0])
			fmt.Printf("\n✓ Roles: %d\n", len(roles))
			return nil
		},
	}
}
