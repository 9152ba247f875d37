package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListNotificationsCmd creates the listNotifications command
func ListNotificationsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listNotifications",
		Short: "List notifications, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			unreadOnly, _ := cmd.Flags().GetBool("unread")

			notifications := app.Store.ListNotifications()

			shown := 0
			fmt.Println()
			for _, n := range notifications {
				if unreadOnly && n.Read {
					continue
				}
				marker := " "
				if !n.Read {
					marker = "*"
				}
				fmt.Printf("%s %s  [%s] %s (%s)\n", marker,
					n.CreatedAt.Format("2006-01-02 15:04"), n.Type, n.Title, n.ID)
				fmt.Printf("    %s\n", n.Message)
				shown++
			}
			fmt.Printf("\n%d notifications\n", shown)

			return nil
		},
	}

	cmd.Flags().Bool("unread", false, "Show only unread notifications")

	return cmd
}

// MarkNotificationReadCmd creates the markNotificationRead command
func MarkNotificationReadCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "markNotificationRead <notification_id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated := app.Store.MarkNotificationAsRead(args[0])
			if updated == nil {
				return fmt.Errorf("notification %s not found", args[0])
			}
			fmt.Printf("\n✓ Notification read: %s\n", updated.Title)
			return nil
		},
	}
}
