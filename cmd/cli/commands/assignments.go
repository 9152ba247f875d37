package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AssignEmployeeCmd creates the assignEmployee command
func AssignEmployeeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assignEmployee <shift_id> <employee_id>",
		Short: "Assign an employee to a shift (idempotent)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated := app.Store.AssignEmployee(args[0], args[1])
			if updated == nil {
				return fmt.Errorf("shift %s not found", args[0])
			}

			fmt.Printf("\n✓ Assigned %s to %s (%s): %d/%d staffed, %s\n",
				args[1], updated.Title, updated.ID,
				len(updated.EmployeeIDs), updated.RequiredStaff, updated.Status)
			return nil
		},
	}
}

// UnassignEmployeeCmd creates the unassignEmployee command
func UnassignEmployeeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unassignEmployee <shift_id> <employee_id>",
		Short: "Remove an employee from a shift",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated := app.Store.UnassignEmployee(args[0], args[1])
			if updated == nil {
				return fmt.Errorf("shift %s not found", args[0])
			}

			fmt.Printf("\n✓ Unassigned %s from %s (%s): %d/%d staffed, %s\n",
				args[1], updated.Title, updated.ID,
				len(updated.EmployeeIDs), updated.RequiredStaff, updated.Status)
			return nil
		},
	}
}

// AvailableEmployeesCmd creates the availableEmployees command
func AvailableEmployeesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "availableEmployees <shift_id>",
		Short: "List employees whose role and availability match a shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, shift := range app.Store.ListShifts() {
				if shift.ID != args[0] {
					continue
				}

				available := app.Store.AvailableEmployees(shift)
				fmt.Printf("\n%d employees available for %s (%s %s-%s):\n\n",
					len(available), shift.Title,
					shift.Start.Format("Monday 2006-01-02"),
					shift.Start.Format("15:04"), shift.End.Format("15:04"))
				for _, emp := range available {
					fmt.Printf("- %s (%s) - %s\n", emp.Name, emp.ID, emp.Email)
				}
				return nil
			}

			return fmt.Errorf("shift %s not found", args[0])
		},
	}
}

// SendInvitationCmd creates the sendInvitation command
func SendInvitationCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sendInvitation <shift_id> <employee_id>",
		Short: "Record a shift invitation notification and dispatch it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			notification := app.Store.SendShiftInvitation(args[0], args[1])
			if notification == nil {
				return fmt.Errorf("shift %s or employee %s not found", args[0], args[1])
			}

			fmt.Printf("\n✓ Invitation sent: %s\n", notification.Title)
			return nil
		},
	}
}
