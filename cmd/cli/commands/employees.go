package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakechorley/schedule-master/pkg/core/model"
	"github.com/jakechorley/schedule-master/pkg/core/schedule"
)

// ListEmployeesCmd creates the listEmployees command
func ListEmployeesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listEmployees",
		Short: "List all employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			employees := app.Store.ListEmployees()

			fmt.Printf("\nFound %d employees:\n\n", len(employees))
			for _, emp := range employees {
				fmt.Printf("- %s (%s) - %s - %s\n", emp.Name, emp.ID, emp.Role, emp.Email)
				for _, w := range emp.Availability {
					fmt.Printf("    %s %s-%s\n", weekdayName(w.DayOfWeek), w.StartTime, w.EndTime)
				}
			}

			return nil
		},
	}
}

// AddEmployeeCmd creates the addEmployee command
func AddEmployeeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addEmployee",
		Short: "Add an employee with weekly availability windows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			phone, _ := cmd.Flags().GetString("phone")
			role, _ := cmd.Flags().GetString("role")
			windows, _ := cmd.Flags().GetStringArray("availability")

			availability, err := parseAvailabilityFlags(windows)
			if err != nil {
				return err
			}

			emp := model.Employee{
				Name:         name,
				Email:        email,
				Phone:        phone,
				Role:         role,
				Availability: availability,
			}
			if err := model.Validate(emp); err != nil {
				return err
			}

			stored := app.Store.AddEmployee(emp)
			fmt.Printf("\n✓ Employee added: %s (%s)\n", stored.Name, stored.ID)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Employee name")
	cmd.Flags().String("email", "", "Employee email")
	cmd.Flags().String("phone", "", "Employee phone")
	cmd.Flags().String("role", "", "Employee role tag")
	cmd.Flags().StringArray("availability", nil, "Availability window as DOW:HH:MM-HH:MM (0=Sunday), repeatable")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("phone")
	cmd.MarkFlagRequired("role")

	return cmd
}

// UpdateEmployeeCmd creates the updateEmployee command
func UpdateEmployeeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateEmployee <employee_id>",
		Short: "Update an employee (only the given flags change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch schedule.EmployeePatch

			if cmd.Flags().Changed("name") {
				v, _ := cmd.Flags().GetString("name")
				patch.Name = &v
			}
			if cmd.Flags().Changed("email") {
				v, _ := cmd.Flags().GetString("email")
				patch.Email = &v
			}
			if cmd.Flags().Changed("phone") {
				v, _ := cmd.Flags().GetString("phone")
				patch.Phone = &v
			}
			if cmd.Flags().Changed("role") {
				v, _ := cmd.Flags().GetString("role")
				patch.Role = &v
			}
			if cmd.Flags().Changed("availability") {
				windows, _ := cmd.Flags().GetStringArray("availability")
				availability, err := parseAvailabilityFlags(windows)
				if err != nil {
					return err
				}
				patch.Availability = &availability
			}

			updated := app.Store.UpdateEmployee(args[0], patch)
			if updated == nil {
				return fmt.Errorf("employee %s not found", args[0])
			}

			fmt.Printf("\n✓ Employee updated: %s (%s)\n", updated.Name, updated.ID)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Employee name")
	cmd.Flags().String("email", "", "Employee email")
	cmd.Flags().String("phone", "", "Employee phone")
	cmd.Flags().String("role", "", "Employee role tag")
	cmd.Flags().StringArray("availability", nil, "Availability window as DOW:HH:MM-HH:MM (0=Sunday), repeatable; replaces all windows")

	return cmd
}

// DeleteEmployeeCmd creates the deleteEmployee command
func DeleteEmployeeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteEmployee <employee_id>",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Store.DeleteEmployee(args[0]) {
				return fmt.Errorf("employee %s not found", args[0])
			}
			fmt.Printf("\n✓ Employee %s deleted\n", args[0])
			return nil
		},
	}
}

// parseAvailabilityFlags parses repeated DOW:HH:MM-HH:MM flags into
// availability windows and checks the window invariants.
func parseAvailabilityFlags(raw []string) ([]model.Availability, error) {
	windows := make([]model.Availability, 0, len(raw))
	for _, item := range raw {
		dayStr, span, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("invalid availability %q, want DOW:HH:MM-HH:MM", item)
		}
		day, err := strconv.Atoi(dayStr)
		if err != nil || day < 0 || day > 6 {
			return nil, fmt.Errorf("invalid availability day in %q, want 0 (Sunday) to 6 (Saturday)", item)
		}
		start, end, ok := strings.Cut(span, "-")
		if !ok {
			return nil, fmt.Errorf("invalid availability %q, want DOW:HH:MM-HH:MM", item)
		}

		window := model.Availability{DayOfWeek: day, StartTime: start, EndTime: end}
		if err := model.ValidateAvailability(window); err != nil {
			return nil, err
		}
		windows = append(windows, window)
	}
	return windows, nil
}

var weekdayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func weekdayName(day int) string {
	if day < 0 || day >= len(weekdayNames) {
		return fmt.Sprintf("day %d", day)
	}
	return weekdayNames[day]
}
