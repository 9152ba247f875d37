package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/schedule-master/pkg/core/model"
	"github.com/jakechorley/schedule-master/pkg/core/schedule"
)

const shiftTimeLayout = "2006-01-02 15:04"

// ListShiftsCmd creates the listShifts command
func ListShiftsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listShifts",
		Short: "List all shifts with staffing status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shifts := app.Store.ListShifts()

			fmt.Printf("\nFound %d shifts:\n\n", len(shifts))
			for _, shift := range shifts {
				fmt.Printf("- %s (%s)\n", shift.Title, shift.ID)
				fmt.Printf("    %s - %s | %s | %d/%d staffed | %s\n",
					shift.Start.Format(shiftTimeLayout),
					shift.End.Format("15:04"),
					shift.Role,
					len(shift.EmployeeIDs),
					shift.RequiredStaff,
					shift.Status)
				if len(shift.EmployeeIDs) > 0 {
					fmt.Printf("    assigned: %s\n", strings.Join(shift.EmployeeIDs, ", "))
				}
			}

			return nil
		},
	}
}

// AddShiftCmd creates the addShift command
func AddShiftCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addShift",
		Short: "Add a shift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			startStr, _ := cmd.Flags().GetString("start")
			endStr, _ := cmd.Flags().GetString("end")
			role, _ := cmd.Flags().GetString("role")
			staff, _ := cmd.Flags().GetInt("staff")
			notes, _ := cmd.Flags().GetString("notes")

			start, err := time.ParseInLocation(shiftTimeLayout, startStr, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --start %q, want %q: %w", startStr, shiftTimeLayout, err)
			}
			end, err := time.ParseInLocation(shiftTimeLayout, endStr, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --end %q, want %q: %w", endStr, shiftTimeLayout, err)
			}

			shift := model.Shift{
				Title:         title,
				Start:         start,
				End:           end,
				RequiredStaff: staff,
				Role:          role,
				Notes:         notes,
			}
			if err := model.Validate(shift); err != nil {
				return err
			}

			stored := app.Store.AddShift(shift)
			fmt.Printf("\n✓ Shift added: %s (%s) %s\n", stored.Title, stored.ID, stored.Status)
			return nil
		},
	}

	cmd.Flags().String("title", "", "Shift title")
	cmd.Flags().String("start", "", fmt.Sprintf("Start time, %q in local time", shiftTimeLayout))
	cmd.Flags().String("end", "", fmt.Sprintf("End time, %q in local time", shiftTimeLayout))
	cmd.Flags().String("role", "", "Role tag the shift requires")
	cmd.Flags().Int("staff", 1, "Required staff count")
	cmd.Flags().String("notes", "", "Optional notes")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	cmd.MarkFlagRequired("role")

	return cmd
}

// UpdateShiftCmd creates the updateShift command
func UpdateShiftCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateShift <shift_id>",
		Short: "Update a shift (only the given flags change; status is recomputed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch schedule.ShiftPatch

			if cmd.Flags().Changed("title") {
				v, _ := cmd.Flags().GetString("title")
				patch.Title = &v
			}
			if cmd.Flags().Changed("start") {
				raw, _ := cmd.Flags().GetString("start")
				v, err := time.ParseInLocation(shiftTimeLayout, raw, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --start %q, want %q: %w", raw, shiftTimeLayout, err)
				}
				patch.Start = &v
			}
			if cmd.Flags().Changed("end") {
				raw, _ := cmd.Flags().GetString("end")
				v, err := time.ParseInLocation(shiftTimeLayout, raw, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --end %q, want %q: %w", raw, shiftTimeLayout, err)
				}
				patch.End = &v
			}
			if cmd.Flags().Changed("role") {
				v, _ := cmd.Flags().GetString("role")
				patch.Role = &v
			}
			if cmd.Flags().Changed("staff") {
				v, _ := cmd.Flags().GetInt("staff")
				if v < 1 {
					return fmt.Errorf("--staff must be at least 1, got %d", v)
				}
				patch.RequiredStaff = &v
			}
			if cmd.Flags().Changed("notes") {
				v, _ := cmd.Flags().GetString("notes")
				patch.Notes = &v
			}

			updated := app.Store.UpdateShift(args[0], patch)
			if updated == nil {
				return fmt.Errorf("shift %s not found", args[0])
			}

			fmt.Printf("\n✓ Shift updated: %s (%s) %s\n", updated.Title, updated.ID, updated.Status)
			return nil
		},
	}

	cmd.Flags().String("title", "", "Shift title")
	cmd.Flags().String("start", "", fmt.Sprintf("Start time, %q in local time", shiftTimeLayout))
	cmd.Flags().String("end", "", fmt.Sprintf("End time, %q in local time", shiftTimeLayout))
	cmd.Flags().String("role", "", "Role tag the shift requires")
	cmd.Flags().Int("staff", 1, "Required staff count")
	cmd.Flags().String("notes", "", "Optional notes")

	return cmd
}

// DeleteShiftCmd creates the deleteShift command
func DeleteShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteShift <shift_id>",
		Short: "Delete a shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Store.DeleteShift(args[0]) {
				return fmt.Errorf("shift %s not found", args[0])
			}
			fmt.Printf("\n✓ Shift %s deleted\n", args[0])
			return nil
		},
	}
}
