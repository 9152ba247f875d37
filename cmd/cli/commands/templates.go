package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/schedule-master/pkg/core/model"
	"github.com/jakechorley/schedule-master/pkg/core/schedule"
	"github.com/jakechorley/schedule-master/pkg/core/timeutil"
)

// ListTemplatesCmd creates the listTemplates command
func ListTemplatesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listTemplates",
		Short: "List all weekly templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := app.Store.ListTemplates()

			fmt.Printf("\nFound %d templates:\n\n", len(templates))
			for _, tpl := range templates {
				fmt.Printf("- %s (%s)", tpl.Name, tpl.ID)
				if tpl.Description != "" {
					fmt.Printf(" - %s", tpl.Description)
				}
				fmt.Println()
				for _, ts := range tpl.Shifts {
					fmt.Printf("    %s: %s %s-%s | %s | %d staff (%s)\n",
						ts.Title, weekdayName(ts.DayOfWeek), ts.StartTime, ts.EndTime,
						ts.Role, ts.RequiredStaff, ts.ID)
				}
			}

			return nil
		},
	}
}

// AddTemplateCmd creates the addTemplate command
func AddTemplateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addTemplate <name>",
		Short: "Add an empty weekly template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")

			tpl := model.Template{
				Name:        args[0],
				Description: description,
				Shifts:      []model.TemplateShift{},
			}
			if err := model.Validate(tpl); err != nil {
				return err
			}

			stored := app.Store.AddTemplate(tpl)
			fmt.Printf("\n✓ Template added: %s (%s)\n", stored.Name, stored.ID)
			return nil
		},
	}

	cmd.Flags().String("description", "", "Optional template description")

	return cmd
}

// AddTemplateShiftCmd creates the addTemplateShift command
func AddTemplateShiftCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addTemplateShift <template_id>",
		Short: "Add a shift definition to a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			day, _ := cmd.Flags().GetInt("day")
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			staff, _ := cmd.Flags().GetInt("staff")
			role, _ := cmd.Flags().GetString("role")

			ts := model.TemplateShift{
				Title:         title,
				DayOfWeek:     day,
				StartTime:     start,
				EndTime:       end,
				RequiredStaff: staff,
				Role:          role,
			}
			if err := model.Validate(ts); err != nil {
				return err
			}
			if err := model.ValidateTemplateShift(ts); err != nil {
				return err
			}

			var target *model.Template
			for _, tpl := range app.Store.ListTemplates() {
				if tpl.ID == args[0] {
					found := tpl
					target = &found
					break
				}
			}
			if target == nil {
				return fmt.Errorf("template %s not found", args[0])
			}

			shifts := append(target.Shifts, ts)
			updated := app.Store.UpdateTemplate(args[0], schedule.TemplatePatch{Shifts: &shifts})
			if updated == nil {
				return fmt.Errorf("template %s not found", args[0])
			}

			fmt.Printf("\n✓ Template shift added to %s (%d shifts)\n", updated.Name, len(updated.Shifts))
			return nil
		},
	}

	cmd.Flags().String("title", "", "Shift title")
	cmd.Flags().Int("day", 0, "Day of week, 0 (Sunday) to 6 (Saturday)")
	cmd.Flags().String("start", "", "Start time of day, HH:MM")
	cmd.Flags().String("end", "", "End time of day, HH:MM")
	cmd.Flags().Int("staff", 1, "Required staff count")
	cmd.Flags().String("role", "", "Role tag the shift requires")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("day")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	cmd.MarkFlagRequired("role")

	return cmd
}

// DeleteTemplateShiftCmd creates the deleteTemplateShift command
func DeleteTemplateShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteTemplateShift <template_id> <template_shift_id>",
		Short: "Remove a shift definition from a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Store.DeleteTemplateShift(args[0], args[1]) {
				return fmt.Errorf("template shift %s/%s not found", args[0], args[1])
			}
			fmt.Printf("\n✓ Template shift %s removed\n", args[1])
			return nil
		},
	}
}

// ApplyTemplateCmd creates the applyTemplate command
func ApplyTemplateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "applyTemplate <template_id>",
		Short: "Project a template onto one or more calendar weeks",
		Long: `Project a template's shift definitions onto concrete dated shifts.

The projection places each definition within the week of the start date with
no forward anchoring, so a Monday start date gives intuitive results. When no
start date is given, next Monday is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startStr, _ := cmd.Flags().GetString("start-date")
			weeks, _ := cmd.Flags().GetInt("weeks")

			var startDate time.Time
			if startStr == "" {
				startDate = timeutil.NextMonday(time.Now())
			} else {
				var err error
				startDate, err = time.ParseInLocation("2006-01-02", startStr, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --start-date %q, want YYYY-MM-DD: %w", startStr, err)
				}
			}

			created, err := app.Store.ApplyTemplateWeeks(args[0], startDate, weeks)
			if err != nil {
				return err
			}
			if created == nil {
				return fmt.Errorf("template %s not found", args[0])
			}

			fmt.Printf("\n✓ Template applied: %d shifts created\n\n", len(created))
			for _, shift := range created {
				fmt.Printf("  %s  %s %s-%s  %s (%d staff)\n",
					shift.Start.Format("2006-01-02"),
					shift.Start.Format("Mon"),
					shift.Start.Format("15:04"),
					shift.End.Format("15:04"),
					shift.Title,
					shift.RequiredStaff)
			}
			return nil
		},
	}

	cmd.Flags().String("start-date", "", "Week anchor date, YYYY-MM-DD (default: next Monday)")
	cmd.Flags().Int("weeks", 1, "Number of consecutive weeks to project")

	return cmd
}
