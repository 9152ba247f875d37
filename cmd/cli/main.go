package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jakechorley/schedule-master/cmd/cli/commands"
	"github.com/jakechorley/schedule-master/internal/config"
	"github.com/jakechorley/schedule-master/pkg/core/schedule"
	"github.com/jakechorley/schedule-master/pkg/logging"
	"github.com/jakechorley/schedule-master/pkg/notify"
	"github.com/jakechorley/schedule-master/pkg/postgres"
	"github.com/jakechorley/schedule-master/pkg/storage/file"
)

var (
	verbose    bool
	configPath string

	app     *commands.AppContext
	cleanup func()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "schedule-master",
		Short: "Schedule Master - employee work-shift scheduling",
		Long:  `A tool for managing employees, work shifts, weekly templates and shift notifications.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
			if cleanup != nil {
				cleanup()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on the console")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: schedule_master_config.yaml in cwd or home)")

	rootCmd.AddCommand(commands.ListEmployeesCmd(appRef()))
	rootCmd.AddCommand(commands.AddEmployeeCmd(appRef()))
	rootCmd.AddCommand(commands.UpdateEmployeeCmd(appRef()))
	rootCmd.AddCommand(commands.DeleteEmployeeCmd(appRef()))
	rootCmd.AddCommand(commands.ListShiftsCmd(appRef()))
	rootCmd.AddCommand(commands.AddShiftCmd(appRef()))
	rootCmd.AddCommand(commands.UpdateShiftCmd(appRef()))
	rootCmd.AddCommand(commands.DeleteShiftCmd(appRef()))
	rootCmd.AddCommand(commands.AssignEmployeeCmd(appRef()))
	rootCmd.AddCommand(commands.UnassignEmployeeCmd(appRef()))
	rootCmd.AddCommand(commands.AvailableEmployeesCmd(appRef()))
	rootCmd.AddCommand(commands.SendInvitationCmd(appRef()))
	rootCmd.AddCommand(commands.ListTemplatesCmd(appRef()))
	rootCmd.AddCommand(commands.AddTemplateCmd(appRef()))
	rootCmd.AddCommand(commands.AddTemplateShiftCmd(appRef()))
	rootCmd.AddCommand(commands.DeleteTemplateShiftCmd(appRef()))
	rootCmd.AddCommand(commands.ApplyTemplateCmd(appRef()))
	rootCmd.AddCommand(commands.ListRolesCmd(appRef()))
	rootCmd.AddCommand(commands.AddRoleCmd(appRef()))
	rootCmd.AddCommand(commands.RemoveRoleCmd(appRef()))
	rootCmd.AddCommand(commands.ListNotificationsCmd(appRef()))
	rootCmd.AddCommand(commands.MarkNotificationReadCmd(appRef()))
	rootCmd.AddCommand(commands.ServeCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext pointer; it is populated by initApp
// before any command runs.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up the logger, config, snapshot backend and store.
func initApp() error {
	ctx := context.Background()
	appRef()
	app.Ctx = ctx

	logger, err := logging.InitLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger = logger

	logger.Debug("loading configuration")
	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
		if err == nil {
			err = config.Validate(app.Cfg)
		}
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var persister schedule.Persister
	switch app.Cfg.Storage.Backend {
	case "postgres":
		logger.Debug("connecting to postgres")
		db, err := postgres.NewDB(ctx, app.Cfg.Storage.PostgresDSN)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err := db.RunMigrations(ctx); err != nil {
			db.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		cleanup = db.Close
		persister = db
	default:
		persister = file.New(app.Cfg.Storage.Path)
	}

	app.Store = schedule.NewStore(schedule.Options{
		Persister:    persister,
		Dispatcher:   notify.NewLogDispatcher(logger),
		Logger:       logger,
		DefaultRoles: app.Cfg.DefaultRoles,
	})

	if err := app.Store.Load(ctx); err != nil {
		return fmt.Errorf("failed to load schedule: %w", err)
	}

	return nil
}
