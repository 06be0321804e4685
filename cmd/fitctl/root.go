package main

import (
	"context"
	"fmt"
	"os"

	"fitcoach/fitness-coach/internal/app"
	"fitcoach/fitness-coach/internal/config"
	"fitcoach/fitness-coach/internal/logging"
	"fitcoach/fitness-coach/internal/service"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "fitctl",
	Short:         "fitctl works with the fitness coach data from your terminal",
	Long:          "fitctl exports the daily history, estimates nutrition with the configured AI models and prints today's progress.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// services is the subset of the application the commands use.
type services struct {
	dailyLogs service.DailyLogService
	nutrition service.NutritionService
	export    service.ExportService
}

// loadServices is replaced in tests.
var loadServices = func(ctx context.Context) (*services, func() error, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	logging.Setup(logging.Params{Level: cfg.Log.Level, JSON: cfg.Log.JSON, File: cfg.Log.File})
	a, err := app.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return &services{
		dailyLogs: a.DailyLogService,
		nutrition: a.NutritionService,
		export:    a.ExportService,
	}, a.Close, nil
}

func withServices(cmd *cobra.Command, run func(*services) error) error {
	svcs, closeFn, err := loadServices(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if closeFn != nil {
			_ = closeFn()
		}
	}()
	return run(svcs)
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory containing config.yaml")
}
