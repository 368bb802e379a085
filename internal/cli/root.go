// Package cli implements the balancectl commands.
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/balance/internal/app"
	"github.com/limbo/balance/internal/repository"
	"github.com/limbo/balance/internal/service"
	"github.com/limbo/balance/pkg/cleanup"
	"github.com/limbo/balance/pkg/config"
	"github.com/limbo/balance/pkg/dateutil"
	"github.com/spf13/cobra"
)

var envFile string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "balancectl",
	Short: "Operate the Balance calendar database",
	Long:  "Runs migrations, imports legacy exports and prints calendar views and statistics as JSON.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if envFile != "" {
			os.Setenv("BALANCE_ENV_FILE", envFile)
		}
		service.InitValidator()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		cleanup.CleanUp()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&envFile, "env", "e", "", "Env file path (default: $BALANCE_ENV_FILE or ./configs/.env)")
}

func loadSettings() *app.Settings {
	settings := app.LoadSettings(config.New())
	app.SetupLogger(settings.LogLevel)
	return settings
}

func openServices() (*app.Services, *app.Settings) {
	settings := loadSettings()
	pool := repository.Connect(&settings.DB)
	return app.NewServices(pool, settings, nil), settings
}

func printJSON(v any) {
	b, err := sonic.ConfigDefault.MarshalIndent(v, "", "  ")
	if err != nil {
		exitErr("encode output", err)
	}
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	cleanup.CleanUp()
	os.Exit(1)
}

// parseDayArg reads an optional YYYY-MM-DD argument, today otherwise
func parseDayArg(args []string, now time.Time, loc *time.Location) (dateutil.Day, error) {
	if len(args) == 0 {
		return dateutil.DayOf(now, loc), nil
	}
	return dateutil.ParseDay(args[0])
}

// parseMonthArg reads an optional YYYY-MM argument, the current month otherwise
func parseMonthArg(args []string, now time.Time) (int, time.Month, error) {
	if len(args) == 0 {
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", args[0])
	if err != nil {
		return 0, 0, errors.New("invalid month " + args[0] + ", expected YYYY-MM")
	}
	return t.Year(), t.Month(), nil
}
