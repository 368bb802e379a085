package cli

import (
	"fmt"

	"github.com/limbo/balance/internal/repository"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "migrate [dir]",
		Short: "Apply database migrations",
		Long:  "Applies pending goose migrations from dir, $MIGRATIONS_DIR or ./migrations.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runMigrate,
	}
	RootCmd.AddCommand(cmd)
}

func runMigrate(cmd *cobra.Command, args []string) {
	settings := loadSettings()
	dir := settings.MigrationsDir
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		dir = "./migrations"
	}
	if err := repository.Migrate(&settings.DB, dir); err != nil {
		exitErr("migrate", err)
	}
	fmt.Println("migrations applied from " + dir)
}
