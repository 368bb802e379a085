package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a legacy JSON export",
		Long:  "Stores events, wellness activities, moods, notes and habits from an export file. Entries that can't be parsed are listed as skipped.",
		Args:  cobra.ExactArgs(1),
		Run:   runImport,
	}
	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	f, err := os.Open(args[0])
	if err != nil {
		exitErr("open export", err)
	}
	defer f.Close()

	services, _ := openServices()
	report, err := services.Import.Import(cmd.Context(), f)
	if err != nil {
		exitErr("import", err)
	}
	printJSON(report)
}
