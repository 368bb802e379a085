package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(
		&cobra.Command{
			Use:   "stats",
			Short: "Print weekly and monthly summaries, mood distribution and streaks",
			Args:  cobra.NoArgs,
			Run:   runStats,
		},
		&cobra.Command{
			Use:   "streak [habit]",
			Short: "Print the mood logging streak, or the streak of a habit",
			Args:  cobra.MaximumNArgs(1),
			Run:   runStreak,
		},
	)
}

func runStats(cmd *cobra.Command, args []string) {
	services, _ := openServices()
	overview, err := services.Stats.Overview(cmd.Context())
	if err != nil {
		exitErr("stats", err)
	}
	printJSON(overview)
}

func runStreak(cmd *cobra.Command, args []string) {
	services, _ := openServices()
	if len(args) == 1 {
		stats, err := services.Habits.Stats(cmd.Context(), args[0])
		if err != nil {
			exitErr("habit streak", err)
		}
		printJSON(stats)
		return
	}
	overview, err := services.Stats.Overview(cmd.Context())
	if err != nil {
		exitErr("mood streak", err)
	}
	printJSON(map[string]int{
		"current_streak": overview.CurrentStreak,
		"longest_streak": overview.LongestStreak,
	})
}
