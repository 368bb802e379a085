package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(
		&cobra.Command{
			Use:   "day [YYYY-MM-DD]",
			Short: "Print the day view with time slots and habits",
			Args:  cobra.MaximumNArgs(1),
			Run:   runDay,
		},
		&cobra.Command{
			Use:   "week [YYYY-MM-DD]",
			Short: "Print the week containing the date",
			Args:  cobra.MaximumNArgs(1),
			Run:   runWeek,
		},
		&cobra.Command{
			Use:   "month [YYYY-MM]",
			Short: "Print the month grid with marked days",
			Args:  cobra.MaximumNArgs(1),
			Run:   runMonth,
		},
	)
}

func runDay(cmd *cobra.Command, args []string) {
	services, settings := openServices()
	day, err := parseDayArg(args, services.Clock.Now(), settings.Location)
	if err != nil {
		exitErr("parse date", err)
	}
	view, err := services.Calendar.Day(cmd.Context(), day)
	if err != nil {
		exitErr("day", err)
	}
	printJSON(view)
}

func runWeek(cmd *cobra.Command, args []string) {
	services, settings := openServices()
	day, err := parseDayArg(args, services.Clock.Now(), settings.Location)
	if err != nil {
		exitErr("parse date", err)
	}
	view, err := services.Calendar.Week(cmd.Context(), day)
	if err != nil {
		exitErr("week", err)
	}
	printJSON(view)
}

func runMonth(cmd *cobra.Command, args []string) {
	services, _ := openServices()
	year, month, err := parseMonthArg(args, services.Clock.Now())
	if err != nil {
		exitErr("parse month", err)
	}
	view, err := services.Calendar.Month(cmd.Context(), year, month)
	if err != nil {
		exitErr("month", err)
	}
	printJSON(view)
}
