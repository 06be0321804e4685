package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's weight, intake and workouts against the goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd, func(s *services) error {
			dash, err := s.dailyLogs.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			today, goals := dash.Today, dash.Goals

			fmt.Fprintf(out, "Date: %s\n", today.Day)
			if today.Weight != nil {
				fmt.Fprintf(out, "Weight: %s kg (goal %s kg)\n", num(*today.Weight), num(goals.TargetWeight))
			} else {
				fmt.Fprintf(out, "Weight: not logged (goal %s kg)\n", num(goals.TargetWeight))
			}
			fmt.Fprintf(out, "Calories: %s / %s kcal\n", num(today.Totals.Calories), num(goals.Calories))
			fmt.Fprintf(out, "Protein: %s / %s g\n", num(today.Totals.Protein), num(goals.Protein))
			fmt.Fprintf(out, "Carbs: %s / %s g\n", num(today.Totals.Carbs), num(goals.Carbs))
			fmt.Fprintf(out, "Fats: %s / %s g\n", num(today.Totals.Fats), num(goals.Fats))
			if types := today.WorkoutTypes(); len(types) > 0 {
				fmt.Fprintf(out, "Workouts: %s\n", strings.Join(types, ", "))
			} else {
				fmt.Fprintln(out, "Workouts: none")
			}
			return nil
		})
	},
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
