package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"fitcoach/fitness-coach/internal/ai"

	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate <food description...>",
	Short: "Estimate calories and macros of a food with the nutrition models",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		food := strings.Join(args, " ")
		return withServices(cmd, func(s *services) error {
			raw, err := s.nutrition.Estimate(cmd.Context(), []ai.Message{{Role: "user", Content: food}})
			if err != nil {
				return err
			}
			var resp ai.ChatResponse
			if err := json.Unmarshal(raw, &resp); err != nil {
				return fmt.Errorf("decode completion: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(resp.Text()))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}
