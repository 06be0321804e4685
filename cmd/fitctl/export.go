package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	exportOut     string
	exportArchive bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every day as CSV, to stdout, a file or the S3 bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd, func(s *services) error {
			if exportArchive {
				res, err := s.export.Archive(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Archived %d rows to %s\n", res.Rows, res.Key)
				fmt.Fprintf(cmd.OutOrStdout(), "Download (until %s): %s\n", res.ExpiresAt.Format("2006-01-02 15:04"), res.URL)
				return nil
			}

			if strings.TrimSpace(exportOut) == "" {
				return s.export.WriteCSV(cmd.Context(), cmd.OutOrStdout())
			}
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create export csv: %w", err)
			}
			if err := s.export.WriteCSV(cmd.Context(), f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close export csv: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", exportOut)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default stdout)")
	exportCmd.Flags().BoolVar(&exportArchive, "archive", false, "Upload to the configured bucket and print a download link")
}
