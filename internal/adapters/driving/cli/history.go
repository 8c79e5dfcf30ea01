package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously generated reports",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [report-id]",
	Short: "Print a stored report as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	ctx := context.Background()

	reports, err := reportService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	if len(reports) == 0 {
		cmd.Println("No reports yet.")
		return nil
	}

	for i := range reports {
		cmd.Printf("  %s\n", reports[i].ID)
		cmd.Printf("    File:      %s\n", reports[i].Filename)
		cmd.Printf("    Generated: %s\n", reports[i].CreatedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d reports\n", len(reports))
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	ctx := context.Background()

	report, err := reportService.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get report: %w", err)
	}

	data, err := json.MarshalIndent(report.Metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
