package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Inspect the publish schedule",
	Long:  "Show the configured publish schedule and preview upcoming runs",
}

var scheduleShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current publish schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		schedule, err := services.ScheduleService.GetSchedule(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load schedule: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Expression:\t%s\n", schedule.Expression)
		fmt.Fprintf(w, "Description:\t%s\n", schedule.Description)
		fmt.Fprintf(w, "Enabled:\t%t\n", schedule.Enabled)
		fmt.Fprintf(w, "Locale:\t%s\n", schedule.Locale)
		fmt.Fprintf(w, "Updated:\t%s\n", schedule.UpdatedAt.Format("2006-01-02 15:04:05"))
		w.Flush()

		return nil
	},
}

var schedulePreviewCount int

var schedulePreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview upcoming publish runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		runs, err := services.ScheduleService.Preview(cmd.Context(), schedulePreviewCount)
		if err != nil {
			return fmt.Errorf("failed to preview schedule: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No upcoming runs")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tRUN AT")
		for i, run := range runs {
			fmt.Fprintf(w, "%d\t%s\n", i+1, run.Format("2006-01-02 15:04"))
		}
		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.AddCommand(scheduleShowCmd)
	scheduleCmd.AddCommand(schedulePreviewCmd)
	schedulePreviewCmd.Flags().IntVarP(&schedulePreviewCount, "count", "n", 5, "number of runs to preview")
}
