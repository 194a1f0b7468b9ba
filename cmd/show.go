package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chime/internal/timeline"
)

var showCmd = &cobra.Command{
	Use:   "show [schedule-file]",
	Short: "Print the current schedule state and exit",
	Long:  `Compute the display state for the current time and print it once, without starting the overlay.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	items, err := loadSchedule(args)
	if err != nil {
		return err
	}

	state := timeline.Compute(items, time.Now())

	fmt.Println(state.Title)
	if state.HasSubtitle {
		fmt.Println(state.Subtitle)
	}
	if state.HasRemaining {
		fmt.Println(timeline.FormatDuration(state.Remaining))
	}
	return nil
}
