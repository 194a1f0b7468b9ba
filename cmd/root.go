package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"

	"chime/internal/config"
	"chime/internal/schedule"
	"chime/internal/ui"
)

// DefaultScheduleFileName is looked up next to the executable when no
// schedule path is given on the command line.
const DefaultScheduleFileName = "Bell-Schedule.txt"

var (
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "chime [schedule-file]",
	Short: "A bell-schedule countdown overlay for the terminal",
	Long: `Chime shows which school period is happening now and how much time
remains in it. The panel is inert by default; hold CTRL+SHIFT to unlock it,
then drag to move, drag an edge or corner to resize, or right-click for the
menu.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOverlay,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file")
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	var err error
	cfg, err = config.LoadOrCreate(path)
	if err != nil {
		// A broken config never stops the overlay; run on defaults.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		cfg = config.DefaultConfig()
	}
}

func runOverlay(cmd *cobra.Command, args []string) error {
	items, err := loadSchedule(args)
	if err != nil {
		return err
	}

	model := ui.NewModel(cfg, items)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	// Live-reload the config so recoloring does not need a restart. The
	// schedule itself is loaded exactly once, above.
	configPath := cfgFile
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	watcher, err := config.WatchFile(configPath, func() {
		if reloaded, err := config.LoadOrCreate(configPath); err == nil {
			p.Send(ui.ConfigReloadedMsg{Config: reloaded})
		}
	})
	if err == nil {
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// loadSchedule resolves the schedule path (positional argument, or the
// default file next to the executable) and parses it. A missing file prints
// a diagnostic and exits 1, matching the overlay's startup contract.
func loadSchedule(args []string) ([]schedule.Item, error) {
	path := defaultSchedulePath()
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err != nil {
		fmt.Printf("Schedule file not found: %s\n", path)
		os.Exit(1)
	}

	items, err := schedule.Load(path)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func defaultSchedulePath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultScheduleFileName
	}
	return filepath.Join(filepath.Dir(exe), DefaultScheduleFileName)
}
