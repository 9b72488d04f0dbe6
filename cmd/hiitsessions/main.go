// Package main implements the hiitsessions CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/adibhanna/hiitsessions/internal/headless"
	"github.com/adibhanna/hiitsessions/internal/interval"
	"github.com/adibhanna/hiitsessions/internal/logging"
	"github.com/adibhanna/hiitsessions/internal/models"
	"github.com/adibhanna/hiitsessions/internal/storage"
	"github.com/adibhanna/hiitsessions/internal/ui/settings"
	"github.com/adibhanna/hiitsessions/internal/ui/timer"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "hiitsessions",
	Short:        "HIIT Sessions - a terminal interval timer alternating one-minute hit and rest phases",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runRoot,
}

var (
	rootMinutes   int
	rootCountdown bool
	rootClock     string
	rootHeadless  bool
	rootDataDir   string
)

func init() {
	rootCmd.Flags().IntVarP(&rootMinutes, "minutes", "m", 0, "session length in minutes (1-60)")
	rootCmd.Flags().BoolVar(&rootCountdown, "countdown", true, "show a 3-2-1 countdown before the first phase")
	rootCmd.Flags().StringVar(&rootClock, "clock", models.ClockFixed, "clock mode: fixed or monotonic")
	rootCmd.Flags().BoolVar(&rootHeadless, "headless", false, "print progress lines instead of the terminal UI")
	rootCmd.Flags().StringVar(&rootDataDir, "data-dir", "", "directory for config and logs (default ~/.hiitsessions)")
}

func runRoot(cmd *cobra.Command, _ []string) error {
	store, err := openStorage()
	if err != nil {
		return err
	}

	firstTime := store.IsFirstTime()
	config, err := store.GetConfig()
	if err != nil {
		return err
	}
	config = applyFlags(cmd, config)
	if err := config.Validate(); err != nil {
		return err
	}

	closer, err := logging.Setup(store.LogFile(), config.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	if rootHeadless || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runHeadless(cmd, config)
	}

	return runApp(cmd, store, config, firstTime)
}

func openStorage() (*storage.Storage, error) {
	if rootDataDir != "" {
		return storage.NewAt(rootDataDir)
	}
	return storage.New()
}

// applyFlags lets explicitly set flags override the stored config.
func applyFlags(cmd *cobra.Command, config models.Config) models.Config {
	flags := cmd.Flags()
	if flags.Changed("minutes") {
		config.SessionMinutes = rootMinutes
	}
	if flags.Changed("countdown") {
		config.Countdown = rootCountdown
	}
	if flags.Changed("clock") {
		config.Clock = rootClock
	}
	return config
}

func newController(config models.Config) (*interval.Controller, error) {
	source, err := interval.NewTickSource(config.Clock, time2.DefaultClock)
	if err != nil {
		return nil, err
	}

	ctrl, err := interval.New(interval.Options{
		Minutes:          config.SessionMinutes,
		Countdown:        config.Countdown,
		CountdownSeconds: config.CountdownSeconds,
		Source:           source,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create timer")
	}
	return ctrl, nil
}

func runHeadless(cmd *cobra.Command, config models.Config) error {
	ctrl, err := newController(config)
	if err != nil {
		return err
	}
	defer ctrl.Teardown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := headless.New(ctrl, cmd.OutOrStdout()).Run(ctx)
	if err != nil {
		return err
	}

	log.Info().
		Str("session_id", summary.SessionID).
		Bool("completed", summary.Completed).
		Int("flips", summary.Flips).
		Msg("headless session finished")
	return nil
}

func runApp(cmd *cobra.Command, store *storage.Storage, config models.Config, firstTime bool) error {
	if firstTime {
		fmt.Println("*** Welcome to HIIT Sessions! ***")
		fmt.Println("Let's set up your preferences...")

		saved, err := runSettings(store)
		if err != nil {
			return err
		}
		config = applyFlags(cmd, saved)
		fmt.Println("[OK] Setup complete! Let's get moving!")
	}

	for {
		ctrl, err := newController(config)
		if err != nil {
			return err
		}

		p := tea.NewProgram(timer.New(ctrl), tea.WithAltScreen())
		finalModel, err := p.Run()
		ctrl.Teardown()
		if err != nil {
			return errors.Wrap(err, "run timer")
		}

		timerModel := finalModel.(timer.Model)
		if timerModel.ShouldQuit() {
			fmt.Println(">>> See you next session!")
			return nil
		}
		if !timerModel.ShouldOpenSettings() {
			return nil
		}

		// Saved settings replace the flags for the rest of the run.
		if config, err = runSettings(store); err != nil {
			return err
		}
	}
}

// runSettings shows the settings form and returns the stored config
// afterwards, whether or not it was saved.
func runSettings(store *storage.Storage) (models.Config, error) {
	settingsModel, err := settings.New(store)
	if err != nil {
		return models.Config{}, err
	}

	p := tea.NewProgram(settingsModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return models.Config{}, errors.Wrap(err, "run settings")
	}

	return store.GetConfig()
}
