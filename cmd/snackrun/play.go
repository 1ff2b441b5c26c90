package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snackrun/internal/config"
	"github.com/vovakirdan/snackrun/internal/core"
	"github.com/vovakirdan/snackrun/internal/games/snacks"
	"github.com/vovakirdan/snackrun/internal/platform/driver"
	"github.com/vovakirdan/snackrun/internal/registry"
)

var (
	flagFrontend string
	flagFPS      int
	flagSeed     int64
	flagLog      string
	flagLogLevel string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Marathon Snack Collector.

Controls (default bindings, see 'snackrun config'):
  A/D, Q/D, Left/Right - Move
  P                    - Pause/Resume
  H                    - Help
  R                    - Restart (after game over)
  Q                    - Quit (from help or game over)
  Ctrl+C               - Exit immediately (terminal)

Logs go to stderr for the window frontend. The terminal frontend only logs
when --log is given, since stderr shares the screen.

Examples:
  snackrun play
  snackrun play --frontend window
  snackrun play --seed 42
  snackrun play --log snackrun.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "", "Frontend to use: terminal or window (default from config)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (default from config)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagLog, "log", "", "Write logs to this file")
	playCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, source, err := config.LoadSnacks(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file
	if cmd.Flags().Changed("frontend") {
		cfg.Display.Frontend = flagFrontend
	}
	if cmd.Flags().Changed("fps") {
		cfg.Display.FPS = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	frontend, err := registry.Create(cfg.Display.Frontend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'snackrun frontends' to see available frontends.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg.Display.Frontend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "source", source, "frontend", frontend.ID())

	// Terminal size; the terminal frontend refines it on the first resize event
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.FPS,
		Seed:     flagSeed,
	}

	d := driver.New(snacks.New(snacks.SystemClock()), logger)
	runErr := frontend.Run(registry.Options{
		Driver:  d,
		Config:  cfg,
		Runtime: rt,
	})

	// Close the log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newLogger builds the logger for a run. The returned func closes the log file.
func newLogger(frontend string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	switch {
	case flagLog != "":
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Nothing left to report to
			f.Close()
		}
	case frontend == config.FrontendWindow:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snackrun",
		Level:           level,
	})
	return logger, closeFn, nil
}
