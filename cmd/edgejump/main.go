package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yourusername/edgejump/internal/config"
	"github.com/yourusername/edgejump/internal/engine"
	"github.com/yourusername/edgejump/internal/logging"
	"github.com/yourusername/edgejump/internal/native"
	"github.com/yourusername/edgejump/internal/output"
	"github.com/yourusername/edgejump/internal/platform"
	"github.com/yourusername/edgejump/internal/relocate"
	"github.com/yourusername/edgejump/internal/screen"
	"github.com/yourusername/edgejump/internal/types"
)

var (
	configPath string
	socketPath string
	timeout    time.Duration
	backend    string
	logFile    string
	jsonOutput bool
	noColor    bool
	debugMode  bool

	// Policy overrides
	noJump    bool
	noUnstick bool
	wrap      bool

	// show flags
	showASCII    bool
	showUnicode  bool
	showWidth    int
	showHeight   int
	showScenario string

	// Color functions
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	keyColor     = color.New(color.FgYellow)
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "edgejump",
	Short: "Keep the mouse cursor from getting stuck between screens",
	Long: `edgejump watches raw mouse input and moves the cursor onto the adjacent
screen when it would otherwise stop at a screen edge.

Three independent policies apply:
  unstick  the mouse is already on the neighbor; correct the cursor (DPI aware)
  jump     cross a gap between screens that do not touch
  wrap     leave the leftmost/rightmost edge and enter from the opposite side`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// runCmd subscribes to the input helper and relocates the cursor
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the cursor relocation engine",
	Long: `Connects to the input helper, subscribes to raw mouse input and answers
every mouse event until interrupted. Screen changes rebuild the topology.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Platform.Backend != "helper" {
			return fmt.Errorf("run needs the helper backend: the %s backend has no input hook", cfg.Platform.Backend)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		e := newEngine(cfg, cfg.Policy())
		c := platform.NewClient(cfg.Platform.Socket, cfg.Timeout(), logging.Logger)
		defer c.Close()

		policy := e.Policy()
		successColor.Println("✓ edgejump running")
		fmt.Printf("  unstick=%v jump=%v wrap=%v\n", policy.AllowUnstick, policy.AllowJump, policy.AllowWrap)
		logging.Info().
			Bool("unstick", policy.AllowUnstick).
			Bool("jump", policy.AllowJump).
			Bool("wrap", policy.AllowWrap).
			Str("socket", cfg.Platform.Socket).
			Msg("starting")

		serveErr := c.Serve(ctx, e)

		st := e.Stats()
		logging.Info().
			Uint64("jumps", st.Jumps).
			Uint64("evaluations", st.Evaluations).
			Msg("stopped")

		if serveErr != nil {
			return serveErr
		}
		if jsonOutput {
			return printJSON(st)
		}
		output.PrintStats(os.Stdout, st)
		return nil
	},
}

// simulateCmd replays a scenario file offline
var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario>",
	Short: "Replay recorded samples against a screen layout",
	Long: `Loads a scenario (screens plus samples, YAML or JSON), runs every sample
through the engine and prints the decisions. Samples with an "expect" position
are checked; any mismatch makes the command fail.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		sc, err := config.LoadScenario(args[0])
		if err != nil {
			return err
		}

		policy := applyPolicyFlags(cmd, sc.Policy.Apply(cfg.Policy()))
		if sc.ReferenceDPI > 0 {
			cfg.Settings.ReferenceDPI = sc.ReferenceDPI
		}
		e := newEngine(cfg, policy)
		e.Reconfigure(sc.ToScreens())
		e.Seed(sc.SeedPoint())

		rows := make([]output.DecisionRow, 0, len(sc.Samples))
		failed := 0
		for i, s := range sc.Samples {
			row := output.DecisionRow{
				Index:    i,
				Sample:   s.ToSample(),
				Decision: e.Evaluate(s.ToSample()),
			}
			if p, ok := s.ExpectPoint(); ok {
				row.Expect = &p
			}
			if !row.Matches() {
				failed++
			}
			rows = append(rows, row)
		}

		if jsonOutput {
			if err := printJSON(decisionsJSON(rows)); err != nil {
				return err
			}
		} else {
			output.PrintDecisionsTable(os.Stdout, rows)
			st := e.Stats()
			fmt.Printf("%d samples, %d relocations, %d declined\n", len(rows), st.Jumps, st.Declined)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d samples did not match their expectation", failed, len(rows))
		}
		return nil
	},
}

// screensCmd lists the physical screens
var screensCmd = &cobra.Command{
	Use:   "screens",
	Short: "List screens as the engine sees them",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		topo, err := fetchTopology(cfg)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(topo.Screens())
		}
		output.PrintScreensTable(os.Stdout, topo)
		keyColor.Print("Virtual desktop: ")
		fmt.Println(topo.Bounds())
		return nil
	},
}

// showCmd draws the screen layout
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Draw the screen layout in the terminal",
	Long: `Draws every screen of the virtual desktop as a box, with the cursor
marked '*'. With --scenario the screens come from a scenario file instead of
the platform.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		var topo *screen.Topology
		var marks []output.Mark

		if showScenario != "" {
			sc, err := config.LoadScenario(showScenario)
			if err != nil {
				return err
			}
			topo = screen.NewTopology(sc.ToScreens(), cfg.Settings.ReferenceDPI)
			marks = append(marks, output.Mark{Point: sc.SeedPoint(), Rune: '*'})
		} else {
			src, closeFn, err := openBackend(cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			screens, err := src.Screens(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list screens: %w", err)
			}
			topo = screen.NewTopology(screens, cfg.Settings.ReferenceDPI)

			if p, err := src.CursorPos(context.Background()); err == nil {
				marks = append(marks, output.Mark{Point: p, Rune: '*'})
			} else {
				logging.Debug().Err(err).Msg("cursor position unavailable")
			}
		}

		output.PrintTopology(os.Stdout, topo, getVisualizationOptions(), marks...)
		fmt.Printf("%d screens, desktop %s, * = cursor\n", topo.Len(), topo.Bounds())
		return nil
	},
}

// cursorCmd gets or sets the cursor position
var cursorCmd = &cobra.Command{
	Use:   "cursor [x y]",
	Short: "Print or set the cursor position",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected no arguments or <x> <y>, got %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		src, closeFn, err := openBackend(cfg)
		if err != nil {
			return err
		}
		defer closeFn()
		ctx := context.Background()

		if len(args) == 2 {
			x, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid x: %w", err)
			}
			y, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid y: %w", err)
			}
			p := types.Point{X: x, Y: y}
			if err := src.SetCursorPos(ctx, p); err != nil {
				return fmt.Errorf("failed to set cursor: %w", err)
			}
			successColor.Printf("✓ Cursor moved to %s\n", p)
			return nil
		}

		p, err := src.CursorPos(ctx)
		if err != nil {
			return fmt.Errorf("failed to get cursor: %w", err)
		}
		if jsonOutput {
			return printJSON(p)
		}

		fmt.Println(p)
		if screens, err := src.Screens(ctx); err == nil {
			topo := screen.NewTopology(screens, cfg.Settings.ReferenceDPI)
			if s := topo.WhichScreen(p); s != nil {
				keyColor.Print("Screen: ")
				fmt.Printf("%d (%s, %ddpi)\n", s.ID, s.Name, s.DPI)
			} else {
				warnColor.Println("Cursor is outside every screen")
			}
		}
		return nil
	},
}

// pingCmd tests helper connectivity
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test connection to the input helper",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		c := platform.NewClient(cfg.Platform.Socket, cfg.Timeout(), logging.Logger)
		defer c.Close()

		start := time.Now()
		result, err := c.Ping(context.Background())
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("ping failed: %w", err)
		}

		if jsonOutput {
			return printJSON(result)
		}

		successColor.Println("✓ Pong received")
		fmt.Printf("Response time: %v\n", elapsed)
		if v, ok := result["version"].(string); ok {
			keyColor.Print("Helper version: ")
			fmt.Println(v)
		}
		return nil
	},
}

// MARK: - Config Commands

// configCmd is the parent command for config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Commands for showing, validating and creating the edgejump configuration.`,
}

// configShowCmd shows the effective config
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cfg)
		}
		data, err := cfg.Marshal("yaml")
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

// configValidateCmd validates a config file
var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if len(args) > 0 {
			path = args[0]
		}

		cfg, err := config.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		policy := cfg.Policy()
		successColor.Println("✓ Configuration is valid")
		fmt.Printf("  Policy: unstick=%v jump=%v wrap=%v\n", policy.AllowUnstick, policy.AllowJump, policy.AllowWrap)
		fmt.Printf("  Reference DPI: %d\n", cfg.Settings.ReferenceDPI)
		fmt.Printf("  Backend: %s\n", cfg.Platform.Backend)
		return nil
	},
}

// configInitCmd writes the default config
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.GetConfigPath()
		}

		// Check if file exists
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s", path)
		}

		format := "yaml"
		if filepath.Ext(path) == ".json" {
			format = "json"
		}
		data, err := config.DefaultConfig().Marshal(format)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		successColor.Printf("✓ Created default config at: %s\n", path)
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/edgejump/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", platform.DefaultSocketPath, "Input helper Unix socket path")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", platform.DefaultTimeout, "Helper request timeout")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "helper", "Screen/cursor backend: helper or native")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file, - for stderr (default ~/.local/state/edgejump/edgejump.log)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	// Policy flags
	for _, cmd := range []*cobra.Command{runCmd, simulateCmd} {
		cmd.Flags().BoolVar(&noJump, "no-jump", false, "Disable jumping across gaps")
		cmd.Flags().BoolVar(&noUnstick, "no-unstick", false, "Disable unsticking")
		cmd.Flags().BoolVar(&wrap, "wrap", false, "Enable wrapping at the outer left/right edges")
	}

	// show flags
	showCmd.Flags().BoolVar(&showASCII, "ascii", false, "Use ASCII box drawing")
	showCmd.Flags().BoolVar(&showUnicode, "unicode", false, "Use Unicode box drawing")
	showCmd.Flags().IntVar(&showWidth, "width", 0, "Diagram width (default: terminal width)")
	showCmd.Flags().IntVar(&showHeight, "height", 0, "Diagram height (default: terminal height)")
	showCmd.Flags().StringVar(&showScenario, "scenario", "", "Draw the screens of a scenario file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(screensCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(cursorCmd)
	rootCmd.AddCommand(pingCmd)

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configInitCmd)

	// Disable color if requested, start logging
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
		if err := logging.Init(logFile); err != nil {
			warnColor.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
		}
		if debugMode {
			logging.SetDebug(true)
		}
	})
}

func main() {
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		printError(err.Error())
		logging.Close()
		os.Exit(1)
	}
}

// Helper functions

// loadConfig reads the config file and applies global flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("socket") {
		cfg.Platform.Socket = socketPath
	}
	if flags.Changed("timeout") {
		cfg.Platform.TimeoutMs = int(timeout / time.Millisecond)
	}
	if flags.Changed("backend") {
		cfg.Platform.Backend = backend
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if !debugMode {
		logging.SetLevel(cfg.Settings.LogLevel)
	}

	p := applyPolicyFlags(cmd, cfg.Policy())
	cfg.Settings.AllowJump = p.AllowJump
	cfg.Settings.AllowUnstick = p.AllowUnstick
	cfg.Settings.AllowWrap = p.AllowWrap
	return cfg, nil
}

// applyPolicyFlags overlays --no-jump, --no-unstick and --wrap when given
func applyPolicyFlags(cmd *cobra.Command, p relocate.Policy) relocate.Policy {
	flags := cmd.Flags()
	if flags.Lookup("no-jump") == nil {
		return p
	}
	if flags.Changed("no-jump") {
		p.AllowJump = !noJump
	}
	if flags.Changed("no-unstick") {
		p.AllowUnstick = !noUnstick
	}
	if flags.Changed("wrap") {
		p.AllowWrap = wrap
	}
	return p
}

func newEngine(cfg *config.Config, policy relocate.Policy) *engine.Engine {
	return engine.New(engine.Options{
		Policy:       policy,
		ReferenceDPI: cfg.Settings.ReferenceDPI,
		Logger:       logging.Logger,
	})
}

// backendSource is what the screens, show and cursor commands need
type backendSource interface {
	engine.ScreenSource
	engine.CursorController
}

// openBackend returns the configured backend and its close function
func openBackend(cfg *config.Config) (backendSource, func(), error) {
	switch cfg.Platform.Backend {
	case "native":
		if err := native.EnablePerMonitorDPI(); err != nil {
			if errors.Is(err, native.ErrUnsupported) {
				return nil, nil, err
			}
			logging.Warn().Err(err).Msg("per-monitor DPI awareness unavailable")
		}
		return native.New(cfg.Settings.ReferenceDPI), func() {}, nil
	default:
		c := platform.NewClient(cfg.Platform.Socket, cfg.Timeout(), logging.Logger)
		return c, func() { c.Close() }, nil
	}
}

// fetchTopology builds a topology from the configured backend
func fetchTopology(cfg *config.Config) (*screen.Topology, error) {
	src, closeFn, err := openBackend(cfg)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	e := newEngine(cfg, cfg.Policy())
	topo, err := e.Refresh(context.Background(), src)
	if err != nil {
		return nil, fmt.Errorf("failed to list screens: %w", err)
	}
	return topo, nil
}

type decisionJSON struct {
	Index    int          `json:"index"`
	Kind     string       `json:"kind"`
	Mouse    types.Point  `json:"mouse"`
	Cursor   types.Point  `json:"cursor"`
	Moved    bool         `json:"moved"`
	Position *types.Point `json:"position,omitempty"`
	Action   string       `json:"action"`
	Reason   string       `json:"reason,omitempty"`
	Target   string       `json:"target,omitempty"`
	Expect   *types.Point `json:"expect,omitempty"`
	Match    bool         `json:"match"`
}

func decisionsJSON(rows []output.DecisionRow) []decisionJSON {
	out := make([]decisionJSON, 0, len(rows))
	for _, r := range rows {
		d := decisionJSON{
			Index:  r.Index,
			Kind:   string(r.Sample.Kind),
			Mouse:  r.Sample.Mouse,
			Cursor: r.Sample.Cursor,
			Moved:  r.Decision.Moved,
			Action: string(r.Decision.Action),
			Reason: string(r.Decision.Reason),
			Expect: r.Expect,
			Match:  r.Matches(),
		}
		if r.Decision.Moved {
			p := r.Decision.Position
			d.Position = &p
		}
		if r.Decision.Target != nil {
			d.Target = r.Decision.Target.Name
		}
		out = append(out, d)
	}
	return out
}

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}

// getVisualizationOptions builds options from flags
func getVisualizationOptions() output.VisualizationOptions {
	opts := output.DefaultVisualizationOptions()

	// Override with flags if set
	if showASCII {
		opts.UseUnicode = false
	}
	if showUnicode {
		opts.UseUnicode = true
	}
	if showWidth > 0 {
		opts.MaxWidth = showWidth
	}
	if showHeight > 0 {
		opts.MaxHeight = showHeight
	}

	return opts
}
