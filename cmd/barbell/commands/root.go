package commands

import (
	"context"
	"fmt"
	"io"
	"log"

	"barbell/internal/config"
	"barbell/internal/loadout"
	"barbell/internal/render"
	"barbell/internal/trace"
	"barbell/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// env is what every command runs against, set up in PersistentPreRunE.
type env struct {
	cfg     config.Config
	shape   render.Shape
	tracer  *trace.Tracer
	loadout *loadout.Loadout
}

type flags struct {
	stateDir  string
	ephemeral bool
	shape     string
	envFile   string
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var f flags
	e := &env{}

	root := &cobra.Command{
		Use:           "barbell",
		Short:         "Barbell loading calculator",
		Long:          "Pick a bar, add plates, and see the loaded bar drawn to scale with its total weight.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd.Context(), f)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return e.tracer.Shutdown(context.Background())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runTUI()
		},
	}

	root.PersistentFlags().StringVar(&f.stateDir, "state-dir", "", "state directory (default $BARBELL_STATE_DIR or ~/.barbell)")
	root.PersistentFlags().BoolVar(&f.ephemeral, "ephemeral", false, "keep state in memory only")
	root.PersistentFlags().StringVar(&f.shape, "shape", "", "plate shape: side or disc (default $BARBELL_SHAPE or side)")
	root.PersistentFlags().StringVar(&f.envFile, "env-file", ".env", "environment file to load")

	root.AddCommand(
		totalCmd(e),
		showCmd(e),
		addCmd(e),
		removeCmd(e),
		barCmd(e),
		resetCmd(e),
		exportCmd(e),
	)
	return root
}

func (e *env) setup(ctx context.Context, f flags) error {
	cfg, err := config.Load(f.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if f.stateDir != "" {
		cfg.StateDir = f.stateDir
	}
	if f.shape != "" {
		cfg.Shape = f.shape
	}
	cfg.Ephemeral = f.ephemeral

	shape, err := cfg.PlateShape()
	if err != nil {
		return err
	}
	kv, err := cfg.Store()
	if err != nil {
		return err
	}

	tracer, err := trace.New(ctx)
	if err != nil {
		return fmt.Errorf("start tracing: %w", err)
	}

	e.cfg = cfg
	e.shape = shape
	e.tracer = tracer
	e.loadout = loadout.Open(kv, loadout.WithTracer(tracer))
	return nil
}

func (e *env) runTUI() error {
	if e.cfg.LogFile != "" {
		f, err := tea.LogToFile(e.cfg.LogFile, "barbell")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		// Log lines would corrupt the alt screen.
		log.SetOutput(io.Discard)
	}

	model := ui.NewAppModel(e.loadout, e.shape).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
