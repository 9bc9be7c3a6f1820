package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/folio/internal/content"
	"github.com/hay-kot/folio/internal/core/eventbus"
	"github.com/hay-kot/folio/internal/core/logging"
	"github.com/hay-kot/folio/internal/core/styles"
	"github.com/hay-kot/folio/internal/tui"
	"github.com/hay-kot/folio/pkg/utils"
)

const busBuffer = 64

type TuiCmd struct {
	flags *Flags
	start int
	pick  bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "start",
			Usage:       "panel number to open on (1-based)",
			Destination: &cmd.start,
		},
		&cli.BoolFlag{
			Name:        "pick",
			Usage:       "choose the starting panel from a list",
			Destination: &cmd.pick,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("folio needs an interactive terminal; use 'folio panels' to list content")
	}

	cfg := cmd.flags.Config
	sources, err := content.Resolve(ctx, cfg)
	if err != nil {
		return fmt.Errorf("resolve panels: %w", err)
	}
	if len(sources) == 0 {
		return errors.New("no panels to show")
	}

	start := max(cmd.start-1, 0)
	if cmd.pick {
		start, err = pickStart(ctx, sources)
		if err != nil {
			return err
		}
	}

	// Warnings are printed after the alternate screen is released.
	var deferred utils.DeferredWriter
	for _, w := range cfg.Warnings() {
		log.Warn().Str("category", w.Category).Str("item", w.Item).Msg(w.Message)
		deferred.Printf("warning: %s: %s", w.Category, w.Message)
	}
	defer func() {
		if deferred.Pending() {
			_ = deferred.Flush(os.Stderr)
		}
	}()

	busCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	bus := eventbus.New(busBuffer)
	eventbus.RegisterDebugLogger(bus, logging.Component("eventbus"))
	eventbus.NewNotificationRouter(bus).Register()
	go bus.Start(busCtx)

	m, err := tui.New(tui.Options{
		Config:  cfg,
		Sources: sources,
		Bus:     bus,
		Start:   start,
	})
	if err != nil {
		return fmt.Errorf("build tui: %w", err)
	}

	bus.PublishTuiStarted(eventbus.TUIStartedPayload{Panels: len(sources)})

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if model, ok := final.(tui.Model); ok {
		bus.PublishTuiStopped(eventbus.TUIStoppedPayload{LastPanel: model.Stack().Current()})
	}

	return nil
}

// pickStart asks for the starting panel with a select form.
func pickStart(ctx context.Context, sources []content.Source) (int, error) {
	options := make([]huh.Option[int], len(sources))
	for i, s := range sources {
		options[i] = huh.NewOption(fmt.Sprintf("%d. %s", i+1, s.Title), i)
	}

	var choice int
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Start at").
				Options(options...).
				Value(&choice),
		),
	).WithTheme(styles.FormTheme()).RunWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("pick start panel: %w", err)
	}

	return choice, nil
}
