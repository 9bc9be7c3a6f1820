package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/folio/internal/content"
	"github.com/hay-kot/folio/internal/core/styles"
	"github.com/hay-kot/folio/pkg/iojson"
)

type PanelsCmd struct {
	flags *Flags
	json  bool
}

// NewPanelsCmd creates a new panels command.
func NewPanelsCmd(flags *Flags) *PanelsCmd {
	return &PanelsCmd{flags: flags}
}

// Register adds the panels command to the application.
func (cmd *PanelsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "panels",
		Usage:       "List the panels in the deck",
		UsageText:   "folio panels [options]",
		Description: "Prints the configured panels followed by those discovered through content_glob, in navigation order.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *PanelsCmd) run(ctx context.Context, c *cli.Command) error {
	sources, err := content.Resolve(ctx, cmd.flags.Config)
	if err != nil {
		if cmd.json {
			_ = iojson.WriteError("resolve panels", map[string]any{
				"content_glob": cmd.flags.Config.ContentGlob,
				"error":        err.Error(),
			})
		}
		return fmt.Errorf("resolve panels: %w", err)
	}

	w := c.Root().Writer
	if cmd.json {
		return iojson.WriteWith(w, os.Stderr, sources)
	}

	for i, s := range sources {
		origin := "inline"
		if s.Path != "" {
			origin = s.Path
		}
		if s.Lazy {
			origin += " (lazy)"
		}
		_, _ = fmt.Fprintf(w, "%s %s  %s\n",
			styles.CommandHeaderStyle.Render(fmt.Sprintf("%2d.", i+1)),
			s.Title,
			styles.DividerStyle.Render(origin),
		)
	}
	return nil
}
