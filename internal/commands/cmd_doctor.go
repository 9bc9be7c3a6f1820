package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/folio/internal/core/doctor"
	"github.com/hay-kot/folio/internal/core/styles"
	"github.com/hay-kot/folio/pkg/iojson"
)

type DoctorCmd struct {
	flags  *Flags
	format string
}

// NewDoctorCmd creates a new doctor command.
func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags}
}

// Register adds the doctor command to the application.
func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Run health checks on your folio setup",
		UsageText:   "folio doctor [options]",
		Description: "Runs diagnostic checks on configuration, content, and the helpers behind copy and open.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

type summaryJSON struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	results := doctor.RunAll(ctx, []doctor.Check{
		doctor.NewConfigCheck(cfg, cmd.flags.ConfigPath),
		doctor.NewContentCheck(cfg),
		doctor.NewToolsCheck(cfg.Contact),
	})

	passed, warned, failed := doctor.Summary(results)

	w := c.Root().Writer
	if cmd.format == "json" {
		out := struct {
			Healthy bool            `json:"healthy"`
			Summary summaryJSON     `json:"summary"`
			Checks  []doctor.Result `json:"checks"`
		}{
			Healthy: failed == 0,
			Summary: summaryJSON{Passed: passed, Warned: warned, Failed: failed},
			Checks:  results,
		}
		if err := iojson.WriteWith(w, os.Stderr, out); err != nil {
			return err
		}
	} else {
		writeDoctor(w, results)
	}

	if failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func writeDoctor(w io.Writer, results []doctor.Result) {
	_, _ = fmt.Fprintln(w, styles.CommandHeaderStyle.Render("folio doctor"))
	_, _ = fmt.Fprintln(w, styles.DividerStyle.Render(strings.Repeat("─", 40)))

	for _, result := range results {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, styles.PanelTitleStyle.Render(result.Name))

		for _, item := range result.Items {
			var icon string
			switch item.Status {
			case doctor.StatusPass:
				icon = styles.ToastInfoStyle.Render("✔")
			case doctor.StatusWarn:
				icon = styles.ToastWarningStyle.Render("●")
			case doctor.StatusFail:
				icon = styles.ToastErrorStyle.Render("✘")
			}

			detail := ""
			if item.Detail != "" {
				detail = " " + styles.PlaceholderStyle.Render(item.Detail)
			}
			_, _ = fmt.Fprintf(w, "  %s %s%s\n", icon, item.Label, detail)
		}
	}

	passed, warned, failed := doctor.Summary(results)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "%d passed  %d warnings  %d failed\n", passed, warned, failed)
}
