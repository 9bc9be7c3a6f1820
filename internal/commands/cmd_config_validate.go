package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/folio/internal/core/config"
	"github.com/hay-kot/folio/internal/core/styles"
	"github.com/hay-kot/folio/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "folio config validate [options]",
				Description: "Validates the configuration file, checking panel files, glob patterns, templates, and the theme.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationReport struct {
	Valid    bool                       `json:"valid"`
	Errors   []validationError          `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	report := buildReport(cmd.flags.Config, cmd.flags.ConfigPath)

	w := c.Root().Writer
	if cmd.format == "json" {
		if err := iojson.WriteWith(w, os.Stderr, report); err != nil {
			return err
		}
	} else {
		writeReport(w, report)
	}

	if !report.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func buildReport(cfg *config.Config, configPath string) validationReport {
	report := validationReport{Valid: true, Warnings: cfg.Warnings()}

	err := cfg.ValidateDeep(configPath)
	if err == nil {
		return report
	}

	report.Valid = false
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			report.Errors = append(report.Errors, validationError{Field: fe.Field, Message: fe.Err.Error()})
		}
		return report
	}

	report.Errors = append(report.Errors, validationError{Field: "config", Message: err.Error()})
	return report
}

func writeReport(w io.Writer, report validationReport) {
	for _, warn := range report.Warnings {
		line := fmt.Sprintf("warning  %s: %s", warn.Category, warn.Message)
		if warn.Item != "" {
			line += fmt.Sprintf(" (%s)", warn.Item)
		}
		_, _ = fmt.Fprintln(w, styles.ToastWarningStyle.Render(" ! ")+" "+line)
	}

	for _, e := range report.Errors {
		_, _ = fmt.Fprintln(w, styles.ToastErrorStyle.Render(" x ")+" "+e.Field+": "+e.Message)
	}

	_, _ = fmt.Fprintln(w)
	if report.Valid {
		_, _ = fmt.Fprintln(w, styles.CommandHeaderStyle.Render("Configuration is valid"))
		return
	}
	_, _ = fmt.Fprintf(w, "%d error(s) found\n", len(report.Errors))
}
