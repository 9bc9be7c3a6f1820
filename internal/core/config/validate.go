package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
	"github.com/hay-kot/folio/internal/core/styles"
	"github.com/hay-kot/folio/internal/core/validate"
	"github.com/hay-kot/folio/pkg/tmpl"
)

// FooterData defines available fields for the tui.footer template.
type FooterData struct {
	Title    string // Title of the active panel
	Index    int    // Zero-based index of the active panel
	Position int    // One-based index of the active panel
	Total    int    // Number of panels in the deck
}

// OpenData defines available fields for the contact.open_command template.
type OpenData struct {
	URL   string // mailto: URL built from the contact address
	Email string // Raw contact address
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration including
// template syntax, glob patterns, and file accessibility. The configPath argument
// specifies the config file location to validate (empty string skips config file check).
// This calls Validate() first for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validatePanelFiles(),
		criterio.Run("content_glob", c.ContentGlob, globIsValid),
		criterio.Run("tui.theme", c.TUI.Theme, themeExists),
		criterio.Run("tui.footer", c.TUI.Footer, footerIsValid),
		criterio.Run("contact.email", c.Contact.Email, validate.Email),
		criterio.Run("contact.open_command", c.Contact.OpenCommand, openCommandIsValid),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	seen := make(map[string]bool, len(c.Panels))
	for i, p := range c.Panels {
		item := fmt.Sprintf("panels[%d]", i)
		if p.Body == "" && p.File == "" {
			warnings = append(warnings, ValidationWarning{
				Category: "Panels",
				Item:     item,
				Message:  fmt.Sprintf("panel %q has neither body nor file", p.Title),
			})
		}
		if seen[p.Title] {
			warnings = append(warnings, ValidationWarning{
				Category: "Panels",
				Item:     item,
				Message:  fmt.Sprintf("duplicate panel title %q", p.Title),
			})
		}
		seen[p.Title] = true
	}

	if c.ContentGlob != "" && doublestar.ValidatePattern(c.ContentGlob) {
		matches, err := doublestar.Glob(os.DirFS(c.ContentRoot()), c.ContentGlob)
		if err == nil && len(matches) == 0 {
			warnings = append(warnings, ValidationWarning{
				Category: "Content",
				Item:     "content_glob",
				Message:  fmt.Sprintf("pattern %q matches no files", c.ContentGlob),
			})
		}
	}

	if len(c.Panels) == 1 && c.ContentGlob == "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Panels",
			Message:  "a single panel cannot be navigated",
		})
	}

	return warnings
}

// ContentRoot returns the directory content_glob is matched against.
func (c *Config) ContentRoot() string {
	if c.ConfigDir == "" {
		return "."
	}
	return c.ConfigDir
}

// validateFileAccess checks the config file and data directory.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// validatePanelFiles checks that every panel file is a readable regular file.
func (c *Config) validatePanelFiles() error {
	var errs criterio.FieldErrorsBuilder
	for i, p := range c.Panels {
		if p.File == "" {
			continue
		}

		path := c.ResolvePath(p.File)
		info, err := os.Stat(path)
		switch {
		case err != nil:
			errs = errs.Append(fmt.Sprintf("panels[%d].file", i), fmt.Errorf("file not found: %s", p.File))
		case info.IsDir():
			errs = errs.Append(fmt.Sprintf("panels[%d].file", i), fmt.Errorf("%s is a directory", p.File))
		}
	}
	return errs.ToError()
}

func globIsValid(pattern string) error {
	if pattern == "" {
		return nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid glob %q", pattern)
	}
	return nil
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

func footerIsValid(src string) error {
	if src == "" {
		return nil
	}
	if _, err := tmpl.Render(src, FooterData{Title: "Home", Position: 1, Total: 1}); err != nil {
		return fmt.Errorf("template error: %w", err)
	}
	return nil
}

func openCommandIsValid(src string) error {
	if src == "" {
		return nil
	}
	data := OpenData{URL: "mailto:someone@example.com", Email: "someone@example.com"}
	if _, err := tmpl.Render(src, data); err != nil {
		return fmt.Errorf("template error: %w", err)
	}
	return nil
}

