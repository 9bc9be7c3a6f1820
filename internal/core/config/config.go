// Package config handles configuration loading and validation for folio.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/folio/internal/core/validate"
)

// Default navigation tuning values.
const (
	DefaultTransitionDuration = 700 * time.Millisecond
	DefaultDragThreshold      = 150.0
	DefaultPreviewScale       = 300.0
	DefaultWheelThreshold     = 300.0
	DefaultWheelDebounce      = 150 * time.Millisecond
	DefaultWheelTickDelta     = 100.0
	DefaultDragUnitsPerRow    = 25.0
)

// Default TUI timing values.
const (
	DefaultFrameInterval  = 16 * time.Millisecond
	DefaultTypingInterval = 60 * time.Millisecond
	DefaultFooter         = "viewing {{ .Title }} ({{ .Position }}/{{ .Total }})"
)

// Config holds the application configuration.
type Config struct {
	Navigation  NavigationConfig `yaml:"navigation"`
	Panels      []PanelConfig    `yaml:"panels"`
	ContentGlob string           `yaml:"content_glob"`
	TUI         TUIConfig        `yaml:"tui"`
	Contact     ContactConfig    `yaml:"contact"`
	DataDir     string           `yaml:"-"` // set by caller, not from config file
	ConfigDir   string           `yaml:"-"` // directory of the loaded config file
}

// NavigationConfig tunes the panel stack and its gesture adapters.
// Distances are in abstract gesture units; the TUI converts terminal rows and
// wheel events into units using DragUnitsPerRow and WheelTickDelta.
type NavigationConfig struct {
	TransitionDuration time.Duration `yaml:"transition_duration"`
	DragThreshold      float64       `yaml:"drag_threshold"`
	PreviewScale       float64       `yaml:"preview_scale"`
	WheelThreshold     float64       `yaml:"wheel_threshold"`
	WheelDebounce      time.Duration `yaml:"wheel_debounce"`
	WheelTickDelta     float64       `yaml:"wheel_tick_delta"`
	DragUnitsPerRow    float64       `yaml:"drag_units_per_row"`
}

// PanelConfig declares one panel. Exactly one of Body or File should be set.
type PanelConfig struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	File  string `yaml:"file"` // markdown file, relative to the config file
	Lazy  bool   `yaml:"lazy"` // defer rendering File until first activation
}

// TUIConfig holds terminal UI presentation settings.
type TUIConfig struct {
	Theme          string        `yaml:"theme"`
	FrameInterval  time.Duration `yaml:"frame_interval"`
	TypingInterval time.Duration `yaml:"typing_interval"`
	Headline       string        `yaml:"headline"`
	Footer         string        `yaml:"footer"` // text/template rendered against the active panel
}

// ContactConfig holds the contact details surfaced on the contact panel.
type ContactConfig struct {
	Email       string `yaml:"email"`
	OpenCommand string `yaml:"open_command"` // text/template, see OpenData
}

// DefaultConfig returns a Config with sensible defaults and a demo deck.
func DefaultConfig() Config {
	return Config{
		Navigation: NavigationConfig{
			TransitionDuration: DefaultTransitionDuration,
			DragThreshold:      DefaultDragThreshold,
			PreviewScale:       DefaultPreviewScale,
			WheelThreshold:     DefaultWheelThreshold,
			WheelDebounce:      DefaultWheelDebounce,
			WheelTickDelta:     DefaultWheelTickDelta,
			DragUnitsPerRow:    DefaultDragUnitsPerRow,
		},
		Panels: []PanelConfig{
			{
				Title: "Home",
				Body:  "# Hello\n\nScroll, drag, or press `n` to move through the panels.",
			},
			{
				Title: "Work",
				Body:  "# Work\n\nEach panel slides over the one before it.\n\nDrag up past the threshold to commit, release early to snap back.",
			},
			{
				Title: "About",
				Body:  "# About\n\nFrom the last panel, stepping back returns to wherever you came from.",
			},
			{
				Title: "Contact",
				Body:  "# Contact\n\nPress `y` to copy the address below.",
			},
		},
		Contact: ContactConfig{
			OpenCommand: defaultOpenCommand(),
		},
		TUI: TUIConfig{
			Theme:          "tokyo-night",
			FrameInterval:  DefaultFrameInterval,
			TypingInterval: DefaultTypingInterval,
			Headline:       "folio",
			Footer:         DefaultFooter,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			// A file that declares panels replaces the demo deck entirely.
			cfg.Panels = nil
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			cfg.DataDir = dataDir
			cfg.ConfigDir = filepath.Dir(configPath)

			if len(cfg.Panels) == 0 && cfg.ContentGlob == "" {
				cfg.Panels = DefaultConfig().Panels
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	nav := &c.Navigation
	if nav.TransitionDuration == 0 {
		nav.TransitionDuration = defaults.Navigation.TransitionDuration
	}
	if nav.DragThreshold == 0 {
		nav.DragThreshold = defaults.Navigation.DragThreshold
	}
	if nav.PreviewScale == 0 {
		nav.PreviewScale = defaults.Navigation.PreviewScale
	}
	if nav.WheelThreshold == 0 {
		nav.WheelThreshold = defaults.Navigation.WheelThreshold
	}
	if nav.WheelDebounce == 0 {
		nav.WheelDebounce = defaults.Navigation.WheelDebounce
	}
	if nav.WheelTickDelta == 0 {
		nav.WheelTickDelta = defaults.Navigation.WheelTickDelta
	}
	if nav.DragUnitsPerRow == 0 {
		nav.DragUnitsPerRow = defaults.Navigation.DragUnitsPerRow
	}

	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.FrameInterval == 0 {
		c.TUI.FrameInterval = defaults.TUI.FrameInterval
	}
	if c.TUI.TypingInterval == 0 {
		c.TUI.TypingInterval = defaults.TUI.TypingInterval
	}
	if c.TUI.Footer == "" {
		c.TUI.Footer = defaults.TUI.Footer
	}
	if c.Contact.OpenCommand == "" {
		c.Contact.OpenCommand = defaults.Contact.OpenCommand
	}
}

func defaultOpenCommand() string {
	if runtime.GOOS == "darwin" {
		return "open {{ shq .URL }}"
	}
	return "xdg-open {{ shq .URL }}"
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	nav := c.Navigation
	if nav.TransitionDuration < 0 {
		return fmt.Errorf("navigation.transition_duration cannot be negative")
	}
	if nav.DragThreshold < 0 || nav.WheelThreshold < 0 {
		return fmt.Errorf("navigation thresholds cannot be negative")
	}
	if nav.PreviewScale <= 0 {
		return fmt.Errorf("navigation.preview_scale must be positive")
	}
	if nav.WheelDebounce < 0 {
		return fmt.Errorf("navigation.wheel_debounce cannot be negative")
	}
	if nav.WheelTickDelta <= 0 || nav.DragUnitsPerRow <= 0 {
		return fmt.Errorf("navigation unit conversions must be positive")
	}

	if len(c.Panels) == 0 && c.ContentGlob == "" {
		return fmt.Errorf("at least one panel or a content_glob is required")
	}

	for i, p := range c.Panels {
		if err := p.Validate(i); err != nil {
			return err
		}
	}

	return nil
}

// Validate checks that a panel declaration is valid.
func (p *PanelConfig) Validate(i int) error {
	if err := validate.PanelTitle(p.Title); err != nil {
		return fmt.Errorf("panel %d: %w", i, err)
	}
	if p.Body != "" && p.File != "" {
		return fmt.Errorf("panel %q: cannot have both body and file", p.Title)
	}
	if p.Lazy && p.File == "" {
		return fmt.Errorf("panel %q: lazy requires file", p.Title)
	}
	return nil
}

// ResolvePath returns path relative to the config file directory, or the
// path unchanged when it is absolute or no config file was loaded.
func (c *Config) ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) || c.ConfigDir == "" {
		return path
	}
	return filepath.Join(c.ConfigDir, path)
}

// LogFile returns the default log file path.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "folio.log")
}
