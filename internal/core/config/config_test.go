package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), dataDir)
	require.NoError(t, err)

	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, DefaultTransitionDuration, cfg.Navigation.TransitionDuration)
	assert.Equal(t, DefaultDragThreshold, cfg.Navigation.DragThreshold)
	assert.Equal(t, DefaultWheelThreshold, cfg.Navigation.WheelThreshold)
	assert.Len(t, cfg.Panels, len(DefaultConfig().Panels))
	assert.Empty(t, cfg.ConfigDir)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Panels)
}

func TestLoad_ParsesFile(t *testing.T) {
	path := writeConfig(t, `
navigation:
  transition_duration: 250ms
  drag_threshold: 80
  wheel_debounce: 1s
panels:
  - title: One
    body: first
  - title: Two
    file: two.md
    lazy: true
tui:
  theme: gruvbox
contact:
  email: hi@example.com
`)

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Navigation.TransitionDuration)
	assert.InDelta(t, 80.0, cfg.Navigation.DragThreshold, 0)
	assert.Equal(t, time.Second, cfg.Navigation.WheelDebounce)
	// unset values fall back to defaults
	assert.InDelta(t, DefaultPreviewScale, cfg.Navigation.PreviewScale, 0)
	assert.Equal(t, DefaultFooter, cfg.TUI.Footer)

	require.Len(t, cfg.Panels, 2)
	assert.Equal(t, "Two", cfg.Panels[1].Title)
	assert.True(t, cfg.Panels[1].Lazy)
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, "hi@example.com", cfg.Contact.Email)
	assert.Equal(t, filepath.Dir(path), cfg.ConfigDir)
}

func TestLoad_FileWithoutPanelsKeepsDemoDeck(t *testing.T) {
	path := writeConfig(t, "tui:\n  theme: paper\n")

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)
	assert.Len(t, cfg.Panels, len(DefaultConfig().Panels))
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "panels: [")

	_, err := Load(path, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidPanel(t *testing.T) {
	path := writeConfig(t, "panels:\n  - body: no title\n")

	_, err := Load(path, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing data dir",
			mutate:  func(c *Config) { c.DataDir = "" },
			wantErr: "data directory",
		},
		{
			name:    "negative duration",
			mutate:  func(c *Config) { c.Navigation.TransitionDuration = -time.Second },
			wantErr: "transition_duration",
		},
		{
			name:    "zero preview scale",
			mutate:  func(c *Config) { c.Navigation.PreviewScale = 0 },
			wantErr: "preview_scale",
		},
		{
			name:    "no panels",
			mutate:  func(c *Config) { c.Panels = nil },
			wantErr: "at least one panel",
		},
		{
			name: "glob without panels",
			mutate: func(c *Config) {
				c.Panels = nil
				c.ContentGlob = "*.md"
			},
		},
		{
			name: "body and file",
			mutate: func(c *Config) {
				c.Panels[0].File = "a.md"
			},
			wantErr: "cannot have both",
		},
		{
			name: "lazy without file",
			mutate: func(c *Config) {
				c.Panels[0].Lazy = true
			},
			wantErr: "lazy requires file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.DataDir = t.TempDir()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestResolvePath(t *testing.T) {
	cfg := Config{ConfigDir: "/etc/folio"}

	assert.Equal(t, "/etc/folio/a.md", cfg.ResolvePath("a.md"))
	assert.Equal(t, "/abs/b.md", cfg.ResolvePath("/abs/b.md"))
	assert.Empty(t, cfg.ResolvePath(""))

	assert.Equal(t, "a.md", (&Config{}).ResolvePath("a.md"))
}

func TestLogFile(t *testing.T) {
	cfg := Config{DataDir: "/data"}
	assert.Equal(t, "/data/folio.log", cfg.LogFile())
}
