package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/folio/internal/core/config"
)

type staticCheck struct {
	name  string
	items []CheckItem
}

func (s staticCheck) Name() string { return s.name }

func (s staticCheck) Run(context.Context) Result {
	return Result{Name: s.name, Items: s.items}
}

func TestRunAll_Summary(t *testing.T) {
	results := RunAll(context.Background(), []Check{
		staticCheck{name: "a", items: []CheckItem{pass("one", ""), warn("two", "")}},
		staticCheck{name: "b", items: []CheckItem{fail("three", ""), pass("four", "")}},
	})

	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Name)

	passed, warned, failed := Summary(results)
	assert.Equal(t, 2, passed)
	assert.Equal(t, 1, warned)
	assert.Equal(t, 1, failed)
}

func TestRunAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := RunAll(ctx, []Check{staticCheck{name: "a"}})
	assert.Empty(t, results)
}

func newConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.ConfigDir = t.TempDir()
	return &cfg
}

func TestConfigCheck(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		result := NewConfigCheck(newConfig(t), "").Run(context.Background())

		assert.Equal(t, "Configuration", result.Name)
		require.NotEmpty(t, result.Items)
		assert.Equal(t, StatusPass, result.Items[0].Status)
	})

	t.Run("field errors become failures", func(t *testing.T) {
		cfg := newConfig(t)
		cfg.TUI.Theme = "neon"
		cfg.Contact.Email = "not-an-address"

		result := NewConfigCheck(cfg, "").Run(context.Background())

		_, _, failed := Summary([]Result{result})
		assert.Equal(t, 2, failed)
	})

	t.Run("warnings are reported", func(t *testing.T) {
		cfg := newConfig(t)
		cfg.Panels = append(cfg.Panels, config.PanelConfig{Title: "Home"})

		result := NewConfigCheck(cfg, "").Run(context.Background())

		_, warned, _ := Summary([]Result{result})
		assert.GreaterOrEqual(t, warned, 1)
	})
}

func TestContentCheck(t *testing.T) {
	t.Run("counts panels", func(t *testing.T) {
		result := NewContentCheck(newConfig(t)).Run(context.Background())

		require.Len(t, result.Items, 1)
		assert.Equal(t, StatusPass, result.Items[0].Status)
		assert.Equal(t, "4 in deck", result.Items[0].Detail)
	})

	t.Run("unreadable eager file fails", func(t *testing.T) {
		cfg := newConfig(t)
		cfg.Panels = append(cfg.Panels, config.PanelConfig{Title: "Gone", File: "gone.md"})

		result := NewContentCheck(cfg).Run(context.Background())

		require.Len(t, result.Items, 2)
		assert.Equal(t, "Gone", result.Items[1].Label)
		assert.Equal(t, StatusFail, result.Items[1].Status)
	})

	t.Run("lazy files are not loaded", func(t *testing.T) {
		cfg := newConfig(t)
		require.NoError(t, os.WriteFile(filepath.Join(cfg.ConfigDir, "a.md"), []byte("# A"), 0o644))
		cfg.Panels = append(cfg.Panels, config.PanelConfig{Title: "A", File: "a.md", Lazy: true})

		result := NewContentCheck(cfg).Run(context.Background())

		require.Len(t, result.Items, 1)
		assert.Equal(t, "5 in deck", result.Items[0].Detail)
	})
}

func stubTools(t *testing.T, lookPath func(string) (string, error), unsupported bool) {
	t.Helper()
	origLook, origClip := lookPathFunc, clipboardUnsupported
	t.Cleanup(func() {
		lookPathFunc = origLook
		clipboardUnsupported = origClip
	})
	lookPathFunc = lookPath
	clipboardUnsupported = func() bool { return unsupported }
}

func TestToolsCheck(t *testing.T) {
	found := func(file string) (string, error) { return "/usr/bin/" + file, nil }
	missing := func(string) (string, error) { return "", errors.New("not found") }

	contact := config.ContactConfig{
		Email:       "someone@example.com",
		OpenCommand: "xdg-open {{ shq .URL }}",
	}

	t.Run("no email", func(t *testing.T) {
		stubTools(t, found, false)

		result := NewToolsCheck(config.ContactConfig{}).Run(context.Background())

		require.Len(t, result.Items, 1)
		assert.Equal(t, "contact", result.Items[0].Label)
		assert.Equal(t, StatusPass, result.Items[0].Status)
	})

	t.Run("all present", func(t *testing.T) {
		stubTools(t, found, false)

		result := NewToolsCheck(contact).Run(context.Background())

		require.Len(t, result.Items, 2)
		assert.Equal(t, StatusPass, result.Items[0].Status)
		assert.Equal(t, "xdg-open", result.Items[1].Label)
		assert.Equal(t, "/usr/bin/xdg-open", result.Items[1].Detail)
	})

	t.Run("missing helpers warn", func(t *testing.T) {
		stubTools(t, missing, true)

		result := NewToolsCheck(contact).Run(context.Background())

		require.Len(t, result.Items, 2)
		assert.Equal(t, StatusWarn, result.Items[0].Status)
		assert.Equal(t, StatusWarn, result.Items[1].Status)
	})

	t.Run("bad template fails", func(t *testing.T) {
		stubTools(t, found, false)

		bad := contact
		bad.OpenCommand = "open {{ .Nope }}"
		result := NewToolsCheck(bad).Run(context.Background())

		require.Len(t, result.Items, 2)
		assert.Equal(t, StatusFail, result.Items[1].Status)
	})
}
