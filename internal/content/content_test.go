package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/folio/internal/core/config"
	"github.com/hay-kot/folio/pkg/tuitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, name, body string) string {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(body), 0o644))
	return full
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "posts/b-second.md", "intro\n\n## Second Post\n")
	writeFile(t, root, "posts/a_first.md", "no heading here")
	writeFile(t, root, "posts/nested/c.md", "# Deep")
	writeFile(t, root, "posts/skip.txt", "# Not markdown")

	got, err := Discover(context.Background(), root, "posts/**/*.md")
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "a first", got[0].Title)
	assert.Equal(t, "Second Post", got[1].Title)
	assert.Equal(t, "Deep", got[2].Title)
	for _, s := range got {
		assert.True(t, s.Lazy)
		assert.FileExists(t, s.Path)
	}
}

func TestDiscover_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.md", "# A")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Discover(ctx, root, "*.md")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "about.md", "# About")
	writeFile(t, root, "notes/one.md", "# One")

	cfg := &config.Config{
		ConfigDir: root,
		Panels: []config.PanelConfig{
			{Title: "Home", Body: "hi"},
			{Title: "About", File: "about.md", Lazy: true},
		},
		ContentGlob: "notes/*.md",
	}

	got, err := Resolve(context.Background(), cfg)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, Source{Title: "Home", Body: "hi"}, got[0])
	assert.Equal(t, filepath.Join(root, "about.md"), got[1].Path)
	assert.True(t, got[1].Lazy)
	assert.Equal(t, "One", got[2].Title)
}

func TestLoad(t *testing.T) {
	t.Run("inline body", func(t *testing.T) {
		md, err := Load(Source{Body: "# Hi"})
		require.NoError(t, err)
		assert.Equal(t, "# Hi", md)
	})

	t.Run("file", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "x.md", "# File")
		md, err := Load(Source{Path: p})
		require.NoError(t, err)
		assert.Equal(t, "# File", md)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(Source{Path: filepath.Join(t.TempDir(), "gone.md")})
		assert.Error(t, err)
	})
}

func TestMarkdown_Render(t *testing.T) {
	m := NewMarkdown("dark")

	out, err := m.Render("# Hello\n\nSome words.", 40)
	require.NoError(t, err)

	plain := tuitest.StripANSI(out)
	assert.Contains(t, plain, "Hello")
	assert.Contains(t, plain, "Some words.")

	first := m.r
	_, err = m.Render("again", 40)
	require.NoError(t, err)
	assert.Same(t, first, m.r, "renderer reused for same width")

	_, err = m.Render("again", 60)
	require.NoError(t, err)
	assert.NotSame(t, first, m.r)
}
