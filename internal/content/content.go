// Package content resolves configured panels into renderable sources.
package content

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/folio/internal/core/config"
	"github.com/hay-kot/folio/internal/core/logging"
)

// Source is one panel's content before rendering. Body holds inline
// markdown; Path points at a markdown file read on Load.
type Source struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
	Path  string `json:"path,omitempty"`
	Lazy  bool   `json:"lazy"`
}

// Resolve returns the configured panels followed by one lazy panel per file
// matched by content_glob.
func Resolve(ctx context.Context, cfg *config.Config) ([]Source, error) {
	out := make([]Source, 0, len(cfg.Panels))
	for _, p := range cfg.Panels {
		out = append(out, Source{
			Title: p.Title,
			Body:  p.Body,
			Path:  cfg.ResolvePath(p.File),
			Lazy:  p.Lazy,
		})
	}

	if cfg.ContentGlob != "" {
		found, err := Discover(ctx, cfg.ContentRoot(), cfg.ContentGlob)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}

	return out, nil
}

// Discover matches pattern below root and returns a lazy Source per file,
// sorted by path. Titles come from the first markdown heading, falling back
// to the file name.
func Discover(ctx context.Context, root, pattern string) ([]Source, error) {
	log := logging.Component("content")

	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("match %q: %w", pattern, err)
	}
	sort.Strings(matches)

	out := make([]Source, 0, len(matches))
	for _, m := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		full := filepath.Join(root, filepath.FromSlash(m))
		title := titleFromFile(full)
		if title == "" {
			title = titleFromName(m)
		}

		log.Debug().Ctx(logging.WithPanel(ctx, title)).Str("path", full).Msg("discovered panel")

		out = append(out, Source{Title: title, Path: full, Lazy: true})
	}

	return out, nil
}

// Load returns the markdown for s, reading Path when set.
func Load(s Source) (string, error) {
	if s.Path == "" {
		return s.Body, nil
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", s.Path, err)
	}
	return string(data), nil
}

// titleFromFile returns the text of the first ATX heading in the file, or ""
// when the file has none or cannot be read.
func titleFromFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "#") {
			continue
		}
		if title := strings.TrimSpace(strings.TrimLeft(line, "#")); title != "" {
			return title
		}
	}
	return ""
}

// titleFromName turns "posts/hello-world.md" into "hello world".
func titleFromName(p string) string {
	name := strings.TrimSuffix(path.Base(p), path.Ext(p))
	return strings.NewReplacer("-", " ", "_", " ").Replace(name)
}
