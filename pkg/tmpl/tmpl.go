// Package tmpl provides template rendering for short user-facing strings such
// as status lines and opener commands.
package tmpl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// shellQuote wraps s in single quotes, escaping embedded quotes as '\''.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

var funcs = template.FuncMap{
	"shq":   shellQuote,
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"join":  strings.Join,
	"default": func(def, s string) string {
		if s == "" {
			return def
		}
		return s
	},
}

// Template is a parsed template ready for repeated rendering.
type Template struct {
	t *template.Template
}

// Parse compiles src. Missing keys are reported as errors at render time.
func Parse(src string) (*Template, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &Template{t: t}, nil
}

// Render executes the template with data.
func (t *Template) Render(data any) (string, error) {
	var buf bytes.Buffer
	if err := t.t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return buf.String(), nil
}

// Render parses and executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions:
//   - shq: shell-quote a string for use in a command line
//   - upper, lower: change case
//   - join: join a string slice with a separator (e.g., join .Tags ", ")
//   - default: fall back to a value when a string is empty (e.g., default "untitled" .Title)
func Render(src string, data any) (string, error) {
	t, err := Parse(src)
	if err != nil {
		return "", err
	}
	return t.Render(data)
}
