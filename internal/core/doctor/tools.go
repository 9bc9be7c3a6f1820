package doctor

import (
	"context"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/hay-kot/folio/internal/core/config"
	"github.com/hay-kot/folio/pkg/tmpl"
)

// lookPathFunc is the function used to find executables on PATH.
// Package-level variable to allow test overrides.
var lookPathFunc = exec.LookPath

// clipboardUnsupported reports whether no clipboard utility is available.
var clipboardUnsupported = func() bool { return clipboard.Unsupported }

// ToolsCheck verifies the external helpers behind the contact actions.
type ToolsCheck struct {
	contact config.ContactConfig
}

// NewToolsCheck creates a new tools check.
func NewToolsCheck(contact config.ContactConfig) *ToolsCheck {
	return &ToolsCheck{contact: contact}
}

func (c *ToolsCheck) Name() string {
	return "Tools"
}

func (c *ToolsCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if c.contact.Email == "" {
		result.Items = append(result.Items, pass("contact", "no email configured, copy and open disabled"))
		return result
	}

	if clipboardUnsupported() {
		result.Items = append(result.Items, warn("clipboard", "no clipboard utility found (copy will fail)"))
	} else {
		result.Items = append(result.Items, pass("clipboard", "available"))
	}

	result.Items = append(result.Items, c.openerItem())
	return result
}

func (c *ToolsCheck) openerItem() CheckItem {
	rendered, err := tmpl.Render(c.contact.OpenCommand, config.OpenData{
		URL:   "mailto:" + c.contact.Email,
		Email: c.contact.Email,
	})
	if err != nil {
		return fail("open_command", err.Error())
	}

	fields := strings.Fields(rendered)
	if len(fields) == 0 {
		return fail("open_command", "renders to an empty command")
	}

	path, err := lookPathFunc(fields[0])
	if err != nil {
		return warn(fields[0], "not found on PATH (open will fail)")
	}
	return pass(fields[0], path)
}
